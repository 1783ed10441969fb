package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shopkit-demo/storefront-mcp/internal/platform/branding"
	"github.com/shopkit-demo/storefront-mcp/internal/services/mcp/domain"
	"github.com/shopkit-demo/storefront-mcp/internal/store"
)

// serverVersion identifies the MCP server version.
const serverVersion = "1.0.0"

// serverName identifies this MCP server to clients.
var serverName = branding.AppName + " MCP"

type mcpRegistrationKind int

const (
	mcpRegistrationKindTools mcpRegistrationKind = iota
	mcpRegistrationKindResources
)

type mcpRegistrationModule struct {
	name     string
	kind     mcpRegistrationKind
	register func(mcpRegistrationTarget) error
}

const (
	mcpCatalogToolsModuleName    = "catalog-tools"
	mcpCartToolsModuleName       = "cart-tools"
	mcpOrderToolsModuleName      = "order-tools"
	mcpMembershipToolsModuleName = "membership-tools"
	mcpCatalogResourceModuleName = "catalog-resources"
)

// mcpServerRegistrationAdapter binds registration modules to one mcp.Server
// and rejects duplicate tool names at construction time.
type mcpServerRegistrationAdapter struct {
	server *mcp.Server
	seen   map[string]struct{}
}

func (r mcpServerRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	if tool == nil {
		return fmt.Errorf("tool is nil")
	}
	if _, dup := r.seen[tool.Name]; dup {
		return fmt.Errorf("tool %q is already registered", tool.Name)
	}
	r.seen[tool.Name] = struct{}{}
	return addMCPTool(r.server, tool, handler)
}

func (r mcpServerRegistrationAdapter) AddResource(resource *mcp.Resource, handler mcp.ResourceHandler) {
	r.server.AddResource(resource, handler)
}

type mcpToolRegistrar struct {
	matches func(any) bool
	add     func(*mcp.Server, *mcp.Tool, any)
}

func newMCPToolRegistrar[I any, O any]() mcpToolRegistrar {
	return mcpToolRegistrar{
		matches: func(handler any) bool {
			_, ok := handler.(mcp.ToolHandlerFor[I, O])
			return ok
		},
		add: func(server *mcp.Server, tool *mcp.Tool, handler any) {
			mcp.AddTool(server, tool, handler.(mcp.ToolHandlerFor[I, O]))
		},
	}
}

var mcpToolRegistrars = []mcpToolRegistrar{
	newMCPToolRegistrar[domain.SearchProductsInput, any](),
	newMCPToolRegistrar[domain.GetProductInput, any](),
	newMCPToolRegistrar[domain.GetCartInput, any](),
	newMCPToolRegistrar[domain.AddToCartInput, any](),
	newMCPToolRegistrar[domain.RemoveFromCartInput, any](),
	newMCPToolRegistrar[domain.UpdateCartQuantityInput, any](),
	newMCPToolRegistrar[domain.GetOrderStatusInput, any](),
	newMCPToolRegistrar[domain.ListOrdersInput, any](),
	newMCPToolRegistrar[domain.GetMembershipInput, any](),
}

func addMCPTool(server *mcp.Server, tool *mcp.Tool, handler any) error {
	for _, registrar := range mcpToolRegistrars {
		if registrar.matches(handler) {
			registrar.add(server, tool, handler)
			return nil
		}
	}
	toolName := "<nil>"
	if tool != nil {
		toolName = tool.Name
	}
	return fmt.Errorf("mcp registration adapter does not support handler type %T for tool %q", handler, toolName)
}

func newMCPRegistrationModules(st *store.Store) []mcpRegistrationModule {
	return []mcpRegistrationModule{
		{
			name: mcpCatalogToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(registrar mcpRegistrationTarget) error {
				return registerCatalogTools(registrar, st)
			},
		},
		{
			name: mcpCartToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(registrar mcpRegistrationTarget) error {
				return registerCartTools(registrar, st)
			},
		},
		{
			name: mcpOrderToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(registrar mcpRegistrationTarget) error {
				return registerOrderTools(registrar, st)
			},
		},
		{
			name: mcpMembershipToolsModuleName,
			kind: mcpRegistrationKindTools,
			register: func(registrar mcpRegistrationTarget) error {
				return registerMembershipTools(registrar, st)
			},
		},
		{
			name: mcpCatalogResourceModuleName,
			kind: mcpRegistrationKindResources,
			register: func(registrar mcpRegistrationTarget) error {
				registerCatalogResources(registrar, st)
				return nil
			},
		},
	}
}

// Server hosts the MCP server over its injected store.
type Server struct {
	mcpServer *mcp.Server
	store     *store.Store
}

// New builds the MCP server once: every tool and resource module registers
// against the injected store, and a failing module aborts construction.
func New(st *store.Store) (*Server, error) {
	if st == nil {
		return nil, fmt.Errorf("store is required")
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, &mcp.ServerOptions{
		CompletionHandler:  completionHandler,
		SubscribeHandler:   resourceSubscribeHandler,
		UnsubscribeHandler: resourceUnsubscribeHandler,
	})

	server := &Server{mcpServer: mcpServer, store: st}
	adapter := mcpServerRegistrationAdapter{server: mcpServer, seen: make(map[string]struct{})}
	for _, module := range newMCPRegistrationModules(st) {
		if err := module.register(adapter); err != nil {
			return nil, fmt.Errorf("register MCP module %q: %w", module.name, err)
		}
	}

	return server, nil
}

// completionHandler handles completion/complete requests with empty results.
// The catalog tools take free-form filters, so there is nothing useful to
// complete yet.
func completionHandler(ctx context.Context, req *mcp.CompleteRequest) (*mcp.CompleteResult, error) {
	return &mcp.CompleteResult{
		Completion: mcp.CompletionResultDetails{
			Values: []string{},
		},
	}, nil
}

// resourceSubscribeHandler accepts resource subscriptions with a valid URI.
func resourceSubscribeHandler(_ context.Context, req *mcp.SubscribeRequest) error {
	if req == nil || req.Params == nil || strings.TrimSpace(req.Params.URI) == "" {
		return fmt.Errorf("resource uri is required")
	}
	return nil
}

// resourceUnsubscribeHandler accepts resource unsubscriptions with a valid URI.
func resourceUnsubscribeHandler(_ context.Context, req *mcp.UnsubscribeRequest) error {
	if req == nil || req.Params == nil || strings.TrimSpace(req.Params.URI) == "" {
		return fmt.Errorf("resource uri is required")
	}
	return nil
}
