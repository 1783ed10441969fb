package service

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shopkit-demo/storefront-mcp/internal/services/mcp/domain"
	"github.com/shopkit-demo/storefront-mcp/internal/store"
)

type mcpRegistrationTarget interface {
	AddTool(*mcp.Tool, any) error
	AddResource(*mcp.Resource, mcp.ResourceHandler)
}

func registerCatalogTools(registrar mcpRegistrationTarget, st *store.Store) error {
	if err := registerTool(registrar, domain.SearchProductsTool(), domain.SearchProductsHandler(st)); err != nil {
		return err
	}
	return registerTool(registrar, domain.GetProductTool(), domain.GetProductHandler(st))
}

func registerCartTools(registrar mcpRegistrationTarget, st *store.Store) error {
	registrations := []struct {
		tool    *mcp.Tool
		handler any
	}{
		{tool: domain.GetCartTool(), handler: domain.GetCartHandler(st)},
		{tool: domain.AddToCartTool(), handler: domain.AddToCartHandler(st)},
		{tool: domain.RemoveFromCartTool(), handler: domain.RemoveFromCartHandler(st)},
		{tool: domain.UpdateCartQuantityTool(), handler: domain.UpdateCartQuantityHandler(st)},
	}
	for _, registration := range registrations {
		if err := registerTool(registrar, registration.tool, registration.handler); err != nil {
			return err
		}
	}
	return nil
}

func registerOrderTools(registrar mcpRegistrationTarget, st *store.Store) error {
	if err := registerTool(registrar, domain.GetOrderStatusTool(), domain.GetOrderStatusHandler(st)); err != nil {
		return err
	}
	return registerTool(registrar, domain.ListOrdersTool(), domain.ListOrdersHandler(st))
}

func registerMembershipTools(registrar mcpRegistrationTarget, st *store.Store) error {
	return registerTool(registrar, domain.GetMembershipTool(), domain.GetMembershipHandler(st))
}

func registerCatalogResources(registrar mcpRegistrationTarget, st *store.Store) {
	registrar.AddResource(domain.CatalogResource(), domain.CatalogResourceHandler(st))
}

func registerTool(registrar mcpRegistrationTarget, tool *mcp.Tool, handler any) error {
	if tool == nil {
		return fmt.Errorf("tool is nil")
	}
	return registrar.AddTool(tool, handler)
}
