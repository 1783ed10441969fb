package service

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Dispatcher drives a Server in-process over paired in-memory pipes. It is
// the embedding surface for callers that want tool dispatch without standing
// up a transport: the calls still cross the real protocol layer, so input
// schema validation and error envelopes behave exactly as they do for remote
// clients.
type Dispatcher struct {
	serverSession *mcp.ServerSession
	clientSession *mcp.ClientSession
}

// NewDispatcher connects a private client to the server. Close the
// dispatcher when done; the server itself stays usable.
func NewDispatcher(ctx context.Context, server *Server) (*Dispatcher, error) {
	if server == nil || server.mcpServer == nil {
		return nil, fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serverSession, err := server.mcpServer.Connect(ctx, serverTransport, nil)
	if err != nil {
		return nil, fmt.Errorf("connect server session: %w", err)
	}

	client := mcp.NewClient(&mcp.Implementation{Name: serverName + " dispatcher", Version: serverVersion}, nil)
	clientSession, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		_ = serverSession.Close()
		return nil, fmt.Errorf("connect client session: %w", err)
	}

	return &Dispatcher{serverSession: serverSession, clientSession: clientSession}, nil
}

// Dispatcher connects a private in-process client to this server.
func (s *Server) Dispatcher(ctx context.Context) (*Dispatcher, error) {
	return NewDispatcher(ctx, s)
}

// Dispatch invokes a registered tool by name. Domain failures come back as
// isError results; an unknown tool name is a protocol error.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, arguments map[string]any) (*mcp.CallToolResult, error) {
	return d.clientSession.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: arguments})
}

// ListTools returns the registered tool declarations.
func (d *Dispatcher) ListTools(ctx context.Context) ([]*mcp.Tool, error) {
	result, err := d.clientSession.ListTools(ctx, nil)
	if err != nil {
		return nil, err
	}
	return result.Tools, nil
}

// ReadResource reads a registered resource by URI.
func (d *Dispatcher) ReadResource(ctx context.Context, uri string) (*mcp.ReadResourceResult, error) {
	return d.clientSession.ReadResource(ctx, &mcp.ReadResourceParams{URI: uri})
}

// Close tears down both sides of the in-memory pipe.
func (d *Dispatcher) Close() error {
	if d == nil {
		return nil
	}
	var firstErr error
	if d.clientSession != nil {
		firstErr = d.clientSession.Close()
	}
	if d.serverSession != nil {
		if err := d.serverSession.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
