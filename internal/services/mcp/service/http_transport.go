package service

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shopkit-demo/storefront-mcp/internal/platform/config"
)

var listenTCP = net.Listen

// mcpHTTPEnv holds env-parsed configuration for the MCP HTTP transport.
type mcpHTTPEnv struct {
	AllowedHosts []string `env:"STOREFRONT_MCP_ALLOWED_HOSTS"          envSeparator:","`
	OAuthIssuer  string   `env:"STOREFRONT_MCP_OAUTH_ISSUER"`
	OAuthSecret  string   `env:"STOREFRONT_MCP_OAUTH_RESOURCE_SECRET"`
}

const (
	// defaultShutdownTimeout is the maximum time to wait for graceful HTTP
	// server shutdown. Long enough for in-flight tool calls to finish.
	defaultShutdownTimeout = 35 * time.Second

	// defaultIntrospectionTimeout caps OAuth introspection duration.
	defaultIntrospectionTimeout = 5 * time.Second
)

// HTTPTransport serves MCP over streamable HTTP. Requests are stateless: the
// protocol layer builds no per-session state, so any request can land on any
// replica while the shared store keeps cart continuity. Host validation and
// optional bearer-token auth gate every endpoint.
type HTTPTransport struct {
	addr         string
	allowedHosts map[string]struct{}
	server       *mcp.Server
	httpServer   *http.Server
	oauth        *oauthAuth
}

// NewHTTPTransport creates an HTTP transport bound to addr. It defaults to
// localhost-only binding so the default footprint stays constrained to local
// development unless explicit host configuration broadens access.
func NewHTTPTransport(addr string) *HTTPTransport {
	if addr == "" {
		addr = "localhost:8081"
	}
	var raw mcpHTTPEnv
	_ = config.ParseEnv(&raw)
	return &HTTPTransport{
		addr:         addr,
		allowedHosts: parseAllowedHosts(raw.AllowedHosts),
		oauth:        loadOAuthAuthFromEnv(raw),
	}
}

// NewHTTPTransportWithServer creates an HTTP transport serving a
// preconfigured MCP server. Callers use this when the server was already
// constructed for another transport or for tests.
func NewHTTPTransportWithServer(addr string, server *mcp.Server) *HTTPTransport {
	transport := NewHTTPTransport(addr)
	transport.server = server
	return transport
}

// Start serves HTTP until the context is cancelled, then shuts down
// gracefully. Cancellation is a normal exit.
func (t *HTTPTransport) Start(ctx context.Context) error {
	t.httpServer = &http.Server{
		Addr:    t.addr,
		Handler: t.handler(),
	}

	log.Printf("Starting MCP HTTP server on %s", t.addr)

	errChan := make(chan error, 1)
	go func() {
		listener, err := listenTCP("tcp", t.addr)
		if err != nil {
			errChan <- err
			return
		}
		if err := t.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Printf("Shutting down MCP HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
		defer cancel()
		if err := t.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("HTTP server error: %w", err)
	}
}

// handler builds the route table shared by Start and the transport tests.
func (t *HTTPTransport) handler() http.Handler {
	mux := http.NewServeMux()

	// POST /mcp carries the protocol; GET /mcp opens the streaming side. Both
	// run in stateless mode to match the shared-store concurrency model.
	streamable := mcp.NewStreamableHTTPHandler(
		func(*http.Request) *mcp.Server { return t.server },
		&mcp.StreamableHTTPOptions{Stateless: true},
	)
	mux.HandleFunc("/mcp", func(w http.ResponseWriter, r *http.Request) {
		if err := t.validateLocalRequest(r); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if !t.authorizeRequest(w, r) {
			return
		}
		streamable.ServeHTTP(w, r)
	})

	if t.oauth != nil {
		mux.HandleFunc("/.well-known/oauth-protected-resource", t.handleProtectedResourceMetadata)
	}

	mux.HandleFunc("/mcp/health", t.handleHealth)
	mux.HandleFunc("/", t.handleLanding)

	return mux
}
