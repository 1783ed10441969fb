package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopkit-demo/storefront-mcp/internal/store"
)

func newTestTransport(t *testing.T) *HTTPTransport {
	t.Helper()
	server, err := New(store.New())
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	return NewHTTPTransportWithServer("localhost:0", server.mcpServer)
}

func TestHandleHealth(t *testing.T) {
	transport := newTestTransport(t)

	req := httptest.NewRequest(http.MethodGet, "http://localhost/mcp/health", nil)
	rec := httptest.NewRecorder()
	transport.handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode health payload: %v", err)
	}
	if payload["status"] != "ok" {
		t.Errorf("unexpected health payload: %v", payload)
	}
}

func TestHostValidation(t *testing.T) {
	transport := newTestTransport(t)
	handler := transport.handler()

	t.Run("loopback host is allowed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://127.0.0.1/mcp/health", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})

	t.Run("foreign host is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://localhost/mcp/health", nil)
		req.Host = "evil.example.com"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("foreign origin is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://localhost/mcp/health", nil)
		req.Header.Set("Origin", "http://evil.example.com")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("configured host is allowed", func(t *testing.T) {
		transport := newTestTransport(t)
		transport.allowedHosts = parseAllowedHosts([]string{"mcp.internal.example"})
		req := httptest.NewRequest(http.MethodGet, "http://localhost/mcp/health", nil)
		req.Host = "mcp.internal.example:8081"
		rec := httptest.NewRecorder()
		transport.handler().ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})
}

func TestHandleLanding(t *testing.T) {
	transport := newTestTransport(t)
	handler := transport.handler()

	t.Run("root serves the landing page", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://localhost/", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if !strings.Contains(rec.Header().Get("Content-Type"), "text/html") {
			t.Errorf("unexpected content type: %q", rec.Header().Get("Content-Type"))
		}
		body := rec.Body.String()
		if !strings.Contains(body, "search_products") || !strings.Contains(body, "catalog://products") {
			t.Error("landing page should list tools and resources")
		}
	})

	t.Run("unknown paths 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "http://localhost/checkout", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})
}

func TestProtectedResourceMetadata(t *testing.T) {
	t.Run("absent without oauth config", func(t *testing.T) {
		transport := newTestTransport(t)
		transport.oauth = nil
		req := httptest.NewRequest(http.MethodGet, "http://localhost/.well-known/oauth-protected-resource", nil)
		rec := httptest.NewRecorder()
		transport.handler().ServeHTTP(rec, req)
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("published with oauth config", func(t *testing.T) {
		transport := newTestTransport(t)
		transport.oauth = &oauthAuth{issuer: "https://auth.example.com", resourceSecret: "secret", httpClient: http.DefaultClient}
		req := httptest.NewRequest(http.MethodGet, "http://localhost:8081/.well-known/oauth-protected-resource", nil)
		rec := httptest.NewRecorder()
		transport.handler().ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		var metadata protectedResourceMetadata
		if err := json.Unmarshal(rec.Body.Bytes(), &metadata); err != nil {
			t.Fatalf("decode metadata: %v", err)
		}
		if metadata.Resource != "http://localhost:8081/mcp" {
			t.Errorf("unexpected resource: %q", metadata.Resource)
		}
		if len(metadata.AuthorizationServers) != 1 || metadata.AuthorizationServers[0] != "https://auth.example.com" {
			t.Errorf("unexpected authorization servers: %v", metadata.AuthorizationServers)
		}
		if len(metadata.ScopesSupported) != 3 {
			t.Errorf("unexpected scopes: %v", metadata.ScopesSupported)
		}
	})
}

func TestAuthorizeRequest(t *testing.T) {
	t.Run("no oauth config admits everything", func(t *testing.T) {
		transport := newTestTransport(t)
		transport.oauth = nil
		req := httptest.NewRequest(http.MethodPost, "http://localhost/mcp", nil)
		rec := httptest.NewRecorder()
		if !transport.authorizeRequest(rec, req) {
			t.Fatal("expected request to be admitted")
		}
	})

	t.Run("missing bearer token is unauthorized", func(t *testing.T) {
		transport := newTestTransport(t)
		transport.oauth = &oauthAuth{issuer: "https://auth.example.com", resourceSecret: "secret", httpClient: http.DefaultClient}
		req := httptest.NewRequest(http.MethodPost, "http://localhost/mcp", nil)
		rec := httptest.NewRecorder()
		if transport.authorizeRequest(rec, req) {
			t.Fatal("expected request to be rejected")
		}
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
		if !strings.Contains(rec.Header().Get("WWW-Authenticate"), "resource_metadata") {
			t.Errorf("expected WWW-Authenticate challenge, got %q", rec.Header().Get("WWW-Authenticate"))
		}
	})

	t.Run("introspection result decides admission", func(t *testing.T) {
		introspection := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/introspect" {
				http.NotFound(w, r)
				return
			}
			if r.Header.Get("X-Resource-Secret") != "secret" {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			active := strings.HasSuffix(r.Header.Get("Authorization"), "good-token")
			_ = json.NewEncoder(w).Encode(introspectionPayload{Active: active})
		}))
		defer introspection.Close()

		transport := newTestTransport(t)
		transport.oauth = &oauthAuth{issuer: introspection.URL, resourceSecret: "secret", httpClient: introspection.Client()}

		req := httptest.NewRequest(http.MethodPost, "http://localhost/mcp", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()
		if !transport.authorizeRequest(rec, req) {
			t.Fatal("expected active token to be admitted")
		}

		req = httptest.NewRequest(http.MethodPost, "http://localhost/mcp", nil)
		req.Header.Set("Authorization", "Bearer stale-token")
		rec = httptest.NewRecorder()
		if transport.authorizeRequest(rec, req) {
			t.Fatal("expected inactive token to be rejected")
		}
		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})
}

func TestNormalizeHost(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"localhost:8081", "localhost", true},
		{"localhost", "localhost", true},
		{"[::1]:8081", "::1", true},
		{"[::1]", "::1", true},
		{"", "", false},
		{"host:port:extra", "host:port:extra", true},
	}
	for _, tc := range cases {
		got, ok := normalizeHost(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Errorf("normalizeHost(%q) = %q, %v; want %q, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
