package otel

import (
	"context"
	"testing"
)

func TestSetupNoEndpointReturnsNoop(t *testing.T) {
	t.Setenv("STOREFRONT_MCP_OTEL_ENDPOINT", "")

	shutdown, err := Setup(context.Background(), "mcp")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if shutdown == nil {
		t.Fatal("expected shutdown function")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown: %v", err)
	}
}

func TestSetupDisabledReturnsNoop(t *testing.T) {
	t.Setenv("STOREFRONT_MCP_OTEL_ENDPOINT", "http://localhost:4318")
	t.Setenv("STOREFRONT_MCP_OTEL_ENABLED", "false")

	shutdown, err := Setup(context.Background(), "mcp")
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("noop shutdown: %v", err)
	}
}
