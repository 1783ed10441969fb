package config

import "testing"

type testEnv struct {
	Addr  string   `env:"STOREFRONT_MCP_TEST_ADDR" envDefault:"localhost:9999"`
	Hosts []string `env:"STOREFRONT_MCP_TEST_HOSTS" envSeparator:","`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg testEnv
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "localhost:9999" {
		t.Fatalf("expected default addr, got %q", cfg.Addr)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("STOREFRONT_MCP_TEST_ADDR", "example:1234")
	t.Setenv("STOREFRONT_MCP_TEST_HOSTS", "a.example, b.example")

	var cfg testEnv
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Addr != "example:1234" {
		t.Fatalf("expected env addr, got %q", cfg.Addr)
	}
	if len(cfg.Hosts) != 2 {
		t.Fatalf("expected 2 hosts, got %d", len(cfg.Hosts))
	}
}

func TestParseEnvRejectsNonPointer(t *testing.T) {
	var cfg testEnv
	if err := ParseEnv(cfg); err == nil {
		t.Fatal("expected error for non-pointer target")
	}
}
