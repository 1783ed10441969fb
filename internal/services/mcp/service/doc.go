// Package service hosts the storefront MCP server: tool and resource
// registration, stdio and HTTP transports, and the in-process dispatcher
// used by embedding callers and tests.
package service
