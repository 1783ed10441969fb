// Package domain maps MCP tool calls onto the storefront collections.
//
// The package is intentionally explicit about that mapping:
// - validate tool input before any store mutation,
// - route the call to the in-memory store,
// - and surface JSON envelopes that agent clients can parse.
//
// Every tool reply is a single JSON text content block. Domain failures such
// as an unknown product travel inside that envelope with isError set, so the
// calling agent can read and recover from them; protocol-level errors are
// reserved for faults like an unregistered tool.
package domain
