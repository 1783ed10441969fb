package domain

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/shopkit-demo/storefront-mcp/internal/platform/id"
)

// invocationIDKey is the response metadata key carrying the per-call id that
// correlates a tool reply with server logs.
const invocationIDKey = "invocationId"

// errorEnvelope is the body of every domain failure reply.
type errorEnvelope struct {
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// successResult wraps payload in the uniform tool reply: one JSON text block,
// indented for agent readability.
func successResult(payload any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal tool payload: %w", err)
	}
	return newCallToolResult(string(data), false), nil
}

// errorResult wraps a domain failure in the uniform reply with isError set.
// Callers return it alongside a nil Go error: the failure is data for the
// agent, not a protocol fault.
func errorResult(message string) *mcp.CallToolResult {
	return errorResultWithSuggestion(message, "")
}

// errorResultWithSuggestion attaches a recovery hint to a failure reply.
func errorResultWithSuggestion(message, suggestion string) *mcp.CallToolResult {
	// Marshaling a flat string struct cannot fail.
	data, _ := json.Marshal(errorEnvelope{Error: message, Suggestion: suggestion})
	return newCallToolResult(string(data), true)
}

func newCallToolResult(text string, isError bool) *mcp.CallToolResult {
	result := &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
		IsError: isError,
	}
	if invocationID, err := id.NewID(); err == nil {
		result.Meta = map[string]any{invocationIDKey: invocationID}
	}
	return result
}
