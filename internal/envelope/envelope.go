// Package envelope builds the uniform tool result shapes returned by every
// tool, success or failure. No handler error ever escapes to the transport
// layer; failures are converted here into a well-formed result.
package envelope

import (
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Text wraps a value as a successful tool result with a single JSON text block.
func Text(v any) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: formatJSON(v)},
		},
	}
}

// Error wraps a failure as a tool result with IsError set. The message is
// prefixed with "Error: " so clients can surface it verbatim.
func Error(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: "Error: " + err.Error()},
		},
	}
}

// formatJSON formats a value as indented JSON for display
func formatJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
