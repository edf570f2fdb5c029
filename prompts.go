package main

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// querySyntaxGuide is served to assistants that need a refresher on Graylog
// search syntax before building queries for the search tools.
const querySyntaxGuide = `# Graylog Search Query Syntax

Queries passed to search_logs_absolute and search_logs_relative use Graylog's
search syntax (based on Lucene). Common patterns:

- Full text: ssh login
- Exact phrase: "ssh login failed"
- Field match: level:3, source:api-1
- Field phrase: message:"connection refused"
- Ranges: http_response_code:[500 TO 599], took_ms:>1000
- Boolean: level:3 AND source:api-*, type:(ssh OR login)
- Negation: NOT source:example.org, _exists_:remote_ip
- Wildcards: source:*.example.com (leading wildcards are often disabled)

Severity levels are numeric: 0=Emerg, 1=Alert, 2=Crit, 3=Error, 4=Warning,
5=Notice, 6=Info, 7=Debug. "Errors and worse" is level:<=3.

Workflow tips:
1. Call list_streams first and pass streamId to narrow the search.
2. Start with a relative search (default window is 15 minutes) and widen
   rangeSeconds only if nothing matches.
3. Keep limit small; raise it only when aggregating.`

// registerAllPrompts registers the query-syntax prompt with the MCP server.
func registerAllPrompts(server *mcp.Server) {
	server.AddPrompt(&mcp.Prompt{
		Name:        "graylog-query-syntax",
		Title:       "Graylog Query Syntax",
		Description: "Reference for Graylog search query syntax, severity levels and search workflow tips.",
	}, querySyntaxPromptHandler)
}

func querySyntaxPromptHandler(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Graylog search query syntax reference",
		Messages: []*mcp.PromptMessage{
			{
				Role:    mcp.Role("user"),
				Content: &mcp.TextContent{Text: querySyntaxGuide},
			},
		},
	}, nil
}
