// Package streams implements the list_streams tool. Streams are Graylog's
// logical partitions of the log store, roughly one per source application.
package streams

import (
	"context"
	"sort"

	"github.com/Pranavj17/mcp-server-graylog/internal/constants"
	"github.com/Pranavj17/mcp-server-graylog/internal/envelope"
	"github.com/Pranavj17/mcp-server-graylog/internal/graylog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tidwall/gjson"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

const ListStreamsDescription = `List the log streams configured in Graylog.
The built-in default stream is excluded; remaining streams are sorted by title.

Use this tool to discover valid streamId values for the search tools, or when
the user asks which applications are shipping logs.

This tool takes no parameters. Each stream includes id, title, description
and whether it is disabled.`

// ListStreamsArgs - empty struct as this tool takes no parameters
type ListStreamsArgs struct{}

// NewListStreamsHandler creates a handler for listing Graylog streams.
func NewListStreamsHandler(client *graylog.Client) func(context.Context, *mcp.CallToolRequest, ListStreamsArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args ListStreamsArgs) (*mcp.CallToolResult, any, error) {
		body, err := client.Get(ctx, constants.EndpointStreams, nil)
		if err != nil {
			return envelope.Error(err), nil, nil
		}
		return envelope.Text(shapeStreams(body)), nil, nil
	}
}

// shapeStreams excludes the default system stream, sorts the remainder
// ascending by title with locale-aware comparison, and projects each entry
// to its stable four-field shape.
func shapeStreams(body []byte) map[string]any {
	shaped := make([]map[string]any, 0)
	gjson.GetBytes(body, "streams").ForEach(func(_, stream gjson.Result) bool {
		if stream.Get("is_default").Bool() {
			return true
		}
		shaped = append(shaped, map[string]any{
			"id":          stream.Get("id").Value(),
			"title":       stream.Get("title").String(),
			"description": stream.Get("description").String(),
			"disabled":    stream.Get("disabled").Value(),
		})
		return true
	})

	collator := collate.New(language.English)
	sort.SliceStable(shaped, func(i, j int) bool {
		return collator.CompareString(shaped[i]["title"].(string), shaped[j]["title"].(string)) < 0
	})

	return map[string]any{
		"total":   len(shaped),
		"streams": shaped,
	}
}
