// Package logs implements the two Graylog search tools: absolute and
// relative time windows. Both validate their arguments, issue one search
// API call and reshape the response.
package logs

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/Pranavj17/mcp-server-graylog/internal/constants"
	"github.com/Pranavj17/mcp-server-graylog/internal/envelope"
	"github.com/Pranavj17/mcp-server-graylog/internal/graylog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// SearchAbsoluteArgs represents the input arguments for the
// search_logs_absolute tool.
type SearchAbsoluteArgs struct {
	Query    string  `json:"query" jsonschema:"Graylog search query, passed through verbatim"`
	From     string  `json:"from" jsonschema:"Window start, ISO 8601 timestamp with a time component"`
	To       string  `json:"to" jsonschema:"Window end, must be strictly after from"`
	StreamID *string `json:"streamId,omitempty" jsonschema:"Restrict the search to a single stream"`
	Limit    *int    `json:"limit,omitempty" jsonschema:"Maximum messages to return, 1-1000, default 50"`
}

// SearchRelativeArgs represents the input arguments for the
// search_logs_relative tool.
type SearchRelativeArgs struct {
	Query        string  `json:"query" jsonschema:"Graylog search query, passed through verbatim"`
	RangeSeconds *int    `json:"rangeSeconds,omitempty" jsonschema:"Window length in seconds ending now, 1-86400, default 900"`
	StreamID     *string `json:"streamId,omitempty" jsonschema:"Restrict the search to a single stream"`
	Limit        *int    `json:"limit,omitempty" jsonschema:"Maximum messages to return, 1-1000, default 50"`
}

// NewSearchAbsoluteHandler creates a handler for searching logs within an
// absolute time window.
func NewSearchAbsoluteHandler(client *graylog.Client) func(context.Context, *mcp.CallToolRequest, SearchAbsoluteArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args SearchAbsoluteArgs) (*mcp.CallToolResult, any, error) {
		p, err := validateAbsoluteSearch(args)
		if err != nil {
			return envelope.Error(err), nil, nil
		}

		query := url.Values{}
		query.Set("query", p.Query)
		query.Set("from", p.From)
		query.Set("to", p.To)
		query.Set("limit", strconv.Itoa(p.Limit))
		if p.StreamID != "" {
			query.Set("filter", "streams:"+p.StreamID)
		}

		body, err := client.Get(ctx, constants.EndpointSearchAbsolute, query)
		if err != nil {
			return envelope.Error(err), nil, nil
		}

		shaped := shapeSearchResult(body, map[string]any{
			"from": p.From,
			"to":   p.To,
		})
		return envelope.Text(shaped), nil, nil
	}
}

// NewSearchRelativeHandler creates a handler for searching logs within the
// last N seconds.
func NewSearchRelativeHandler(client *graylog.Client) func(context.Context, *mcp.CallToolRequest, SearchRelativeArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args SearchRelativeArgs) (*mcp.CallToolResult, any, error) {
		p, err := validateRelativeSearch(args)
		if err != nil {
			return envelope.Error(err), nil, nil
		}

		query := url.Values{}
		query.Set("query", p.Query)
		query.Set("range", strconv.Itoa(p.RangeSeconds))
		query.Set("limit", strconv.Itoa(p.Limit))
		if p.StreamID != "" {
			query.Set("filter", "streams:"+p.StreamID)
		}

		body, err := client.Get(ctx, constants.EndpointSearchRelative, query)
		if err != nil {
			return envelope.Error(err), nil, nil
		}

		shaped := shapeSearchResult(body, fmt.Sprintf("last %d seconds", p.RangeSeconds))
		return envelope.Text(shaped), nil, nil
	}
}
