// Package system implements the get_system_status tool, a point-in-time
// health and version snapshot of the Graylog node.
package system

import (
	"context"

	"github.com/Pranavj17/mcp-server-graylog/internal/constants"
	"github.com/Pranavj17/mcp-server-graylog/internal/envelope"
	"github.com/Pranavj17/mcp-server-graylog/internal/graylog"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/tidwall/gjson"
)

const GetSystemStatusDescription = `Get a health and version snapshot of the Graylog node.

Use this tool to check whether Graylog is reachable and processing messages,
or when the user asks which Graylog version is running.

This tool takes no parameters. It returns version, codename, cluster_id,
node_id, hostname, is_processing and timezone. Values are read live on each
call; nothing is cached.`

// GetSystemStatusArgs - empty struct as this tool takes no parameters
type GetSystemStatusArgs struct{}

// statusFields is the fixed projection returned to the caller.
var statusFields = []string{
	"version",
	"codename",
	"cluster_id",
	"node_id",
	"hostname",
	"is_processing",
	"timezone",
}

// NewGetSystemStatusHandler creates a handler for fetching system status.
func NewGetSystemStatusHandler(client *graylog.Client) func(context.Context, *mcp.CallToolRequest, GetSystemStatusArgs) (*mcp.CallToolResult, any, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, args GetSystemStatusArgs) (*mcp.CallToolResult, any, error) {
		body, err := client.Get(ctx, constants.EndpointSystem, nil)
		if err != nil {
			return envelope.Error(err), nil, nil
		}
		return envelope.Text(shapeSystemStatus(body)), nil, nil
	}
}

func shapeSystemStatus(body []byte) map[string]any {
	root := gjson.ParseBytes(body)
	shaped := make(map[string]any, len(statusFields))
	for _, field := range statusFields {
		shaped[field] = root.Get(field).Value()
	}
	return shaped
}
