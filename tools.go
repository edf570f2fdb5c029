package main

import (
	"net/http"

	"github.com/Pranavj17/mcp-server-graylog/internal/constants"
	"github.com/Pranavj17/mcp-server-graylog/internal/graylog"
	"github.com/Pranavj17/mcp-server-graylog/internal/logs"
	"github.com/Pranavj17/mcp-server-graylog/internal/models"
	"github.com/Pranavj17/mcp-server-graylog/internal/streams"
	"github.com/Pranavj17/mcp-server-graylog/internal/system"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// registerAllTools registers the four Graylog tools with the MCP server.
// All tools share one rate-limited HTTP client.
func registerAllTools(server *mcp.Server, cfg models.Config) {
	httpClient := graylog.WrapClientWithDebug(&http.Client{
		Timeout: constants.RequestTimeout,
	}, cfg.Debug)
	client := graylog.New(httpClient, cfg)

	// Register absolute-window search tool
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_logs_absolute",
		Description: logs.SearchAbsoluteDescription,
	}, logs.NewSearchAbsoluteHandler(client))

	// Register relative-window search tool
	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_logs_relative",
		Description: logs.SearchRelativeDescription,
	}, logs.NewSearchRelativeHandler(client))

	// Register stream discovery tool
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_streams",
		Description: streams.ListStreamsDescription,
	}, streams.NewListStreamsHandler(client))

	// Register system status tool
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_system_status",
		Description: system.GetSystemStatusDescription,
	}, system.NewGetSystemStatusHandler(client))
}
