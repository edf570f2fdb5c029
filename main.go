// An MCP server implementation for Graylog that enables AI agents
// to search logs, discover streams and check system health
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/Pranavj17/mcp-server-graylog/internal/models"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/peterbourgon/ff/v3"
)

func main() {
	cfg, err := setupConfig(os.Args[1:])
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "mcp-server-graylog",
		Version: Version,
	}, nil)

	registerAllTools(server, cfg)
	registerAllPrompts(server)

	if cfg.HTTPMode {
		if err := NewHTTPServer(server, cfg).Start(); err != nil {
			log.Fatalf("http server: %v", err)
		}
		return
	}

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// Version information
var (
	Version   = "dev"     // Set by goreleaser
	CommitSHA = "unknown" // Set by goreleaser
	BuildTime = "unknown" // Set by goreleaser
)

// setupConfig initializes and parses the configuration
func setupConfig(args []string) (models.Config, error) {
	fs := flag.NewFlagSet("mcp-server-graylog", flag.ContinueOnError)

	var cfg models.Config
	fs.StringVar(&cfg.BaseURL, "url", os.Getenv("GRAYLOG_URL"), "Graylog base URL")
	fs.StringVar(&cfg.APIToken, "api-token", os.Getenv("GRAYLOG_API_TOKEN"), "Graylog API token")
	fs.StringVar(&cfg.Host, "host", "localhost", "listen host for HTTP mode")
	fs.StringVar(&cfg.Port, "port", "8080", "listen port for HTTP mode")
	fs.BoolVar(&cfg.HTTPMode, "http", false, "serve MCP over HTTP instead of stdio")
	fs.BoolVar(&cfg.Debug, "debug", false, "log outbound Graylog requests")
	fs.Float64Var(&cfg.RequestRateLimit, "rate", 1, "requests per second limit")
	fs.IntVar(&cfg.RequestRateBurst, "burst", 1, "request burst capacity")

	var configFile string
	fs.StringVar(&configFile, "config", "", "config file path")

	err := ff.Parse(fs, args,
		ff.WithEnvVarPrefix("GRAYLOG"),
		ff.WithConfigFileFlag("config"),
		ff.WithConfigFileParser(ff.PlainParser),
	)
	if err != nil {
		return cfg, fmt.Errorf("failed to parse configuration: %w", err)
	}

	var missing []string
	if cfg.BaseURL == "" {
		missing = append(missing, "GRAYLOG_URL")
	}
	if cfg.APIToken == "" {
		missing = append(missing, "GRAYLOG_API_TOKEN")
	}
	if len(missing) > 0 {
		return cfg, errors.New("missing required configuration: " + strings.Join(missing, ", "))
	}

	return cfg, nil
}
