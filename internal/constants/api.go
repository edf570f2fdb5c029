package constants

import "time"

// API Endpoints
const (
	// Search API endpoints
	EndpointSearchAbsolute = "/api/search/universal/absolute"
	EndpointSearchRelative = "/api/search/universal/relative"

	// Stream and system endpoints
	EndpointStreams = "/api/streams"
	EndpointSystem  = "/api/system"
)

// HTTP Headers
const (
	HeaderAccept        = "Accept"
	HeaderUserAgent     = "User-Agent"
	HeaderAcceptJSON    = "application/json"
	UserAgentGraylogMCP = "Graylog-MCP-Server/1.0"
)

// BasicAuthPassword is the fixed password Graylog expects when the API
// token is used as the Basic auth username.
const BasicAuthPassword = "token"

// Request limits and defaults
const (
	DefaultLimit = 50
	MaxLimit     = 1000

	DefaultRangeSeconds = 900
	MaxRangeSeconds     = 86400

	RequestTimeout = 30 * time.Second
)
