// Package testutil provides a mock Graylog API server and configuration
// helpers shared by the package tests.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/Pranavj17/mcp-server-graylog/internal/models"
)

// MockConfig creates a configuration for testing against the given base URL
// without requiring a real token.
func MockConfig(baseURL string) models.Config {
	return models.Config{
		BaseURL:          baseURL,
		APIToken:         "mock-api-token",
		RequestRateLimit: 100,
		RequestRateBurst: 10,
	}
}

// Canned Graylog responses. The search body includes degenerate entries
// (null entry, entry without a message payload, null payload) so shaping
// behavior is exercised end to end.
const (
	SearchResponse = `{
		"query": "level:3",
		"built_query": "{\"query\":{\"query_string\":{\"query\":\"level:3\"}}}",
		"total_results": 2,
		"messages": [
			null,
			{"index": "graylog_0"},
			{"message": null},
			{"message": {"timestamp": "2025-01-01T00:00:01.000Z", "message": "db timeout", "source": "api-1", "level": 3}},
			{"message": {"timestamp": "2025-01-01T00:00:02.000Z", "message": "retry scheduled", "source": "api-2", "level": 4}}
		]
	}`

	StreamsResponse = `{
		"total": 3,
		"streams": [
			{"id": "000000000000000000000001", "title": "Default Stream", "description": "Contains all messages", "disabled": false, "is_default": true},
			{"id": "66aa0000000000000000b001", "title": "billing", "description": "Billing service logs", "disabled": false, "is_default": false},
			{"id": "66aa0000000000000000a001", "title": "api", "disabled": true, "is_default": false}
		]
	}`

	SystemResponse = `{
		"facility": "graylog-server",
		"codename": "Noir",
		"node_id": "2a9e0000-0000-0000-0000-00000000n001",
		"cluster_id": "5c0e0000-0000-0000-0000-00000000c001",
		"version": "6.1.4+87b297e",
		"started_at": "2025-01-01T00:00:00.000Z",
		"hostname": "graylog-01",
		"lifecycle": "running",
		"lb_status": "alive",
		"timezone": "UTC",
		"operating_system": "Linux 6.8.0",
		"is_processing": true
	}`
)

// MockGraylog simulates the subset of the Graylog REST API the tools use.
type MockGraylog struct {
	*httptest.Server
	RequestCount int
	LastPath     string
	LastQuery    url.Values
	LastAuthUser string
	LastAuthPass string
}

// NewMockGraylog creates a mock server that answers the search, streams and
// system endpoints with canned data and records the last request it saw.
func NewMockGraylog() *MockGraylog {
	mock := &MockGraylog{}

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.RequestCount++
		mock.LastPath = r.URL.Path
		mock.LastQuery = r.URL.Query()
		mock.LastAuthUser, mock.LastAuthPass, _ = r.BasicAuth()

		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.Contains(r.URL.Path, "/search/universal/"):
			w.Write([]byte(SearchResponse))
		case strings.Contains(r.URL.Path, "/streams"):
			w.Write([]byte(StreamsResponse))
		case strings.Contains(r.URL.Path, "/system"):
			w.Write([]byte(SystemResponse))
		default:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message":"no such endpoint"}`))
		}
	})

	mock.Server = httptest.NewServer(handler)
	return mock
}
