package streams

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/Pranavj17/mcp-server-graylog/internal/graylog"
	"github.com/Pranavj17/mcp-server-graylog/internal/testutil"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func TestShapeStreams(t *testing.T) {
	body := []byte(`{
		"total": 4,
		"streams": [
			{"id": "s-default", "title": "Default Stream", "description": "Contains all messages", "disabled": false, "is_default": true},
			{"id": "s-billing", "title": "billing", "description": "Billing service logs", "disabled": false, "is_default": false},
			{"id": "s-api", "title": "api", "disabled": true, "is_default": false},
			{"id": "s-auth", "title": "Auth", "description": "", "disabled": false}
		]
	}`)

	shaped := shapeStreams(body)

	if shaped["total"] != 3 {
		t.Errorf("total = %v, want 3 after excluding the default stream", shaped["total"])
	}

	streams := shaped["streams"].([]map[string]any)
	if len(streams) != 3 {
		t.Fatalf("got %d streams, want 3", len(streams))
	}

	// Locale-aware ascending title order: api, Auth, billing.
	wantOrder := []string{"api", "Auth", "billing"}
	for i, want := range wantOrder {
		if streams[i]["title"] != want {
			t.Errorf("streams[%d].title = %v, want %q", i, streams[i]["title"], want)
		}
	}

	for _, s := range streams {
		if s["id"] == "s-default" {
			t.Error("default stream was not excluded")
		}
	}

	// Missing description projects as empty string.
	for _, s := range streams {
		if s["id"] == "s-api" && s["description"] != "" {
			t.Errorf("description = %v, want empty string when absent", s["description"])
		}
	}
}

func TestShapeStreamsEmptyBody(t *testing.T) {
	shaped := shapeStreams([]byte(`{}`))
	if shaped["total"] != 0 {
		t.Errorf("total = %v, want 0", shaped["total"])
	}
	if streams := shaped["streams"].([]map[string]any); len(streams) != 0 {
		t.Errorf("streams = %v, want empty", streams)
	}
}

func TestListStreamsHandler(t *testing.T) {
	mock := testutil.NewMockGraylog()
	defer mock.Close()

	client := graylog.New(&http.Client{Timeout: 5 * time.Second}, testutil.MockConfig(mock.URL))
	handler := NewListStreamsHandler(client)

	result, _, err := handler(context.Background(), &mcp.CallToolRequest{}, ListStreamsArgs{})
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if result.IsError {
		t.Fatal("unexpected error result")
	}
	if !strings.HasSuffix(mock.LastPath, "/api/streams") {
		t.Errorf("path = %q", mock.LastPath)
	}

	text, ok := result.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", result.Content[0])
	}

	var shaped map[string]any
	if err := json.Unmarshal([]byte(text.Text), &shaped); err != nil {
		t.Fatalf("result is not JSON: %v", err)
	}
	if shaped["total"] != float64(2) {
		t.Errorf("total = %v, want 2 non-default streams", shaped["total"])
	}
	streams := shaped["streams"].([]any)
	first := streams[0].(map[string]any)
	if first["title"] != "api" {
		t.Errorf("first stream = %v, want api (sorted by title)", first["title"])
	}
}
