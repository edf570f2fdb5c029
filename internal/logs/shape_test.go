package logs

import (
	"testing"
)

func TestShapeSearchResultDiscardsMalformedEntries(t *testing.T) {
	body := []byte(`{
		"total_results": 4,
		"built_query": "{\"query\":\"*\"}",
		"messages": [
			null,
			{"index": "graylog_0"},
			{"message": null},
			{"message": {"timestamp": "2025-01-01T00:00:01.000Z", "message": "db timeout", "source": "api-1", "level": 3}}
		]
	}`)

	shaped := shapeSearchResult(body, "last 900 seconds")

	messages, ok := shaped["messages"].([]map[string]any)
	if !ok {
		t.Fatalf("messages has type %T", shaped["messages"])
	}
	if len(messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(messages))
	}

	got := messages[0]
	if got["timestamp"] != "2025-01-01T00:00:01.000Z" {
		t.Errorf("timestamp = %v", got["timestamp"])
	}
	if got["message"] != "db timeout" {
		t.Errorf("message = %v", got["message"])
	}
	if got["source"] != "api-1" {
		t.Errorf("source = %v", got["source"])
	}
	if got["level"] != float64(3) {
		t.Errorf("level = %v (%T)", got["level"], got["level"])
	}

	if shaped["total_results"] != int64(4) {
		t.Errorf("total_results = %v", shaped["total_results"])
	}
	if shaped["query"] != `{"query":"*"}` {
		t.Errorf("query = %v", shaped["query"])
	}
	if shaped["time_range"] != "last 900 seconds" {
		t.Errorf("time_range = %v", shaped["time_range"])
	}
}

func TestShapeSearchResultPreservesSourceOrder(t *testing.T) {
	body := []byte(`{
		"messages": [
			{"message": {"timestamp": "t2", "message": "second", "source": "b", "level": 4}},
			{"message": {"timestamp": "t1", "message": "first", "source": "a", "level": 3}}
		]
	}`)

	shaped := shapeSearchResult(body, nil)
	messages := shaped["messages"].([]map[string]any)
	if len(messages) != 2 {
		t.Fatalf("got %d messages, want 2", len(messages))
	}
	if messages[0]["message"] != "second" || messages[1]["message"] != "first" {
		t.Errorf("order not preserved: %v", messages)
	}
}

func TestShapeSearchResultEmptyBody(t *testing.T) {
	shaped := shapeSearchResult([]byte(`{}`), map[string]any{"from": "a", "to": "b"})

	if shaped["total_results"] != int64(0) {
		t.Errorf("total_results = %v, want 0 when absent", shaped["total_results"])
	}
	messages := shaped["messages"].([]map[string]any)
	if len(messages) != 0 {
		t.Errorf("got %d messages, want 0", len(messages))
	}
}
