package logs

import "github.com/tidwall/gjson"

// shapeSearchResult maps a raw Graylog search response into the stable
// output shape. Raw entries that are null or lack the nested message payload
// are discarded; the remaining entries are projected to four fields in
// source order. timeRange is the caller-supplied echo of the search window.
func shapeSearchResult(body []byte, timeRange any) map[string]any {
	root := gjson.ParseBytes(body)

	messages := make([]map[string]any, 0)
	root.Get("messages").ForEach(func(_, entry gjson.Result) bool {
		payload := entry.Get("message")
		if !payload.Exists() || payload.Type == gjson.Null {
			return true
		}
		messages = append(messages, map[string]any{
			"timestamp": payload.Get("timestamp").Value(),
			"message":   payload.Get("message").Value(),
			"source":    payload.Get("source").Value(),
			"level":     payload.Get("level").Value(),
		})
		return true
	})

	return map[string]any{
		"total_results": root.Get("total_results").Int(),
		"query":         root.Get("built_query").Value(),
		"time_range":    timeRange,
		"messages":      messages,
	}
}
