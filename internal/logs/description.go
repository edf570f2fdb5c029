package logs

const SearchAbsoluteDescription = `Search Graylog messages within an absolute time window.
The query uses Graylog search syntax and is passed through verbatim.

Use this tool when the user names explicit timestamps, e.g. "errors between
2 and 3 o'clock yesterday". For "last N minutes" style questions use
search_logs_relative instead.

Parameters:
- query: (Required) Graylog search query, e.g. "level:ERROR AND source:api-*"
- from: (Required) Window start, ISO 8601 with a time component, e.g. 2025-01-01T00:00:00Z
- to: (Required) Window end, must be strictly after from
- streamId: (Optional) Restrict the search to a single stream
- limit: (Optional) Maximum messages to return, 1-1000. Defaults to 50.

Returns total_results, the query Graylog actually executed, the echoed time
window, and the matching messages projected to timestamp, message, source
and level.`

const SearchRelativeDescription = `Search Graylog messages within the last N seconds.
The query uses Graylog search syntax and is passed through verbatim.

Use this tool for "what happened recently" questions. The window always ends
at now; for explicit timestamps use search_logs_absolute.

Parameters:
- query: (Required) Graylog search query, e.g. "level:ERROR"
- rangeSeconds: (Optional) Window length in seconds, 1-86400 (24 hours). Defaults to 900 (15 minutes).
- streamId: (Optional) Restrict the search to a single stream
- limit: (Optional) Maximum messages to return, 1-1000. Defaults to 50.

Returns total_results, the query Graylog actually executed, the echoed time
window, and the matching messages projected to timestamp, message, source
and level.`
