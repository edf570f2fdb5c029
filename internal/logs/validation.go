package logs

import (
	"fmt"
	"strings"
	"time"

	"github.com/Pranavj17/mcp-server-graylog/internal/constants"
)

// FieldError reports a validation failure on a single tool argument. The
// message names the offending field and the acceptable range or type.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string { return e.Message }

// timestampLayouts are the accepted layouts for search window boundaries.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000",
	"2006-01-02T15:04:05",
}

// parseTimestamp parses a search window boundary. The value must contain a
// literal "T" time separator, so a bare date like "2025-09-29" is rejected
// even though it would parse as a calendar date. Out-of-range calendar
// values (e.g. Feb 30) are rejected rather than normalized.
func parseTimestamp(value string) (time.Time, bool) {
	if strings.TrimSpace(value) == "" {
		return time.Time{}, false
	}
	if !strings.Contains(value, "T") {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsValidTimestamp reports whether value is acceptable as a search boundary.
func IsValidTimestamp(value string) bool {
	_, ok := parseTimestamp(value)
	return ok
}

// AbsoluteSearchParams is a validated absolute-window search request.
type AbsoluteSearchParams struct {
	Query    string
	From     string
	To       string
	StreamID string
	Limit    int
}

// RelativeSearchParams is a validated relative-window search request.
type RelativeSearchParams struct {
	Query        string
	RangeSeconds int
	StreamID     string
	Limit        int
}

func validateAbsoluteSearch(args SearchAbsoluteArgs) (AbsoluteSearchParams, error) {
	var p AbsoluteSearchParams

	if err := validateQuery(args.Query); err != nil {
		return p, err
	}

	from, ok := parseTimestamp(args.From)
	if !ok {
		return p, &FieldError{Field: "from", Message: "from must be a valid timestamp with a time component, e.g. 2025-01-01T00:00:00Z"}
	}
	to, ok := parseTimestamp(args.To)
	if !ok {
		return p, &FieldError{Field: "to", Message: "to must be a valid timestamp with a time component, e.g. 2025-01-02T00:00:00Z"}
	}
	if !from.Before(to) {
		return p, &FieldError{Field: "from", Message: "from must be strictly before to"}
	}

	limit, err := validateLimit(args.Limit)
	if err != nil {
		return p, err
	}

	p.Query = args.Query
	p.From = args.From
	p.To = args.To
	p.StreamID = streamIDOrEmpty(args.StreamID)
	p.Limit = limit
	return p, nil
}

func validateRelativeSearch(args SearchRelativeArgs) (RelativeSearchParams, error) {
	var p RelativeSearchParams

	if err := validateQuery(args.Query); err != nil {
		return p, err
	}

	rangeSeconds, err := validateRangeSeconds(args.RangeSeconds)
	if err != nil {
		return p, err
	}

	limit, err := validateLimit(args.Limit)
	if err != nil {
		return p, err
	}

	p.Query = args.Query
	p.RangeSeconds = rangeSeconds
	p.StreamID = streamIDOrEmpty(args.StreamID)
	p.Limit = limit
	return p, nil
}

func validateQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return &FieldError{Field: "query", Message: "query is required and must be a non-empty string"}
	}
	return nil
}

// validateLimit resolves the message cap. The default applies only when the
// field is absent or null; an explicit 0 is out of range, not a default.
func validateLimit(limit *int) (int, error) {
	if limit == nil {
		return constants.DefaultLimit, nil
	}
	if *limit < 1 || *limit > constants.MaxLimit {
		return 0, &FieldError{Field: "limit", Message: fmt.Sprintf("limit must be between 1 and %d", constants.MaxLimit)}
	}
	return *limit, nil
}

// validateRangeSeconds resolves the relative window length with the same
// absent-or-null default semantics as validateLimit.
func validateRangeSeconds(rangeSeconds *int) (int, error) {
	if rangeSeconds == nil {
		return constants.DefaultRangeSeconds, nil
	}
	if *rangeSeconds < 1 || *rangeSeconds > constants.MaxRangeSeconds {
		return 0, &FieldError{Field: "rangeSeconds", Message: fmt.Sprintf("rangeSeconds must be between 1 and %d", constants.MaxRangeSeconds)}
	}
	return *rangeSeconds, nil
}

func streamIDOrEmpty(streamID *string) string {
	if streamID == nil {
		return ""
	}
	return *streamID
}
