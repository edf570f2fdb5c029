// Package graylog is the HTTP client for the Graylog REST API. It issues
// single bounded-timeout GET requests and normalizes every failure into a
// human-actionable message.
package graylog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/Pranavj17/mcp-server-graylog/internal/constants"
	"github.com/Pranavj17/mcp-server-graylog/internal/models"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"
)

// Client talks to a single Graylog instance. It is safe for concurrent use.
type Client struct {
	http    *http.Client
	baseURL string
	token   string
	limiter *rate.Limiter
}

// New creates a Client using the provided HTTP client and configuration.
// The HTTP client is expected to carry the request timeout.
func New(httpClient *http.Client, cfg models.Config) *Client {
	var limiter *rate.Limiter
	if cfg.RequestRateLimit > 0 {
		burst := cfg.RequestRateBurst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestRateLimit), burst)
	}

	return &Client{
		http:    httpClient,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		token:   cfg.APIToken,
		limiter: limiter,
	}
}

// BaseURL returns the configured Graylog base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a single GET to the given endpoint path with the query string
// and returns the raw response body. Graylog authenticates API tokens via
// HTTP Basic with the token as username and the literal "token" as password.
// No retries are performed; a failed call is a single reported failure.
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	req.URL.RawQuery = query.Encode()

	req.SetBasicAuth(c.token, constants.BasicAuthPassword)
	req.Header.Set(constants.HeaderAccept, constants.HeaderAcceptJSON)
	req.Header.Set(constants.HeaderUserAgent, constants.UserAgentGraylogMCP)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("cannot reach Graylog at %s: %v. Check GRAYLOG_URL and network connectivity", c.baseURL, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, normalizeStatusError(resp.StatusCode, body)
	}

	return body, nil
}

// normalizeStatusError converts a non-2xx Graylog response into a message
// that names the remediation step. Server-supplied messages are included
// where they help; credential values never appear.
func normalizeStatusError(status int, body []byte) error {
	msg := gjson.GetBytes(body, "message").String()

	switch status {
	case http.StatusUnauthorized:
		return errors.New("authentication failed: check the Graylog API token")
	case http.StatusBadRequest:
		if msg == "" {
			msg = "check the query syntax"
		}
		return fmt.Errorf("invalid query: %s", msg)
	case http.StatusNotFound:
		return errors.New("endpoint not found: check the Graylog base URL")
	case http.StatusInternalServerError:
		if msg == "" {
			msg = http.StatusText(status)
		}
		return fmt.Errorf("Graylog server error: %s", msg)
	default:
		if msg == "" {
			msg = http.StatusText(status)
		}
		return fmt.Errorf("Graylog API error (%d): %s", status, msg)
	}
}
