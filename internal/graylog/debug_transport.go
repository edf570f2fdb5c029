package graylog

import (
	"log"
	"net/http"
)

// DebugTransport wraps an http.RoundTripper and logs the request method and
// URL. The query string may contain user search terms but never credentials,
// which travel in the Authorization header.
type DebugTransport struct {
	Transport http.RoundTripper
}

// RoundTrip implements http.RoundTripper interface
func (d *DebugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	log.Printf("[DEBUG] %s %s", req.Method, req.URL.String())
	return d.Transport.RoundTrip(req)
}

// WrapClientWithDebug wraps an http.Client with debug logging if debug is enabled
func WrapClientWithDebug(client *http.Client, debug bool) *http.Client {
	if !debug {
		return client
	}

	transport := client.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	return &http.Client{
		Transport: &DebugTransport{Transport: transport},
		Timeout:   client.Timeout,
	}
}
