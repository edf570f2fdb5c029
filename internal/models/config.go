package models

// Config holds the server configuration parameters
type Config struct {
	// Graylog connection settings
	APIToken string // API token for HTTP Basic authentication
	BaseURL  string // Graylog base URL, e.g. https://graylog.example.com

	// HTTP transport settings (used when running in --http mode)
	Host     string
	Port     string
	HTTPMode bool

	// Debug enables outbound request logging
	Debug bool

	// Rate limiting configuration
	RequestRateLimit float64 // Maximum requests per second
	RequestRateBurst int     // Maximum burst capacity for requests
}
