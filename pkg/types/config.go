// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings for outbound requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout. Zero means no client timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "citation-panel/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`
}

// CrossrefConfig holds settings for the CrossRef works client.
type CrossrefConfig struct {
	HTTPConfig `yaml:",inline" mapstructure:",squash"`

	// BaseURL is the API root without the /works suffix
	// (default "https://api.crossref.org").
	BaseURL string `json:"base_url" yaml:"base_url" mapstructure:"base_url"`

	// Mailto is the contact address sent to CrossRef so requests are routed
	// to the polite pool. Empty omits the parameter.
	Mailto string `json:"mailto,omitempty" yaml:"mailto,omitempty" mapstructure:"mailto"`

	// PlusToken is an optional Metadata Plus API token.
	PlusToken string `json:"plus_token,omitempty" yaml:"plus_token,omitempty" mapstructure:"plus_token"`

	// RateLimit is the maximum request rate in requests per second
	// (default 10). Negative disables limiting.
	RateLimit float64 `json:"rate_limit" yaml:"rate_limit" mapstructure:"rate_limit"`

	// Burst is the limiter burst size (default 5).
	Burst int `json:"burst" yaml:"burst" mapstructure:"burst"`

	// MaxRetries bounds retries on HTTP 429 and 503 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}
