// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package crossref fetches work metadata from the CrossRef REST API.
package crossref

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"

	"github.com/pdiddy/citation-panel/internal/httputil"
	"github.com/pdiddy/citation-panel/pkg/types"
)

const (
	DefaultBaseURL   = "https://api.crossref.org"
	DefaultUserAgent = "citation-panel/0.1"

	defaultRateLimit = 10
	defaultBurst     = 5

	// maxBodyBytes bounds a single works response.
	maxBodyBytes = 4 << 20
)

var (
	// ErrNotFound matches a *StatusError for HTTP 404.
	ErrNotFound = errors.New("work not found")

	// ErrMalformed wraps response bodies that cannot be decoded.
	ErrMalformed = errors.New("malformed CrossRef response")
)

// StatusError reports a non-200 response from the API.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("CrossRef API returned HTTP %d", e.Code)
}

// Is lets errors.Is(err, ErrNotFound) match a 404.
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

// Client queries the CrossRef works endpoint. It is safe for concurrent use.
type Client struct {
	http    *http.Client
	cfg     types.CrossrefConfig
	limiter *rate.Limiter
	log     io.Writer
}

// NewClient builds a client from cfg, filling unset fields with defaults.
// Retry progress is written to log; nil discards it.
func NewClient(httpClient *http.Client, cfg types.CrossrefConfig, log io.Writer) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaultBurst
	}
	if log == nil {
		log = io.Discard
	}

	limit := rate.Limit(cfg.RateLimit)
	switch {
	case cfg.RateLimit < 0:
		limit = rate.Inf
	case cfg.RateLimit == 0:
		limit = defaultRateLimit
	}

	return &Client{
		http:    httpClient,
		cfg:     cfg,
		limiter: rate.NewLimiter(limit, cfg.Burst),
		log:     log,
	}
}

// WorkURL returns the works endpoint for doi. The DOI is path-escaped, so
// its "/" travels as %2F.
func (c *Client) WorkURL(doi string) string {
	u := c.cfg.BaseURL + "/works/" + url.PathEscape(doi)
	if c.cfg.Mailto != "" {
		u += "?" + url.Values{"mailto": {c.cfg.Mailto}}.Encode()
	}
	return u
}

func (c *Client) userAgent() string {
	if c.cfg.Mailto == "" {
		return c.cfg.UserAgent
	}
	return fmt.Sprintf("%s (mailto:%s)", c.cfg.UserAgent, c.cfg.Mailto)
}

// Work fetches and decodes the work record for doi, backing off and retrying
// while CrossRef throttles with 429 or 503.
func (c *Client) Work(ctx context.Context, doi string) (*types.Work, error) {
	return c.get(ctx, doi, c.cfg.MaxRetries)
}

// Fetch is Work with a single request: any non-200 status is returned as a
// *StatusError straight away.
func (c *Client) Fetch(ctx context.Context, doi string) (*types.Work, error) {
	return c.get(ctx, doi, httputil.NoRetry)
}

func (c *Client) get(ctx context.Context, doi string, maxRetries int) (*types.Work, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("waiting for rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.WorkURL(doi), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent())
	req.Header.Set("Accept", "application/json")
	if c.cfg.PlusToken != "" {
		req.Header.Set("Crossref-Plus-API-Token", "Bearer "+c.cfg.PlusToken)
	}

	resp, err := httputil.DoWithRetry(ctx, c.http, req, maxRetries, c.log)
	if err != nil {
		return nil, fmt.Errorf("CrossRef API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var wr worksResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&wr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if wr.Message == nil {
		return nil, fmt.Errorf("%w: no message object", ErrMalformed)
	}

	w := wr.Message.toWork()
	if w.DOI == "" {
		w.DOI = doi
	}
	return w, nil
}

// Validate checks that doi resolves to a CrossRef work with a title.
func (c *Client) Validate(ctx context.Context, doi string) error {
	w, err := c.Work(ctx, doi)
	if err != nil {
		return fmt.Errorf("invalid DOI %q: %w", doi, err)
	}
	if w.Title == "" {
		return fmt.Errorf("invalid DOI %q: work has no title", doi)
	}
	return nil
}
