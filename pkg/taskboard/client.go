package taskboard

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is an HTTP client for the taskboard API.
//
// A Client holds one session: the cookie set at construction or by a
// successful Login or Signup is sent with every later request. It is safe for
// concurrent use; callers that need different identities use separate
// clients.
type Client struct {
	baseURL   string
	userAgent string
	session   *session
	observer  Observer
}

// NewClient creates a new taskboard API client for baseURL.
//
// Optional options:
//   - WithAuthorizationCookie: pre-seeds the session cookie
//   - WithTimeout: sets the per-request timeout (default: 30s)
//   - WithHTTPClient: sets the underlying HTTP client
//   - WithUserAgent: sets the User-Agent header
//   - WithObserver: installs a diagnostics hook
//
// No network activity happens here.
//
// Example:
//
//	client, err := taskboard.NewClient("https://tasks.example.com",
//	    taskboard.WithAuthorizationCookie(token),
//	)
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	if cfg.cookieName == "" {
		return nil, fmt.Errorf("cookie name cannot be empty")
	}
	if cfg.timeout < 0 {
		return nil, fmt.Errorf("timeout cannot be negative: %v", cfg.timeout)
	}

	s, err := newSession(base, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		baseURL:   strings.TrimSuffix(base.String(), "/"),
		userAgent: cfg.userAgent,
		session:   s,
		observer:  cfg.observer,
	}, nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	if raw == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", raw, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("invalid base URL %q: scheme must be http or https", raw)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("invalid base URL %q: missing host", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}

// BaseURL returns the base address requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SessionCookie returns the current session cookie value, if any. After a
// successful Login it holds the cookie issued by the server.
func (c *Client) SessionCookie() (string, bool) {
	return c.session.cookie()
}

// Health checks if the server is reachable and healthy.
func (c *Client) Health(ctx context.Context) error {
	start := time.Now()
	status, _, apiErr := c.roundTrip(ctx, http.MethodGet, "/health", nil, nil)
	c.observe(ctx, RequestEvent{
		Method:     http.MethodGet,
		Path:       "/health",
		StatusCode: status,
		Duration:   time.Since(start),
		Err:        errorOrNil(apiErr),
	})
	if apiErr != nil {
		return apiErr
	}
	return nil
}
