package taskboard

import (
	"net/http"
	"time"
)

// DefaultCookieName is the name of the session cookie set by the server.
const DefaultCookieName = "Authorization"

// ClientOption configures a Client.
type ClientOption func(*clientConfig)

// clientConfig holds the configuration for a Client.
type clientConfig struct {
	authorizationCookie string
	cookieName          string
	timeout             time.Duration
	httpClient          *http.Client
	userAgent           string
	observer            Observer
}

// defaultConfig returns the default client configuration.
func defaultConfig() *clientConfig {
	return &clientConfig{
		cookieName: DefaultCookieName,
		timeout:    30 * time.Second,
		userAgent:  "taskboard-go",
	}
}

// WithAuthorizationCookie pre-seeds the session with a cookie value so every
// request made by the client is authenticated as that session.
func WithAuthorizationCookie(token string) ClientOption {
	return func(c *clientConfig) {
		c.authorizationCookie = token
	}
}

// WithCookieName overrides the session cookie name.
func WithCookieName(name string) ClientOption {
	return func(c *clientConfig) {
		c.cookieName = name
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithHTTPClient sets the underlying HTTP client. The client is copied; its
// Jar and Timeout are replaced by the session's.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *clientConfig) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// WithObserver installs a diagnostics hook that is told about every request.
func WithObserver(o Observer) ClientOption {
	return func(c *clientConfig) {
		c.observer = o
	}
}

// CreateTaskOption configures a CreateTask call.
type CreateTaskOption func(*createTaskRequest)

// WithDueDate sets the due date of the new task.
func WithDueDate(due time.Time) CreateTaskOption {
	return func(r *createTaskRequest) {
		r.DueDate = &due
	}
}

// WithAssignee sets the user id the new task is assigned to.
func WithAssignee(userID string) CreateTaskOption {
	return func(r *createTaskRequest) {
		r.Assignee = &userID
	}
}
