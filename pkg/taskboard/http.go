package taskboard

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"
)

// session owns the cookie jar and the HTTP client bound to it. Cookies set by
// the server are stored in the jar and re-sent on later requests.
type session struct {
	http       *http.Client
	jar        http.CookieJar
	cookieName string
	baseURL    *url.URL
}

// newSession creates a session for baseURL, seeding the jar with the
// configured authorization cookie.
func newSession(baseURL *url.URL, cfg *clientConfig) (*session, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	hc := &http.Client{}
	if cfg.httpClient != nil {
		copied := *cfg.httpClient
		hc = &copied
	}
	hc.Jar = jar
	hc.Timeout = cfg.timeout

	s := &session{
		http:       hc,
		jar:        jar,
		cookieName: cfg.cookieName,
		baseURL:    baseURL,
	}
	if cfg.authorizationCookie != "" {
		s.seed(cfg.authorizationCookie)
	}
	return s, nil
}

// seed stores the session cookie for the base URL. A value already in
// "name=value" form for the session cookie is accepted as well.
func (s *session) seed(token string) {
	value := strings.TrimPrefix(token, s.cookieName+"=")
	s.jar.SetCookies(s.baseURL, []*http.Cookie{{
		Name:  s.cookieName,
		Value: value,
		Path:  "/",
	}})
}

// cookie returns the current session cookie value.
func (s *session) cookie() (string, bool) {
	for _, c := range s.jar.Cookies(s.baseURL) {
		if c.Name == s.cookieName {
			return c.Value, true
		}
	}
	return "", false
}

func (s *session) do(req *http.Request) (*http.Response, error) {
	return s.http.Do(req)
}

// newRequest creates a new HTTP request with common headers. A non-nil body
// is encoded as JSON.
func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body interface{}) (*http.Request, error) {
	reqURL := c.baseURL + path
	if encoded := query.Encode(); encoded != "" {
		reqURL = reqURL + "?" + encoded
	}

	var reader io.Reader
	if body != nil {
		var buf bytes.Buffer
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = &buf
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	return req, nil
}

// roundTrip issues one request and returns the status and raw body of a 2xx
// response. Every failure comes back normalized.
func (c *Client) roundTrip(ctx context.Context, method, path string, query url.Values, body interface{}) (int, []byte, *Error) {
	req, err := c.newRequest(ctx, method, path, query, body)
	if err != nil {
		return 0, nil, newTransportError(err)
	}

	resp, err := c.session.do(req)
	if err != nil {
		return 0, nil, newTransportError(err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, newTransportError(fmt.Errorf("failed to read response: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return resp.StatusCode, nil, newApplicationError(resp.StatusCode, payload)
	}

	return resp.StatusCode, payload, nil
}

// call performs one request and extracts field from the JSON response body.
func call[T any](ctx context.Context, c *Client, method, path string, query url.Values, body interface{}, field string) (T, error) {
	var zero T
	start := time.Now()

	status, payload, apiErr := c.roundTrip(ctx, method, path, query, body)
	var value T
	if apiErr == nil {
		var err error
		if value, err = extractField[T](payload, field); err != nil {
			apiErr = newUnexpectedResponseError(status, field, err)
		}
	}

	c.observe(ctx, RequestEvent{
		Method:     method,
		Path:       path,
		StatusCode: status,
		Duration:   time.Since(start),
		Err:        errorOrNil(apiErr),
	})

	if apiErr != nil {
		return zero, apiErr
	}
	return value, nil
}

// extractField decodes the named top-level field of a JSON object. A missing
// or null field is an error.
func extractField[T any](payload []byte, field string) (T, error) {
	var value T

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return value, fmt.Errorf("response body is not a JSON object: %w", err)
	}

	raw, ok := envelope[field]
	if !ok || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return value, errors.New("field not present")
	}

	if bytes.Contains(raw, []byte(`"_id"`)) {
		normalized, err := normalizeIDs(raw)
		if err != nil {
			return value, err
		}
		raw = normalized
	}

	if err := json.Unmarshal(raw, &value); err != nil {
		return value, fmt.Errorf("failed to decode %s: %w", field, err)
	}
	return value, nil
}

func (c *Client) observe(ctx context.Context, ev RequestEvent) {
	if c.observer != nil {
		c.observer.ObserveRequest(ctx, ev)
	}
}

// errorOrNil avoids storing a typed nil *Error in an error interface.
func errorOrNil(e *Error) error {
	if e == nil {
		return nil
	}
	return e
}

// pathf joins a path template with escaped ids.
func pathf(format string, ids ...string) string {
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = url.PathEscape(id)
	}
	return fmt.Sprintf(format, args...)
}
