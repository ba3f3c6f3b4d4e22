package middleware_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/taskboard/taskboard/internal/api/middleware"
	"github.com/taskboard/taskboard/internal/api/response"
	"github.com/taskboard/taskboard/internal/domain"
)

func TestRecovery_PanicReturns500(t *testing.T) {
	panicHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("something went wrong!")
	})

	handler := middleware.Recovery(panicHandler)

	req := httptest.NewRequest("GET", "/test", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("expected status 500, got %d", rr.Code)
	}

	var resp response.ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Error.Code != "INTERNAL_ERROR" {
		t.Errorf("expected code 'INTERNAL_ERROR', got %q", resp.Error.Code)
	}
}

type fakeAuth map[string]*domain.User

func (f fakeAuth) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if user, ok := f[token]; ok {
		return user, nil
	}
	return nil, domain.NewUnauthorizedError()
}

func TestSession_ValidCookie(t *testing.T) {
	auth := fakeAuth{"good": {ID: "u1", Username: "alice"}}

	var got *domain.User
	handler := middleware.Session(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = middleware.GetUser(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("GET", "/projects", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "good"})
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rr.Code)
	}
	if got == nil || got.Username != "alice" {
		t.Errorf("expected alice in context, got %+v", got)
	}
}

func TestSession_Rejects(t *testing.T) {
	auth := fakeAuth{"good": {ID: "u1", Username: "alice"}}
	handler := middleware.Session(auth)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("handler should not be reached")
	}))

	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"no cookie", nil},
		{"empty cookie", &http.Cookie{Name: middleware.SessionCookie, Value: ""}},
		{"unknown token", &http.Cookie{Name: middleware.SessionCookie, Value: "bad"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/projects", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			if rr.Code != http.StatusUnauthorized {
				t.Errorf("expected status 401, got %d", rr.Code)
			}
			var resp response.ErrorResponse
			json.NewDecoder(rr.Body).Decode(&resp)
			if resp.Error.Code != "UNAUTHORIZED" {
				t.Errorf("expected UNAUTHORIZED, got %q", resp.Error.Code)
			}
		})
	}
}

func TestGetUser_Empty(t *testing.T) {
	if user := middleware.GetUser(context.Background()); user != nil {
		t.Errorf("expected nil user, got %+v", user)
	}
}

func TestRateLimiter_Allow(t *testing.T) {
	limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 2})

	if !limiter.Allow("10.0.0.1") || !limiter.Allow("10.0.0.1") {
		t.Fatal("expected burst of 2 to be allowed")
	}
	if limiter.Allow("10.0.0.1") {
		t.Error("expected third request to be limited")
	}
	if !limiter.Allow("10.0.0.2") {
		t.Error("expected other client to be allowed")
	}
}

func TestRateLimiter_Handler(t *testing.T) {
	limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{RequestsPerSecond: 0.001, Burst: 1})
	handler := limiter.Handler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	codes := make([]int, 2)
	for i := range codes {
		req := httptest.NewRequest("POST", "/users/login", nil)
		req.RemoteAddr = "192.0.2.1:1234"
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		codes[i] = rr.Code
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests {
		t.Errorf("expected [200 429], got %v", codes)
	}
}

func TestRateLimiter_DisabledPassesThrough(t *testing.T) {
	limiter := middleware.NewRateLimiter(middleware.RateLimitConfig{})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := limiter.Handler(next)

	for i := 0; i < 5; i++ {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest("POST", "/users/login", nil))
		if rr.Code != http.StatusNoContent {
			t.Fatalf("request %d: expected 204, got %d", i, rr.Code)
		}
	}
}

func TestLogging_PassesStatus(t *testing.T) {
	handler := middleware.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("GET", "/health", nil))

	if rr.Code != http.StatusTeapot {
		t.Errorf("expected status 418, got %d", rr.Code)
	}
	if rr.Body.String() != "short and stout" {
		t.Errorf("unexpected body %q", rr.Body.String())
	}
}
