package middleware

import (
	"context"
	"net/http"

	"github.com/taskboard/taskboard/internal/api/response"
	"github.com/taskboard/taskboard/internal/domain"
)

type contextKey string

const (
	// UserKey is the context key for the authenticated user.
	UserKey contextKey = "user"
	// SessionCookie is the name of the cookie carrying the session token.
	SessionCookie = "Authorization"

	userHolderKey contextKey = "userHolder"
)

// Authenticator resolves a session token to its user.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*domain.User, error)
}

// userHolder lets Logging see the user resolved further down the chain.
type userHolder struct {
	username string
}

func withUserHolder(ctx context.Context, h *userHolder) context.Context {
	return context.WithValue(ctx, userHolderKey, h)
}

// Session middleware requires a valid session cookie and adds the user to
// context. Requests without one are rejected with 401.
func Session(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookie)
			if err != nil || cookie.Value == "" {
				response.Error(w, domain.NewUnauthorizedError())
				return
			}

			user, err := auth.Authenticate(r.Context(), cookie.Value)
			if err != nil {
				response.Error(w, err)
				return
			}

			if h, ok := r.Context().Value(userHolderKey).(*userHolder); ok {
				h.username = user.Username
			}
			ctx := context.WithValue(r.Context(), UserKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUser retrieves the authenticated user from context.
func GetUser(ctx context.Context) *domain.User {
	if user, ok := ctx.Value(UserKey).(*domain.User); ok {
		return user
	}
	return nil
}
