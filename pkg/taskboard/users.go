package taskboard

import (
	"context"
	"net/http"
)

// Signup creates an account. On success the server sets the session cookie
// and the client is authenticated as the new user.
func (c *Client) Signup(ctx context.Context, username, password, email string) (*User, error) {
	body := signupRequest{
		Username: username,
		Password: password,
		Email:    email,
	}
	return call[*User](ctx, c, http.MethodPost, "/users/signup", nil, body, "user")
}

// Login authenticates the client. The session cookie from the response is
// kept for every later request.
func (c *Client) Login(ctx context.Context, username, password string) (*User, error) {
	body := loginRequest{
		Username: username,
		Password: password,
	}
	return call[*User](ctx, c, http.MethodPost, "/users/login", nil, body, "user")
}

// GetUsers looks up users by id.
func (c *Client) GetUsers(ctx context.Context, userIDs []string) ([]User, error) {
	if userIDs == nil {
		userIDs = []string{}
	}
	return call[[]User](ctx, c, http.MethodPost, "/users", nil, getUsersRequest{UserIDs: userIDs}, "users")
}
