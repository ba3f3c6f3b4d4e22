package handler

import (
	"net/http"

	"github.com/taskboard/taskboard/internal/api/middleware"
	"github.com/taskboard/taskboard/internal/api/request"
	"github.com/taskboard/taskboard/internal/api/response"
	"github.com/taskboard/taskboard/internal/domain"
	"github.com/taskboard/taskboard/internal/service"
)

// AuthHandler handles accounts and sessions.
type AuthHandler struct {
	svc          *service.AuthService
	secureCookie bool
}

// NewAuthHandler creates a new AuthHandler. secureCookie marks the session
// cookie Secure, for servers behind TLS.
func NewAuthHandler(svc *service.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{svc: svc, secureCookie: secureCookie}
}

// Signup handles POST /users/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest
	if !decode(w, r, &req) {
		return
	}

	session, err := h.svc.Signup(r.Context(), service.SignupInput{
		Username: req.Username,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		response.Error(w, err)
		return
	}

	h.setCookie(w, session)
	response.Created(w, response.Envelope{"user": session.User})
}

// Login handles POST /users/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if !decode(w, r, &req) {
		return
	}
	if errors := req.Validate(); len(errors) > 0 {
		response.Error(w, domain.NewValidationError(errors))
		return
	}

	session, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(w, err)
		return
	}

	h.setCookie(w, session)
	response.OK(w, response.Envelope{"user": session.User})
}

// GetUsers handles POST /users.
func (h *AuthHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	var req request.GetUsersRequest
	if !decode(w, r, &req) {
		return
	}

	users, err := h.svc.GetUsers(r.Context(), req.UserIDs)
	if err != nil {
		response.Error(w, err)
		return
	}
	if users == nil {
		users = []*domain.User{}
	}

	response.OK(w, response.Envelope{"users": users})
}

func (h *AuthHandler) setCookie(w http.ResponseWriter, session *service.Session) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
}
