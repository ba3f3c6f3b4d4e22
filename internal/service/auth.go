package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/taskboard/taskboard/internal/domain"
	"github.com/taskboard/taskboard/internal/store"
	"github.com/taskboard/taskboard/internal/store/sqlite"
	"github.com/taskboard/taskboard/pkg/idgen"
)

// DefaultSessionTTL is how long an issued session token stays valid.
const DefaultSessionTTL = 7 * 24 * time.Hour

// AuthConfig configures session issuing.
type AuthConfig struct {
	// Secret signs session tokens. A random secret is generated when empty,
	// which invalidates sessions on restart.
	Secret []byte
	// TTL defaults to DefaultSessionTTL.
	TTL time.Duration
	// BcryptCost defaults to bcrypt.DefaultCost.
	BcryptCost int
}

// Session is an authenticated user with a signed token.
type Session struct {
	User      *domain.User
	Token     string
	ExpiresAt time.Time
}

// AuthService handles accounts and session tokens.
type AuthService struct {
	store  *store.Store
	secret []byte
	ttl    time.Duration
	cost   int
}

// NewAuthService creates a new AuthService.
func NewAuthService(st *store.Store, cfg AuthConfig) (*AuthService, error) {
	secret := cfg.Secret
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := rand.Read(secret); err != nil {
			return nil, fmt.Errorf("failed to generate session secret: %w", err)
		}
	}

	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	cost := cfg.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &AuthService{
		store:  st,
		secret: secret,
		ttl:    ttl,
		cost:   cost,
	}, nil
}

// SignupInput contains the input for creating an account.
type SignupInput struct {
	Username string
	Password string
	Email    string
}

// Signup creates an account and opens a session for it.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*Session, error) {
	if errs := domain.ValidateSignup(input.Username, input.Password, input.Email); len(errs) > 0 {
		return nil, domain.NewValidationError(errs)
	}

	users := sqlite.NewUserRepository(s.store.DB())
	taken, err := users.ExistsUsername(ctx, input.Username)
	if err != nil {
		return nil, internalError(err)
	}
	if taken {
		return nil, domain.NewUsernameTakenError(input.Username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), s.cost)
	if err != nil {
		return nil, internalError(err)
	}

	user := &domain.User{
		ID:           idgen.Generate(),
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		CreatedAt:    now(),
	}
	if err := users.Create(ctx, user); err != nil {
		if sqlite.IsUniqueViolation(err) {
			return nil, domain.NewUsernameTakenError(input.Username)
		}
		return nil, internalError(err)
	}

	return s.issue(user)
}

// Login checks credentials and opens a session.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	user, err := sqlite.NewUserRepository(s.store.DB()).GetByUsername(ctx, username)
	if err != nil {
		return nil, lookupError(err, domain.NewInvalidCredentialsError())
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.NewInvalidCredentialsError()
		}
		return nil, internalError(err)
	}

	return s.issue(user)
}

// Authenticate resolves a session token to its user.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.NewUnauthorizedError()
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return nil, domain.NewUnauthorizedError()
	}

	user, err := sqlite.NewUserRepository(s.store.DB()).GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, lookupError(err, domain.NewUnauthorizedError())
	}
	return user, nil
}

// GetUsers returns the users with the given ids in request order. Unknown
// ids are skipped.
func (s *AuthService) GetUsers(ctx context.Context, ids []string) ([]*domain.User, error) {
	users, err := sqlite.NewUserRepository(s.store.DB()).ListByIDs(ctx, ids)
	if err != nil {
		return nil, internalError(err)
	}
	return users, nil
}

func (s *AuthService) issue(user *domain.User) (*Session, error) {
	issuedAt := now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   user.ID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, internalError(err)
	}

	return &Session{User: user, Token: token, ExpiresAt: expiresAt}, nil
}
