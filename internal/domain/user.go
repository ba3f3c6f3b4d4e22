package domain

import (
	"regexp"
	"strings"
	"time"
)

// User is an account. The password hash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"-"`
}

// Password length bounds accepted at signup. bcrypt ignores input past 72
// bytes.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 72
)

var validUsername = regexp.MustCompile(`^[a-zA-Z0-9_.-]{3,32}$`)

// ValidateSignup checks the fields of a signup request.
func ValidateSignup(username, password, email string) []string {
	var errors []string

	if !validUsername.MatchString(username) {
		errors = append(errors, "username must be 3-32 letters, digits, dots, hyphens or underscores")
	}
	if len(password) < MinPasswordLength {
		errors = append(errors, "password must be at least 8 characters")
	} else if len(password) > MaxPasswordLength {
		errors = append(errors, "password must be at most 72 bytes")
	}
	if at := strings.IndexByte(email, '@'); at < 1 || at == len(email)-1 {
		errors = append(errors, "email is invalid")
	}

	return errors
}
