package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	err := &DomainError{
		Code:    ErrCodeTaskNotFound,
		Message: "Test message",
		Context: map[string]interface{}{"key": "value"},
	}

	if err.Error() != "Test message" {
		t.Errorf("DomainError.Error() = %v, want %v", err.Error(), "Test message")
	}
}

func TestNotFoundErrors(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) *DomainError
		code ErrorCode
		kind string
	}{
		{"user", NewUserNotFoundError, ErrCodeUserNotFound, "User"},
		{"project", NewProjectNotFoundError, ErrCodeProjectNotFound, "Project"},
		{"section", NewSectionNotFoundError, ErrCodeSectionNotFound, "Section"},
		{"task", NewTaskNotFoundError, ErrCodeTaskNotFound, "Task"},
		{"tag", NewTagNotFoundError, ErrCodeTagNotFound, "Tag"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.fn("abc123")
			if err.Code != tt.code {
				t.Errorf("Code = %v, want %v", err.Code, tt.code)
			}
			if !strings.HasPrefix(err.Message, tt.kind) || !strings.Contains(err.Message, "abc123") {
				t.Errorf("unexpected message %q", err.Message)
			}
			if err.Context["id"] != "abc123" {
				t.Errorf("Context[id] = %v, want abc123", err.Context["id"])
			}
		})
	}
}

func TestNewUnauthorizedError(t *testing.T) {
	err := NewUnauthorizedError()
	if err.Code != ErrCodeUnauthorized {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUnauthorized)
	}
	if err.Message != "Unauthorized" {
		t.Errorf("Message = %q, want Unauthorized", err.Message)
	}
}

func TestNewUsernameTakenError(t *testing.T) {
	err := NewUsernameTakenError("alice")
	if err.Code != ErrCodeUsernameTaken {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeUsernameTaken)
	}
	if err.Context["username"] != "alice" {
		t.Errorf("Context[username] = %v, want alice", err.Context["username"])
	}
}

func TestNewValidationError(t *testing.T) {
	details := []string{"name is required", "colour must be a hex colour"}
	err := NewValidationError(details)

	if err.Code != ErrCodeValidationFailed {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeValidationFailed)
	}
	got, ok := err.Context["details"].([]string)
	if !ok || len(got) != 2 {
		t.Errorf("Context[details] = %v, want %v", err.Context["details"], details)
	}
}

func TestNewInternalError_HidesCause(t *testing.T) {
	err := NewInternalError(errors.New("disk I/O error"))
	if err.Code != ErrCodeInternalError {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInternalError)
	}
	if strings.Contains(err.Message, "disk") {
		t.Errorf("Message leaks cause: %q", err.Message)
	}
}
