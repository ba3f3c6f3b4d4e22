package domain

import "fmt"

// ErrorCode represents a domain error code.
type ErrorCode string

const (
	ErrCodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	ErrCodeProjectNotFound    ErrorCode = "PROJECT_NOT_FOUND"
	ErrCodeSectionNotFound    ErrorCode = "SECTION_NOT_FOUND"
	ErrCodeTaskNotFound       ErrorCode = "TASK_NOT_FOUND"
	ErrCodeTagNotFound        ErrorCode = "TAG_NOT_FOUND"
	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeUsernameTaken      ErrorCode = "USERNAME_TAKEN"
	ErrCodeValidationFailed   ErrorCode = "VALIDATION_FAILED"
	ErrCodeRateLimited        ErrorCode = "RATE_LIMITED"
	ErrCodeInternalError      ErrorCode = "INTERNAL_ERROR"
)

// DomainError represents an error in the domain layer with context.
type DomainError struct {
	Code    ErrorCode
	Message string
	Context map[string]interface{}
}

func (e *DomainError) Error() string {
	return e.Message
}

func newNotFoundError(code ErrorCode, kind, id string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: fmt.Sprintf("%s %s not found", kind, id),
		Context: map[string]interface{}{"id": id},
	}
}

// NewUserNotFoundError creates a user not found error.
func NewUserNotFoundError(userID string) *DomainError {
	return newNotFoundError(ErrCodeUserNotFound, "User", userID)
}

// NewProjectNotFoundError creates a project not found error.
func NewProjectNotFoundError(projectID string) *DomainError {
	return newNotFoundError(ErrCodeProjectNotFound, "Project", projectID)
}

// NewSectionNotFoundError creates a section not found error.
func NewSectionNotFoundError(sectionID string) *DomainError {
	return newNotFoundError(ErrCodeSectionNotFound, "Section", sectionID)
}

// NewTaskNotFoundError creates a task not found error.
func NewTaskNotFoundError(taskID string) *DomainError {
	return newNotFoundError(ErrCodeTaskNotFound, "Task", taskID)
}

// NewTagNotFoundError creates a tag not found error.
func NewTagNotFoundError(tagID string) *DomainError {
	return newNotFoundError(ErrCodeTagNotFound, "Tag", tagID)
}

// NewUnauthorizedError is returned for requests without a valid session.
func NewUnauthorizedError() *DomainError {
	return &DomainError{
		Code:    ErrCodeUnauthorized,
		Message: "Unauthorized",
	}
}

// NewInvalidCredentialsError creates an error for a failed login.
func NewInvalidCredentialsError() *DomainError {
	return &DomainError{
		Code:    ErrCodeInvalidCredentials,
		Message: "Invalid username or password",
	}
}

// NewUsernameTakenError creates an error for a signup with a used username.
func NewUsernameTakenError(username string) *DomainError {
	return &DomainError{
		Code:    ErrCodeUsernameTaken,
		Message: fmt.Sprintf("Username %s is already taken", username),
		Context: map[string]interface{}{"username": username},
	}
}

// NewValidationError creates a validation error.
func NewValidationError(details []string) *DomainError {
	return &DomainError{
		Code:    ErrCodeValidationFailed,
		Message: "Validation failed",
		Context: map[string]interface{}{"details": details},
	}
}

// NewRateLimitedError creates a rate limit exceeded error.
func NewRateLimitedError() *DomainError {
	return &DomainError{
		Code:    ErrCodeRateLimited,
		Message: "Rate limit exceeded, retry later",
	}
}

// NewInternalError creates an internal error. The cause is not exposed.
func NewInternalError(err error) *DomainError {
	return &DomainError{
		Code:    ErrCodeInternalError,
		Message: "An internal error occurred",
		Context: map[string]interface{}{},
	}
}
