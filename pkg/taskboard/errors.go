package taskboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// DefaultErrorMessage is reported whenever no structured server message is
// available.
const DefaultErrorMessage = "An unknown error occurred."

// ErrorKind classifies how a call failed.
type ErrorKind string

const (
	// KindTransport indicates no response reached the client (connection
	// refused, DNS failure, timeout, cancelled context).
	KindTransport ErrorKind = "transport"
	// KindApplication indicates the server answered with a non-2xx status.
	KindApplication ErrorKind = "application"
	// KindUnexpectedResponse indicates a 2xx response without the expected
	// payload field.
	KindUnexpectedResponse ErrorKind = "unexpected_response"
)

// Error is the single error shape returned by every Client method.
type Error struct {
	Kind    ErrorKind
	Message string
	// StatusCode is the HTTP status of the response, or 0 for transport errors.
	StatusCode int
	// Code is the optional machine-readable code from the error body.
	Code string
	// Detail holds the raw response body of an application error, if any.
	Detail json.RawMessage
	// Err is the underlying cause, if any.
	Err error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// apiErrorResponse wraps the error in the API response format.
type apiErrorResponse struct {
	Error *apiError `json:"error"`
}

// apiError is the JSON structure for an API error.
type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// newTransportError builds the error for a request that produced no response.
func newTransportError(cause error) *Error {
	return &Error{
		Kind:    KindTransport,
		Message: DefaultErrorMessage,
		Err:     cause,
	}
}

// newApplicationError builds the error for a non-2xx response. The message
// comes verbatim from error.message when the body carries one.
func newApplicationError(statusCode int, body []byte) *Error {
	e := &Error{
		Kind:       KindApplication,
		Message:    DefaultErrorMessage,
		StatusCode: statusCode,
		Err:        fmt.Errorf("server responded %d %s", statusCode, http.StatusText(statusCode)),
	}
	if len(body) > 0 && json.Valid(body) {
		e.Detail = json.RawMessage(body)
	}

	var resp apiErrorResponse
	if err := json.Unmarshal(body, &resp); err != nil || resp.Error == nil {
		return e
	}
	if resp.Error.Message != "" {
		e.Message = resp.Error.Message
	}
	e.Code = resp.Error.Code
	return e
}

// newUnexpectedResponseError builds the error for a 2xx response whose body
// does not carry the expected field.
func newUnexpectedResponseError(statusCode int, field string, cause error) *Error {
	return &Error{
		Kind:       KindUnexpectedResponse,
		Message:    fmt.Sprintf("unexpected response shape: missing or invalid %q field", field),
		StatusCode: statusCode,
		Err:        cause,
	}
}

// asError converts any error into an *Error. Errors that are not already
// normalized are treated as transport failures.
func asError(err error) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return newTransportError(err)
}

// IsTransport returns true if no response reached the client.
func IsTransport(err error) bool {
	return hasKind(err, KindTransport)
}

// IsApplication returns true if the server rejected the request.
func IsApplication(err error) bool {
	return hasKind(err, KindApplication)
}

// IsUnexpectedResponse returns true if the server answered 2xx without the
// expected payload.
func IsUnexpectedResponse(err error) bool {
	return hasKind(err, KindUnexpectedResponse)
}

// IsNotFound returns true if the server answered 404.
func IsNotFound(err error) bool {
	return IsApplication(err) && StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized returns true if the server answered 401.
func IsUnauthorized(err error) bool {
	return IsApplication(err) && StatusCode(err) == http.StatusUnauthorized
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return 0
}

// Message returns the user-facing message for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	return asError(err).Message
}

func hasKind(err error, kind ErrorKind) bool {
	if err == nil {
		return false
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
