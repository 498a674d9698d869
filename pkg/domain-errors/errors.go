// Package domainerrors defines the coded error type that domain services
// return across package boundaries. Handlers translate codes to HTTP statuses
// via httputil; stores wrap sentinel errors into these codes at the service
// layer.
package domainerrors

import "net/http"

// Code identifies a class of domain failure.
type Code string

const (
	CodeBadRequest   Code = "bad_request"
	CodeUnauthorized Code = "unauthorized"
	CodeForbidden    Code = "forbidden"
	CodeNotFound     Code = "not_found"
	CodeConflict     Code = "conflict"
	CodeInvalidState Code = "invalid_state"
	CodeInternal     Code = "internal_error"
)

// Error carries a machine-readable code plus a human-readable message.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return string(e.Code)
	}
	return string(e.Code) + ": " + e.Message
}

// New constructs a domain error with the given code and message.
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Is reports whether err is a domain error with the given code.
func Is(err error, code Code) bool {
	de, ok := err.(*Error)
	return ok && de.Code == code
}

// CodeOf extracts the code from err, defaulting to CodeInternal for
// non-domain errors so callers never leak raw failures.
func CodeOf(err error) Code {
	if de, ok := err.(*Error); ok {
		return de.Code
	}
	return CodeInternal
}

// ToHTTPStatus maps a domain error code to its HTTP status.
func ToHTTPStatus(code Code) int {
	switch code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeUnauthorized:
		return http.StatusUnauthorized
	case CodeForbidden:
		return http.StatusForbidden
	case CodeNotFound:
		return http.StatusNotFound
	case CodeConflict, CodeInvalidState:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
