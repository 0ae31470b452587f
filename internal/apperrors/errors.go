// Package apperrors holds the error taxonomy shared by the Content API and
// its clients.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Code string

const (
	// Store or network unreachable. Recoverable by a user-triggered retry.
	CodeServiceUnavailable Code = "SERVICE_UNAVAILABLE"
	// Malformed lead submission. Never reported as a server fault.
	CodeValidation Code = "VALIDATION_ERROR"
	// Expected singleton content is missing. Configuration fault.
	CodeNotFound Code = "NOT_FOUND"
	CodeInternal Code = "INTERNAL"
)

type Error struct {
	Code    Code
	Message string
	Field   string // sadece validasyon hatalarında dolu
	Err     error
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s[%s]: %s", e.Code, e.Field, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the code onto the status the API answers with.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeServiceUnavailable:
		return http.StatusServiceUnavailable
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func ServiceUnavailable(message string, err error) *Error {
	return &Error{Code: CodeServiceUnavailable, Message: message, Err: err}
}

func Validation(field, message string) *Error {
	return &Error{Code: CodeValidation, Message: message, Field: field}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func Internal(message string, err error) *Error {
	return &Error{Code: CodeInternal, Message: message, Err: err}
}

// Is reports whether err carries an *Error with the given code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// FieldOf returns the offending field of a validation error, or "".
func FieldOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Code == CodeValidation {
		return e.Field
	}
	return ""
}
