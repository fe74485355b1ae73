package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the application error carried from the service layer up to the
// controllers, which translate Code into the response envelope.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error
func New(code int, message string, err error) *Error {
	return &Error{Code: code, Message: message, Err: err}
}

func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message, nil)
}

func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message, nil)
}

// Upstream wraps a dependency failure. The wrapped error is logged
// server-side; only the generic message reaches the client.
func Upstream(message string, err error) *Error {
	return New(http.StatusBadGateway, message, err)
}

func Internal(err error) *Error {
	return New(http.StatusInternalServerError, "Server error", err)
}

// From coerces any error into an *Error, defaulting to a generic 500 so no
// internal detail leaks through controllers.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(err)
}
