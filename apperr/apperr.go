// Package apperr defines the error taxonomy shared by all request handlers.
//
// Every failure surfaced by the service maps to exactly one Code, which in turn
// maps to an HTTP status. Handlers convert any error they receive with FromError
// so callers always see the same {"error": {"code", "message"}} shape.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code identifies a failure class.
type Code string

const (
	CodeInvalidRequest  Code = "INVALID_REQUEST"
	CodeNotFound        Code = "NOT_FOUND"
	CodeUpstreamService Code = "UPSTREAM_SERVICE_ERROR"
	CodeLogSink         Code = "LOG_SINK_ERROR"
	CodeInternal        Code = "INTERNAL_ERROR"
)

// Error is a classified error carrying an optional wrapped cause.
type Error struct {
	Code    Code
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// HTTPStatus maps the error class to a response status.
func (e *Error) HTTPStatus() int {
	switch e.Code {
	case CodeInvalidRequest:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUpstreamService:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func InvalidRequest(message string) *Error {
	return &Error{Code: CodeInvalidRequest, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Code: CodeNotFound, Message: message}
}

func Upstream(message string, err error) *Error {
	return &Error{Code: CodeUpstreamService, Message: message, Err: err}
}

func LogSink(message string, err error) *Error {
	return &Error{Code: CodeLogSink, Message: message, Err: err}
}

func Internal(message string, err error) *Error {
	return &Error{Code: CodeInternal, Message: message, Err: err}
}

// FromError returns err as an *Error, wrapping unclassified errors as internal.
func FromError(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal("unexpected error", err)
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code Code) bool {
	var appErr *Error
	return errors.As(err, &appErr) && appErr.Code == code
}
