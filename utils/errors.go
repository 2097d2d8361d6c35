package utils

import (
	"errors"
	"net/http"
)

// ErrorKind tags an AppError with the category a controller needs to pick
// an HTTP status. Expected conditions (not found, conflicts, invalid
// transitions) and store failures all travel through the same type.
type ErrorKind int

const (
	KindNotFound ErrorKind = iota + 1
	KindConflict
	KindBadRequest
	KindUnauthorized
	KindInternal
)

// AppError carries a human-readable message plus the underlying cause.
type AppError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ". Details => " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFound(msg string, err error) *AppError {
	return &AppError{Kind: KindNotFound, Message: msg, Err: err}
}

func Conflict(msg string, err error) *AppError {
	return &AppError{Kind: KindConflict, Message: msg, Err: err}
}

func BadRequest(msg string, err error) *AppError {
	return &AppError{Kind: KindBadRequest, Message: msg, Err: err}
}

func Unauthorized(msg string, err error) *AppError {
	return &AppError{Kind: KindUnauthorized, Message: msg, Err: err}
}

func Internal(msg string, err error) *AppError {
	return &AppError{Kind: KindInternal, Message: msg, Err: err}
}

// KindOf extracts the kind of an error. Anything that is not an AppError
// is treated as an internal failure.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error to the status code a controller should answer.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
