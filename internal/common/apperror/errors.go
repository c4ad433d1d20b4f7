package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is a typed domain error with HTTP awareness. Services return these;
// controllers translate them into the response envelope.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches on the error code so sentinels compare against customized
// messages of the same kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

func newError(code string, status int, message string) *Error {
	return &Error{Code: code, Status: status, Message: message}
}

func Validation(message string) *Error {
	return newError("VALIDATION_ERROR", http.StatusBadRequest, message)
}

func Unauthorized(message string) *Error {
	return newError("UNAUTHORIZED", http.StatusUnauthorized, message)
}

func Forbidden(message string) *Error {
	return newError("FORBIDDEN", http.StatusForbidden, message)
}

func NotFound(message string) *Error {
	return newError("NOT_FOUND", http.StatusNotFound, message)
}

func Conflict(message string) *Error {
	return newError("CONFLICT", http.StatusConflict, message)
}

func Internal(message string, err error) *Error {
	return &Error{Code: "INTERNAL_ERROR", Status: http.StatusInternalServerError, Message: message, Err: err}
}

// FromError normalises any error into an *Error. Unknown errors become
// internal ones with the given fallback message.
func FromError(err error, fallback string) *Error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal(fallback, err)
}
