// Package apperrors defines the error taxonomy shared by services and
// handlers. Services return *Error values; the HTTP boundary maps each Kind
// to a status code and a single {"error": message} body.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the request boundary.
type Kind string

const (
	KindValidation Kind = "validation" // 400, missing or malformed input
	KindAuth       Kind = "auth"       // 401, bad/missing/expired credentials or token
	KindNotFound   Kind = "not_found"  // 404, id does not resolve
	KindConflict   Kind = "conflict"   // 409, uniqueness violation
	KindIntegrity  Kind = "integrity"  // 400, delete blocked by dependent records
	KindInternal   Kind = "internal"   // 500, anything unexpected
)

// Error carries a kind, a client-facing message, and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// New returns an error of the given kind with a client-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf is New with fmt.Sprintf formatting of the message.
func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an error of the given kind wrapping an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Internal wraps an unexpected failure. The message shown to clients in
// production mode is generic; the cause stays in the logs.
func Internal(message string, err error) *Error {
	return &Error{Kind: KindInternal, Message: message, Err: err}
}

// KindOf extracts the Kind from err, defaulting to KindInternal for errors
// outside the taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// StatusCode maps an error to its HTTP status.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindValidation, KindIntegrity:
		return http.StatusBadRequest
	case KindAuth:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns the message safe to show to clients. Internal error
// details are hidden when production is true.
func ClientMessage(err error, production bool) string {
	var e *Error
	if !errors.As(err, &e) {
		if production {
			return "internal server error"
		}
		return err.Error()
	}
	if e.Kind == KindInternal && production {
		return "internal server error"
	}
	return e.Message
}
