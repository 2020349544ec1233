// Package apperr defines the typed errors that cross the service boundary.
// Services only ever surface one of the five kinds below; anything else is
// wrapped as an internal error so driver details never leak to callers.
package apperr

import (
	"errors"
	"net/http"
	"strings"
)

// Kind identifies the error category and its HTTP intent.
type Kind int

const (
	KindValidation Kind = iota
	KindUnauthorized
	KindNotFound
	KindConflict
	KindInternal
)

// Error carries a business code and user-facing message alongside the kind.
// The wrapped cause (if any) is kept for logging, never for responses.
type Error struct {
	Kind    Kind
	Code    int
	Message string
	Fields  []string // per-field violations, validation only
	cause   error
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		return e.Message + ": " + strings.Join(e.Fields, "; ")
	}
	return e.Message
}

// Unwrap exposes the underlying cause to errors.Is/As chains.
func (e *Error) Unwrap() error { return e.cause }

// Status maps the kind to its HTTP status code.
func (e *Error) Status() int {
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Validation reports one or more input constraint violations. All violations
// are carried together so callers see every failing field, not just the first.
func Validation(fields ...string) *Error {
	return &Error{Kind: KindValidation, Code: 40001, Message: "validation failed", Fields: fields}
}

// Unauthorized reports a failed ownership or credential check.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Code: 40301, Message: message}
}

// NotFound reports a missing resource or referenced entity.
func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Code: 40401, Message: message}
}

// Conflict reports a unique-constraint violation such as a taken username.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Code: 40901, Message: message}
}

// Internal wraps an unexpected lower-level failure. The cause is retained for
// logging; the message is what callers may see.
func Internal(message string, cause error) *Error {
	return &Error{Kind: KindInternal, Code: 50001, Message: message, cause: cause}
}

// From normalizes any error into an *Error. Typed errors pass through
// unchanged; everything else becomes an internal error.
func From(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return Internal("internal server error", err)
}

// IsKind reports whether err is an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}
