// Package apierror provides standardized error response structures for the API
// plus the typed domain errors the ledger services return. All errors surfaced
// to clients go through this package to ensure consistency and to prevent
// leaking internal details (stack traces, DB errors, etc.).
package apierror

import (
	"errors"
	"fmt"
)

// APIError is the canonical error envelope for all 4xx/5xx HTTP responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// Validation wraps multiple field errors.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}

func (e *ValidationError) Error() string { return e.Detail }

// ── Typed domain errors ──────────────────────────────────────────────────────

// Kind classifies a domain failure. The four kinds are surfaced distinctly to
// callers; only Unexpected hides its cause behind an opaque message.
type Kind int

const (
	KindUnexpected      Kind = iota // infrastructure failure — logged, opaque to clients
	KindNotFound                    // referenced id unresolved
	KindInvalidArgument             // missing/zero/negative field, empty line list
	KindConflict                    // lock loss, over-payment guard, double-finalize
)

// Error is a domain error with a kind and a client-safe message.
type Error struct {
	Kind Kind
	Msg  string
	Err  error // wrapped cause, only meaningful for KindUnexpected
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound builds a KindNotFound error.
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

// InvalidArgument builds a KindInvalidArgument error.
func InvalidArgument(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidArgument, Msg: fmt.Sprintf(format, args...)}
}

// Conflict builds a KindConflict error.
func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

// Unexpected wraps an infrastructure failure. The message shown to clients is
// generic; the cause travels with the error for logging.
func Unexpected(err error) *Error {
	return &Error{Kind: KindUnexpected, Msg: "Error interno del servidor", Err: err}
}

// KindOf extracts the kind from any error chain. Unknown errors are Unexpected.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnexpected
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool { return KindOf(err) == k }
