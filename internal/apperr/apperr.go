// Package apperr defines the tagged error type returned by repositories and
// services. Handlers inspect the Kind to pick an HTTP status; the wrapped
// internal error is logged but never serialized to clients.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the transport layer.
type Kind int

const (
	KindValidation Kind = iota + 1 // malformed or missing input, store untouched
	KindNotFound                   // referenced entity absent
	KindConflict                   // duplicate / uniqueness violation
	KindDatabase                   // underlying store failure (incl. rollback paths)
	KindInternal                   // unexpected failure producing no result
)

type Error struct {
	Kind    Kind
	Message string
	Err     error // internal cause, log-only
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) *Error { return &Error{Kind: KindValidation, Message: msg} }
func NotFound(msg string) *Error   { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error   { return &Error{Kind: KindConflict, Message: msg} }

// Database wraps an unexpected store error behind a safe client message.
func Database(err error, msg string) *Error {
	return &Error{Kind: KindDatabase, Message: msg, Err: err}
}

func Internal(err error, msg string) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: err}
}

func Validationf(format string, args ...interface{}) *Error {
	return Validation(fmt.Sprintf(format, args...))
}

func NotFoundf(format string, args ...interface{}) *Error {
	return NotFound(fmt.Sprintf(format, args...))
}

func Conflictf(format string, args ...interface{}) *Error {
	return Conflict(fmt.Sprintf(format, args...))
}

// KindOf extracts the Kind from any error chain. Untagged errors are treated
// as KindInternal so callers never mistake an unexpected failure for a
// business outcome.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, k Kind) bool { return KindOf(err) == k }
