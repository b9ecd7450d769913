// Package apperr defines the error taxonomy shared by services and handlers.
// Every error carries a client-safe message; anything wrapped underneath
// stays on the server side.
package apperr

import "errors"

// Kind classifies an error for status-code mapping and tests.
type Kind int

const (
	Validation Kind = iota + 1 // missing or malformed input
	Conflict                   // duplicate username/email
	Auth                       // bad credentials or missing/invalid/expired token
	NotFound                   // referenced record absent
	Upload                     // image host failure
	Internal                   // unexpected/database failure
)

// Error is the taxonomy error type. Message is safe to return to clients.
type Error struct {
	Kind    Kind
	Message string
	err     error
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.Message + ": " + e.err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.err }

// New creates a taxonomy error with a client-safe message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches an underlying cause that must not leak to clients.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, err: err}
}

// KindOf returns the Kind of err, or 0 if err is not a taxonomy error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Message returns the client-safe message for err. Errors outside the
// taxonomy collapse to a generic message so internals never leak.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Something went wrong."
}
