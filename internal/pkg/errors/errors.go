// Package errors defines the typed error taxonomy shared by all
// services. Every usecase returns one of these kinds (or wraps one);
// the HTTP layer maps kinds to status codes in a single place.
package errors

import (
	"errors"
	"fmt"
)

// Kind classifies an error for transport mapping
type Kind int

const (
	// KindValidation: malformed or missing input, client must fix and resend
	KindValidation Kind = iota + 1
	// KindNotFound: referenced entity absent, not retryable
	KindNotFound
	// KindAuthorization: wrong role or non-owner, terminal
	KindAuthorization
	// KindConflict: state already transitioned or duplicate, client should refresh
	KindConflict
	// KindInvalidTransition: out-of-order trip status, terminal
	KindInvalidTransition
	// KindDependency: entity store or broker unavailable, retryable with backoff
	KindDependency
)

// Error is a typed domain error
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Validation creates a KindValidation error
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Msg: msg}
}

// NotFound creates a KindNotFound error
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

// Authorization creates a KindAuthorization error
func Authorization(msg string) error {
	return &Error{Kind: KindAuthorization, Msg: msg}
}

// Conflict creates a KindConflict error
func Conflict(msg string) error {
	return &Error{Kind: KindConflict, Msg: msg}
}

// InvalidTransition creates a KindInvalidTransition error
func InvalidTransition(msg string) error {
	return &Error{Kind: KindInvalidTransition, Msg: msg}
}

// Dependency wraps an infrastructure failure
func Dependency(msg string, err error) error {
	return &Error{Kind: KindDependency, Msg: msg, Err: err}
}

// KindOf returns the kind of err, or 0 when err carries no kind
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// Is reports whether err has the given kind
func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
