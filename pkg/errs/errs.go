// Package errs defines the uniform error type returned by every fallible
// operation of the protocol core. Messages are human-readable and intended
// for logging; callers that need to branch on an outcome should use the
// structured types (e.g. graphql.ServerError) rather than message matching.
package errs

import "fmt"

// Error is the protocol core's error type. It owns its message outright, so
// messages can be built dynamically without any lifetime or interning tricks.
type Error struct {
	msg string
}

// New creates an Error with the given message.
func New(msg string) *Error {
	return &Error{msg: msg}
}

// Errorf creates an Error with a formatted message.
func Errorf(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error that prefixes the cause's message with context.
// The cause's text is folded into the owned message; the protocol core
// treats all failures uniformly and does not preserve error chains across
// the protocol boundary.
func Wrap(err error, msg string) *Error {
	return &Error{msg: msg + ": " + err.Error()}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.msg
}

// Is reports message equality, making two Errors with the same text
// interchangeable under errors.Is.
func (e *Error) Is(target error) bool {
	other, ok := target.(*Error)
	return ok && e.msg == other.msg
}
