package smarterr

import (
	"fmt"
	"strings"
)

const rawErrorMessage = "raw error"

// RawError keeps a cause which is not an error itself. Variants declared
// with <<T>> and <<>> store their causes this way.
type RawError[T any] struct {
	Value   T
	message string
}

// NewRawError wraps the value.
func NewRawError[T any](v T) RawError[T] {
	return RawError[T]{Value: v}
}

// NewRawErrorWith wraps the value with a custom message.
func NewRawErrorWith[T any](v T, msg string) RawError[T] {
	return RawError[T]{Value: v, message: msg}
}

// Error renders the message followed by the value.
func (e RawError[T]) Error() string {
	msg := e.message
	if msg == "" {
		msg = rawErrorMessage
	}

	return msg + " " + strings.ReplaceAll(debugValue(e.Value), `"`, `'`)
}

// Message returns the message of the error.
func (e RawError[T]) Message() string {
	if e.message == "" {
		return rawErrorMessage
	}

	return e.message
}

// GoString to render the error as a part of contexts.
func (e RawError[T]) GoString() string {
	return fmt.Sprintf("RawError { value: %s }", debugValue(e.Value))
}
