package engine

import (
	"errors"
	"fmt"
)

// Kind identifies one of the recoverable simulation error categories. Every
// failed command maps to exactly one kind; none of them abort the session.
type Kind string

const (
	UnknownCommand      Kind = "unknown_command"
	InvalidArgument     Kind = "invalid_argument"
	OutOfBounds         Kind = "out_of_bounds"
	Blocked             Kind = "blocked"
	InsufficientBattery Kind = "insufficient_battery"
	ExpansionDisabled   Kind = "expansion_disabled"
	InvalidDimension    Kind = "invalid_dimension"
)

// Error is the simulation's closed error variant: a kind tag plus a
// human-readable message carrying the offending token or coordinate.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the simulation error kind from err, or "" if err is nil
// or not a simulation error.
func KindOf(err error) Kind {
	var simErr *Error
	if errors.As(err, &simErr) {
		return simErr.Kind
	}
	return ""
}
