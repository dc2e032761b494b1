package gm

import (
	"errors"
	"fmt"
)

// ErrArgument is returned if an argument violates the precondition of an operation,
// e.g. normalizing a zero vector or intersecting two parallel planes.
var ErrArgument = errors.New("gm: invalid argument")

// ErrDivisionByZero is returned when dividing by zero instead of
// producing NaN or infinite components.
var ErrDivisionByZero = errors.New("gm: division by zero")

// FormatError is returned by the parse functions if the input
// does not match the expected grammar.
type FormatError struct {
	// Input is the offending text.
	Input string

	// What describes the value that was expected.
	What string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("gm: can not parse %q as %s", e.Input, e.What)
}
