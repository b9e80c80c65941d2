// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package jval

import (
	"errors"
	"fmt"
)

// Errors reported by the operations of this package. Use errors.Is to test
// for a particular kind; syntax errors from a Parser are reported with the
// concrete type *SyntaxError, which matches ErrInvalidCharacter.
var (
	ErrNullPointer      = errors.New("missing required argument")
	ErrAllocation       = errors.New("allocation failed")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrIllegalOperation = errors.New("illegal operation")
	ErrMaxSize          = errors.New("maximum size reached")
	ErrNotFound         = errors.New("not found")
	ErrInvalidCharacter = errors.New("invalid character")
)

// SyntaxError is the concrete type of errors reported by the parser when the
// input violates the grammar.
type SyntaxError struct {
	Offset   int     // byte offset of the offending input, 0-based
	Location LineCol // line and column of the offending input
	Char     byte    // the offending byte, or 0 at end of input
	State    State   // the parser state when the error was detected
	Message  string

	err error
}

// Error satisfies the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("at %s (offset %d): %s", e.Location, e.Offset, e.Message)
}

// Is reports whether target is ErrInvalidCharacter. Every syntax error is an
// invalid character error, whatever its underlying cause.
func (e *SyntaxError) Is(target error) bool { return target == ErrInvalidCharacter }

// Unwrap supports error wrapping. It reports the underlying cause, if any,
// such as ErrIllegalOperation for a duplicate object key.
func (e *SyntaxError) Unwrap() error { return e.err }
