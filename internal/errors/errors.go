// Package errors provides sentinel errors and error types for the rules engine.
// Notation and FEN failures are reported through these so callers can tell
// malformed input apart from moves that are merely illegal, which are not errors.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrUnknownNotation indicates a move token that matches no grammar.
	ErrUnknownNotation = errors.New("unknown notation")

	// ErrInvalidSquare indicates a malformed or off-board square name.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrUnknownVariant indicates a variant name the factory does not know.
	ErrUnknownVariant = errors.New("unknown variant")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// NotationError reports a move token that could not be decoded.
// It supports unwrapping via errors.Is() and errors.As().
type NotationError struct {
	Err      error  // The underlying error
	Token    string // The offending token
	Expected string // What was expected (if known)
}

// Error returns a formatted error message with the token and expectation.
func (e *NotationError) Error() string {
	var parts []string
	if e.Token != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Token))
	} else {
		parts = append(parts, "empty move")
	}
	if e.Expected != "" {
		parts = append(parts, fmt.Sprintf("expected %s", e.Expected))
	}

	context := strings.Join(parts, ": ")
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *NotationError) Unwrap() error {
	return e.Err
}

// FENError reports which field of a FEN string is malformed.
type FENError struct {
	Err   error  // The underlying error
	Field string // Name of the field ("placement", "castling", ...)
	Value string // The field's text
}

// Error returns a formatted error message naming the field.
func (e *FENError) Error() string {
	msg := fmt.Sprintf("FEN %s field %q", e.Field, e.Value)
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *FENError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
