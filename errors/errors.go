// seehuhn.de/go/svgdxf - convert SVG outlines to DXF line drawings
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package errors provides the structured error types used by svgdxf.
//
// Every failure that aborts a conversion carries a machine-readable [Code].
// Parse failures of path or transform text are reported as [*ParseError],
// flattening that does not converge within its retry budget as
// [*NonConvergenceError].  Both can be matched with [Is]:
//
//	if errors.Is(err, errors.ErrCodeParse) {
//	    // malformed input text
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for the different failure classes.
const (
	ErrCodeParse          Code = "PARSE_ERROR"
	ErrCodeNonConvergence Code = "FLATTEN_NON_CONVERGENCE"
	ErrCodeInvalidInput   Code = "INVALID_INPUT"
	ErrCodeInvalidState   Code = "INVALID_STATE"
	ErrCodeEncoding       Code = "UNSUPPORTED_ENCODING"
	ErrCodeInternal       Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // machine-readable error code
	Message string // human-readable message
	Cause   error  // underlying error (optional)
}

// Error implements the error interface.  Only the outermost code is
// shown.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, UserMessage(e))
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// coder is implemented by all error types of this package.
type coder interface {
	error
	code() Code
}

func (e *Error) code() Code { return e.Code }

// Is reports whether any error in the chain of err carries the given code.
func Is(err error, code Code) bool {
	for err != nil {
		if c, ok := err.(coder); ok && c.code() == code {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// GetCode returns the code of the outermost coded error in the chain of err,
// or the empty string if there is none.
func GetCode(err error) Code {
	var c coder
	if errors.As(err, &c) {
		return c.code()
	}
	return ""
}

// UserMessage returns a message suitable for display on the command line.
// For coded errors the code prefix is omitted.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		if e.Cause != nil {
			return e.Message + ": " + UserMessage(e.Cause)
		}
		return e.Message
	}
	return err.Error()
}

// ParseError reports malformed path data or transform text.
type ParseError struct {
	Kind   string // "path" or "transform"
	Input  string // the offending text, possibly truncated
	Offset int    // byte offset of the problem within Input, or -1
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("malformed %s %q at offset %d: %s", e.Kind, e.Input, e.Offset, e.Msg)
	}
	return fmt.Sprintf("malformed %s %q: %s", e.Kind, e.Input, e.Msg)
}

func (e *ParseError) code() Code { return ErrCodeParse }

// maxInputLen limits how much of the offending text is kept in a ParseError.
const maxInputLen = 40

// NewParseError creates a ParseError.  Long input is truncated.
func NewParseError(kind, input string, offset int, format string, args ...any) *ParseError {
	if len(input) > maxInputLen {
		input = input[:maxInputLen] + "..."
	}
	return &ParseError{
		Kind:   kind,
		Input:  input,
		Offset: offset,
		Msg:    fmt.Sprintf(format, args...),
	}
}

// NonConvergenceError reports that curve flattening could not be certified
// even after relaxing the tolerance the maximum number of times.
type NonConvergenceError struct {
	Tolerance float64 // last tolerance tried
	Retries   int     // number of relaxation steps taken
}

func (e *NonConvergenceError) Error() string {
	return fmt.Sprintf("flattening did not converge after %d retries (tolerance %g)",
		e.Retries, e.Tolerance)
}

func (e *NonConvergenceError) code() Code { return ErrCodeNonConvergence }
