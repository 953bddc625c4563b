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

package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestIs(t *testing.T) {
	parse := NewParseError("path", "M0,0 X", 5, "unknown command %q", 'X')
	nonConv := &NonConvergenceError{Tolerance: 1.1, Retries: 10}

	tests := []struct {
		name string
		err  error
		code Code
		want bool
	}{
		{"plain", New(ErrCodeInvalidInput, "bad"), ErrCodeInvalidInput, true},
		{"plain other code", New(ErrCodeInvalidInput, "bad"), ErrCodeParse, false},
		{"parse", parse, ErrCodeParse, true},
		{"wrapped parse", Wrap(ErrCodeInvalidInput, parse, "path 3"), ErrCodeParse, true},
		{"wrapper code", Wrap(ErrCodeInvalidInput, parse, "path 3"), ErrCodeInvalidInput, true},
		{"fmt wrapped", fmt.Errorf("outer: %w", nonConv), ErrCodeNonConvergence, true},
		{"std error", errors.New("boom"), ErrCodeInternal, false},
		{"nil", nil, ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.want {
				t.Errorf("Is(%v, %s) = %v, want %v", tt.err, tt.code, got, tt.want)
			}
		})
	}
}

func TestGetCode(t *testing.T) {
	err := Wrap(ErrCodeNonConvergence, &NonConvergenceError{Retries: 3}, "path 0")
	if got := GetCode(err); got != ErrCodeNonConvergence {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeNonConvergence)
	}
	if got := GetCode(errors.New("x")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}

	var pe *ParseError
	if !errors.As(fmt.Errorf("ctx: %w", NewParseError("transform", "foo(1)", -1, "unknown")), &pe) {
		t.Fatal("errors.As failed to find *ParseError")
	}
	if pe.Kind != "transform" {
		t.Errorf("Kind = %q, want transform", pe.Kind)
	}
}

func TestParseErrorTruncates(t *testing.T) {
	long := strings.Repeat("L1,1 ", 40)
	e := NewParseError("path", long, 0, "bad")
	if len(e.Input) != maxInputLen+3 {
		t.Errorf("len(Input) = %d, want %d", len(e.Input), maxInputLen+3)
	}
	if !strings.Contains(e.Error(), "offset 0") {
		t.Errorf("Error() = %q, missing offset", e.Error())
	}
}

func TestUserMessage(t *testing.T) {
	err := Wrap(ErrCodeInvalidInput, New(ErrCodeParse, "inner"), "outer")
	if got, want := UserMessage(err), "outer: inner"; got != want {
		t.Errorf("UserMessage() = %q, want %q", got, want)
	}
}

func TestErrorShowsCodeOnce(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			"parse",
			Wrap(ErrCodeParse, NewParseError("path", "M0,0 X", 5, "unknown command"), "path %d on layer %q", 1, "0"),
			`PARSE_ERROR: path 1 on layer "0": malformed path "M0,0 X" at offset 5: unknown command`,
		},
		{
			"non-convergence",
			Wrap(ErrCodeNonConvergence, &NonConvergenceError{Tolerance: 0.1, Retries: 0}, "path 2"),
			"FLATTEN_NON_CONVERGENCE: path 2: flattening did not converge after 0 retries (tolerance 0.1)",
		},
		{
			"nested",
			Wrap(ErrCodeInvalidInput, New(ErrCodeInvalidInput, "inner"), "outer"),
			"INVALID_INPUT: outer: inner",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}
