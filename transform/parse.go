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

package transform

import (
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/svgdxf/errors"
)

// Parse parses an SVG transform list such as
// "translate(10,20) rotate(45)".  The functions matrix, translate, scale,
// rotate, skewX and skewY are supported; the list is composed so that the
// rightmost function is applied first.  The empty string gives the
// identity.
func Parse(text string) (matrix.Matrix, error) {
	p := &parser{src: text}
	m := matrix.Identity
	p.skipSeparators()
	for !p.done() {
		start := p.pos
		name := p.ident()
		if name == "" {
			return matrix.Matrix{}, p.errorf(start, "expected transform function")
		}
		args, err := p.arguments()
		if err != nil {
			return matrix.Matrix{}, err
		}
		t, err := p.function(name, args, start)
		if err != nil {
			return matrix.Matrix{}, err
		}
		// "A B" means A∘B: B acts on the coordinates first.
		m = Compose(m, t)
		p.skipSeparators()
	}
	return m, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) done() bool {
	return p.pos >= len(p.src)
}

func (p *parser) errorf(offset int, format string, args ...any) error {
	return errors.NewParseError("transform", p.src, offset, format, args...)
}

func (p *parser) skipSpace() {
	for p.pos < len(p.src) && isSpace(p.src[p.pos]) {
		p.pos++
	}
}

func (p *parser) skipSeparators() {
	for p.pos < len(p.src) && (isSpace(p.src[p.pos]) || p.src[p.pos] == ',') {
		p.pos++
	}
}

func (p *parser) ident() string {
	start := p.pos
	for p.pos < len(p.src) {
		c := p.src[p.pos]
		if c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' {
			p.pos++
			continue
		}
		break
	}
	return p.src[start:p.pos]
}

// arguments reads a parenthesized, comma or space separated number list.
func (p *parser) arguments() ([]float64, error) {
	p.skipSpace()
	if p.done() || p.src[p.pos] != '(' {
		return nil, p.errorf(p.pos, "expected '('")
	}
	p.pos++
	closing := strings.IndexByte(p.src[p.pos:], ')')
	if closing < 0 {
		return nil, p.errorf(p.pos, "missing ')'")
	}
	body := p.src[p.pos : p.pos+closing]
	bodyStart := p.pos
	p.pos += closing + 1

	fields := strings.FieldsFunc(body, func(r rune) bool {
		return r == ',' || r < 0x80 && isSpace(byte(r))
	})
	args := make([]float64, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(x) || math.IsInf(x, 0) {
			return nil, p.errorf(bodyStart+strings.Index(body, f), "invalid number %q", f)
		}
		args = append(args, x)
	}
	return args, nil
}

// function builds the matrix for a single transform function.
func (p *parser) function(name string, args []float64, offset int) (matrix.Matrix, error) {
	argc := func(allowed ...int) error {
		for _, n := range allowed {
			if len(args) == n {
				return nil
			}
		}
		return p.errorf(offset, "%s: unexpected number of arguments (%d)", name, len(args))
	}

	switch name {
	case "matrix":
		if err := argc(6); err != nil {
			return matrix.Matrix{}, err
		}
		return matrix.Matrix{args[0], args[1], args[2], args[3], args[4], args[5]}, nil

	case "translate":
		if err := argc(1, 2); err != nil {
			return matrix.Matrix{}, err
		}
		ty := 0.0
		if len(args) == 2 {
			ty = args[1]
		}
		return matrix.Matrix{1, 0, 0, 1, args[0], ty}, nil

	case "scale":
		if err := argc(1, 2); err != nil {
			return matrix.Matrix{}, err
		}
		sy := args[0]
		if len(args) == 2 {
			sy = args[1]
		}
		return matrix.Matrix{args[0], 0, 0, sy, 0, 0}, nil

	case "rotate":
		if err := argc(1, 3); err != nil {
			return matrix.Matrix{}, err
		}
		s, c := math.Sincos(args[0] * math.Pi / 180)
		r := matrix.Matrix{c, s, -s, c, 0, 0}
		if len(args) == 3 {
			cx, cy := args[1], args[2]
			r = Compose(matrix.Matrix{1, 0, 0, 1, cx, cy},
				Compose(r, matrix.Matrix{1, 0, 0, 1, -cx, -cy}))
		}
		return r, nil

	case "skewX":
		if err := argc(1); err != nil {
			return matrix.Matrix{}, err
		}
		return matrix.Matrix{1, 0, math.Tan(args[0] * math.Pi / 180), 1, 0, 0}, nil

	case "skewY":
		if err := argc(1); err != nil {
			return matrix.Matrix{}, err
		}
		return matrix.Matrix{1, math.Tan(args[0] * math.Pi / 180), 0, 1, 0, 0}, nil
	}

	return matrix.Matrix{}, p.errorf(offset, "unknown transform function %q", name)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}
