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

// Package pathdata parses the SVG path data grammar into absolute
// move, line, quadratic, cubic and close commands.
//
// Elliptical arcs are converted to cubic Bézier segments.  Horizontal and
// vertical lines become ordinary line segments, and the smooth curve
// commands S and T are expanded using the reflected control point of the
// previous segment.
package pathdata

import (
	"math"
	"strconv"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgdxf/errors"
)

// Parse converts path data into a path.  An empty string (or one containing
// only white space) gives an empty path.
func Parse(d string) (*path.Data, error) {
	s := &scanner{src: d}
	res := &path.Data{}

	var cur, start vec.Vec2
	var lastCtrl vec.Vec2 // reflected for S/s and T/t
	var prevCmd byte
	var cmd byte

	s.skipSpace()
	for !s.done() {
		if c := s.peek(); isCommand(c) {
			if prevCmd == 0 && c != 'M' && c != 'm' {
				return nil, s.errorf("path data must start with a moveto command")
			}
			cmd = c
			s.pos++
		} else if cmd == 0 {
			return nil, s.errorf("path data must start with a moveto command")
		} else if cmd == 'Z' || cmd == 'z' {
			return nil, s.errorf("unexpected number after closepath")
		}
		cmdPos := s.pos - 1

		rel := cmd >= 'a'
		base := vec.Vec2{}
		if rel {
			base = cur
		}

		switch cmd {
		case 'M', 'm':
			p, err := s.point()
			if err != nil {
				return nil, err
			}
			cur = base.Add(p)
			start = cur
			res.MoveTo(cur)
			// subsequent pairs are implicit lineto commands
			if cmd == 'M' {
				cmd = 'L'
			} else {
				cmd = 'l'
			}
			prevCmd = 'M'
			s.skipSeparators()
			continue

		case 'L', 'l':
			p, err := s.point()
			if err != nil {
				return nil, err
			}
			cur = base.Add(p)
			res.LineTo(cur)

		case 'H', 'h':
			x, err := s.number()
			if err != nil {
				return nil, err
			}
			if rel {
				cur.X += x
			} else {
				cur.X = x
			}
			res.LineTo(cur)

		case 'V', 'v':
			y, err := s.number()
			if err != nil {
				return nil, err
			}
			if rel {
				cur.Y += y
			} else {
				cur.Y = y
			}
			res.LineTo(cur)

		case 'C', 'c':
			pts, err := s.points(3)
			if err != nil {
				return nil, err
			}
			c1, c2, end := base.Add(pts[0]), base.Add(pts[1]), base.Add(pts[2])
			res.CubeTo(c1, c2, end)
			lastCtrl, cur = c2, end

		case 'S', 's':
			pts, err := s.points(2)
			if err != nil {
				return nil, err
			}
			c1 := cur
			if prevCmd == 'C' || prevCmd == 'S' {
				c1 = cur.Mul(2).Sub(lastCtrl)
			}
			c2, end := base.Add(pts[0]), base.Add(pts[1])
			res.CubeTo(c1, c2, end)
			lastCtrl, cur = c2, end

		case 'Q', 'q':
			pts, err := s.points(2)
			if err != nil {
				return nil, err
			}
			ctrl, end := base.Add(pts[0]), base.Add(pts[1])
			res.QuadTo(ctrl, end)
			lastCtrl, cur = ctrl, end

		case 'T', 't':
			p, err := s.point()
			if err != nil {
				return nil, err
			}
			ctrl := cur
			if prevCmd == 'Q' || prevCmd == 'T' {
				ctrl = cur.Mul(2).Sub(lastCtrl)
			}
			end := base.Add(p)
			res.QuadTo(ctrl, end)
			lastCtrl, cur = ctrl, end

		case 'A', 'a':
			rx, err := s.number()
			if err != nil {
				return nil, err
			}
			ry, err := s.number()
			if err != nil {
				return nil, err
			}
			phi, err := s.number()
			if err != nil {
				return nil, err
			}
			large, err := s.flag()
			if err != nil {
				return nil, err
			}
			sweep, err := s.flag()
			if err != nil {
				return nil, err
			}
			p, err := s.point()
			if err != nil {
				return nil, err
			}
			end := base.Add(p)
			arcTo(res, cur, end, rx, ry, phi, large, sweep)
			cur = end

		case 'Z', 'z':
			res.Close()
			cur = start

		default:
			return nil, errors.NewParseError("path", s.src, cmdPos, "unknown command %q", cmd)
		}

		prevCmd = upper(cmd)
		s.skipSeparators()
	}

	return res, nil
}

type scanner struct {
	src string
	pos int
}

func (s *scanner) done() bool { return s.pos >= len(s.src) }

func (s *scanner) peek() byte { return s.src[s.pos] }

func (s *scanner) errorf(format string, args ...any) error {
	return errors.NewParseError("path", s.src, s.pos, format, args...)
}

func (s *scanner) skipSpace() {
	for !s.done() && isSpace(s.peek()) {
		s.pos++
	}
}

// skipSeparators skips white space and at most one comma.
func (s *scanner) skipSeparators() {
	s.skipSpace()
	if !s.done() && s.peek() == ',' {
		s.pos++
		s.skipSpace()
	}
}

// number reads one number in SVG syntax, for example "-1.5e3" or ".5".
// A number ends where the next one starts, so "1-2" and "0.5.5" each
// contain two numbers.
func (s *scanner) number() (float64, error) {
	s.skipSeparators()
	start := s.pos
	if !s.done() && (s.peek() == '+' || s.peek() == '-') {
		s.pos++
	}
	digits := 0
	for !s.done() && isDigit(s.peek()) {
		s.pos++
		digits++
	}
	if !s.done() && s.peek() == '.' {
		s.pos++
		for !s.done() && isDigit(s.peek()) {
			s.pos++
			digits++
		}
	}
	if digits == 0 {
		s.pos = start
		return 0, s.errorf("expected number")
	}
	if !s.done() && (s.peek() == 'e' || s.peek() == 'E') {
		save := s.pos
		s.pos++
		if !s.done() && (s.peek() == '+' || s.peek() == '-') {
			s.pos++
		}
		expDigits := 0
		for !s.done() && isDigit(s.peek()) {
			s.pos++
			expDigits++
		}
		if expDigits == 0 {
			s.pos = save
		}
	}
	text := s.src[start:s.pos]
	x, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(x, 0) {
		s.pos = start
		return 0, s.errorf("invalid number %q", text)
	}
	return x, nil
}

// flag reads an arc flag, which is a single '0' or '1'.
func (s *scanner) flag() (bool, error) {
	s.skipSeparators()
	if s.done() {
		return false, s.errorf("expected flag")
	}
	switch s.peek() {
	case '0':
		s.pos++
		return false, nil
	case '1':
		s.pos++
		return true, nil
	}
	return false, s.errorf("expected flag")
}

func (s *scanner) point() (vec.Vec2, error) {
	x, err := s.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	y, err := s.number()
	if err != nil {
		return vec.Vec2{}, err
	}
	return vec.Vec2{X: x, Y: y}, nil
}

func (s *scanner) points(n int) ([]vec.Vec2, error) {
	pts := make([]vec.Vec2, n)
	for i := range pts {
		p, err := s.point()
		if err != nil {
			return nil, err
		}
		pts[i] = p
	}
	return pts, nil
}

func isCommand(c byte) bool {
	switch c {
	case 'M', 'm', 'L', 'l', 'H', 'h', 'V', 'v', 'C', 'c', 'S', 's',
		'Q', 'q', 'T', 't', 'A', 'a', 'Z', 'z':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}
