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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgdxf/errors"
)

const eps = 1e-9

func closeTo(a, b vec.Vec2) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps
}

func TestParse(t *testing.T) {
	tests := []struct {
		text string
		in   vec.Vec2
		want vec.Vec2
	}{
		{"", vec.Vec2{X: 3, Y: 4}, vec.Vec2{X: 3, Y: 4}},
		{"translate(10)", vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 11, Y: 1}},
		{"translate(10, -5)", vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 11, Y: -4}},
		{"translate(10 -5)", vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 11, Y: -4}},
		{"scale(2)", vec.Vec2{X: 1, Y: 3}, vec.Vec2{X: 2, Y: 6}},
		{"scale(2,3)", vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 2, Y: 3}},
		{"rotate(90)", vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 0, Y: 1}},
		{"rotate(90, 1, 1)", vec.Vec2{X: 2, Y: 1}, vec.Vec2{X: 1, Y: 2}},
		{"skewX(45)", vec.Vec2{X: 0, Y: 1}, vec.Vec2{X: 1, Y: 1}},
		{"skewY(45)", vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 1, Y: 1}},
		{"matrix(1,0,0,1,5,6)", vec.Vec2{}, vec.Vec2{X: 5, Y: 6}},
		{"matrix(1e0 0 0 1 .5 -6E-1)", vec.Vec2{}, vec.Vec2{X: 0.5, Y: -0.6}},
		// rightmost function acts first: scale, then translate
		{"translate(10,0) scale(2)", vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 12, Y: 2}},
		{"scale(2),translate(10,0)", vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 22, Y: 2}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			m, err := Parse(tt.text)
			if err != nil {
				t.Fatalf("Parse(%q): %v", tt.text, err)
			}
			if got := Apply(m, tt.in); !closeTo(got, tt.want) {
				t.Errorf("Apply(%q, %v) = %v, want %v", tt.text, tt.in, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"foo(1)",
		"translate(1,2,3)",
		"matrix(1,2,3)",
		"rotate(1,2)",
		"scale(x)",
		"scale(1",
		"scale 1",
		"translate(1) )",
		"skewX()",
		"scale(NaN)",
	}
	for _, text := range bad {
		t.Run(text, func(t *testing.T) {
			_, err := Parse(text)
			if err == nil {
				t.Fatalf("Parse(%q) succeeded, want error", text)
			}
			if !errors.Is(err, errors.ErrCodeParse) {
				t.Errorf("Parse(%q) error %v is not a parse error", text, err)
			}
		})
	}
}

func TestCompose(t *testing.T) {
	outer := matrix.Matrix{1, 0, 0, 1, 10, 0} // translate
	inner := matrix.Matrix{2, 0, 0, 2, 0, 0}  // scale
	p := vec.Vec2{X: 1, Y: 1}

	got := Apply(Compose(outer, inner), p)
	want := Apply(outer, Apply(inner, p))
	if !closeTo(got, want) {
		t.Errorf("Compose: got %v, want %v", got, want)
	}
	if closeTo(Apply(Compose(inner, outer), p), want) {
		t.Error("Compose is unexpectedly commutative for translate/scale")
	}
}

func TestComposeAssociative(t *testing.T) {
	a := matrix.Matrix{1, 2, 3, 4, 5, 6}
	b := matrix.Matrix{0, 1, -1, 0, 2, 3}
	c := matrix.Matrix{2, 0, 0.5, 1, -1, 7}
	left := Compose(Compose(a, b), c)
	right := Compose(a, Compose(b, c))
	for i := range left {
		if math.Abs(left[i]-right[i]) > eps {
			t.Fatalf("not associative: %v vs %v", left, right)
		}
	}
}

func TestGlobalOrigin(t *testing.T) {
	for _, tc := range []struct{ h, s float64 }{{100, 1}, {297, 25.4 / 96}, {50, LegacyUnitScale}} {
		g := Global(tc.h, tc.s)
		got := Apply(g, vec.Vec2{})
		want := vec.Vec2{X: 0, Y: tc.h * tc.s}
		if !closeTo(got, want) {
			t.Errorf("Global(%g, %g) maps origin to %v, want %v", tc.h, tc.s, got, want)
		}
	}
}

// TestChainOrder checks that a rotation and a non-uniform scale composed
// in different orders give different results, and that the global
// transform is applied last.
func TestChainOrder(t *testing.T) {
	global := Global(100, 1)
	ab, err := Chain([]string{"rotate(90)", "scale(2,1)"}, global)
	if err != nil {
		t.Fatal(err)
	}
	ba, err := Chain([]string{"scale(2,1)", "rotate(90)"}, global)
	if err != nil {
		t.Fatal(err)
	}

	p := vec.Vec2{X: 1, Y: 0}
	// own rotate first: (1,0) -> (0,1) -> scale -> (0,1) -> flip -> (0,99)
	if got, want := Apply(ab, p), (vec.Vec2{X: 0, Y: 99}); !closeTo(got, want) {
		t.Errorf("rotate then scale: got %v, want %v", got, want)
	}
	// own scale first: (1,0) -> (2,0) -> rotate -> (0,2) -> flip -> (0,98)
	if got, want := Apply(ba, p), (vec.Vec2{X: 0, Y: 98}); !closeTo(got, want) {
		t.Errorf("scale then rotate: got %v, want %v", got, want)
	}
}

func TestChainError(t *testing.T) {
	_, err := Chain([]string{"translate(1)", "bogus(2)"}, matrix.Identity)
	if !errors.Is(err, errors.ErrCodeParse) {
		t.Errorf("Chain error = %v, want parse error", err)
	}
}

func TestUnitScale(t *testing.T) {
	tests := []struct {
		in     float64
		legacy bool
		want   float64
	}{
		{0.5, false, 0.5},
		{0.5, true, LegacyUnitScale},
		{0, false, LegacyUnitScale},
		{-1, false, LegacyUnitScale},
		{math.NaN(), false, LegacyUnitScale},
		{math.Inf(1), false, LegacyUnitScale},
	}
	for _, tt := range tests {
		if got := UnitScale(tt.in, tt.legacy); got != tt.want {
			t.Errorf("UnitScale(%g, %v) = %g, want %g", tt.in, tt.legacy, got, tt.want)
		}
	}
}
