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

// Package transform parses, composes and applies 2D affine transformations.
//
// Matrices use the [matrix.Matrix] layout of seehuhn.de/go/geom: a point
// (x, y) is mapped to (M[0]*x + M[2]*y + M[4], M[1]*x + M[3]*y + M[5]).
package transform

import (
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// LegacyUnitScale converts user units of documents written by old (0.x)
// Inkscape versions to millimetres.  These documents assume 90 dpi.
const LegacyUnitScale = 25.4 / 90.0

// Compose returns the matrix which applies inner first and then outer.
func Compose(outer, inner matrix.Matrix) matrix.Matrix {
	return matrix.Matrix{
		outer[0]*inner[0] + outer[2]*inner[1],
		outer[1]*inner[0] + outer[3]*inner[1],
		outer[0]*inner[2] + outer[2]*inner[3],
		outer[1]*inner[2] + outer[3]*inner[3],
		outer[0]*inner[4] + outer[2]*inner[5] + outer[4],
		outer[1]*inner[4] + outer[3]*inner[5] + outer[5],
	}
}

// Apply maps p through m, including the translation part.
func Apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// Global returns the document normalization transform.  It scales user
// units by unitScale and flips the y-axis, shifting by the scaled document
// height, so that a top-down document maps to a bottom-up drawing.
func Global(height, unitScale float64) matrix.Matrix {
	return matrix.Matrix{unitScale, 0, 0, -unitScale, 0, height * unitScale}
}

// UnitScale selects the user unit to millimetre factor.  If legacy is set,
// or if the document does not provide a usable factor, [LegacyUnitScale]
// is used.
func UnitScale(mmPerUserUnit float64, legacy bool) float64 {
	if legacy || !(mmPerUserUnit > 0) || math.IsInf(mmPerUserUnit, 0) {
		return LegacyUnitScale
	}
	return mmPerUserUnit
}

// Resolve parses a chain of transform attributes and composes them.  The
// texts are ordered from the innermost scope (the element's own transform)
// to the outermost ancestor.  Empty texts are skipped.  The global
// normalization is not included; see [Chain].
func Resolve(texts []string) (matrix.Matrix, error) {
	m := matrix.Identity
	for _, text := range texts {
		t, err := Parse(text)
		if err != nil {
			return matrix.Matrix{}, err
		}
		m = Compose(t, m)
	}
	return m, nil
}

// Chain resolves texts like [Resolve] and applies global last.
func Chain(texts []string, global matrix.Matrix) (matrix.Matrix, error) {
	m, err := Resolve(texts)
	if err != nil {
		return matrix.Matrix{}, err
	}
	return Compose(global, m), nil
}

// IsIdentity reports whether m is the identity transformation.
func IsIdentity(m matrix.Matrix) bool {
	return m == matrix.Identity
}
