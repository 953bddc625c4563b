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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
)

var complexCases = []TestCase{
	{
		Name: "panel",
		Paths: []Path{
			on("Outline", roundedRectangle(2, 2, 60, 40, 4)),
			on("Holes drill", circle(8, 8, 1.5)),
			on("Engrave", spiral(32, 22, 2, 12, 3)),
			on("Holes drill", circle(56, 8, 1.5)),
			on("", rectangle(20, 30, 44, 36)),
		},
		Height:    64,
		UnitScale: 1,
		Lines:     -1,
		Points:    2,
		Layers:    []string{"Outline", "Holes drill", "Engrave", "0"},
	},
	{
		Name: "same_layer_unicode",
		Paths: []Path{
			on("Café", rectangle(0, 0, 10, 10)),
			on("Café", rectangle(20, 0, 30, 10)),
		},
		Height:    64,
		UnitScale: 1,
		Lines:     8,
		Layers:    []string{"Café"},
	},
	{
		Name: "mixed_lines_curves",
		Paths: []Path{
			{D: "M10,50 L20,10 Q32,0 44,10 L54,50 C44,60 20,60 10,50 Z", Layer: "Cut"},
		},
		Height:    64,
		UnitScale: 1,
		Lines:     -1,
		Layers:    []string{"Cut"},
	},
}

// roundedRectangle builds a rectangle with rounded corners of radius r.
func roundedRectangle(x, y, w, h, r float64) *path.Data {
	k := r * kappa
	return (&path.Data{}).
		MoveTo(pt(x+r, y)).
		LineTo(pt(x+w-r, y)).
		CubeTo(pt(x+w-r+k, y), pt(x+w, y+r-k), pt(x+w, y+r)).
		LineTo(pt(x+w, y+h-r)).
		CubeTo(pt(x+w, y+h-r+k), pt(x+w-r+k, y+h), pt(x+w-r, y+h)).
		LineTo(pt(x+r, y+h)).
		CubeTo(pt(x+r-k, y+h), pt(x, y+h-r+k), pt(x, y+h-r)).
		LineTo(pt(x, y+r)).
		CubeTo(pt(x, y+r-k), pt(x+r-k, y), pt(x+r, y)).
		Close()
}

// spiral builds an open spiral from quarter-turn cubic segments.
func spiral(cx, cy, rMin, rMax float64, turns float64) *path.Data {
	steps := int(turns * 4)
	dr := (rMax - rMin) / float64(steps)

	at := func(i int) (float64, float64) {
		return rMin + float64(i)*dr, float64(i) * math.Pi / 2
	}
	r, a := at(0)
	p := (&path.Data{}).MoveTo(pt(cx+r*math.Cos(a), cy+r*math.Sin(a)))
	for i := 1; i <= steps; i++ {
		r0, a0 := at(i - 1)
		r1, a1 := at(i)
		p0 := pt(cx+r0*math.Cos(a0), cy+r0*math.Sin(a0))
		p1 := pt(cx+r1*math.Cos(a1), cy+r1*math.Sin(a1))
		// tangent directions
		t0 := pt(-math.Sin(a0), math.Cos(a0)).Mul(r0 * kappa)
		t1 := pt(-math.Sin(a1), math.Cos(a1)).Mul(r1 * kappa)
		p = p.CubeTo(p0.Add(t0), p1.Sub(t1), p1)
	}
	return p
}
