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

var lineCases = []TestCase{
	{
		Name:      "open_polyline",
		Paths:     []Path{{D: "M0,0 L10,0 L10,10"}},
		Height:    100,
		UnitScale: 1,
		Lines:     2,
		Layers:    []string{"0"},
	},
	{
		Name:      "triangle",
		Paths:     []Path{on("", triangle(10, 50, 32, 10, 54, 50))},
		Height:    64,
		UnitScale: 1,
		Lines:     3,
		Layers:    []string{"0"},
	},
	{
		Name:      "star",
		Paths:     []Path{on("Cut", fivePointStar(32, 32, 25))},
		Height:    64,
		UnitScale: 1,
		Lines:     5,
		Layers:    []string{"Cut"},
	},
	{
		Name:      "rectangle",
		Paths:     []Path{on("Cut", rectangle(10, 10, 44, 44))},
		Height:    64,
		UnitScale: 0.5,
		Lines:     4,
		Layers:    []string{"Cut"},
	},
	{
		Name:      "relative_commands",
		Paths:     []Path{{D: "m10,10 h20 v20 h-20 z"}},
		Height:    64,
		UnitScale: 1,
		Lines:     4,
		Layers:    []string{"0"},
	},
	{
		Name:      "zigzag",
		Paths:     []Path{on("Engrave", zigzag(5, 32, 59, 10, 8))},
		Height:    64,
		UnitScale: 1,
		Lines:     8,
		Layers:    []string{"Engrave"},
	},
	{
		Name:      "single_point",
		Paths:     []Path{{D: "M5,5"}},
		Height:    64,
		UnitScale: 1,
		Lines:     0,
		Layers:    []string{"0"},
	},
}

// triangle builds a closed triangular path.
func triangle(x1, y1, x2, y2, x3, y3 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x3, y3)).
		Close()
}

// fivePointStar builds a five-pointed star (self-intersecting).
func fivePointStar(cx, cy, r float64) *path.Data {
	p := &path.Data{}
	// draw star: 0 -> 2 -> 4 -> 1 -> 3 -> 0
	for k, i := range []int{0, 2, 4, 1, 3} {
		angle := float64(i)*2*math.Pi/5 - math.Pi/2
		v := pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
		if k == 0 {
			p = p.MoveTo(v)
		} else {
			p = p.LineTo(v)
		}
	}
	return p.Close()
}

// rectangle builds a closed rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// zigzag builds an open path with n segments alternating above and below
// the line y = cy.
func zigzag(x1, cy, x2, amplitude float64, n int) *path.Data {
	p := (&path.Data{}).MoveTo(pt(x1, cy))
	dx := (x2 - x1) / float64(n)
	for i := 1; i <= n; i++ {
		y := cy + amplitude
		if i%2 == 0 {
			y = cy - amplitude
		}
		if i == n {
			y = cy
		}
		p = p.LineTo(pt(x1+float64(i)*dx, y))
	}
	return p
}
