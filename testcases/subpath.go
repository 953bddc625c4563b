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

import "seehuhn.de/go/geom/path"

var subpathCases = []TestCase{
	{
		Name:      "two_triangles",
		Paths:     []Path{on("", twoTriangles(16, 32, 48, 32, 10))},
		Height:    64,
		UnitScale: 1,
		Lines:     6,
		Layers:    []string{"0"},
	},
	{
		Name:      "ring",
		Paths:     []Path{on("Cut", ringShape(32, 32, 40, 20))},
		Height:    64,
		UnitScale: 1,
		Lines:     8,
		Layers:    []string{"Cut"},
	},
	{
		Name:      "isolated_movetos",
		Paths:     []Path{{D: "M1,1 M2,2 L3,3 M4,4"}},
		Height:    64,
		UnitScale: 1,
		Lines:     1,
		Layers:    []string{"0"},
	},
	{
		// Drawing after a close continues from the start of the closed
		// subpath.
		Name:      "draw_after_close",
		Paths:     []Path{{D: "M10,10 L20,10 L20,20 Z L30,30"}},
		Height:    64,
		UnitScale: 1,
		Lines:     4,
		Layers:    []string{"0"},
	},
	{
		Name:      "many_small_shapes",
		Paths:     []Path{on("", manySmallShapes(8, 8))},
		Height:    128,
		UnitScale: 1,
		Lines:     8 * 8 * 3,
		Layers:    []string{"0"},
	},
}

// twoTriangles builds two separate, disjoint triangles.
func twoTriangles(cx1, cy1, cx2, cy2 float64, size float64) *path.Data {
	p := &path.Data{}
	for _, c := range [][2]float64{{cx1, cy1}, {cx2, cy2}} {
		p = p.
			MoveTo(pt(c[0], c[1]-size)).
			LineTo(pt(c[0]+size, c[1]+size)).
			LineTo(pt(c[0]-size, c[1]+size)).
			Close()
	}
	return p
}

// ringShape builds a square ring: an outer square and an inner square
// with opposite orientation.
func ringShape(cx, cy, outerSize, innerSize float64) *path.Data {
	o := outerSize / 2
	i := innerSize / 2
	return (&path.Data{}).
		MoveTo(pt(cx-o, cy-o)).
		LineTo(pt(cx+o, cy-o)).
		LineTo(pt(cx+o, cy+o)).
		LineTo(pt(cx-o, cy+o)).
		Close().
		MoveTo(pt(cx-i, cy-i)).
		LineTo(pt(cx-i, cy+i)).
		LineTo(pt(cx+i, cy+i)).
		LineTo(pt(cx+i, cy-i)).
		Close()
}

// manySmallShapes builds a grid of small triangles, one subpath each.
func manySmallShapes(rows, cols int) *path.Data {
	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			x := 8 + float64(col)*14
			y := 8 + float64(row)*14
			p = p.
				MoveTo(pt(x, y)).
				LineTo(pt(x+10, y)).
				LineTo(pt(x+5, y+10)).
				Close()
		}
	}
	return p
}
