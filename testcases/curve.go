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

// kappa is the control point distance for approximating a quarter circle
// of radius 1 with a cubic Bezier curve.
const kappa = 0.5522847498307936

var curveCases = []TestCase{
	{
		Name:      "circle",
		Paths:     []Path{on("Cut", circle(32, 32, 20))},
		Height:    64,
		UnitScale: 1,
		Lines:     -1,
		Layers:    []string{"Cut"},
	},
	{
		Name:      "ellipse",
		Paths:     []Path{on("Cut", ellipse(32, 32, 28, 12))},
		Height:    64,
		UnitScale: 1,
		Lines:     -1,
		Layers:    []string{"Cut"},
	},
	{
		Name:      "cubic_open",
		Paths:     []Path{on("", cubicCurveOpen(5, 50, 20, 0, 44, 64, 59, 14))},
		Height:    64,
		UnitScale: 1,
		Lines:     -1,
		Layers:    []string{"0"},
	},
	{
		Name:      "quadratic_s_curve",
		Paths:     []Path{on("", sCurveQuadratic(8, 32, 56, 32))},
		Height:    64,
		UnitScale: 1,
		Lines:     -1,
		Layers:    []string{"0"},
	},
	{
		Name:      "svg_arc",
		Paths:     []Path{{D: "M10,32 A22,22 0 1,1 54,32 A22,10 30 0,0 10,32 Z"}},
		Height:    64,
		UnitScale: 1,
		Lines:     -1,
		Layers:    []string{"0"},
	},
	{
		Name:      "smooth_cubic",
		Paths:     []Path{{D: "M4,32 C4,8 28,8 28,32 S52,56 52,32 s12,-24 12,0"}},
		Height:    64,
		UnitScale: 1,
		Lines:     -1,
		Layers:    []string{"0"},
	},
	{
		// A cubic whose control points lie on the chord is already flat.
		Name:      "collinear_cubic",
		Paths:     []Path{{D: "M0,10 C10,10 20,10 30,10"}},
		Height:    20,
		UnitScale: 1,
		Lines:     1,
		Layers:    []string{"0"},
	},
}

// cubicCurveOpen builds an open path with a cubic Bezier curve.
func cubicCurveOpen(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2))
}

// sCurveQuadratic builds a closed S-shaped path from two quadratic Bezier curves.
func sCurveQuadratic(x1, y1, x2, y2 float64) *path.Data {
	midX := (x1 + x2) / 2
	midY := (y1 + y2) / 2

	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+midX)/2, y1-20), pt(midX, midY)).
		QuadTo(pt((midX+x2)/2, y2+20), pt(x2, y2)).
		Close()
}

// circle builds an approximate circle using four cubic Bezier curves.
func circle(cx, cy, r float64) *path.Data {
	return ellipse(cx, cy, r, r)
}

// ellipse builds an approximate ellipse using four cubic Bezier curves.
func ellipse(cx, cy, rx, ry float64) *path.Data {
	kx := rx * kappa
	ky := ry * kappa

	return (&path.Data{}).
		MoveTo(pt(cx+rx, cy)).                                     // start at right
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)). // top-right quadrant
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)). // top-left quadrant
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)). // bottom-left quadrant
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)). // bottom-right quadrant
		Close()
}
