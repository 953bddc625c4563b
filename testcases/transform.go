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

var transformCases = []TestCase{
	// ========================================
	// Own transform only
	// ========================================
	{
		Name: "translate",
		Paths: []Path{{
			D:          Data(rectangle(0, 0, 20, 20).Iter()),
			Transforms: []string{"translate(22,22)"},
		}},
		Height:    64,
		UnitScale: 1,
		Lines:     4,
		Layers:    []string{"0"},
	},
	{
		Name: "scale_2x",
		Paths: []Path{{
			D:          Data(rectangle(0, 0, 20, 20).Iter()),
			Transforms: []string{"scale(2)"},
		}},
		Height:    64,
		UnitScale: 1,
		Lines:     4,
		Layers:    []string{"0"},
	},
	{
		Name: "rotate_45deg",
		Paths: []Path{{
			D:          Data(rectangle(-10, -10, 10, 10).Iter()),
			Transforms: []string{"translate(32,32) rotate(45)"},
		}},
		Height:    64,
		UnitScale: 1,
		Lines:     4,
		Layers:    []string{"0"},
	},
	{
		Name: "skew",
		Paths: []Path{{
			D:          Data(rectangle(10, 10, 40, 40).Iter()),
			Transforms: []string{"skewX(20) skewY(-10)"},
		}},
		Height:    64,
		UnitScale: 1,
		Lines:     4,
		Layers:    []string{"0"},
	},

	// ========================================
	// Nested groups
	// ========================================
	{
		Name: "nested_groups",
		Paths: []Path{{
			D:     Data(rectangle(-5, -5, 5, 5).Iter()),
			Layer: "Cut",
			Transforms: []string{
				"rotate(30)",
				"scale(2,1)",
				"translate(32,32)",
			},
		}},
		Height:    64,
		UnitScale: 1,
		Lines:     4,
		Layers:    []string{"Cut"},
	},
	{
		Name: "rotate_about_point",
		Paths: []Path{{
			D:          Data(triangle(30, 20, 40, 40, 20, 40).Iter()),
			Transforms: []string{"rotate(90, 30, 30)", "matrix(1,0,0,1,2,2)"},
		}},
		Height:    64,
		UnitScale: 1,
		Lines:     3,
		Layers:    []string{"0"},
	},
	{
		Name: "curve_under_scale",
		Paths: []Path{{
			D:          Data(circle(0, 0, 1).Iter()),
			Transforms: []string{"scale(20)", "translate(32,32)"},
		}},
		Height:    64,
		UnitScale: 1,
		Lines:     -1,
		Layers:    []string{"0"},
	},
}
