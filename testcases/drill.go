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

var drillCases = []TestCase{
	{
		Name:      "single_hole",
		Paths:     []Path{{D: "M0,0 L10,0 L10,10", Layer: "HolesDrill"}},
		Height:    100,
		UnitScale: 1,
		Points:    1,
		Layers:    []string{"HolesDrill"},
	},
	{
		Name: "circles",
		Paths: []Path{
			on("Mounting drill", circle(10, 10, 1.5)),
			on("Mounting drill", circle(54, 10, 1.5)),
			on("Mounting drill", circle(10, 54, 1.5)),
			on("Mounting drill", circle(54, 54, 1.5)),
		},
		Height:    64,
		UnitScale: 1,
		Points:    4,
		Layers:    []string{"Mounting drill"},
	},
	{
		Name: "mixed_case",
		Paths: []Path{
			on("DRILL", rectangle(4, 4, 6, 6)),
			on("pcb_Drill", rectangle(14, 4, 16, 6)),
			on("drill bits", rectangle(24, 4, 26, 6)),
		},
		Height:    64,
		UnitScale: 1,
		Lines:     4,
		Points:    2,
		Layers:    []string{"DRILL", "pcb_Drill", "drill bits"},
	},
	{
		// complex outlines still give a single point
		Name:      "complex_outline",
		Paths:     []Path{on("drill", fivePointStar(32, 32, 20))},
		Height:    64,
		UnitScale: 1,
		Points:    1,
		Layers:    []string{"drill"},
	},
	{
		Name: "with_transform",
		Paths: []Path{{
			D:          Data(circle(0, 0, 2).Iter()),
			Layer:      "Holes drill",
			Transforms: []string{"translate(20,30)"},
		}},
		Height:    64,
		UnitScale: 1,
		Points:    1,
		Layers:    []string{"Holes drill"},
	},
}
