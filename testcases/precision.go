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

var precisionCases = []TestCase{
	{
		Name:      "tiny_shape",
		Paths:     []Path{on("", rectangle(1, 1, 1.000001, 1.000001))},
		Height:    2,
		UnitScale: 1,
		Lines:     4,
		Layers:    []string{"0"},
	},
	{
		// The flipped y-coordinate of the top edge is zero.
		Name:      "top_edge",
		Paths:     []Path{{D: "M0,64 L64,64"}},
		Height:    64,
		UnitScale: 1,
		Lines:     1,
		Layers:    []string{"0"},
	},
	{
		Name:      "large_offset",
		Paths:     []Path{on("", rectangle(1e6, 1e6, 1e6+10, 1e6+10))},
		Height:    2e6,
		UnitScale: 1,
		Lines:     4,
		Layers:    []string{"0"},
	},
	{
		Name:      "legacy_units",
		Paths:     []Path{on("", rectangle(0, 0, 90, 90))},
		Height:    90,
		Legacy:    true,
		Lines:     4,
		Layers:    []string{"0"},
	},
	{
		Name:      "millimetre_document",
		Paths:     []Path{on("", rectangle(0, 0, 96, 96))},
		Height:    96,
		UnitScale: 25.4 / 96,
		Lines:     4,
		Layers:    []string{"0"},
	},
	{
		Name:      "exponent_notation",
		Paths:     []Path{{D: "M1e1,2E1 L3.5e+1,4e1 l-1.5e1-2e1"}},
		Height:    64,
		UnitScale: 1,
		Lines:     2,
		Layers:    []string{"0"},
	},
}
