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
	"fmt"

	"seehuhn.de/go/geom/path"
)

var largeCases = []TestCase{
	{
		Name:      "rectangle_grid",
		Paths:     []Path{on("", rectangleGrid(16, 16, 512, 512, 4))},
		Height:    512,
		UnitScale: 1,
		Lines:     16 * 16 * 4,
		Layers:    []string{"0"},
	},
	{
		Name:      "many_layers",
		Paths:     layeredSquares(300),
		Height:    1000,
		UnitScale: 1,
		Lines:     300 * 4,
		Layers:    layerNames(300),
	},
	{
		Name:      "large_circle",
		Paths:     []Path{on("Cut", circle(500, 500, 480))},
		Height:    1000,
		UnitScale: 1,
		Lines:     -1,
		Layers:    []string{"Cut"},
	},
}

// rectangleGrid builds a grid of rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width) / float64(cols)
	cellH := float64(height) / float64(rows)

	p := &path.Data{}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap

			p = p.
				MoveTo(pt(x1, y1)).
				LineTo(pt(x2, y1)).
				LineTo(pt(x2, y2)).
				LineTo(pt(x1, y2)).
				Close()
		}
	}
	return p
}

// layeredSquares returns n squares, each on its own layer.
func layeredSquares(n int) []Path {
	names := layerNames(n)
	res := make([]Path, n)
	for i := range n {
		x := float64(i%30) * 33
		y := float64(i/30) * 33
		res[i] = on(names[i], rectangle(x, y, x+30, y+30))
	}
	return res
}

func layerNames(n int) []string {
	res := make([]string, n)
	for i := range n {
		res[i] = fmt.Sprintf("layer %03d", i)
	}
	return res
}
