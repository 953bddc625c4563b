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
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase defines a single conversion test.
type TestCase struct {
	Name      string  // lowercase a-z, 0-9 and _ only
	Paths     []Path  // the input paths, in document order
	Height    float64 // document height in user units
	UnitScale float64 // millimetres per user unit
	Legacy    bool    // use the legacy unit scale

	Lines  int      // expected number of LINE entities, -1 if not checked
	Points int      // expected number of POINT entities
	Layers []string // expected layer table
}

// Path is one input path.
type Path struct {
	D          string   // SVG path data
	Layer      string   // layer name, empty for the default layer
	Transforms []string // transform attributes, innermost first
}

// PathData returns the SVG path data of the path.
func (p Path) PathData() string {
	return p.D
}

// Data formats a path as SVG path data.
func Data(p path.Path) string {
	var b strings.Builder
	for cmd, pts := range p {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		switch cmd {
		case path.CmdMoveTo:
			b.WriteByte('M')
		case path.CmdLineTo:
			b.WriteByte('L')
		case path.CmdQuadTo:
			b.WriteByte('Q')
		case path.CmdCubeTo:
			b.WriteByte('C')
		case path.CmdClose:
			b.WriteByte('Z')
		}
		for i, pt := range pts {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(strconv.FormatFloat(pt.X, 'g', -1, 64))
			b.WriteByte(',')
			b.WriteString(strconv.FormatFloat(pt.Y, 'g', -1, 64))
		}
	}
	return b.String()
}

// on returns a path on the given layer.
func on(layer string, p *path.Data) Path {
	return Path{D: Data(p.Iter()), Layer: layer}
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
