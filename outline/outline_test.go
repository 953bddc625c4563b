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

package outline

import (
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgdxf/errors"
)

func TestBuildStructure(t *testing.T) {
	tests := []struct {
		name   string
		d      string
		counts []int // nodes per subpath
		closed []bool
	}{
		{"empty", "", nil, nil},
		{"open polyline", "M0,0 L10,0 L10,10", []int{3}, []bool{false}},
		{"closed triangle", "M0,0 L10,0 L10,10 Z", []int{4}, []bool{true}},
		{"closed at start", "M0,0 L10,0 L0,0 Z", []int{3}, []bool{true}},
		{"two subpaths", "M0,0 L1,0 M5,5 L6,5 L6,6", []int{2, 3}, []bool{false, false}},
		{"lone moveto", "M3,3", []int{1}, []bool{false}},
		{"draw after close", "M0,0 L1,0 L1,1 Z L5,5", []int{4, 2}, []bool{true, false}},
		{"cubic", "M0,0 C0,10 10,10 10,0", []int{2}, []bool{false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Build(tt.d)
			if err != nil {
				t.Fatal(err)
			}
			if len(m.Subpaths) != len(tt.counts) {
				t.Fatalf("got %d subpaths, want %d", len(m.Subpaths), len(tt.counts))
			}
			if got := m.Counts(); !slices.Equal(got, tt.counts) {
				t.Errorf("Counts() = %v, want %v", got, tt.counts)
			}
			for i, sp := range m.Subpaths {
				if len(sp.Nodes) != tt.counts[i] {
					t.Errorf("subpath %d: got %d nodes, want %d", i, len(sp.Nodes), tt.counts[i])
				}
				if sp.Closed != tt.closed[i] {
					t.Errorf("subpath %d: closed = %v, want %v", i, sp.Closed, tt.closed[i])
				}
			}
		})
	}
}

func TestBuildError(t *testing.T) {
	_, err := Build("M0,0 L1")
	if !errors.Is(err, errors.ErrCodeParse) {
		t.Errorf("Build error = %v, want parse error", err)
	}
}

func TestCubicControls(t *testing.T) {
	m, err := Build("M0,0 C1,2 3,4 5,6")
	if err != nil {
		t.Fatal(err)
	}
	nodes := m.Subpaths[0].Nodes
	if nodes[0].Out != (vec.Vec2{X: 1, Y: 2}) {
		t.Errorf("first Out = %v, want (1,2)", nodes[0].Out)
	}
	if nodes[1].In != (vec.Vec2{X: 3, Y: 4}) || nodes[1].Anchor != (vec.Vec2{X: 5, Y: 6}) {
		t.Errorf("second node = %+v", nodes[1])
	}
}

func TestQuadraticElevation(t *testing.T) {
	p := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		QuadTo(vec.Vec2{X: 3, Y: 3}, vec.Vec2{X: 6, Y: 0})
	m := FromPath(p)
	nodes := m.Subpaths[0].Nodes
	near := func(a, b vec.Vec2) bool {
		return a.Sub(b).Length() < 1e-12
	}
	if !near(nodes[0].Out, vec.Vec2{X: 2, Y: 2}) {
		t.Errorf("Out = %v, want (2,2)", nodes[0].Out)
	}
	if !near(nodes[1].In, vec.Vec2{X: 4, Y: 2}) {
		t.Errorf("In = %v, want (4,2)", nodes[1].In)
	}
}

func TestTransformPreservesStructure(t *testing.T) {
	m, err := Build("M0,0 L10,0 L10,10 Z M20,20 C25,20 30,25 30,30")
	if err != nil {
		t.Fatal(err)
	}
	before, err := Build("M0,0 L10,0 L10,10 Z M20,20 C25,20 30,25 30,30")
	if err != nil {
		t.Fatal(err)
	}
	m.Transform(matrix.Matrix{2, 0, 0, -1, 1, 100})

	if len(m.Subpaths) != len(before.Subpaths) {
		t.Fatalf("subpath count changed: %d -> %d", len(before.Subpaths), len(m.Subpaths))
	}
	for i := range m.Subpaths {
		if len(m.Subpaths[i].Nodes) != len(before.Subpaths[i].Nodes) {
			t.Errorf("subpath %d node count changed", i)
		}
	}
	got := m.Subpaths[0].Nodes[1].Anchor
	if want := (vec.Vec2{X: 21, Y: 100}); got != want {
		t.Errorf("transformed anchor = %v, want %v", got, want)
	}
	if m.NumNodes() != before.NumNodes() {
		t.Errorf("NumNodes = %d, want %d", m.NumNodes(), before.NumNodes())
	}
}

func TestRoughBBox(t *testing.T) {
	m, err := Build("M0,0 C0,20 10,20 10,0")
	if err != nil {
		t.Fatal(err)
	}
	box, ok := m.RoughBBox()
	if !ok {
		t.Fatal("RoughBBox reported an empty model")
	}
	// the control points are included, so the box reaches y=20 although
	// the curve itself only reaches y=15
	want := rect.Rect{LLx: 0, LLy: 0, URx: 10, URy: 20}
	if box != want {
		t.Errorf("RoughBBox = %v, want %v", box, want)
	}
	c, _ := m.Center()
	if c != (vec.Vec2{X: 5, Y: 10}) {
		t.Errorf("Center = %v, want (5,10)", c)
	}

	if _, ok := (&Model{}).RoughBBox(); ok {
		t.Error("empty model reported a bounding box")
	}
}
