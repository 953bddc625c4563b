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

// Package outline holds paths as sequences of cubic Bézier nodes.
//
// A [Model] consists of subpaths, each an ordered list of [Node] values.
// A node stores an anchor point together with the incoming and outgoing
// control points, so that consecutive nodes a, b describe the cubic segment
// (a.Anchor, a.Out, b.In, b.Anchor).  Straight segments have their control
// points on the anchors.
package outline

import (
	"iter"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgdxf/internal/pathdata"
	"seehuhn.de/go/svgdxf/transform"
)

// Node is one vertex of a cubic outline.
type Node struct {
	In     vec.Vec2 // incoming control point
	Anchor vec.Vec2 // on-curve point
	Out    vec.Vec2 // outgoing control point
}

// corner returns a node with both control points on the anchor.
func corner(p vec.Vec2) Node {
	return Node{In: p, Anchor: p, Out: p}
}

// Subpath is a connected sequence of nodes.
type Subpath struct {
	Nodes []Node

	// Closed is set if the subpath was closed in the path data.  The
	// closing segment is represented by an explicit final node, so
	// consumers do not need to treat closed subpaths specially.
	Closed bool
}

// Segments iterates over the cubic segments of the subpath.  Each segment
// is given as start point, two control points and end point.
func (sp *Subpath) Segments() iter.Seq[[4]vec.Vec2] {
	return func(yield func([4]vec.Vec2) bool) {
		for i := 1; i < len(sp.Nodes); i++ {
			a, b := &sp.Nodes[i-1], &sp.Nodes[i]
			if !yield([4]vec.Vec2{a.Anchor, a.Out, b.In, b.Anchor}) {
				return
			}
		}
	}
}

// Model is a path made of cubic outline subpaths.
type Model struct {
	Subpaths []Subpath
}

// Build parses SVG path data into a model.  Malformed path data is
// reported as a *errors.ParseError.
func Build(d string) (*Model, error) {
	p, err := pathdata.Parse(d)
	if err != nil {
		return nil, err
	}
	return FromPath(p), nil
}

// FromPath converts a path into a model.  Quadratic segments are raised to
// cubics.  A close command appends a straight segment back to the start of
// the subpath, unless the current point is already there.
func FromPath(p *path.Data) *Model {
	m := &Model{}

	var current Subpath
	var startPt vec.Vec2
	inSubpath := false

	flush := func() {
		if inSubpath {
			m.Subpaths = append(m.Subpaths, current)
		}
		current = Subpath{}
		inSubpath = false
	}
	// ensure makes sure there is an open subpath; drawing commands after a
	// close continue from the start point of the closed subpath.
	ensure := func() {
		if !inSubpath {
			current = Subpath{Nodes: []Node{corner(startPt)}}
			inSubpath = true
		}
	}
	last := func() *Node {
		return &current.Nodes[len(current.Nodes)-1]
	}

	coordIdx := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			startPt = p.Coords[coordIdx]
			current = Subpath{Nodes: []Node{corner(startPt)}}
			inSubpath = true
			coordIdx++

		case path.CmdLineTo:
			ensure()
			current.Nodes = append(current.Nodes, corner(p.Coords[coordIdx]))
			coordIdx++

		case path.CmdQuadTo:
			ensure()
			prev := last()
			ctrl, end := p.Coords[coordIdx], p.Coords[coordIdx+1]
			// degree elevation: C1 = P0 + 2/3 (Q - P0), C2 = P2 + 2/3 (Q - P2)
			prev.Out = prev.Anchor.Add(ctrl.Sub(prev.Anchor).Mul(2.0 / 3.0))
			current.Nodes = append(current.Nodes, Node{
				In:     end.Add(ctrl.Sub(end).Mul(2.0 / 3.0)),
				Anchor: end,
				Out:    end,
			})
			coordIdx += 2

		case path.CmdCubeTo:
			ensure()
			last().Out = p.Coords[coordIdx]
			current.Nodes = append(current.Nodes, Node{
				In:     p.Coords[coordIdx+1],
				Anchor: p.Coords[coordIdx+2],
				Out:    p.Coords[coordIdx+2],
			})
			coordIdx += 3

		case path.CmdClose:
			if inSubpath {
				// No closing node is added when the subpath already ends
				// at its start, so closed outlines yield no zero-length
				// final segment.
				if last().Anchor != startPt {
					current.Nodes = append(current.Nodes, corner(startPt))
				}
				current.Closed = true
				flush()
			}
		}
	}
	flush()

	return m
}

// Transform maps every point of every node through t, in place.  The
// number of subpaths and nodes is unchanged.
func (m *Model) Transform(t matrix.Matrix) {
	if transform.IsIdentity(t) {
		return
	}
	for i := range m.Subpaths {
		nodes := m.Subpaths[i].Nodes
		for j := range nodes {
			n := &nodes[j]
			n.In = transform.Apply(t, n.In)
			n.Anchor = transform.Apply(t, n.Anchor)
			n.Out = transform.Apply(t, n.Out)
		}
	}
}

// RoughBBox returns the axis-aligned box around all anchor and control
// points.  This contains the curve but may be larger than its exact
// bounding box.  The second return value is false if the model has no
// nodes.
func (m *Model) RoughBBox() (rect.Rect, bool) {
	var box rect.Rect
	first := true
	for i := range m.Subpaths {
		for _, n := range m.Subpaths[i].Nodes {
			for _, p := range [3]vec.Vec2{n.In, n.Anchor, n.Out} {
				if first {
					box = rect.Rect{LLx: p.X, LLy: p.Y, URx: p.X, URy: p.Y}
					first = false
					continue
				}
				box.LLx = min(box.LLx, p.X)
				box.LLy = min(box.LLy, p.Y)
				box.URx = max(box.URx, p.X)
				box.URy = max(box.URy, p.Y)
			}
		}
	}
	return box, !first
}

// Center returns the center of the rough bounding box.
func (m *Model) Center() (vec.Vec2, bool) {
	box, ok := m.RoughBBox()
	if !ok {
		return vec.Vec2{}, false
	}
	return vec.Vec2{X: (box.LLx + box.URx) / 2, Y: (box.LLy + box.URy) / 2}, true
}

// NumNodes returns the total number of nodes in all subpaths.
func (m *Model) NumNodes() int {
	n := 0
	for i := range m.Subpaths {
		n += len(m.Subpaths[i].Nodes)
	}
	return n
}

// Counts returns the number of nodes in each subpath.
func (m *Model) Counts() []int {
	res := make([]int, len(m.Subpaths))
	for i := range m.Subpaths {
		res[i] = len(m.Subpaths[i].Nodes)
	}
	return res
}
