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

// Package flatten approximates cubic outlines by polylines.
//
// Two methods are available.  [Subdivide] recursively splits each segment
// at its parametric midpoint until the control points are within the
// tolerance of the chord.  [Uniform] evaluates each segment at a number of
// equally spaced parameter values, with the count chosen by Wang's formula.
// Both methods are deterministic: flattening the same model twice gives
// bit-identical results.
//
// If a segment cannot be flattened to the requested tolerance, for example
// because of non-finite coordinates or because the recursion limit is
// reached, the tolerance is relaxed by a fixed step and the whole model is
// flattened again.  After MaxRetries unsuccessful attempts a
// *errors.NonConvergenceError is returned.
package flatten

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgdxf/errors"
	"seehuhn.de/go/svgdxf/outline"
)

// Polyline is a sequence of vertices joined by straight lines.
type Polyline []vec.Vec2

// Method selects the flattening algorithm.
type Method int

const (
	// Subdivide splits segments recursively until they are flat.
	Subdivide Method = iota

	// Uniform splits each segment into equal parameter steps.
	Uniform
)

func (m Method) String() string {
	switch m {
	case Subdivide:
		return "subdivide"
	case Uniform:
		return "uniform"
	}
	return "unknown"
}

// Default parameter values.  DefaultTolerance and DefaultRelax are in
// output units (millimetres).
const (
	DefaultTolerance  = 0.1
	DefaultRelax      = 0.1
	DefaultMaxRetries = 10
	DefaultMaxDepth   = 24
)

// NoRetries, used as MaxRetries, disables relaxation: the first failed
// attempt is reported as an error.
const NoRetries = -1

// MaxDepthLimit is the largest usable MaxDepth.  Larger values are
// reduced to this limit.
const MaxDepthLimit = 30

// Flattener holds the flattening parameters.  Zero fields are replaced by
// the package defaults, so the zero value is ready to use.
type Flattener struct {
	// Tolerance is the maximal distance between the curve and the
	// polyline.
	Tolerance float64

	// Relax is added to the tolerance after each failed attempt.
	Relax float64

	// MaxRetries bounds the number of relaxation steps.  Zero selects
	// [DefaultMaxRetries]; use [NoRetries] to disable relaxation.
	MaxRetries int

	// MaxDepth bounds the recursion depth of [Subdivide].  For [Uniform],
	// at most 1<<MaxDepth steps are used per segment.  Values above
	// [MaxDepthLimit] are clamped.
	MaxDepth int

	Method Method
}

// Result is the output of a successful flattening.
type Result struct {
	Polylines []Polyline

	// Tolerance is the tolerance which was finally met.  This is larger
	// than the requested tolerance if relaxation was needed.
	Tolerance float64

	// Retries is the number of relaxation steps taken.
	Retries int
}

// NumLines returns the number of line segments in all polylines.
func (r *Result) NumLines() int {
	n := 0
	for _, pl := range r.Polylines {
		if len(pl) > 1 {
			n += len(pl) - 1
		}
	}
	return n
}

// Flatten converts m to polylines using the default parameters and the
// given tolerance.
func Flatten(m *outline.Model, tolerance float64) ([]Polyline, error) {
	f := &Flattener{Tolerance: tolerance}
	res, err := f.Flatten(m)
	if err != nil {
		return nil, err
	}
	return res.Polylines, nil
}

// Flatten converts every subpath of m with at least two nodes into a
// polyline.  The polylines are returned in subpath order; each consists of
// the anchor points of the accepted, subdivided nodes.
func (f *Flattener) Flatten(m *outline.Model) (*Result, error) {
	p := f.withDefaults()
	if !(p.Tolerance > 0) || math.IsInf(p.Tolerance, 0) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid flattening tolerance %g", f.Tolerance)
	}

	tol := p.Tolerance
	for retry := 0; ; retry++ {
		lines, ok := p.pass(m, tol)
		if ok {
			return &Result{Polylines: lines, Tolerance: tol, Retries: retry}, nil
		}
		if retry >= p.MaxRetries {
			return nil, &errors.NonConvergenceError{Tolerance: tol, Retries: retry}
		}
		tol += p.Relax
	}
}

func (f *Flattener) withDefaults() Flattener {
	p := *f
	if p.Tolerance == 0 {
		p.Tolerance = DefaultTolerance
	}
	if p.Relax <= 0 {
		p.Relax = DefaultRelax
	}
	switch {
	case p.MaxRetries == 0:
		p.MaxRetries = DefaultMaxRetries
	case p.MaxRetries < 0:
		p.MaxRetries = 0
	}
	if p.MaxDepth <= 0 {
		p.MaxDepth = DefaultMaxDepth
	}
	p.MaxDepth = min(p.MaxDepth, MaxDepthLimit)
	return p
}

// pass flattens the whole model at a fixed tolerance.  It reports false if
// any segment could not be certified.
func (f *Flattener) pass(m *outline.Model, tol float64) ([]Polyline, bool) {
	var res []Polyline
	for i := range m.Subpaths {
		sp := &m.Subpaths[i]
		if len(sp.Nodes) < 2 {
			continue
		}
		pl := Polyline{sp.Nodes[0].Anchor}
		for seg := range sp.Segments() {
			if !finite(seg) {
				return nil, false
			}
			var ok bool
			switch f.Method {
			case Uniform:
				pl, ok = f.uniform(seg, tol, pl)
			default:
				pl, ok = f.subdivide(seg[0], seg[1], seg[2], seg[3], tol, 0, pl)
			}
			if !ok {
				return nil, false
			}
		}
		res = append(res, pl)
	}
	return res, true
}

// subdivide appends the end points of a flattened cubic to out.  The start
// point p0 is assumed to be present already.
func (f *Flattener) subdivide(p0, p1, p2, p3 vec.Vec2, tol float64, depth int, out Polyline) (Polyline, bool) {
	if max(distToSegment(p1, p0, p3), distToSegment(p2, p0, p3)) <= tol {
		return append(out, p3), true
	}
	if depth >= f.MaxDepth {
		return out, false
	}

	// de Casteljau at t = 1/2
	m01 := mid(p0, p1)
	m12 := mid(p1, p2)
	m23 := mid(p2, p3)
	m012 := mid(m01, m12)
	m123 := mid(m12, m23)
	m0123 := mid(m012, m123)

	out, ok := f.subdivide(p0, m01, m012, m0123, tol, depth+1, out)
	if !ok {
		return out, false
	}
	return f.subdivide(m0123, m123, m23, p3, tol, depth+1, out)
}

// uniform appends the end points of a flattened cubic to out, using
// equally spaced parameter values.  The number of steps is given by Wang's
// formula, which bounds the distance between curve and polyline by tol.
func (f *Flattener) uniform(seg [4]vec.Vec2, tol float64, out Polyline) (Polyline, bool) {
	p0, p1, p2, p3 := seg[0], seg[1], seg[2], seg[3]

	d1 := p0.Sub(p1.Mul(2)).Add(p2) // P0 - 2*P1 + P2
	d2 := p1.Sub(p2.Mul(2)).Add(p3) // P1 - 2*P2 + P3
	m := max(d1.Length(), d2.Length())

	n := 1
	if m > 0 {
		// n = ceil(sqrt(3 * m / (4 * ε)))
		nFloat := math.Sqrt(3 * m / (4 * tol))
		if nFloat > float64(int(1)<<f.MaxDepth) {
			return out, false
		}
		if nFloat > 1 {
			n = int(math.Ceil(nFloat))
		}
	}

	for i := 1; i <= n; i++ {
		if i == n {
			out = append(out, p3)
			break
		}
		t := float64(i) / float64(n)
		// B(t) = (1-t)³P0 + 3(1-t)²tP1 + 3(1-t)t²P2 + t³P3
		omt := 1 - t
		omt2 := omt * omt
		omt3 := omt2 * omt
		t2 := t * t
		t3 := t2 * t
		pt := p0.Mul(omt3).Add(p1.Mul(3 * omt2 * t)).Add(p2.Mul(3 * omt * t2)).Add(p3.Mul(t3))
		out = append(out, pt)
	}
	return out, true
}

// distToSegment returns the distance from p to the line segment a-b.
func distToSegment(p, a, b vec.Vec2) float64 {
	d := b.Sub(a)
	l2 := d.X*d.X + d.Y*d.Y
	if l2 == 0 {
		return p.Sub(a).Length()
	}
	t := ((p.X-a.X)*d.X + (p.Y-a.Y)*d.Y) / l2
	t = max(0, min(1, t))
	return p.Sub(a.Add(d.Mul(t))).Length()
}

func mid(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

func finite(seg [4]vec.Vec2) bool {
	for _, p := range seg {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) || math.IsInf(p.X, 0) || math.IsInf(p.Y, 0) {
			return false
		}
	}
	return true
}
