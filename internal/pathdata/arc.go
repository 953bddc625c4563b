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

package pathdata

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// arcTo appends an SVG elliptical arc from p0 to p1 as a sequence of cubic
// Bézier segments, each spanning at most a quarter turn.  The conversion
// follows the endpoint to center parameterization of SVG 1.1, appendix F.6.
func arcTo(res *path.Data, p0, p1 vec.Vec2, rx, ry, phiDeg float64, large, sweep bool) {
	if p0 == p1 {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		res.LineTo(p1)
		return
	}

	sinPhi, cosPhi := math.Sincos(phiDeg * math.Pi / 180)

	// step 1: compute (x1', y1')
	dx := (p0.X - p1.X) / 2
	dy := (p0.Y - p1.Y) / 2
	x1 := cosPhi*dx + sinPhi*dy
	y1 := -sinPhi*dx + cosPhi*dy

	// scale up radii which are too small
	lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	// step 2: compute (cx', cy')
	num := rx*rx*ry*ry - rx*rx*y1*y1 - ry*ry*x1*x1
	den := rx*rx*y1*y1 + ry*ry*x1*x1
	coef := 0.0
	if den > 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if large == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	// step 3: compute (cx, cy)
	cx := cosPhi*cx1 - sinPhi*cy1 + (p0.X+p1.X)/2
	cy := sinPhi*cx1 + cosPhi*cy1 + (p0.Y+p1.Y)/2

	// step 4: compute the start angle and the sweep
	theta1 := vecAngle(1, 0, (x1-cx1)/rx, (y1-cy1)/ry)
	delta := vecAngle((x1-cx1)/rx, (y1-cy1)/ry, (-x1-cx1)/rx, (-y1-cy1)/ry)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}

	n := int(math.Ceil(math.Abs(delta) / (math.Pi / 2)))
	if n < 1 {
		n = 1
	}
	step := delta / float64(n)
	k := 4.0 / 3.0 * math.Tan(step/4)

	ellipse := func(theta float64) (pt, deriv vec.Vec2) {
		sinT, cosT := math.Sincos(theta)
		pt = vec.Vec2{
			X: cx + rx*cosT*cosPhi - ry*sinT*sinPhi,
			Y: cy + rx*cosT*sinPhi + ry*sinT*cosPhi,
		}
		deriv = vec.Vec2{
			X: -rx*sinT*cosPhi - ry*cosT*sinPhi,
			Y: -rx*sinT*sinPhi + ry*cosT*cosPhi,
		}
		return pt, deriv
	}

	theta := theta1
	from, dFrom := ellipse(theta)
	for i := range n {
		theta += step
		to, dTo := ellipse(theta)
		if i == n-1 {
			to = p1 // avoid round-off at the end point
		}
		res.CubeTo(from.Add(dFrom.Mul(k)), to.Sub(dTo.Mul(k)), to)
		from, dFrom = to, dTo
	}
}

// vecAngle returns the signed angle from (ux, uy) to (vx, vy).
func vecAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}
