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

// Package preview renders converted drawings as grayscale images.
//
// Lines are drawn as strokes of fixed width with the selected cap style.
// Points, which mark drill holes, are drawn as filled discs.  The drawing
// is black on white, with the y-axis pointing up as in the DXF output.
package preview

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/svgdxf/dxf"
	"seehuhn.de/go/svgdxf/errors"
)

// Default parameter values.
const (
	DefaultDotsPerMM = 4.0
	DefaultLineWidth = 0.25 // mm
	DefaultMargin    = 2.0  // mm

	// maxPixels limits the size of the generated image.
	maxPixels = 1 << 26
)

// Options controls the rendering.  Zero values select the defaults.
type Options struct {
	DotsPerMM float64
	LineWidth float64 // stroke width in mm
	Margin    float64 // border around the drawing in mm

	Cap graphics.LineCapStyle

	// PointRadius is the radius of the disc drawn for POINT entities, in
	// mm.  The default is twice the line width.
	PointRadius float64
}

// Bounds returns the bounding box of the entities.  The second return
// value is false if there are no entities.
func Bounds(ents []dxf.Entity) (rect.Rect, bool) {
	if len(ents) == 0 {
		return rect.Rect{}, false
	}
	box := rect.Rect{
		LLx: math.Inf(1), LLy: math.Inf(1),
		URx: math.Inf(-1), URy: math.Inf(-1),
	}
	for _, e := range ents {
		for _, p := range [2]vec.Vec2{e.Start, e.End} {
			box.LLx = min(box.LLx, p.X)
			box.LLy = min(box.LLy, p.Y)
			box.URx = max(box.URx, p.X)
			box.URy = max(box.URy, p.Y)
		}
	}
	return box, true
}

// Render draws the entities into a new image.
func Render(ents []dxf.Entity, opt *Options) (*image.Gray, error) {
	o := withDefaults(opt)

	box, ok := Bounds(ents)
	if !ok {
		box = rect.Rect{}
	}
	pad := o.Margin + max(o.LineWidth, o.PointRadius)
	wMM := box.URx - box.LLx + 2*pad
	hMM := box.URy - box.LLy + 2*pad
	w := int(math.Ceil(wMM * o.DotsPerMM))
	h := int(math.Ceil(hMM * o.DotsPerMM))
	if w <= 0 || h <= 0 || float64(w)*float64(h) > maxPixels {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"preview of %.1fx%.1f mm at %g dots/mm is too large", wMM, hMM, o.DotsPerMM)
	}

	c := &canvas{
		r: vector.NewRasterizer(w, h),
		toDevice: func(p vec.Vec2) (float32, float32) {
			x := (p.X - box.LLx + pad) * o.DotsPerMM
			y := (box.URy + pad - p.Y) * o.DotsPerMM
			return float32(x), float32(y)
		},
	}
	halfWidth := o.LineWidth / 2
	for _, e := range ents {
		switch e.Kind {
		case dxf.KindLine:
			c.stroke(e.Start, e.End, halfWidth, o.Cap)
		case dxf.KindPoint:
			c.disc(e.Start, o.PointRadius)
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	c.r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	img := image.NewGray(mask.Bounds())
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	for i, a := range mask.Pix {
		img.Pix[i] = 255 - a
	}
	return img, nil
}

func withDefaults(opt *Options) Options {
	var o Options
	if opt != nil {
		o = *opt
	}
	if !(o.DotsPerMM > 0) {
		o.DotsPerMM = DefaultDotsPerMM
	}
	if !(o.LineWidth > 0) {
		o.LineWidth = DefaultLineWidth
	}
	if !(o.Margin > 0) {
		o.Margin = DefaultMargin
	}
	if !(o.PointRadius > 0) {
		o.PointRadius = 2 * o.LineWidth
	}
	return o
}

// canvas collects polygons in device space.  All polygons are emitted
// with the same orientation, so that overlapping shapes do not cancel.
type canvas struct {
	r        *vector.Rasterizer
	toDevice func(vec.Vec2) (float32, float32)
}

func (c *canvas) polygon(pts ...vec.Vec2) {
	for i, p := range pts {
		x, y := c.toDevice(p)
		if i == 0 {
			c.r.MoveTo(x, y)
		} else {
			c.r.LineTo(x, y)
		}
	}
	c.r.ClosePath()
}

// stroke draws the line from a to b with half width hw.
func (c *canvas) stroke(a, b vec.Vec2, hw float64, capStyle graphics.LineCapStyle) {
	d := b.Sub(a)
	l := d.Length()
	if l == 0 {
		// a zero-length line only shows its caps
		switch capStyle {
		case graphics.LineCapRound:
			c.disc(a, hw)
		case graphics.LineCapSquare:
			c.polygon(
				vec.Vec2{X: a.X - hw, Y: a.Y + hw},
				vec.Vec2{X: a.X + hw, Y: a.Y + hw},
				vec.Vec2{X: a.X + hw, Y: a.Y - hw},
				vec.Vec2{X: a.X - hw, Y: a.Y - hw},
			)
		}
		return
	}

	u := d.Mul(1 / l)
	n := vec.Vec2{X: -u.Y, Y: u.X}.Mul(hw)
	if capStyle == graphics.LineCapSquare {
		a = a.Sub(u.Mul(hw))
		b = b.Add(u.Mul(hw))
	}
	c.polygon(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))

	if capStyle == graphics.LineCapRound {
		c.disc(a, hw)
		c.disc(b, hw)
	}
}

// disc draws a filled circle, approximated by a polygon.
func (c *canvas) disc(center vec.Vec2, r float64) {
	const n = 24
	pts := make([]vec.Vec2, n)
	for i := range n {
		// clockwise, to match the orientation of the stroke quads
		phi := -2 * math.Pi * float64(i) / n
		pts[i] = vec.Vec2{X: center.X + r*math.Cos(phi), Y: center.Y + r*math.Sin(phi)}
	}
	c.polygon(pts...)
}
