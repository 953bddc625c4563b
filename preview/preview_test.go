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

package preview

import (
	"image"
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/svgdxf/dxf"
	"seehuhn.de/go/svgdxf/errors"
)

func line(x0, y0, x1, y1 float64) dxf.Entity {
	return dxf.Entity{
		Kind:  dxf.KindLine,
		Start: vec.Vec2{X: x0, Y: y0},
		End:   vec.Vec2{X: x1, Y: y1},
	}
}

// pixel returns the gray value at the device position of p.
func pixel(img *image.Gray, opt *Options, ents []dxf.Entity, p vec.Vec2) uint8 {
	o := withDefaults(opt)
	box, _ := Bounds(ents)
	pad := o.Margin + max(o.LineWidth, o.PointRadius)
	x := int((p.X - box.LLx + pad) * o.DotsPerMM)
	y := int((box.URy + pad - p.Y) * o.DotsPerMM)
	return img.GrayAt(x, y).Y
}

func TestRenderLine(t *testing.T) {
	ents := []dxf.Entity{line(0, 0, 20, 0)}
	opt := &Options{DotsPerMM: 10, LineWidth: 1, Margin: 1}
	img, err := Render(ents, opt)
	if err != nil {
		t.Fatal(err)
	}

	// width: 20mm + 2*(1+2)mm padding
	if b := img.Bounds(); b.Dx() != 260 {
		t.Errorf("image width %d, want 260", b.Dx())
	}
	if v := pixel(img, opt, ents, vec.Vec2{X: 10, Y: 0}); v > 10 {
		t.Errorf("line center is %d, want black", v)
	}
	if v := pixel(img, opt, ents, vec.Vec2{X: 10, Y: 1.5}); v < 245 {
		t.Errorf("background is %d, want white", v)
	}
	// butt caps end at the end points
	if v := pixel(img, opt, ents, vec.Vec2{X: 20.3, Y: 0}); v < 245 {
		t.Errorf("beyond butt cap: %d, want white", v)
	}
}

func TestCaps(t *testing.T) {
	ents := []dxf.Entity{line(0, 0, 20, 0)}
	for _, c := range []graphics.LineCapStyle{graphics.LineCapRound, graphics.LineCapSquare} {
		t.Run(c.String(), func(t *testing.T) {
			opt := &Options{DotsPerMM: 10, LineWidth: 1, Cap: c}
			img, err := Render(ents, opt)
			if err != nil {
				t.Fatal(err)
			}
			if v := pixel(img, opt, ents, vec.Vec2{X: 20.3, Y: 0}); v > 10 {
				t.Errorf("cap not drawn: %d", v)
			}
			// the square cap covers the corner, the round cap does not
			corner := pixel(img, opt, ents, vec.Vec2{X: 20.45, Y: 0.45})
			if c == graphics.LineCapSquare && corner > 10 {
				t.Errorf("square cap corner: %d", corner)
			}
			if c == graphics.LineCapRound && corner < 200 {
				t.Errorf("round cap corner: %d", corner)
			}
		})
	}
}

func TestOverlapDoesNotCancel(t *testing.T) {
	ents := []dxf.Entity{line(0, 0, 10, 0), line(10, 0, 0, 0)}
	opt := &Options{DotsPerMM: 10, LineWidth: 1}
	img, err := Render(ents, opt)
	if err != nil {
		t.Fatal(err)
	}
	if v := pixel(img, opt, ents, vec.Vec2{X: 5, Y: 0}); v > 10 {
		t.Errorf("overlapping lines gave %d, want black", v)
	}
}

func TestRenderPoint(t *testing.T) {
	ents := []dxf.Entity{
		line(0, 0, 10, 10),
		{Kind: dxf.KindPoint, Start: vec.Vec2{X: 10, Y: 0}, End: vec.Vec2{X: 10, Y: 0}},
	}
	opt := &Options{DotsPerMM: 10, PointRadius: 1}
	img, err := Render(ents, opt)
	if err != nil {
		t.Fatal(err)
	}
	if v := pixel(img, opt, ents, vec.Vec2{X: 10, Y: 0}); v > 10 {
		t.Errorf("point center is %d", v)
	}
	if v := pixel(img, opt, ents, vec.Vec2{X: 10, Y: 1.5}); v < 245 {
		t.Errorf("outside point is %d", v)
	}
}

func TestTooLarge(t *testing.T) {
	ents := []dxf.Entity{line(0, 0, 1e6, 1e6)}
	_, err := Render(ents, &Options{DotsPerMM: 100})
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("got %v", err)
	}
}

func TestEmpty(t *testing.T) {
	img, err := Render(nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	for _, v := range img.Pix {
		if v != 255 {
			t.Fatal("empty drawing is not white")
		}
	}
}
