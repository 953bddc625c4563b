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

// Package svgdoc reads the paths of an Inkscape SVG file.
//
// The document is read with a streaming XML decoder.  For every path
// element, the package records the path data, the transform attributes of
// the path and all enclosing elements, and the label of the enclosing
// group, which serves as the layer name.  A [Document] provides these in
// the form expected by [svgdxf.Convert].
package svgdoc

import (
	"encoding/xml"
	"io"
	"iter"
	"strings"

	"seehuhn.de/go/svgdxf"
	"seehuhn.de/go/svgdxf/errors"
	"seehuhn.de/go/svgdxf/layers"
)

// Namespace URLs used in Inkscape files.
const (
	svgNS      = "http://www.w3.org/2000/svg"
	inkscapeNS = "http://www.inkscape.org/namespaces/inkscape"
)

// legacyRootID is the id Inkscape 0.x gave to the root element.
const legacyRootID = "svg2"

// Path is one path element of the document.
type Path struct {
	ID string
	D  string

	// Layer is the inkscape:label of the parent element, or the empty
	// string.
	Layer string

	// Transforms lists the transform attributes of the path and of its
	// ancestors, innermost first.
	Transforms []string
}

// PathData returns the path data of the path.
func (p *Path) PathData() string {
	return p.D
}

// Document holds the paths and the size information of an SVG file.
type Document struct {
	// RootID is the id attribute of the root element.
	RootID string

	// Width and Height are the size attributes of the root element.
	// Missing attributes are represented by the zero value.
	Width, Height Length

	// ViewBox is the viewBox attribute of the root element, as
	// min-x, min-y, width, height.  HasViewBox is false if the attribute
	// is missing or malformed.
	ViewBox    [4]float64
	HasViewBox bool

	Paths []*Path
}

// skipped lists elements whose contents are not drawn directly.
var skipped = map[string]bool{
	"defs":     true,
	"clipPath": true,
	"mask":     true,
	"marker":   true,
	"pattern":  true,
	"symbol":   true,
	"metadata": true,
}

// Parse reads an SVG document.
func Parse(r io.Reader) (*Document, error) {
	type frame struct {
		transform string
		label     string
		skip      bool
	}

	doc := &Document{}
	dec := xml.NewDecoder(r)
	var stack []frame
	seenRoot := false

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed SVG")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if !seenRoot {
				if t.Name.Local != "svg" || (t.Name.Space != "" && t.Name.Space != svgNS) {
					return nil, errors.New(errors.ErrCodeInvalidInput, "root element is <%s>, not <svg>", t.Name.Local)
				}
				seenRoot = true
				doc.readRoot(t.Attr)
			}

			f := frame{
				transform: strings.TrimSpace(attr(t.Attr, "", "transform")),
				label:     inkscapeLabel(t.Attr),
				skip:      skipped[t.Name.Local],
			}
			if len(stack) > 0 && stack[len(stack)-1].skip {
				f.skip = true
			}

			if t.Name.Local == "path" && !f.skip {
				p := &Path{
					ID: attr(t.Attr, "", "id"),
					D:  attr(t.Attr, "", "d"),
				}
				if len(stack) > 0 {
					p.Layer = stack[len(stack)-1].label
				}
				if f.transform != "" {
					p.Transforms = append(p.Transforms, f.transform)
				}
				for i := len(stack) - 1; i >= 0; i-- {
					if stack[i].transform != "" {
						p.Transforms = append(p.Transforms, stack[i].transform)
					}
				}
				doc.Paths = append(doc.Paths, p)
			}
			stack = append(stack, f)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	if !seenRoot {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no <svg> element found")
	}
	return doc, nil
}

func (doc *Document) readRoot(attrs []xml.Attr) {
	doc.RootID = attr(attrs, "", "id")
	if l, err := ParseLength(attr(attrs, "", "width")); err == nil {
		doc.Width = l
	}
	if l, err := ParseLength(attr(attrs, "", "height")); err == nil {
		doc.Height = l
	}
	if vb, ok := parseViewBox(attr(attrs, "", "viewBox")); ok {
		doc.ViewBox = vb
		doc.HasViewBox = true
	}
}

// Legacy reports whether the document was written by an old Inkscape
// version, which used 90 user units per inch.  This is assumed if the root
// element has the id "svg2", or if the document specifies neither a
// viewBox nor an absolute width.
func (doc *Document) Legacy() bool {
	if doc.RootID == legacyRootID {
		return true
	}
	return !doc.HasViewBox && !doc.Width.IsAbsolute()
}

// Metadata returns the document height and the unit scale.
func (doc *Document) Metadata() svgdxf.Metadata {
	if doc.Legacy() {
		return svgdxf.Metadata{
			Height:         doc.heightIn(legacyUserUnit),
			LegacyUnitMode: true,
		}
	}

	if doc.HasViewBox && doc.ViewBox[2] > 0 {
		scale := pxInMM
		if doc.Width.IsAbsolute() {
			scale = doc.Width.MM() / doc.ViewBox[2]
		}
		return svgdxf.Metadata{Height: doc.ViewBox[3], UnitScale: scale}
	}

	// no viewBox: user units are CSS pixels
	return svgdxf.Metadata{Height: doc.heightIn(pxInMM), UnitScale: pxInMM}
}

// heightIn returns the document height in user units of the given size.
func (doc *Document) heightIn(userUnitMM float64) float64 {
	if doc.Height.IsAbsolute() {
		return doc.Height.MM() / userUnitMM
	}
	if doc.Height.Unit == "" {
		return doc.Height.Value
	}
	if doc.HasViewBox {
		return doc.ViewBox[3]
	}
	return 0
}

// Nodes returns the paths in document order.
func (doc *Document) Nodes() iter.Seq[svgdxf.PathNode] {
	return func(yield func(svgdxf.PathNode) bool) {
		for _, p := range doc.Paths {
			if !yield(p) {
				return
			}
		}
	}
}

// TransformsOf returns the transforms which apply to a path of the
// document.  If the viewBox does not start at the origin, a translation
// is appended as the outermost transform.
func (doc *Document) TransformsOf(n svgdxf.PathNode) []string {
	p, ok := n.(*Path)
	if !ok {
		return nil
	}
	if doc.HasViewBox && (doc.ViewBox[0] != 0 || doc.ViewBox[1] != 0) && !doc.Legacy() {
		res := make([]string, len(p.Transforms), len(p.Transforms)+1)
		copy(res, p.Transforms)
		return append(res, "translate("+formatNumber(-doc.ViewBox[0])+","+formatNumber(-doc.ViewBox[1])+")")
	}
	return p.Transforms
}

// LayerOf returns the layer name of a path of the document.
func LayerOf(n svgdxf.PathNode) string {
	if p, ok := n.(*Path); ok {
		return p.Layer
	}
	return ""
}

// Layers returns the layer names in order of first use, with
// [layers.DefaultName] for paths outside a labelled group.
func (doc *Document) Layers() []string {
	reg := &layers.Registry{}
	for _, p := range doc.Paths {
		reg.Register(p.Layer)
	}
	return reg.Names()
}

// Convert converts the document to DXF.
func (doc *Document) Convert(opt *svgdxf.Options) (*svgdxf.Result, error) {
	return svgdxf.ConvertDetailed(doc.Nodes(), doc.TransformsOf, LayerOf, doc.Metadata(), opt)
}

func attr(attrs []xml.Attr, space, local string) string {
	for _, a := range attrs {
		if a.Name.Local == local && a.Name.Space == space {
			return a.Value
		}
	}
	return ""
}

// inkscapeLabel returns the inkscape:label attribute.  Files without a
// namespace declaration for the prefix are accepted as well.
func inkscapeLabel(attrs []xml.Attr) string {
	for _, a := range attrs {
		if a.Name.Local == "label" && (a.Name.Space == inkscapeNS || a.Name.Space == "inkscape") {
			return a.Value
		}
	}
	return ""
}

func parseViewBox(s string) ([4]float64, bool) {
	var res [4]float64
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != 4 {
		return res, false
	}
	for i, f := range fields {
		l, err := ParseLength(f)
		if err != nil || l.Unit != "" {
			return res, false
		}
		res[i] = l.Value
	}
	if res[2] < 0 || res[3] < 0 {
		return res, false
	}
	return res, true
}
