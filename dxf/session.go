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

// Package dxf writes line drawings in the AutoCAD DXF exchange format.
//
// A [Session] owns the output buffer, the entity handle counter and the
// list of emitted entities for one drawing.  The parts of the file must be
// written in order: header, layer table, blocks, entities, footer.  Calls
// out of order fail with an INVALID_STATE error and leave the session
// unchanged.
package dxf

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/svgdxf/errors"
	"seehuhn.de/go/svgdxf/layers"
)

// State is the position of a session within the file structure.
type State int

const (
	Init State = iota
	HeaderWritten
	LayersWritten
	BlocksWritten
	EntityWritten
	FooterWritten
	Finalized
)

func (s State) String() string {
	switch s {
	case Init:
		return "init"
	case HeaderWritten:
		return "header written"
	case LayersWritten:
		return "layers written"
	case BlocksWritten:
		return "blocks written"
	case EntityWritten:
		return "entity written"
	case FooterWritten:
		return "footer written"
	case Finalized:
		return "finalized"
	}
	return "State(" + strconv.Itoa(int(s)) + ")"
}

// Default styling values.  Colors are AutoCAD color indices.
const (
	DefaultEntityColor = 4 // cyan
	DefaultLayerColor  = 7 // white/black

	// FirstHandle is the value of the handle counter before the first
	// entity.  The counter is incremented before each entity, so the first
	// entity gets handle 0x100.
	FirstHandle = 255

	// layerHandleBase is the handle of the first layer record.
	layerHandleBase = 0x10
)

// Options configures a session.  Zero values select the defaults.
type Options struct {
	Templates   *Templates
	EntityColor int
	LayerColor  int
}

// Kind is the type of a drawing entity.
type Kind string

const (
	KindLine  Kind = "LINE"
	KindPoint Kind = "POINT"
)

// Entity records one emitted drawing entity.  For points, End equals
// Start.
type Entity struct {
	Kind   Kind
	Layer  string
	Handle uint64
	Start  vec.Vec2
	End    vec.Vec2
}

// Session accumulates one DXF drawing in memory.
type Session struct {
	buf   bytes.Buffer
	state State

	tmpl        Templates
	entityColor string
	layerColor  string

	handle   uint64
	layers   *layers.Registry
	entities []Entity
}

// NewSession returns a session in the [Init] state.  A nil opt selects the
// default templates and colors.
func NewSession(opt *Options) *Session {
	if opt == nil {
		opt = &Options{}
	}
	s := &Session{
		tmpl:        DefaultTemplates(),
		entityColor: strconv.Itoa(DefaultEntityColor),
		layerColor:  strconv.Itoa(DefaultLayerColor),
		handle:      FirstHandle,
	}
	if opt.Templates != nil {
		s.tmpl = *opt.Templates
	}
	if opt.EntityColor != 0 {
		s.entityColor = strconv.Itoa(opt.EntityColor)
	}
	if opt.LayerColor != 0 {
		s.layerColor = strconv.Itoa(opt.LayerColor)
	}
	return s
}

// State returns the current state of the session.
func (s *Session) State() State {
	return s.state
}

// Handle returns the handle of the most recently emitted entity.  Before
// the first entity this is [FirstHandle].
func (s *Session) Handle() uint64 {
	return s.handle
}

// Entities returns the entities emitted so far.  The returned slice must
// not be modified.
func (s *Session) Entities() []Entity {
	return s.entities
}

// Layers returns the names written to the layer table.
func (s *Session) Layers() []string {
	if s.layers == nil {
		return nil
	}
	return s.layers.Names()
}

func (s *Session) expect(op string, allowed ...State) error {
	for _, st := range allowed {
		if s.state == st {
			return nil
		}
	}
	return errors.New(errors.ErrCodeInvalidState, "dxf: %s not allowed in state %q", op, s.state)
}

// WriteHeader writes the provenance comment and the header template.  An
// empty comment is omitted.
func (s *Session) WriteHeader(comment string) error {
	if err := s.expect("WriteHeader", Init); err != nil {
		return err
	}
	if comment != "" {
		s.pair(999, comment)
	}
	s.buf.WriteString(s.tmpl.Header)
	s.state = HeaderWritten
	return nil
}

// WriteLayers writes the layer table, one record per registered layer in
// registration order, and closes the TABLES section.  Only these layers may
// be used by entities.
func (s *Session) WriteLayers(reg *layers.Registry) error {
	if err := s.expect("WriteLayers", HeaderWritten); err != nil {
		return err
	}

	names := reg.Names()

	s.pair(0, "TABLE")
	s.pair(2, "LAYER")
	s.pair(5, "2")
	s.pair(330, "0")
	s.pair(100, "AcDbSymbolTable")
	s.pair(70, strconv.Itoa(len(names)))
	for i, name := range names {
		s.pair(0, "LAYER")
		s.pair(5, strconv.FormatUint(uint64(layerHandleBase+i), 16))
		s.pair(330, "2")
		s.pair(100, "AcDbSymbolTableRecord")
		s.pair(100, "AcDbLayerTableRecord")
		s.pair(2, name)
		s.pair(70, "0")
		s.pair(62, s.layerColor)
		s.pair(6, "CONTINUOUS")
	}
	s.pair(0, "ENDTAB")
	s.pair(0, "ENDSEC")

	// Keep entity handles clear of the layer records.
	if last := uint64(layerHandleBase + len(names) - 1); len(names) > 0 && last > s.handle {
		s.handle = last
	}

	s.layers = layers.New(names...)
	s.state = LayersWritten
	return nil
}

// WriteBlocks writes the blocks template, which opens the entity section.
func (s *Session) WriteBlocks() error {
	if err := s.expect("WriteBlocks", LayersWritten); err != nil {
		return err
	}
	s.buf.WriteString(s.tmpl.Blocks)
	s.state = BlocksWritten
	return nil
}

func (s *Session) checkEntity(op, layer string, pts ...vec.Vec2) (string, error) {
	if err := s.expect(op, BlocksWritten, EntityWritten); err != nil {
		return "", err
	}
	name := layers.Normalize(layer)
	if !s.layers.Contains(name) {
		return "", errors.New(errors.ErrCodeInvalidInput, "dxf: layer %q missing from layer table", name)
	}
	for _, p := range pts {
		if !isFinite(p.X) || !isFinite(p.Y) {
			return "", errors.New(errors.ErrCodeInvalidInput, "dxf: non-finite coordinate %v", p)
		}
	}
	return name, nil
}

// Line writes a LINE entity from a to b.
func (s *Session) Line(layer string, a, b vec.Vec2) error {
	name, err := s.checkEntity("Line", layer, a, b)
	if err != nil {
		return err
	}

	s.handle++
	s.pair(0, string(KindLine))
	s.pair(8, name)
	s.pair(62, s.entityColor)
	s.pair(5, strconv.FormatUint(s.handle, 16))
	s.pair(100, "AcDbEntity")
	s.pair(100, "AcDbLine")
	s.pair(10, formatCoord(a.X))
	s.pair(20, formatCoord(a.Y))
	s.pair(30, "0.0")
	s.pair(11, formatCoord(b.X))
	s.pair(21, formatCoord(b.Y))
	s.pair(31, "0.0")

	s.entities = append(s.entities, Entity{Kind: KindLine, Layer: name, Handle: s.handle, Start: a, End: b})
	s.state = EntityWritten
	return nil
}

// Point writes a POINT entity at p.
func (s *Session) Point(layer string, p vec.Vec2) error {
	name, err := s.checkEntity("Point", layer, p)
	if err != nil {
		return err
	}

	s.handle++
	s.pair(0, string(KindPoint))
	s.pair(8, name)
	s.pair(62, s.entityColor)
	s.pair(5, strconv.FormatUint(s.handle, 16))
	s.pair(100, "AcDbEntity")
	s.pair(100, "AcDbPoint")
	s.pair(10, formatCoord(p.X))
	s.pair(20, formatCoord(p.Y))
	s.pair(30, "0.0")

	s.entities = append(s.entities, Entity{Kind: KindPoint, Layer: name, Handle: s.handle, Start: p, End: p})
	s.state = EntityWritten
	return nil
}

// WriteFooter writes the footer template.
func (s *Session) WriteFooter() error {
	if err := s.expect("WriteFooter", BlocksWritten, EntityWritten); err != nil {
		return err
	}
	s.buf.WriteString(s.tmpl.Footer)
	s.state = FooterWritten
	return nil
}

// Finalize ends the session and returns the complete drawing as UTF-8
// text.  No further calls are possible afterwards.
func (s *Session) Finalize() ([]byte, error) {
	if err := s.expect("Finalize", FooterWritten); err != nil {
		return nil, err
	}
	s.state = Finalized
	out := bytes.Clone(s.buf.Bytes())
	s.buf = bytes.Buffer{}
	return out, nil
}

var valueCleaner = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// pair appends one group code/value pair.  Values cannot span lines.
func (s *Session) pair(code int, value string) {
	fmt.Fprintf(&s.buf, "%d\n%s\n", code, valueCleaner.Replace(value))
}

// formatCoord formats a coordinate with six decimals, writing values which
// round to zero without a minus sign.
func formatCoord(x float64) string {
	out := strconv.FormatFloat(x, 'f', 6, 64)
	if out == "-0.000000" {
		out = "0.000000"
	}
	return out
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
