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

// Package svgdxf converts vector outlines to DXF line drawings.
//
// The host supplies the paths of a document, together with functions which
// return the transform attributes and the layer name of each path.  Every
// path is mapped to output units (millimetres, with the y-axis pointing
// up), approximated by straight lines and written as LINE entities.  Paths
// on layers whose name ends in "drill" are instead reduced to a single
// POINT entity at the center of the path, for use by CNC drilling
// machines.
//
// The conversion is all-or-nothing: if any path cannot be converted, no
// output is produced.
package svgdxf

//go:generate go run ./testcases/export

import (
	"fmt"
	"io"
	"iter"

	"github.com/charmbracelet/log"

	"seehuhn.de/go/svgdxf/dxf"
	"seehuhn.de/go/svgdxf/errors"
	"seehuhn.de/go/svgdxf/flatten"
	"seehuhn.de/go/svgdxf/layers"
	"seehuhn.de/go/svgdxf/outline"
	"seehuhn.de/go/svgdxf/transform"
)

// PathNode is one path of the input document.
type PathNode interface {
	// PathData returns the path in SVG path data syntax.
	PathData() string
}

// TransformResolver returns the transform attributes which apply to a
// path, starting with the path's own transform and followed by those of
// its ancestors, innermost first.  Missing attributes are omitted.
type TransformResolver func(PathNode) []string

// LayerResolver returns the layer name of a path, or the empty string if
// the path belongs to no named layer.
type LayerResolver func(PathNode) string

// Metadata describes the document as a whole.
type Metadata struct {
	// Height is the document height in user units.
	Height float64

	// UnitScale is the size of one user unit in millimetres.  It is
	// ignored if LegacyUnitMode is set, or if it is not positive.
	UnitScale float64

	// LegacyUnitMode selects the fixed scale 25.4/90 used by old Inkscape
	// documents, which assumed 90 user units per inch.
	LegacyUnitMode bool
}

// Options controls the conversion.  The zero value selects the defaults.
type Options struct {
	// Tolerance is the maximal distance in millimetres between a curve and
	// the lines approximating it.
	Tolerance float64

	// Relax, MaxRetries and MaxDepth control the behaviour when a curve
	// cannot be flattened to the requested tolerance.  See
	// [flatten.Flattener].
	Relax      float64
	MaxRetries int
	MaxDepth   int

	Method flatten.Method

	// EntityColor and LayerColor are AutoCAD color indices.
	EntityColor int
	LayerColor  int

	// DrillSuffix is the layer name suffix which selects point output.
	// The comparison ignores case.  The default is "drill".
	DrillSuffix string

	// Templates, if set, replaces the built-in DXF boilerplate.
	Templates *dxf.Templates

	// Encoding is the output encoding, "utf-8" (default) or "cp1252".
	Encoding string

	// Version and RunID are included in the provenance comment of the
	// output file.
	Version string
	RunID   string

	// Logger receives debug messages.  If nil, nothing is logged.
	Logger *log.Logger
}

// Result describes a finished conversion.
type Result struct {
	// Data is the encoded DXF file.
	Data []byte

	// Entities lists the emitted entities in output order.
	Entities []dxf.Entity

	// Layers lists the layer names in the order of the layer table.
	Layers []string

	Lines  int
	Points int

	// Relaxed counts the paths which needed a relaxed tolerance.
	Relaxed int
}

// Convert converts the given paths to a DXF file.
func Convert(paths iter.Seq[PathNode], tr TransformResolver, lr LayerResolver, meta Metadata, opt *Options) ([]byte, error) {
	res, err := ConvertDetailed(paths, tr, lr, meta, opt)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

// ConvertDetailed is like [Convert], but also returns the emitted
// entities and some statistics.
//
// The path sequence is read exactly once.
func ConvertDetailed(paths iter.Seq[PathNode], tr TransformResolver, lr LayerResolver, meta Metadata, opt *Options) (*Result, error) {
	if opt == nil {
		opt = &Options{}
	}
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	drillSuffix := opt.DrillSuffix
	if drillSuffix == "" {
		drillSuffix = layers.DefaultDrillSuffix
	}

	// first pass: collect the paths and discover the layers
	type job struct {
		node  PathNode
		layer string
	}
	var jobs []job
	reg := &layers.Registry{}
	for node := range paths {
		var name string
		if lr != nil {
			name = lr(node)
		}
		jobs = append(jobs, job{node: node, layer: reg.Register(name)})
	}

	scale := transform.UnitScale(meta.UnitScale, meta.LegacyUnitMode)
	global := transform.Global(meta.Height, scale)
	logger.Debug("starting conversion",
		"paths", len(jobs), "layers", reg.Count(), "scale", scale, "height", meta.Height)

	sess := dxf.NewSession(&dxf.Options{
		Templates:   opt.Templates,
		EntityColor: opt.EntityColor,
		LayerColor:  opt.LayerColor,
	})
	if err := sess.WriteHeader(provenance(opt, meta.LegacyUnitMode)); err != nil {
		return nil, err
	}
	if err := sess.WriteLayers(reg); err != nil {
		return nil, err
	}
	if err := sess.WriteBlocks(); err != nil {
		return nil, err
	}

	f := &flatten.Flattener{
		Tolerance:  opt.Tolerance,
		Relax:      opt.Relax,
		MaxRetries: opt.MaxRetries,
		MaxDepth:   opt.MaxDepth,
		Method:     opt.Method,
	}

	res := &Result{}

	// second pass: geometry
	for i, j := range jobs {
		var texts []string
		if tr != nil {
			texts = tr(j.node)
		}
		m, err := transform.Chain(texts, global)
		if err != nil {
			return nil, pathError(err, i, j.layer)
		}
		model, err := outline.Build(j.node.PathData())
		if err != nil {
			return nil, pathError(err, i, j.layer)
		}
		model.Transform(m)

		if layers.HasSuffixFold(j.layer, drillSuffix) {
			center, ok := model.Center()
			if !ok {
				logger.Debug("empty drill path", "path", i, "layer", j.layer)
				continue
			}
			if err := sess.Point(j.layer, center); err != nil {
				return nil, pathError(err, i, j.layer)
			}
			res.Points++
			logger.Debug("drill point", "path", i, "layer", j.layer,
				"nodes", model.NumNodes(), "x", center.X, "y", center.Y)
			continue
		}

		fr, err := f.Flatten(model)
		if err != nil {
			return nil, pathError(err, i, j.layer)
		}
		if fr.Retries > 0 {
			res.Relaxed++
		}
		n := 0
		for _, pl := range fr.Polylines {
			for k := 1; k < len(pl); k++ {
				if err := sess.Line(j.layer, pl[k-1], pl[k]); err != nil {
					return nil, pathError(err, i, j.layer)
				}
				n++
			}
		}
		res.Lines += n
		if fr.Retries > 0 {
			logger.Debug("outline", "path", i, "layer", j.layer,
				"nodes", model.Counts(), "lines", n, "tolerance", fr.Tolerance)
		} else {
			logger.Debug("outline", "path", i, "layer", j.layer,
				"nodes", model.Counts(), "lines", n)
		}
	}

	if err := sess.WriteFooter(); err != nil {
		return nil, err
	}
	data, err := sess.Finalize()
	if err != nil {
		return nil, err
	}
	data, err = dxf.Encode(data, opt.Encoding)
	if err != nil {
		return nil, err
	}

	res.Data = data
	res.Entities = sess.Entities()
	res.Layers = sess.Layers()
	logger.Debug("conversion finished",
		"layers", len(res.Layers), "lines", res.Lines, "points", res.Points, "bytes", len(data))
	return res, nil
}

// provenance returns the text of the comment at the top of the output.
func provenance(opt *Options, legacy bool) string {
	base := "Inkscape svg file"
	if legacy {
		base = "old Inkscape svg file"
	}
	name := "svgdxf"
	if opt.Version != "" {
		name += " " + opt.Version
	}
	comment := fmt.Sprintf("%s export of an %s", name, base)
	if opt.RunID != "" {
		comment += " (run " + opt.RunID + ")"
	}
	return comment
}

func pathError(err error, idx int, layer string) error {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	return errors.Wrap(code, err, "path %d on layer %q", idx, layer)
}
