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

// Package config loads conversion settings from a TOML file.
//
// A configuration file looks like this:
//
//	tolerance = 0.05
//	method = "subdivide"
//	drill_suffix = "drill"
//	encoding = "cp1252"
//
//	[templates]
//	header = "r14-header.dxf"
//
// All keys are optional; missing keys keep their default values.  Unknown
// keys are reported as errors, to catch spelling mistakes.
package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"seehuhn.de/go/svgdxf"
	"seehuhn.de/go/svgdxf/dxf"
	"seehuhn.de/go/svgdxf/errors"
	"seehuhn.de/go/svgdxf/flatten"
	"seehuhn.de/go/svgdxf/layers"
)

// Config holds the settings for a conversion.
type Config struct {
	Tolerance float64 `toml:"tolerance"`
	RelaxStep float64 `toml:"relax_step"`

	// MaxRetries is the number of tolerance relaxation steps.  Zero
	// disables relaxation.
	MaxRetries int `toml:"max_retries"`

	MaxDepth int    `toml:"max_depth"`
	Method   string `toml:"method"`

	// LegacyUnits forces the scale of old Inkscape documents.
	LegacyUnits bool `toml:"legacy_units"`

	// UnitScale overrides the size of a user unit in millimetres.  Zero
	// means to use the value derived from the document.
	UnitScale float64 `toml:"unit_scale"`

	EntityColor int    `toml:"entity_color"`
	LayerColor  int    `toml:"layer_color"`
	DrillSuffix string `toml:"drill_suffix"`
	Encoding    string `toml:"encoding"`

	Templates TemplateFiles `toml:"templates"`
}

// TemplateFiles names files which replace the built-in DXF templates.
// Relative names are interpreted relative to the configuration file.
type TemplateFiles struct {
	Header string `toml:"header"`
	Blocks string `toml:"blocks"`
	Footer string `toml:"footer"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Tolerance:   flatten.DefaultTolerance,
		RelaxStep:   flatten.DefaultRelax,
		MaxRetries:  flatten.DefaultMaxRetries,
		MaxDepth:    flatten.DefaultMaxDepth,
		Method:      flatten.Subdivide.String(),
		EntityColor: dxf.DefaultEntityColor,
		LayerColor:  dxf.DefaultLayerColor,
		DrillSuffix: layers.DefaultDrillSuffix,
		Encoding:    "utf-8",
	}
}

// Load reads a configuration file on top of the defaults and validates
// the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "cannot read config")
	}

	cfg := Default()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid config file %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	dir := filepath.Dir(path)
	for _, name := range []*string{&cfg.Templates.Header, &cfg.Templates.Blocks, &cfg.Templates.Footer} {
		if *name != "" && !filepath.IsAbs(*name) {
			*name = filepath.Join(dir, *name)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that all settings are in range.
func (c *Config) Validate() error {
	switch {
	case !(c.Tolerance > 0) || math.IsInf(c.Tolerance, 0):
		return invalid("tolerance must be positive, got %g", c.Tolerance)
	case !(c.RelaxStep > 0) || math.IsInf(c.RelaxStep, 0):
		return invalid("relax_step must be positive, got %g", c.RelaxStep)
	case c.MaxRetries < 0:
		return invalid("max_retries must not be negative, got %d", c.MaxRetries)
	case c.MaxDepth < 1 || c.MaxDepth > flatten.MaxDepthLimit:
		return invalid("max_depth must be between 1 and %d, got %d", flatten.MaxDepthLimit, c.MaxDepth)
	case c.UnitScale < 0 || math.IsNaN(c.UnitScale) || math.IsInf(c.UnitScale, 0):
		return invalid("unit_scale must not be negative, got %g", c.UnitScale)
	case c.EntityColor < 1 || c.EntityColor > 255:
		return invalid("entity_color must be between 1 and 255, got %d", c.EntityColor)
	case c.LayerColor < 1 || c.LayerColor > 255:
		return invalid("layer_color must be between 1 and 255, got %d", c.LayerColor)
	case c.DrillSuffix == "":
		return invalid("drill_suffix must not be empty")
	}
	if _, err := ParseMethod(c.Method); err != nil {
		return err
	}
	if _, err := dxf.Encode(nil, c.Encoding); err != nil {
		return invalid("unsupported encoding %q", c.Encoding)
	}
	return nil
}

// ParseMethod converts a method name to a [flatten.Method].
func ParseMethod(name string) (flatten.Method, error) {
	switch strings.ToLower(name) {
	case "", "subdivide":
		return flatten.Subdivide, nil
	case "uniform":
		return flatten.Uniform, nil
	}
	return 0, invalid("unknown flattening method %q", name)
}

// Options converts the configuration into conversion options.  Template
// files are read at this point.
func (c *Config) Options() (*svgdxf.Options, error) {
	method, err := ParseMethod(c.Method)
	if err != nil {
		return nil, err
	}
	retries := c.MaxRetries
	if retries == 0 {
		retries = flatten.NoRetries
	}
	opt := &svgdxf.Options{
		Tolerance:   c.Tolerance,
		Relax:       c.RelaxStep,
		MaxRetries:  retries,
		MaxDepth:    c.MaxDepth,
		Method:      method,
		EntityColor: c.EntityColor,
		LayerColor:  c.LayerColor,
		DrillSuffix: c.DrillSuffix,
		Encoding:    c.Encoding,
	}

	t := c.Templates
	if t.Header != "" || t.Blocks != "" || t.Footer != "" {
		tmpl := dxf.DefaultTemplates()
		if err := tmpl.LoadTemplates(t.Header, t.Blocks, t.Footer); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "cannot load DXF template")
		}
		opt.Templates = &tmpl
	}
	return opt, nil
}

// Apply adjusts document metadata according to the configuration.  An
// explicit unit scale takes precedence over the legacy scale detected for
// the document, but not over legacy_units.
func (c *Config) Apply(meta svgdxf.Metadata) svgdxf.Metadata {
	if c.UnitScale > 0 {
		meta.UnitScale = c.UnitScale
		meta.LegacyUnitMode = false
	}
	if c.LegacyUnits {
		meta.LegacyUnitMode = true
	}
	return meta
}

func invalid(format string, args ...any) error {
	return errors.New(errors.ErrCodeInvalidInput, format, args...)
}
