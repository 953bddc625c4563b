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

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"seehuhn.de/go/svgdxf"
	"seehuhn.de/go/svgdxf/errors"
	"seehuhn.de/go/svgdxf/flatten"
	"seehuhn.de/go/svgdxf/outline"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	opt, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	if opt.Tolerance != flatten.DefaultTolerance || opt.Method != flatten.Subdivide {
		t.Errorf("unexpected options %+v", opt)
	}
	if opt.Templates != nil {
		t.Error("default config should use built-in templates")
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "head.dxf", "0\nSECTION\n2\nTABLES\n")
	path := writeFile(t, dir, "svgdxf.toml", `
tolerance = 0.02
method = "uniform"
drill_suffix = "holes"
encoding = "cp1252"
entity_color = 1

[templates]
header = "head.dxf"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Tolerance != 0.02 || cfg.DrillSuffix != "holes" || cfg.EntityColor != 1 {
		t.Errorf("values not loaded: %+v", cfg)
	}
	if cfg.MaxRetries != flatten.DefaultMaxRetries {
		t.Errorf("default max_retries lost: %d", cfg.MaxRetries)
	}
	if cfg.Templates.Header != filepath.Join(dir, "head.dxf") {
		t.Errorf("template path %q not resolved", cfg.Templates.Header)
	}

	opt, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	if opt.Method != flatten.Uniform || opt.Encoding != "cp1252" {
		t.Errorf("unexpected options %+v", opt)
	}
	if opt.Templates == nil || !strings.HasPrefix(opt.Templates.Header, "0\nSECTION\n2\nTABLES") {
		t.Error("header template not loaded")
	}
	if opt.Templates != nil && !strings.Contains(opt.Templates.Blocks, "ENTITIES") {
		t.Error("built-in blocks template not kept")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "tolerence = 0.1\n", "tolerence"},
		{"syntax", "tolerance = \n", "invalid config"},
		{"negative tolerance", "tolerance = -1.0\n", "tolerance"},
		{"bad method", `method = "magic"` + "\n", "magic"},
		{"bad encoding", `encoding = "latin9"` + "\n", "latin9"},
		{"bad color", "layer_color = 300\n", "layer_color"},
		{"depth", "max_depth = 0\n", "max_depth"},
		{"deep", "max_depth = 31\n", "max_depth"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, dir, strings.ReplaceAll(tt.name, " ", "_")+".toml", tt.content)
			_, err := Load(path)
			if !errors.Is(err, errors.ErrCodeInvalidInput) {
				t.Fatalf("got %v, want invalid input", err)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err, tt.want)
			}
		})
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); err == nil {
		t.Error("missing file accepted")
	}
}

func TestApply(t *testing.T) {
	meta := svgdxf.Metadata{Height: 100, UnitScale: 0.5}

	cfg := Default()
	if got := cfg.Apply(meta); got != meta {
		t.Errorf("default config changed metadata: %+v", got)
	}

	cfg.UnitScale = 2
	got := cfg.Apply(svgdxf.Metadata{Height: 100, LegacyUnitMode: true})
	if got.UnitScale != 2 || got.LegacyUnitMode || got.Height != 100 {
		t.Errorf("unit scale override: %+v", got)
	}

	cfg.LegacyUnits = true
	if got := cfg.Apply(meta); !got.LegacyUnitMode {
		t.Error("legacy_units not applied")
	}
}

func TestZeroRetries(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "strict.toml", "tolerance = 0.01\nmax_retries = 0\nmax_depth = 1\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	opt, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	if opt.MaxRetries != flatten.NoRetries {
		t.Errorf("MaxRetries = %d, want %d", opt.MaxRetries, flatten.NoRetries)
	}

	m, err := outline.Build("M0,0 C0,10 10,10 10,0")
	if err != nil {
		t.Fatal(err)
	}
	f := &flatten.Flattener{
		Tolerance:  opt.Tolerance,
		Relax:      opt.Relax,
		MaxRetries: opt.MaxRetries,
		MaxDepth:   opt.MaxDepth,
	}
	_, err = f.Flatten(m)
	nc, ok := err.(*errors.NonConvergenceError)
	if !ok {
		t.Fatalf("got %v, want *errors.NonConvergenceError", err)
	}
	if nc.Retries != 0 || nc.Tolerance != 0.01 {
		t.Errorf("got %d retries at tolerance %g, want 0 at 0.01", nc.Retries, nc.Tolerance)
	}
}
