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

package dxf

import (
	_ "embed"
	"os"
)

var (
	//go:embed templates/header.dxf
	headerTemplate string

	//go:embed templates/blocks.dxf
	blocksTemplate string

	//go:embed templates/footer.dxf
	footerTemplate string
)

// Templates holds the fixed boilerplate surrounding the generated parts of
// a drawing.
//
// Header is written after the provenance comment and must leave the
// TABLES section open, so that the layer table can follow.  Blocks is
// written after the TABLES section has been closed; it must open the
// ENTITIES section.  Footer closes the ENTITIES section and the file.
// Handles used in templates must be below 0x10.
type Templates struct {
	Header string
	Blocks string
	Footer string
}

// DefaultTemplates returns the built-in AutoCAD R14 templates.
func DefaultTemplates() Templates {
	return Templates{
		Header: headerTemplate,
		Blocks: blocksTemplate,
		Footer: footerTemplate,
	}
}

// LoadTemplates replaces the parts of t for which a file name is given.
// Empty file names keep the existing template.
func (t *Templates) LoadTemplates(header, blocks, footer string) error {
	for _, item := range []struct {
		file string
		dst  *string
	}{
		{header, &t.Header},
		{blocks, &t.Blocks},
		{footer, &t.Footer},
	} {
		if item.file == "" {
			continue
		}
		data, err := os.ReadFile(item.file)
		if err != nil {
			return err
		}
		*item.dst = string(data)
	}
	return nil
}
