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
	"strings"

	"golang.org/x/text/encoding/charmap"

	"seehuhn.de/go/svgdxf/errors"
)

// Encode converts UTF-8 output to the given code page.  Recognised names
// are "utf-8" (the default, also selected by the empty string) and
// "cp1252", which is what R14 readers expect for $DWGCODEPAGE ANSI_1252.
// Characters which cannot be represented cause an error.
func Encode(data []byte, codepage string) ([]byte, error) {
	switch strings.ToLower(codepage) {
	case "", "utf-8", "utf8":
		return data, nil
	case "cp1252", "windows-1252", "ansi_1252":
		out, err := charmap.Windows1252.NewEncoder().Bytes(data)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeEncoding, err, "cannot encode output as %s", codepage)
		}
		return out, nil
	default:
		return nil, errors.New(errors.ErrCodeEncoding, "unsupported encoding %q", codepage)
	}
}
