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

package svgdoc

import (
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/svgdxf/errors"
	"seehuhn.de/go/svgdxf/transform"
)

const (
	pxInMM         = 25.4 / 96
	legacyUserUnit = transform.LegacyUnitScale
)

// mmPerUnit gives the size of the absolute CSS units in millimetres.
var mmPerUnit = map[string]float64{
	"mm": 1,
	"cm": 10,
	"in": 25.4,
	"pt": 25.4 / 72,
	"pc": 25.4 / 6,
	"px": pxInMM,
	"q":  0.25,
}

// Length is an SVG length attribute like "210mm" or "100%".
type Length struct {
	Value float64
	Unit  string // lower case; empty for user units
}

// ParseLength parses an SVG length.  The empty string gives the zero
// length.
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Length{}, nil
	}

	end := len(s)
	for end > 0 {
		c := s[end-1]
		if (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '%' {
			end--
			continue
		}
		break
	}
	num, unit := s[:end], strings.ToLower(s[end:])
	x, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil || math.IsInf(x, 0) || math.IsNaN(x) {
		return Length{}, errors.New(errors.ErrCodeInvalidInput, "invalid length %q", s)
	}
	if unit != "" && unit != "%" {
		if _, ok := mmPerUnit[unit]; !ok {
			return Length{}, errors.New(errors.ErrCodeInvalidInput, "unknown unit in length %q", s)
		}
	}
	return Length{Value: x, Unit: unit}, nil
}

// IsAbsolute reports whether the length has a physical unit.
func (l Length) IsAbsolute() bool {
	_, ok := mmPerUnit[l.Unit]
	return ok && l.Value > 0
}

// MM returns the length in millimetres.  The result is only meaningful
// for absolute lengths.
func (l Length) MM() float64 {
	return l.Value * mmPerUnit[l.Unit]
}

func (l Length) String() string {
	return formatNumber(l.Value) + l.Unit
}

func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
