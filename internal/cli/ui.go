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

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	styleHighlight = lipgloss.NewStyle().Foreground(colorCyan)
	styleDim       = lipgloss.NewStyle().Foreground(colorDim)
	styleValue     = lipgloss.NewStyle().Foreground(colorWhite)
	styleWarning   = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(12)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
)

// ui prints status lines.  Status output is kept separate from the
// converted data, which may go to stdout.
type ui struct {
	w io.Writer
}

func (u ui) success(format string, args ...any) {
	fmt.Fprintln(u.w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func (u ui) fail(format string, args ...any) {
	fmt.Fprintln(u.w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func (u ui) warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(u.w, styleIconWarning.Render(iconWarning)+" "+styleWarning.Render(msg))
}

func (u ui) file(path string) {
	fmt.Fprintln(u.w, "  "+styleDim.Render(iconArrow)+" "+styleValue.Render(path))
}

func (u ui) keyValue(key, value string) {
	fmt.Fprintln(u.w, styleKey.Render(key)+" "+styleValue.Render(value))
}

// stats prints counts on a single line, skipping zero entries.
func (u ui) stats(parts ...string) {
	line := " "
	first := true
	for _, part := range parts {
		if part == "" {
			continue
		}
		if !first {
			line += styleDim.Render(" ·")
		}
		line += " " + styleDim.Render(part)
		first = false
	}
	fmt.Fprintln(u.w, line)
}

func count(n int, what string) string {
	switch n {
	case 0:
		return ""
	case 1:
		return "1 " + what
	}
	return fmt.Sprintf("%d %ss", n, what)
}
