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
	"image/png"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/svgdxf/preview"
)

type previewOpts struct {
	commonFlags
	output    string
	dotsPerMM float64
	lineWidth float64
	capStyle  string
}

func (c *CLI) previewCommand() *cobra.Command {
	opts := &previewOpts{}

	cmd := &cobra.Command{
		Use:   "preview <file.svg>",
		Short: "Render the converted entities to a PNG image",
		Long: `Convert an SVG file and draw the resulting DXF entities into a grayscale
PNG image, for checking the flattening result without a CAD program.`,
		Example: `  svg2dxf preview drawing.svg -o drawing.png
  svg2dxf preview --dpmm 20 --cap round -t 0.5 drawing.svg -o coarse.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runPreview(cmd, args[0], opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PNG file (required)")
	cmd.Flags().Float64Var(&opts.dotsPerMM, "dpmm", preview.DefaultDotsPerMM, "pixels per millimetre")
	cmd.Flags().Float64Var(&opts.lineWidth, "line-width", preview.DefaultLineWidth, "stroke width in mm")
	cmd.Flags().StringVar(&opts.capStyle, "cap", "butt", "line cap style (butt, round, square)")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

func (c *CLI) runPreview(cmd *cobra.Command, input string, opts *previewOpts) error {
	capStyle, err := parseCap(opts.capStyle)
	if err != nil {
		return err
	}
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	doc, err := readDocument(input)
	if err != nil {
		return err
	}
	res, err := c.convert(doc, cfg, false)
	if err != nil {
		return err
	}

	img, err := preview.Render(res.Entities, &preview.Options{
		DotsPerMM: opts.dotsPerMM,
		LineWidth: opts.lineWidth,
		Cap:       capStyle,
	})
	if err != nil {
		return err
	}
	if err := cmd.Context().Err(); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %dx%d pixels", img.Rect.Dx(), img.Rect.Dy()))

	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	c.ui.success("Rendered %s", input)
	c.ui.stats(count(res.Lines, "line"), count(res.Points, "point"), fmt.Sprintf("cap %s", capStyle))
	c.ui.file(opts.output)
	return nil
}

func parseCap(name string) (graphics.LineCapStyle, error) {
	switch strings.ToLower(name) {
	case "butt", "":
		return graphics.LineCapButt, nil
	case "round":
		return graphics.LineCapRound, nil
	case "square":
		return graphics.LineCapSquare, nil
	}
	return 0, fmt.Errorf("unknown line cap style %q", name)
}
