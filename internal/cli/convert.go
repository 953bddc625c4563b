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
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"seehuhn.de/go/svgdxf"
	"seehuhn.de/go/svgdxf/buildinfo"
	"seehuhn.de/go/svgdxf/config"
	"seehuhn.de/go/svgdxf/svgdoc"
)

type convertOpts struct {
	commonFlags
	output   string
	encoding string
	stamp    bool
}

func (c *CLI) convertCommand() *cobra.Command {
	opts := &convertOpts{}

	cmd := &cobra.Command{
		Use:   "convert <file.svg>",
		Short: "Convert an SVG file to DXF",
		Long: `Convert the paths of an SVG file to DXF LINE and POINT entities.

The output is written to stdout unless -o is given.`,
		Example: `  svg2dxf convert drawing.svg -o drawing.dxf
  svg2dxf convert --tolerance 0.01 --encoding cp1252 panel.svg -o panel.dxf`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runConvert(cmd, args[0], opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.encoding, "encoding", "", "output encoding (utf-8, cp1252)")
	cmd.Flags().BoolVar(&opts.stamp, "stamp", false, "add a unique run id to the file comment")

	return cmd
}

func (c *CLI) runConvert(cmd *cobra.Command, input string, opts *convertOpts) error {
	cfg, err := opts.loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("encoding") {
		cfg.Encoding = opts.encoding
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	prog := newProgress(c.Logger)
	doc, err := readDocument(input)
	if err != nil {
		return err
	}
	res, err := c.convert(doc, cfg, opts.stamp)
	if err != nil {
		return err
	}
	if err := cmd.Context().Err(); err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Converted %d paths", len(doc.Paths)))

	if opts.output == "" || opts.output == "-" {
		_, err = cmd.OutOrStdout().Write(res.Data)
		return err
	}
	if err := os.WriteFile(opts.output, res.Data, 0o644); err != nil {
		return err
	}

	c.ui.success("Converted %s", input)
	c.ui.stats(count(len(res.Layers), "layer"), count(res.Lines, "line"), count(res.Points, "point"))
	if res.Relaxed > 0 {
		c.ui.warning("%d paths needed a relaxed tolerance", res.Relaxed)
	}
	c.ui.file(opts.output)
	return nil
}

// convert runs the conversion with the given configuration.
func (c *CLI) convert(doc *svgdoc.Document, cfg *config.Config, stamp bool) (*svgdxf.Result, error) {
	opt, err := cfg.Options()
	if err != nil {
		return nil, err
	}
	opt.Logger = c.Logger
	opt.Version = buildinfo.Version
	if stamp {
		opt.RunID = uuid.NewString()
		c.Logger.Debug("run stamp", "id", opt.RunID)
	}

	meta := cfg.Apply(doc.Metadata())
	if meta.LegacyUnitMode {
		c.Logger.Info("using legacy unit scale", "root", doc.RootID)
	}
	return svgdxf.ConvertDetailed(doc.Nodes(), doc.TransformsOf, svgdoc.LayerOf, meta, opt)
}
