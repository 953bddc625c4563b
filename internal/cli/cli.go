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

// Package cli implements the svg2dxf command-line interface.
//
// The commands are:
//   - convert: convert an SVG file to DXF
//   - layers: list the layers of an SVG file
//   - preview: render the converted drawing as a PNG image
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"seehuhn.de/go/svgdxf/buildinfo"
	"seehuhn.de/go/svgdxf/config"
	"seehuhn.de/go/svgdxf/errors"
	"seehuhn.de/go/svgdxf/svgdoc"
)

const appName = "svg2dxf"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	ui ui
}

// New creates a new CLI instance.  Log messages and status lines are
// written to w.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		ui:     ui{w: w},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// ReportError prints a failed command's error in user-facing form.
func (c *CLI) ReportError(err error) {
	c.ui.fail("%s", errors.UserMessage(err))
}

// RootCommand creates the root cobra command with all subcommands
// registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "svg2dxf converts SVG outlines to DXF line drawings",
		Long:         `svg2dxf converts the paths of an Inkscape SVG file into DXF LINE entities, one layer per labelled group. Paths on layers whose name ends in "drill" become POINT entities for CNC drilling.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.convertCommand())
	root.AddCommand(c.layersCommand())
	root.AddCommand(c.previewCommand())

	return root
}

// commonFlags are shared by the commands which run a conversion.
type commonFlags struct {
	configFile  string
	tolerance   float64
	method      string
	legacyUnits bool
	unitScale   float64
	drillSuffix string
}

func (f *commonFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configFile, "config", "c", "", "TOML configuration file")
	cmd.Flags().Float64VarP(&f.tolerance, "tolerance", "t", 0, "flattening tolerance in mm")
	cmd.Flags().StringVar(&f.method, "method", "", "flattening method (subdivide, uniform)")
	cmd.Flags().BoolVar(&f.legacyUnits, "legacy-units", false, "assume 90 user units per inch")
	cmd.Flags().Float64Var(&f.unitScale, "unit-scale", 0, "size of one user unit in mm")
	cmd.Flags().StringVar(&f.drillSuffix, "drill-suffix", "", "layer name suffix for drill points")
}

// loadConfig reads the configuration file, if any, and applies the flags
// which were given on the command line.
func (f *commonFlags) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if f.configFile != "" {
		var err error
		cfg, err = config.Load(f.configFile)
		if err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("tolerance") {
		cfg.Tolerance = f.tolerance
	}
	if flags.Changed("method") {
		cfg.Method = f.method
	}
	if flags.Changed("legacy-units") {
		cfg.LegacyUnits = f.legacyUnits
	}
	if flags.Changed("unit-scale") {
		cfg.UnitScale = f.unitScale
	}
	if flags.Changed("drill-suffix") {
		cfg.DrillSuffix = f.drillSuffix
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// readDocument parses the named SVG file.  The name "-" denotes stdin.
func readDocument(name string) (*svgdoc.Document, error) {
	if name == "-" {
		return svgdoc.Parse(os.Stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return svgdoc.Parse(f)
}
