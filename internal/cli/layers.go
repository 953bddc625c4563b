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

	"github.com/spf13/cobra"

	"seehuhn.de/go/svgdxf/layers"
)

func (c *CLI) layersCommand() *cobra.Command {
	var (
		drillSuffix string
		sorted      bool
	)

	cmd := &cobra.Command{
		Use:   "layers <file.svg>",
		Short: "List the layers of an SVG file",
		Long: `List the layers which a conversion would create, in the order of the DXF
layer table.  Layers whose paths become drill points are marked.  With
--sort the layers are listed by name; the number in front of each entry is
the position in the layer table.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := readDocument(args[0])
			if err != nil {
				return err
			}

			counts := make(map[string]int)
			for _, p := range doc.Paths {
				counts[layers.Normalize(p.Layer)]++
			}

			reg := layers.New(doc.Layers()...)
			names := reg.Names()
			if sorted {
				names = reg.Sorted()
			}

			out := ui{w: cmd.OutOrStdout()}
			for _, name := range names {
				kind := "outline"
				if layers.HasSuffixFold(name, drillSuffix) {
					kind = "drill"
				}
				out.keyValue(name, fmt.Sprintf("#%d %s, %s", reg.Index(name), kind, count(counts[name], "path")))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&sorted, "sort", false, "list layers by name")
	cmd.Flags().StringVar(&drillSuffix, "drill-suffix", layers.DefaultDrillSuffix, "layer name suffix for drill points")
	return cmd
}
