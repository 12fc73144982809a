// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/image/colornames"

	"github.com/ajroetker/go-colorutils/colorspace"
	"github.com/ajroetker/go-colorutils/transfer"
)

// cssColor4 holds the CSS Color Module Level 4 names missing from the SVG
// 1.1 list in colornames.
var cssColor4 = map[string]color.RGBA{
	"rebeccapurple": {R: 0x66, G: 0x33, B: 0x99, A: 0xff},
}

// parseColor accepts a CSS color name or #rrggbb.
func parseColor(s string) (colorspace.Rgb[uint8], error) {
	name := strings.ToLower(s)
	c, ok := cssColor4[name]
	if !ok {
		c, ok = colornames.Map[name]
	}
	if ok {
		return colorspace.Rgb[uint8]{R: c.R, G: c.G, B: c.B}, nil
	}
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return colorspace.Rgb[uint8]{}, fmt.Errorf("unknown color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return colorspace.Rgb[uint8]{}, fmt.Errorf("unknown color %q: %w", s, err)
	}
	return colorspace.Rgb[uint8]{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

type swatchRow struct {
	name   string
	coords [3]float32
}

func swatch(c colorspace.Rgb[uint8], tf transfer.Function) []swatchRow {
	lin := c.ToLinear(tf)
	return []swatchRow{
		{"linear", [3]float32{lin.R, lin.G, lin.B}},
		{"xyz", c.ToXYZ(tf).Coords()},
		{"lab", c.ToLab(tf).Coords()},
		{"luv", c.ToLuv(tf).Coords()},
		{"lch", c.ToLCh(tf).Coords()},
		{"oklab", c.ToOklab(tf).Coords()},
		{"oklch", c.ToOklch(tf).Coords()},
		{"jzazbz", c.ToJzazbz(tf).Coords()},
		{"jzczhz", c.ToJzczhz(tf).Coords()},
		{"lalphabeta", c.ToLAlphaBeta(tf).Coords()},
		{"hsv", c.ToHsv().Coords()},
		{"hsl", c.ToHsl().Coords()},
		{"sigmoidal", c.ToSigmoidal().Coords()},
	}
}

func newSwatchCmd() *cobra.Command {
	var curve string
	cmd := &cobra.Command{
		Use:   "swatch COLOR...",
		Short: "Show a color in every colorspace",
		Long:  "COLOR is an CSS color name such as rebeccapurple or a hex triplet such as #ff8800.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tf, err := transfer.Parse(curve)
			if err != nil {
				return err
			}
			colors := make([]colorspace.Rgb[uint8], len(args))
			for i, a := range args {
				if colors[i], err = parseColor(a); err != nil {
					return err
				}
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for i, c := range colors {
				fmt.Fprintf(w, "%s\t(%d, %d, %d)\n", args[i], c.R, c.G, c.B)
				lines := lo.Map(swatch(c, tf), func(r swatchRow, _ int) string {
					return fmt.Sprintf("  %s\t%.4f\t%.4f\t%.4f", r.name, r.coords[0], r.coords[1], r.coords[2])
				})
				fmt.Fprintln(w, strings.Join(lines, "\n"))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&curve, "transfer", "srgb", "transfer function of the input color")
	return cmd
}
