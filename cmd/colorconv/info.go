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

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/ajroetker/go-colorutils/image"
	"github.com/ajroetker/go-colorutils/transfer"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the dispatch level and supported conversions",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			tag := image.VariantAuto.Tag()
			fmt.Fprintf(out, "dispatch:   %s (%d bytes, %d float32 lanes)\n", tag.Name(), tag.Width(), tag.MaxLanes())
			fmt.Fprintf(out, "variant:    %s\n", image.VariantAuto.Resolve())
			fmt.Fprintf(out, "variants:   %v\n", lo.Map(image.Variants(), func(v image.Variant, _ int) string { return v.String() }))
			fmt.Fprintf(out, "spaces:     %v\n", lo.Map(image.Spaces(), func(s image.Space, _ int) string { return s.String() }))
			fmt.Fprintf(out, "transfers:  %v\n", lo.Map(transfer.Named(), func(f transfer.Function, _ int) string { return f.String() }))
		},
	}
}
