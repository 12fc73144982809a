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

// Package colorspace holds the colorimetric kernels and the single-pixel
// value types built on them.
//
// Every conversion is written once as a Base kernel over hwy.Vec[T]. The
// bulk engine in the image package runs the kernels on batches of 4, 8 or
// 16 pixels, and the value types in this package run the very same kernels
// on one-lane vectors, so a single pixel converts to exactly the value the
// bulk path writes for it.
//
// Conventions:
//   - RGB samples are normalized to [0, 1]. Linear vs. gamma-encoded is the
//     caller's choice of transfer.Function.
//   - XYZ uses the 0 to 100 scale: the D65 white is (95.047, 100, 108.883).
//   - Hue angles of the polar forms (LCh, Oklch, Jzczhz) are radians in
//     [0, 2π). HSV and HSL hue is in degrees, [0, 360).
//   - Kernels are total: degenerate inputs take a documented guarded branch
//     instead of producing NaN.
//
// Example:
//
//	c := colorspace.Rgb[uint8]{R: 255}
//	lab := c.ToLab(transfer.SRGB) // ≈ {53.24, 80.09, 67.20}
//	back := colorspace.Quantize[uint8](lab.ToRgb(transfer.SRGB))
package colorspace
