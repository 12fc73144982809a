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

// Package image converts whole pixel buffers between RGB encodings and the
// colorspaces in package colorspace.
//
// A View describes caller-owned memory: width and height in pixels, a row
// stride in bytes, and a channel Layout. Views validate their geometry when
// they are built, so traversal never reads or writes outside the declared
// region and rows never overlap.
//
// # Bulk conversions
//
// Every bulk entry point validates its arguments before the first write:
// a call that returns an error leaves the destination untouched.
//
//	src, _ := image.NewView(pixels, 1920, 1080, 1920*3, image.RGB)
//	dst, _ := image.NewView(make([]float32, 1920*1080*3), 1920, 1080, 1920*3*4, image.RGB)
//	err := image.ToLab(src, dst, transfer.SRGB)
//
// Colorspace-side float buffers are positional: component 0, 1, 2 are the
// colorspace coordinates in declaration order (L, a, b for Lab) and the
// fourth channel of a 4-channel layout carries alpha.
//
// # Variants
//
// A Variant selects the batch width of the traversal: one pixel at a time
// (the reference), or 4, 8 or 16 pixels per batch, modelling 128, 256 and
// 512-bit vectors. The default follows hwy.CurrentWidth. All variants write
// identical output; pixels left over after the last full batch go through
// the one-pixel path.
//
// # Planar images
//
// Plane[T] is a single-channel 2D array with rows padded to the vector
// width. It is the target of pixel.Deinterleave.
package image
