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

package image

import "fmt"

// Layout is the channel order of an interleaved pixel.
type Layout uint8

const (
	RGB Layout = iota
	RGBA
	BGR
	BGRA
	numLayouts
)

// Offsets locates each channel within one pixel. A is -1 without alpha.
type Offsets struct {
	R, G, B, A int
	Channels   int
}

var layoutOffsets = [numLayouts]Offsets{
	RGB:  {R: 0, G: 1, B: 2, A: -1, Channels: 3},
	RGBA: {R: 0, G: 1, B: 2, A: 3, Channels: 4},
	BGR:  {R: 2, G: 1, B: 0, A: -1, Channels: 3},
	BGRA: {R: 2, G: 1, B: 0, A: 3, Channels: 4},
}

// Valid reports whether l is one of the defined layouts.
func (l Layout) Valid() bool { return l < numLayouts }

// Offsets resolves l into its offset table. l must be valid.
func (l Layout) Offsets() Offsets { return layoutOffsets[l] }

// Channels returns 3 or 4.
func (l Layout) Channels() int { return layoutOffsets[l].Channels }

// HasAlpha reports whether l carries a fourth, alpha channel.
func (l Layout) HasAlpha() bool { return layoutOffsets[l].A >= 0 }

// WithAlpha returns the 4-channel layout of the same channel order.
func (l Layout) WithAlpha() Layout {
	switch l {
	case RGB:
		return RGBA
	case BGR:
		return BGRA
	}
	return l
}

// WithoutAlpha returns the 3-channel layout of the same channel order.
func (l Layout) WithoutAlpha() Layout {
	switch l {
	case RGBA:
		return RGB
	case BGRA:
		return BGR
	}
	return l
}

// Swapped returns the layout with red and blue exchanged.
func (l Layout) Swapped() Layout {
	switch l {
	case RGB:
		return BGR
	case RGBA:
		return BGRA
	case BGR:
		return RGB
	case BGRA:
		return RGBA
	}
	return l
}

func (l Layout) String() string {
	switch l {
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	case BGR:
		return "BGR"
	case BGRA:
		return "BGRA"
	}
	return fmt.Sprintf("Layout(%d)", l)
}

func (l Layout) validate() error {
	if !l.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownLayout, l)
	}
	return nil
}
