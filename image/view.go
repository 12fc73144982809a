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

import (
	"fmt"
	"unsafe"

	"github.com/ajroetker/go-colorutils/colorspace"
)

// View is a strided 2D window onto caller-owned interleaved samples.
type View[S colorspace.Sample] struct {
	data   []S
	width  int
	height int
	stride int // in samples
	layout Layout
}

func sampleSize[S colorspace.Sample]() int {
	var z S
	return int(unsafe.Sizeof(z))
}

// NewView checks that data holds height rows of width pixels spaced
// strideBytes apart. The last row only needs its pixel bytes, not the full
// stride. A zero width or height gives an empty view.
func NewView[S colorspace.Sample](data []S, width, height, strideBytes int, layout Layout) (View[S], error) {
	if err := layout.validate(); err != nil {
		return View[S]{}, err
	}
	if width < 0 || height < 0 {
		return View[S]{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	size := sampleSize[S]()
	rowBytes := width * layout.Channels() * size
	if strideBytes%size != 0 {
		return View[S]{}, fmt.Errorf("%w: %d bytes is not a multiple of the %d-byte sample", ErrInvalidStride, strideBytes, size)
	}
	if strideBytes < rowBytes {
		return View[S]{}, fmt.Errorf("%w: %d bytes < %d bytes per row", ErrInvalidStride, strideBytes, rowBytes)
	}
	if width > 0 && height > 0 {
		need := (height-1)*strideBytes + rowBytes
		if have := len(data) * size; have < need {
			return View[S]{}, fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooSmall, have, need)
		}
	}
	return View[S]{data: data, width: width, height: height, stride: strideBytes / size, layout: layout}, nil
}

// NewPackedView is NewView with rows packed back to back.
func NewPackedView[S colorspace.Sample](data []S, width, height int, layout Layout) (View[S], error) {
	if !layout.Valid() {
		return View[S]{}, fmt.Errorf("%w: %d", ErrUnknownLayout, layout)
	}
	return NewView(data, width, height, width*layout.Channels()*sampleSize[S](), layout)
}

func (v View[S]) Width() int     { return v.width }
func (v View[S]) Height() int    { return v.height }
func (v View[S]) Layout() Layout { return v.layout }

// Stride returns the row pitch in bytes.
func (v View[S]) Stride() int { return v.stride * sampleSize[S]() }

// Empty reports whether the view has no pixels.
func (v View[S]) Empty() bool { return v.width == 0 || v.height == 0 }

// Row returns the samples of row y, exactly width×channels long. Rows of
// one view never overlap.
func (v View[S]) Row(y int) []S {
	start := y * v.stride
	return v.data[start : start+v.width*v.layout.Channels() : start+v.width*v.layout.Channels()]
}

// Pixel returns the channel samples of pixel (x, y) in memory order.
func (v View[S]) Pixel(x, y int) []S {
	ch := v.layout.Channels()
	return v.Row(y)[x*ch : (x+1)*ch]
}

func sameSize[S, D colorspace.Sample](a View[S], b View[D]) error {
	if a.width != b.width || a.height != b.height {
		return fmt.Errorf("%w: %dx%d vs %dx%d", ErrSizeMismatch, a.width, a.height, b.width, b.height)
	}
	return nil
}

// SameSize reports whether two views have equal dimensions.
func SameSize[S, D colorspace.Sample](a View[S], b View[D]) bool {
	return sameSize(a, b) == nil
}

// Relabel returns v with layout l. Both layouts must have the same number
// of channels; no samples move.
func (v View[S]) Relabel(l Layout) (View[S], error) {
	if err := l.validate(); err != nil {
		return View[S]{}, err
	}
	if l.Channels() != v.layout.Channels() {
		return View[S]{}, fmt.Errorf("%w: %v has %d channels, %v has %d", ErrLayoutMismatch, l, l.Channels(), v.layout, v.layout.Channels())
	}
	v.layout = l
	return v, nil
}
