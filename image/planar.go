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

	"github.com/ajroetker/go-colorutils/hwy"
)

// Plane is one channel of an image, stored row-major with each row padded
// to a multiple of the widest vector so batches never straddle rows.
type Plane[T hwy.Lanes] struct {
	data   []T
	width  int
	height int
	stride int // elements
}

// NewPlane allocates a zeroed plane. Non-positive dimensions give an empty
// plane.
func NewPlane[T hwy.Lanes](width, height int) *Plane[T] {
	if width <= 0 || height <= 0 {
		return &Plane[T]{}
	}
	stride := (width + hwy.MaxVectorLanes - 1) / hwy.MaxVectorLanes * hwy.MaxVectorLanes
	return &Plane[T]{
		data:   make([]T, stride*height),
		width:  width,
		height: height,
		stride: stride,
	}
}

func (p *Plane[T]) Width() int  { return p.width }
func (p *Plane[T]) Height() int { return p.height }

// Stride is the row pitch in elements, padding included.
func (p *Plane[T]) Stride() int { return p.stride }

// Row returns row y including its padding, or nil when y is out of range.
func (p *Plane[T]) Row(y int) []T {
	if y < 0 || y >= p.height {
		return nil
	}
	return p.data[y*p.stride : (y+1)*p.stride]
}

// Pixels returns the first width elements of row y.
func (p *Plane[T]) Pixels(y int) []T {
	if y < 0 || y >= p.height {
		return nil
	}
	return p.data[y*p.stride : y*p.stride+p.width]
}

// At returns the value at (x, y), or zero outside the plane.
func (p *Plane[T]) At(x, y int) T {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		var zero T
		return zero
	}
	return p.data[y*p.stride+x]
}

// Set writes v at (x, y); writes outside the plane are dropped.
func (p *Plane[T]) Set(x, y int, v T) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	p.data[y*p.stride+x] = v
}

func (p *Plane[T]) Fill(v T) {
	for i := range p.data {
		p.data[i] = v
	}
}

func (p *Plane[T]) Clone() *Plane[T] {
	c := *p
	c.data = append([]T(nil), p.data...)
	return &c
}

// Planes holds same-sized channel planes in channel order.
type Planes[T hwy.Lanes] []*Plane[T]

// NewPlanes allocates n planes of width×height.
func NewPlanes[T hwy.Lanes](n, width, height int) Planes[T] {
	ps := make(Planes[T], n)
	for i := range ps {
		ps[i] = NewPlane[T](width, height)
	}
	return ps
}

// Check verifies there are n planes, all width×height.
func (ps Planes[T]) Check(n, width, height int) error {
	if len(ps) != n {
		return fmt.Errorf("%w: %d planes, want %d", ErrLayoutMismatch, len(ps), n)
	}
	for i, p := range ps {
		if p == nil || p.width != width || p.height != height {
			w, h := 0, 0
			if p != nil {
				w, h = p.width, p.height
			}
			return fmt.Errorf("%w: plane %d is %dx%d, want %dx%d", ErrSizeMismatch, i, w, h, width, height)
		}
	}
	return nil
}
