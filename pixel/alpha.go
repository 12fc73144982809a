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

package pixel

import (
	"fmt"

	"github.com/ajroetker/go-colorutils/colorspace"
	"github.com/ajroetker/go-colorutils/hwy"
	"github.com/ajroetker/go-colorutils/image"
)

func checkSize[S, D colorspace.Sample](src image.View[S], dst image.View[D]) error {
	if !image.SameSize(src, dst) {
		return fmt.Errorf("%w: %dx%d vs %dx%d", image.ErrSizeMismatch, src.Width(), src.Height(), dst.Width(), dst.Height())
	}
	return nil
}

// checkExpand requires src without alpha and dst the same order with alpha.
func checkExpand[S colorspace.Sample](src, dst image.View[S]) error {
	if err := checkSize(src, dst); err != nil {
		return err
	}
	if !dst.Layout().HasAlpha() {
		return fmt.Errorf("%w: destination %v", image.ErrNoAlpha, dst.Layout())
	}
	if src.Layout().HasAlpha() || src.Layout().WithAlpha() != dst.Layout() {
		return fmt.Errorf("%w: cannot expand %v into %v", image.ErrLayoutMismatch, src.Layout(), dst.Layout())
	}
	return nil
}

// rows runs fn for every row in batches of the widest vector, with the
// remainder one pixel at a time.
func rows[S colorspace.Sample](width, height int, fn func(y, x, n int)) {
	lanes := hwy.MaxLanes[S]()
	for y := range height {
		hwy.ProcessWithTail(width, lanes,
			func(x int) { fn(y, x, lanes) },
			func(x int) { fn(y, x, 1) },
		)
	}
}

// AppendAlpha copies the three color channels of src into dst and sets
// every alpha sample to alpha. dst must be the alpha form of src's layout.
func AppendAlpha[S colorspace.Sample](src, dst image.View[S], alpha S) error {
	if err := checkExpand(src, dst); err != nil {
		return err
	}
	rows[S](src.Width(), src.Height(), func(y, x, n int) {
		a, b, c := hwy.LoadInterleaved3(src.Row(y)[x*3:], n)
		hwy.StoreInterleaved4(a, b, c, hwy.SetN(alpha, n), dst.Row(y)[x*4:])
	})
	return nil
}

// AppendAlphaPlane is AppendAlpha with per-pixel alpha taken from a plane
// of the same size.
func AppendAlphaPlane[S colorspace.Sample](src image.View[S], alpha *image.Plane[S], dst image.View[S]) error {
	if err := checkExpand(src, dst); err != nil {
		return err
	}
	if alpha == nil || alpha.Width() != src.Width() || alpha.Height() != src.Height() {
		return fmt.Errorf("%w: alpha plane does not match %dx%d", image.ErrSizeMismatch, src.Width(), src.Height())
	}
	rows[S](src.Width(), src.Height(), func(y, x, n int) {
		a, b, c := hwy.LoadInterleaved3(src.Row(y)[x*3:], n)
		hwy.StoreInterleaved4(a, b, c, hwy.LoadN(alpha.Pixels(y)[x:], n), dst.Row(y)[x*4:])
	})
	return nil
}

// StripAlpha drops the alpha channel. dst must be the alpha-free form of
// src's layout.
func StripAlpha[S colorspace.Sample](src, dst image.View[S]) error {
	if err := checkSize(src, dst); err != nil {
		return err
	}
	if !src.Layout().HasAlpha() {
		return fmt.Errorf("%w: source %v", image.ErrNoAlpha, src.Layout())
	}
	if src.Layout().WithoutAlpha() != dst.Layout() {
		return fmt.Errorf("%w: cannot strip %v into %v", image.ErrLayoutMismatch, src.Layout(), dst.Layout())
	}
	rows[S](src.Width(), src.Height(), func(y, x, n int) {
		a, b, c, _ := hwy.LoadInterleaved4(src.Row(y)[x*4:], n)
		hwy.StoreInterleaved3(a, b, c, dst.Row(y)[x*3:])
	})
	return nil
}

// Swizzle exchanges red and blue: RGB to BGR, RGBA to BGRA and back. dst
// must have src's swapped layout. src and dst may be the same memory when
// their strides match.
func Swizzle[S colorspace.Sample](src, dst image.View[S]) error {
	if err := checkSize(src, dst); err != nil {
		return err
	}
	if src.Layout().Swapped() != dst.Layout() {
		return fmt.Errorf("%w: %v does not swizzle to %v", image.ErrLayoutMismatch, src.Layout(), dst.Layout())
	}
	if src.Layout().HasAlpha() {
		rows[S](src.Width(), src.Height(), func(y, x, n int) {
			a, b, c, d := hwy.LoadInterleaved4(src.Row(y)[x*4:], n)
			hwy.StoreInterleaved4(c, b, a, d, dst.Row(y)[x*4:])
		})
		return nil
	}
	rows[S](src.Width(), src.Height(), func(y, x, n int) {
		a, b, c := hwy.LoadInterleaved3(src.Row(y)[x*3:], n)
		hwy.StoreInterleaved3(c, b, a, dst.Row(y)[x*3:])
	})
	return nil
}

// SwizzleInPlace swaps red and blue inside v and returns v relabeled with
// the swapped layout.
func SwizzleInPlace[S colorspace.Sample](v image.View[S]) (image.View[S], error) {
	out, err := v.Relabel(v.Layout().Swapped())
	if err != nil {
		return v, err
	}
	if err := Swizzle(v, out); err != nil {
		return v, err
	}
	return out, nil
}
