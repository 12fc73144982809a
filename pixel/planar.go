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
	"github.com/ajroetker/go-colorutils/colorspace"
	"github.com/ajroetker/go-colorutils/hwy"
	"github.com/ajroetker/go-colorutils/image"
)

// Deinterleave splits src into one plane per channel, in memory order:
// planes[0] holds the first stored channel (blue for BGR).
func Deinterleave[S colorspace.Sample](src image.View[S]) image.Planes[S] {
	ch := src.Layout().Channels()
	planes := image.NewPlanes[S](ch, src.Width(), src.Height())
	if src.Empty() {
		return planes
	}
	if ch == 4 {
		rows[S](src.Width(), src.Height(), func(y, x, n int) {
			a, b, c, d := hwy.LoadInterleaved4(src.Row(y)[x*4:], n)
			hwy.Store(a, planes[0].Row(y)[x:])
			hwy.Store(b, planes[1].Row(y)[x:])
			hwy.Store(c, planes[2].Row(y)[x:])
			hwy.Store(d, planes[3].Row(y)[x:])
		})
		return planes
	}
	rows[S](src.Width(), src.Height(), func(y, x, n int) {
		a, b, c := hwy.LoadInterleaved3(src.Row(y)[x*3:], n)
		hwy.Store(a, planes[0].Row(y)[x:])
		hwy.Store(b, planes[1].Row(y)[x:])
		hwy.Store(c, planes[2].Row(y)[x:])
	})
	return planes
}

// Interleave is the inverse of Deinterleave: it writes planes, in memory
// order, into dst.
func Interleave[S colorspace.Sample](planes image.Planes[S], dst image.View[S]) error {
	ch := dst.Layout().Channels()
	if err := planes.Check(ch, dst.Width(), dst.Height()); err != nil {
		return err
	}
	if dst.Empty() {
		return nil
	}
	load := func(i, y, x, n int) hwy.Vec[S] { return hwy.LoadN(planes[i].Pixels(y)[x:], n) }
	if ch == 4 {
		rows[S](dst.Width(), dst.Height(), func(y, x, n int) {
			hwy.StoreInterleaved4(load(0, y, x, n), load(1, y, x, n), load(2, y, x, n), load(3, y, x, n), dst.Row(y)[x*4:])
		})
		return nil
	}
	rows[S](dst.Width(), dst.Height(), func(y, x, n int) {
		hwy.StoreInterleaved3(load(0, y, x, n), load(1, y, x, n), load(2, y, x, n), dst.Row(y)[x*3:])
	})
	return nil
}
