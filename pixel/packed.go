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
	"math/bits"
	"unsafe"

	"github.com/ajroetker/go-colorutils/hwy"
	"github.com/ajroetker/go-colorutils/image"
)

// Packed is a strided 2D view of one packed word per pixel: uint16 for 565,
// uint32 for 1010102.
type Packed[W uint16 | uint32] struct {
	data          []W
	width, height int
	stride        int // words
}

// NewPacked validates the geometry the same way image.NewView does.
func NewPacked[W uint16 | uint32](data []W, width, height, strideBytes int) (Packed[W], error) {
	var z W
	size := int(unsafe.Sizeof(z))
	if width < 0 || height < 0 {
		return Packed[W]{}, fmt.Errorf("%w: %dx%d", image.ErrInvalidDimensions, width, height)
	}
	if strideBytes%size != 0 || strideBytes < width*size {
		return Packed[W]{}, fmt.Errorf("%w: %d bytes for %d pixels of %d bytes", image.ErrInvalidStride, strideBytes, width, size)
	}
	if width > 0 && height > 0 {
		if need := (height-1)*strideBytes/size + width; len(data) < need {
			return Packed[W]{}, fmt.Errorf("%w: have %d words, need %d", image.ErrBufferTooSmall, len(data), need)
		}
	}
	return Packed[W]{data: data, width: width, height: height, stride: strideBytes / size}, nil
}

func (p Packed[W]) Width() int  { return p.width }
func (p Packed[W]) Height() int { return p.height }

// Row returns the width words of row y.
func (p Packed[W]) Row(y int) []W {
	return p.data[y*p.stride : y*p.stride+p.width]
}

func checkPacked[W uint16 | uint32](p Packed[W], v image.View[uint8]) error {
	if p.width != v.Width() || p.height != v.Height() {
		return fmt.Errorf("%w: %dx%d vs %dx%d", image.ErrSizeMismatch, p.width, p.height, v.Width(), v.Height())
	}
	return nil
}

const (
	mask5  = 1<<5 - 1
	mask6  = 1<<6 - 1
	mask10 = 1<<10 - 1
)

type word = hwy.Vec[uint32]

// batches walks a row in full vectors, then one pixel at a time.
func batches(width int, fn func(x, n int)) {
	hwy.ProcessWithTail(width, hwy.MaxVectorLanes,
		func(x int) { fn(x, hwy.MaxVectorLanes) },
		func(x int) { fn(x, 1) },
	)
}

// gather widens channel off of n interleaved pixels.
func gather(p []uint8, channels, off, n int) word {
	var buf [hwy.MaxVectorLanes]uint32
	for i := range n {
		buf[i] = uint32(p[i*channels+off])
	}
	return hwy.LoadN(buf[:], n)
}

func scatter(v hwy.Vec[uint8], q []uint8, channels, off int) {
	for i := range v.NumLanes() {
		q[i*channels+off] = hwy.GetLane(v, i)
	}
}

// field extracts the bits selected by mask after shifting w right.
func field(w word, shift int, mask uint32) word {
	return hwy.And(hwy.ShiftRight(w, shift), hwy.SetN(mask, w.NumLanes()))
}

// Pack565 truncates 8-bit RGB to 5-6-5 bits, red in the high bits. Alpha
// in src is ignored.
func Pack565(src image.View[uint8], dst Packed[uint16]) error {
	if err := checkPacked(dst, src); err != nil {
		return err
	}
	o := src.Layout().Offsets()
	for y := range src.Height() {
		in, out := src.Row(y), dst.Row(y)
		batches(len(out), func(x, n int) {
			p := in[x*o.Channels:]
			r := hwy.ShiftLeft(hwy.ShiftRight(gather(p, o.Channels, o.R, n), 3), 11)
			g := hwy.ShiftLeft(hwy.ShiftRight(gather(p, o.Channels, o.G, n), 2), 5)
			b := hwy.ShiftRight(gather(p, o.Channels, o.B, n), 3)
			hwy.Store(hwy.ConvertTo[uint16](hwy.Or(hwy.Or(r, g), b)), out[x:])
		})
	}
	return nil
}

// Unpack565Scaled expands each n-bit field to 8 bits as round(v·255/(2ⁿ-1)).
// An alpha channel in dst is set to 255.
func Unpack565Scaled(src Packed[uint16], dst image.View[uint8]) error {
	return unpack565(src, dst, scale)
}

// Unpack565Shifted expands 565 to 8 bits by shifting left.
func Unpack565Shifted(src Packed[uint16], dst image.View[uint8]) error {
	return unpack565(src, dst, shift)
}

func unpack565(src Packed[uint16], dst image.View[uint8], expand func(v word, top uint32) hwy.Vec[uint8]) error {
	if err := checkPacked(src, dst); err != nil {
		return err
	}
	o := dst.Layout().Offsets()
	for y := range dst.Height() {
		in, out := src.Row(y), dst.Row(y)
		batches(len(in), func(x, n int) {
			w := hwy.ConvertTo[uint32](hwy.LoadN(in[x:], n))
			q := out[x*o.Channels:]
			scatter(expand(field(w, 11, mask5), mask5), q, o.Channels, o.R)
			scatter(expand(field(w, 5, mask6), mask6), q, o.Channels, o.G)
			scatter(expand(field(w, 0, mask5), mask5), q, o.Channels, o.B)
			if o.A >= 0 {
				scatter(hwy.SetN[uint8](255, n), q, o.Channels, o.A)
			}
		})
	}
	return nil
}

// scale maps v in [0, top] to [0, 255], rounding to nearest. No field
// width yields an exact half, so the float product rounds the same as
// integer arithmetic.
func scale(v word, top uint32) hwy.Vec[uint8] {
	f := hwy.Mul(hwy.ConvertTo[float32](v), hwy.SetN(255/float32(top), v.NumLanes()))
	return hwy.ConvertTo[uint8](hwy.Round(f))
}

// shift moves the top bits of a field of top's width to 8 bits.
func shift(v word, top uint32) hwy.Vec[uint8] {
	if n := bits.Len32(top); n > 8 {
		v = hwy.ShiftRight(v, n-8)
	} else {
		v = hwy.ShiftLeft(v, 8-n)
	}
	return hwy.ConvertTo[uint8](v)
}

// widen10 replicates the top bits of an 8-bit sample into 10 bits, so 0
// and 255 map to 0 and 1023.
func widen10(v word) word { return hwy.Or(hwy.ShiftLeft(v, 2), hwy.ShiftRight(v, 6)) }

// Pack1010102 packs 8-bit RGBA into 10-10-10-2 bits: red in bits 0-9,
// green 10-19, blue 20-29 and alpha 30-31. Color widens by bit
// replication; alpha keeps its top two bits. Without source alpha the
// alpha field is 3.
func Pack1010102(src image.View[uint8], dst Packed[uint32]) error {
	if err := checkPacked(dst, src); err != nil {
		return err
	}
	o := src.Layout().Offsets()
	for y := range src.Height() {
		in, out := src.Row(y), dst.Row(y)
		batches(len(out), func(x, n int) {
			p := in[x*o.Channels:]
			a := hwy.SetN[uint32](3, n)
			if o.A >= 0 {
				a = hwy.ShiftRight(gather(p, o.Channels, o.A, n), 6)
			}
			r := widen10(gather(p, o.Channels, o.R, n))
			g := hwy.ShiftLeft(widen10(gather(p, o.Channels, o.G, n)), 10)
			b := hwy.ShiftLeft(widen10(gather(p, o.Channels, o.B, n)), 20)
			hwy.Store(hwy.Or(hwy.Or(r, g), hwy.Or(b, hwy.ShiftLeft(a, 30))), out[x:])
		})
	}
	return nil
}

// Unpack1010102Scaled expands each n-bit field to 8 bits as round(v·255/(2ⁿ-1)).
func Unpack1010102Scaled(src Packed[uint32], dst image.View[uint8]) error {
	return unpack1010102(src, dst, scale)
}

// Unpack1010102Shifted expands to 8 bits by shifting: color right by 2,
// alpha left by 6.
func Unpack1010102Shifted(src Packed[uint32], dst image.View[uint8]) error {
	return unpack1010102(src, dst, shift)
}

func unpack1010102(src Packed[uint32], dst image.View[uint8], expand func(v word, top uint32) hwy.Vec[uint8]) error {
	if err := checkPacked(src, dst); err != nil {
		return err
	}
	o := dst.Layout().Offsets()
	for y := range dst.Height() {
		in, out := src.Row(y), dst.Row(y)
		batches(len(in), func(x, n int) {
			w := hwy.LoadN(in[x:], n)
			q := out[x*o.Channels:]
			scatter(expand(field(w, 0, mask10), mask10), q, o.Channels, o.R)
			scatter(expand(field(w, 10, mask10), mask10), q, o.Channels, o.G)
			scatter(expand(field(w, 20, mask10), mask10), q, o.Channels, o.B)
			if o.A >= 0 {
				scatter(expand(field(w, 30, 3), 3), q, o.Channels, o.A)
			}
		})
	}
	return nil
}
