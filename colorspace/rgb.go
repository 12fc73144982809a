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

package colorspace

import (
	stdmath "math"

	"github.com/ajroetker/go-colorutils/hwy"
	"github.com/ajroetker/go-colorutils/transfer"
)

// Sample is a storable channel type: 8-bit, 16-bit or normalized float.
type Sample interface {
	uint8 | uint16 | float32
}

// MaxValue returns the sample value that represents full intensity.
func MaxValue[S Sample]() float32 {
	var z S
	switch any(z).(type) {
	case uint8:
		return 255
	case uint16:
		return 65535
	}
	return 1
}

// BitDepth returns 8, 16 or 32 for S.
func BitDepth[S Sample]() int {
	var z S
	switch any(z).(type) {
	case uint8:
		return 8
	case uint16:
		return 16
	}
	return 32
}

// Normalize maps a sample to [0, 1]. Floats pass through unchanged.
func Normalize[S Sample](v S) float32 {
	switch x := any(v).(type) {
	case uint8:
		return float32(x) / 255
	case uint16:
		return float32(x) / 65535
	case float32:
		return x
	}
	return 0
}

// Denormalize rounds v·max half away from zero and clamps it to the
// integer range. Float samples are returned unchanged, out-of-range values
// included. NaN quantizes to 0.
func Denormalize[S Sample](v float32) S {
	var z S
	if _, ok := any(z).(float32); ok {
		return S(v)
	}
	if v != v {
		return 0
	}
	m := MaxValue[S]()
	q := float32(stdmath.Round(float64(v * m)))
	return S(min(max(q, 0), m))
}

// Rgb is a red, green, blue triple of samples.
type Rgb[S Sample] struct {
	R, G, B S
}

// Rgba adds straight or premultiplied coverage; the package does not
// track which.
type Rgba[S Sample] struct {
	R, G, B, A S
}

// Rgb drops alpha.
func (c Rgba[S]) Rgb() Rgb[S] { return Rgb[S]{c.R, c.G, c.B} }

// WithAlpha returns c with coverage a.
func (c Rgb[S]) WithAlpha(a S) Rgba[S] { return Rgba[S]{c.R, c.G, c.B, a} }

// Swizzle exchanges red and blue.
func (c Rgb[S]) Swizzle() Rgb[S] { return Rgb[S]{c.B, c.G, c.R} }

// Swizzle exchanges red and blue, keeping alpha in place.
func (c Rgba[S]) Swizzle() Rgba[S] { return Rgba[S]{c.B, c.G, c.R, c.A} }

// Coords returns the normalized channel values.
func (c Rgb[S]) Coords() [3]float32 {
	return [3]float32{Normalize(c.R), Normalize(c.G), Normalize(c.B)}
}

// NormalizeRgb converts every channel to [0, 1] floats.
func NormalizeRgb[S Sample](c Rgb[S]) Rgb[float32] {
	return Rgb[float32]{Normalize(c.R), Normalize(c.G), Normalize(c.B)}
}

// Quantize converts normalized channels to S, rounding and clamping for
// integer samples.
func Quantize[S Sample](c Rgb[float32]) Rgb[S] {
	return Rgb[S]{Denormalize[S](c.R), Denormalize[S](c.G), Denormalize[S](c.B)}
}

// ApproxEqual reports whether every normalized channel differs by at most eps.
func (c Rgb[S]) ApproxEqual(o Rgb[S], eps float32) bool {
	return approxCoords(c.Coords(), o.Coords(), eps)
}

// ToLinear applies tf.Linearize to each channel.
func (c Rgb[S]) ToLinear(tf transfer.Function) Rgb[float32] {
	n := NormalizeRgb(c)
	return Rgb[float32]{tf.Linearize(n.R), tf.Linearize(n.G), tf.Linearize(n.B)}
}

// FromLinear applies tf.Gamma to each channel of linear light c.
func FromLinear(c Rgb[float32], tf transfer.Function) Rgb[float32] {
	return Rgb[float32]{tf.Gamma(c.R), tf.Gamma(c.G), tf.Gamma(c.B)}
}

// ToXYZ linearizes c with tf and applies the sRGB primaries matrix.
func (c Rgb[S]) ToXYZ(tf transfer.Function) XYZ {
	return c.ToXYZWith(SRGBToXYZ, tf)
}

// ToXYZWith linearizes c with tf and applies m.
func (c Rgb[S]) ToXYZWith(m Matrix3, tf transfer.Function) XYZ {
	l := c.ToLinear(tf)
	r, g, b := one(l.R, l.G, l.B)
	x, y, z := lane0(BaseLinearToXYZ(m, r, g, b))
	return XYZ{x, y, z}
}

func (c Rgb[S]) ToLab(tf transfer.Function) Lab { return c.ToXYZ(tf).ToLab() }
func (c Rgb[S]) ToLuv(tf transfer.Function) Luv { return c.ToXYZ(tf).ToLuv() }
func (c Rgb[S]) ToLCh(tf transfer.Function) LCh { return c.ToLuv(tf).ToLCh() }

func (c Rgb[S]) ToJzazbz(tf transfer.Function) Jzazbz {
	return c.ToXYZ(tf).ToJzazbz(DefaultDisplayLuminance)
}

func (c Rgb[S]) ToJzczhz(tf transfer.Function) Jzczhz { return c.ToJzazbz(tf).ToJzczhz() }

func (c Rgb[S]) ToLAlphaBeta(tf transfer.Function) LAlphaBeta {
	return c.ToXYZ(tf).ToLAlphaBeta()
}

// ToOklab linearizes c with tf; Oklab is defined on linear sRGB directly.
func (c Rgb[S]) ToOklab(tf transfer.Function) Oklab {
	l := c.ToLinear(tf)
	L, a, b := lane0(BaseLinearToOklab(one(l.R, l.G, l.B)))
	return Oklab{L, a, b}
}

func (c Rgb[S]) ToOklch(tf transfer.Function) Oklch { return c.ToOklab(tf).ToOklch() }

// ToHsv works on the stored (encoded) values; no transfer curve applies.
func (c Rgb[S]) ToHsv() Hsv {
	n := NormalizeRgb(c)
	h, s, v := lane0(BaseRGBToHSV(one(n.R, n.G, n.B)))
	return Hsv{h, s, v}
}

// ToHsl works on the stored (encoded) values; no transfer curve applies.
func (c Rgb[S]) ToHsl() Hsl {
	n := NormalizeRgb(c)
	h, s, l := lane0(BaseRGBToHSL(one(n.R, n.G, n.B)))
	return Hsl{h, s, l}
}

func (c Rgb[S]) ToSigmoidal() Sigmoidal {
	n := NormalizeRgb(c)
	r, g, b := lane0(BaseRGBToSigmoidal(one(n.R, n.G, n.B)))
	return Sigmoidal{r, g, b}
}

type lane = hwy.Vec[float32]

// one loads a pixel into one-lane vectors, the scalar reference path.
func one(a, b, c float32) (lane, lane, lane) {
	return hwy.SetN(a, 1), hwy.SetN(b, 1), hwy.SetN(c, 1)
}

func lane0(a, b, c lane) (float32, float32, float32) {
	return hwy.GetLane(a, 0), hwy.GetLane(b, 0), hwy.GetLane(c, 0)
}
