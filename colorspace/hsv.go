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
	"github.com/ajroetker/go-colorutils/hwy"
)

// Hsv has H in degrees [0, 360) and S, V in [0, 1].
type Hsv struct {
	H, S, V float32
}

// Hsl has H in degrees [0, 360) and S, L in [0, 1].
type Hsl struct {
	H, S, L float32
}

// hue returns the hue in degrees of normalized RGB given its max and
// chroma. Zero chroma yields hue 0.
func hue[T hwy.Floats](r, g, b, maxc, delta hwy.Vec[T]) hwy.Vec[T] {
	n := r.NumLanes()
	zero := hwy.ZeroN[T](n)

	hr := hwy.Div(hwy.Sub(g, b), delta)
	hr = hwy.IfThenElse(hwy.LessThan(hr, zero), hwy.Add(hr, splat[T](6, n)), hr)
	hg := hwy.Add(hwy.Div(hwy.Sub(b, r), delta), splat[T](2, n))
	hb := hwy.Add(hwy.Div(hwy.Sub(r, g), delta), splat[T](4, n))

	h := hwy.IfThenElse(hwy.Equal(maxc, r), hr, hwy.IfThenElse(hwy.Equal(maxc, g), hg, hb))
	h = hwy.Mul(h, splat[T](60, n))

	full := splat[T](360, n)
	h = hwy.IfThenElse(hwy.GreaterEqual(h, full), hwy.Sub(h, full), h)
	return hwy.IfThenZeroElse(hwy.Equal(delta, zero), h)
}

func extrema[T hwy.Floats](r, g, b hwy.Vec[T]) (maxc, minc hwy.Vec[T]) {
	return hwy.Max(hwy.Max(r, g), b), hwy.Min(hwy.Min(r, g), b)
}

// BaseRGBToHSV converts normalized RGB to HSV.
func BaseRGBToHSV[T hwy.Floats](r, g, b hwy.Vec[T]) (h, s, v hwy.Vec[T]) {
	maxc, minc := extrema(r, g, b)
	delta := hwy.Sub(maxc, minc)
	h = hue(r, g, b, maxc, delta)
	s = hwy.IfThenZeroElse(hwy.Equal(maxc, hwy.ZeroN[T](r.NumLanes())), hwy.Div(delta, maxc))
	return h, s, maxc
}

// BaseRGBToHSL converts normalized RGB to HSL.
func BaseRGBToHSL[T hwy.Floats](r, g, b hwy.Vec[T]) (h, s, l hwy.Vec[T]) {
	n := r.NumLanes()
	maxc, minc := extrema(r, g, b)
	delta := hwy.Sub(maxc, minc)
	h = hue(r, g, b, maxc, delta)
	l = hwy.Mul(hwy.Add(maxc, minc), splat[T](0.5, n))

	unit := splat[T](1, n)
	den := hwy.Sub(unit, hwy.Abs(hwy.Sub(hwy.Add(l, l), unit)))
	s = hwy.IfThenZeroElse(hwy.Equal(delta, hwy.ZeroN[T](n)), hwy.Div(delta, den))
	return h, s, l
}

// hueToRGB places chroma c and the secondary component x into the sector
// of h chosen by range tests on [0,60), [60,120), ... [300,360), then adds m.
func hueToRGB[T hwy.Floats](h, c, m hwy.Vec[T]) (r, g, b hwy.Vec[T]) {
	n := h.NumLanes()
	unit := splat[T](1, n)

	// Wrap into [0, 360).
	turns := hwy.Floor(hwy.Div(h, splat[T](360, n)))
	h = hwy.Sub(h, hwy.Mul(turns, splat[T](360, n)))

	hp := hwy.Div(h, splat[T](60, n))
	two := splat[T](2, n)
	mod2 := hwy.Sub(hp, hwy.Mul(hwy.Floor(hwy.Div(hp, two)), two))
	x := hwy.Mul(c, hwy.Sub(unit, hwy.Abs(hwy.Sub(mod2, unit))))

	sector := hwy.ZeroN[T](n)
	for k := 1; k <= 5; k++ {
		ge := hwy.GreaterEqual(h, splat[T](float64(60*k), n))
		sector = hwy.IfThenElse(ge, hwy.Add(sector, unit), sector)
	}
	z := hwy.ZeroN[T](n)
	r = pickSector(sector, c, x, z, z, x, c)
	g = pickSector(sector, x, c, c, x, z, z)
	b = pickSector(sector, z, z, x, c, c, x)
	return hwy.Add(r, m), hwy.Add(g, m), hwy.Add(b, m)
}

func pickSector[T hwy.Floats](sector hwy.Vec[T], v0, v1, v2, v3, v4, v5 hwy.Vec[T]) hwy.Vec[T] {
	n := sector.NumLanes()
	out := v5
	for k, v := range []hwy.Vec[T]{v4, v3, v2, v1, v0} {
		out = hwy.IfThenElse(hwy.Equal(sector, splat[T](float64(4-k), n)), v, out)
	}
	return out
}

// BaseHSVToRGB converts HSV to normalized RGB.
func BaseHSVToRGB[T hwy.Floats](h, s, v hwy.Vec[T]) (r, g, b hwy.Vec[T]) {
	c := hwy.Mul(v, s)
	return hueToRGB(h, c, hwy.Sub(v, c))
}

// BaseHSLToRGB converts HSL to normalized RGB.
func BaseHSLToRGB[T hwy.Floats](h, s, l hwy.Vec[T]) (r, g, b hwy.Vec[T]) {
	n := h.NumLanes()
	unit := splat[T](1, n)
	c := hwy.Mul(hwy.Sub(unit, hwy.Abs(hwy.Sub(hwy.Add(l, l), unit))), s)
	m := hwy.Sub(l, hwy.Mul(c, splat[T](0.5, n)))
	return hueToRGB(h, c, m)
}

func (c Hsv) Coords() [3]float32 { return [3]float32{c.H, c.S, c.V} }

func (c Hsv) ApproxEqual(o Hsv, eps float32) bool {
	return approxCoords(c.Coords(), o.Coords(), eps)
}

// ToRgb returns normalized RGB in the same encoding the HSV came from.
func (c Hsv) ToRgb() Rgb[float32] {
	r, g, b := lane0(BaseHSVToRGB(one(c.H, c.S, c.V)))
	return Rgb[float32]{r, g, b}
}

func (c Hsl) Coords() [3]float32 { return [3]float32{c.H, c.S, c.L} }

func (c Hsl) ApproxEqual(o Hsl, eps float32) bool {
	return approxCoords(c.Coords(), o.Coords(), eps)
}

func (c Hsl) ToRgb() Rgb[float32] {
	r, g, b := lane0(BaseHSLToRGB(one(c.H, c.S, c.L)))
	return Rgb[float32]{r, g, b}
}
