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
	"github.com/ajroetker/go-colorutils/hwy/contrib/math"
	"github.com/ajroetker/go-colorutils/transfer"
)

const (
	luvEpsilon = 216.0 / 24389.0 // (6/29)³
	luvKappa   = 24389.0 / 27.0  // (29/3)³
)

// Luv is CIE L*u*v* relative to D65. Any two values with L == 0 are equal:
// black carries no chromaticity.
type Luv struct {
	L, U, V float32
}

// LCh is Luv in polar form: C = hypot(u, v), H = atan2(v, u) in [0, 2π).
type LCh struct {
	L, C, H float32
}

// BaseXYZToLuv converts XYZ (0..100) to Luv relative to white.
// A zero denominator X+15Y+3Z gives u′ = v′ = 0, and L == 0 forces u = v = 0.
func BaseXYZToLuv[T hwy.Floats](w WhitePoint, x, y, z hwy.Vec[T]) (l, u, v hwy.Vec[T]) {
	n := x.NumLanes()
	un, vn := w.uvPrime()

	den := hwy.MulAdd(z, splat[T](3, n), hwy.MulAdd(y, splat[T](15, n), x))
	nonzero := hwy.NotEqual(den, hwy.ZeroN[T](n))
	up := hwy.IfThenElseZero(nonzero, hwy.Div(hwy.Mul(x, splat[T](4, n)), den))
	vp := hwy.IfThenElseZero(nonzero, hwy.Div(hwy.Mul(y, splat[T](9, n)), den))

	yr := hwy.Div(y, splat[T](w.Y, n))
	curve := hwy.Sub(hwy.Mul(math.Cbrt(yr), splat[T](116, n)), splat[T](16, n))
	l = hwy.IfThenElse(hwy.GreaterThan(yr, splat[T](luvEpsilon, n)), curve, hwy.Mul(yr, splat[T](luvKappa, n)))

	l13 := hwy.Mul(l, splat[T](13, n))
	u = hwy.Mul(l13, hwy.Sub(up, splat[T](un, n)))
	v = hwy.Mul(l13, hwy.Sub(vp, splat[T](vn, n)))

	black := hwy.Equal(l, hwy.ZeroN[T](n))
	return l, hwy.IfThenZeroElse(black, u), hwy.IfThenZeroElse(black, v)
}

// BaseLuvToXYZ is the inverse of BaseXYZToLuv. L == 0 yields black and
// v′ == 0 yields X = Z = 0.
func BaseLuvToXYZ[T hwy.Floats](w WhitePoint, l, u, v hwy.Vec[T]) (x, y, z hwy.Vec[T]) {
	n := l.NumLanes()
	un, vn := w.uvPrime()
	zero := hwy.ZeroN[T](n)

	inv13 := hwy.Div(splat[T](1, n), hwy.Mul(l, splat[T](13, n)))
	up := hwy.MulAdd(u, inv13, splat[T](un, n))
	vp := hwy.MulAdd(v, inv13, splat[T](vn, n))

	t := hwy.Div(hwy.Add(l, splat[T](16, n)), splat[T](116, n))
	cube := hwy.Mul(hwy.Mul(t, t), t)
	yr := hwy.IfThenElse(hwy.GreaterThan(l, splat[T](8, n)), cube,
		hwy.Div(l, splat[T](luvKappa, n)))
	y = hwy.Mul(yr, splat[T](w.Y, n))

	four := hwy.Mul(vp, splat[T](4, n))
	x = hwy.Div(hwy.Mul(y, hwy.Mul(up, splat[T](9, n))), four)
	zn := hwy.Sub(hwy.Sub(splat[T](12, n), hwy.Mul(up, splat[T](3, n))), hwy.Mul(vp, splat[T](20, n)))
	z = hwy.Div(hwy.Mul(y, zn), four)

	vzero := hwy.Equal(vp, zero)
	x = hwy.IfThenZeroElse(vzero, x)
	z = hwy.IfThenZeroElse(vzero, z)

	black := hwy.Equal(l, zero)
	return hwy.IfThenZeroElse(black, x), hwy.IfThenZeroElse(black, y), hwy.IfThenZeroElse(black, z)
}

func (c Luv) Coords() [3]float32 { return [3]float32{c.L, c.U, c.V} }

// Equal compares exactly, except that all blacks are equal.
func (c Luv) Equal(o Luv) bool {
	if c.L == 0 && o.L == 0 {
		return true
	}
	return c == o
}

func (c Luv) ApproxEqual(o Luv, eps float32) bool {
	if c.L == 0 && o.L == 0 {
		return true
	}
	return approxCoords(c.Coords(), o.Coords(), eps)
}

func (c Luv) ToXYZ() XYZ {
	l, u, v := one(c.L, c.U, c.V)
	x, y, z := lane0(BaseLuvToXYZ(D65, l, u, v))
	return XYZ{x, y, z}
}

func (c Luv) ToRgb(tf transfer.Function) Rgb[float32] { return c.ToXYZ().ToRgb(tf) }

func (c Luv) ToLCh() LCh {
	ch, h := polar1(c.U, c.V)
	return LCh{c.L, ch, h}
}

func (c LCh) Coords() [3]float32 { return [3]float32{c.L, c.C, c.H} }

// Equal ignores hue when chroma is zero and everything but L when L is zero.
func (c LCh) Equal(o LCh) bool {
	switch {
	case c.L == 0 && o.L == 0:
		return true
	case c.C == 0 && o.C == 0:
		return c.L == o.L
	}
	return c == o
}

// ApproxEqual applies Equal's degeneracy rules, then compares within eps.
// Hue is compared on the circle.
func (c LCh) ApproxEqual(o LCh, eps float32) bool {
	return approxPolar(c.L, c.C, c.H, o.L, o.C, o.H, eps, true)
}

func (c LCh) ToLuv() Luv {
	u, v := cartesian1(c.C, c.H)
	return Luv{c.L, u, v}
}

func (c LCh) ToRgb(tf transfer.Function) Rgb[float32] { return c.ToLuv().ToRgb(tf) }

// approxPolar compares polar triples. lightZero enables the L == 0 rule.
func approxPolar(l1, c1, h1, l2, c2, h2, eps float32, lightZero bool) bool {
	if lightZero && l1 == 0 && l2 == 0 {
		return true
	}
	if abs32(l1-l2) > eps {
		return false
	}
	if c1 == 0 && c2 == 0 {
		return true
	}
	if abs32(c1-c2) > eps {
		return false
	}
	d := stdmath.Mod(stdmath.Abs(float64(h1-h2)), 2*stdmath.Pi)
	return min(d, 2*stdmath.Pi-d) <= float64(eps)
}
