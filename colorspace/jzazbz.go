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
	"sync"

	"github.com/ajroetker/go-colorutils/hwy"
	"github.com/ajroetker/go-colorutils/transfer"
)

// DefaultDisplayLuminance is the peak luminance in cd/m² that maps XYZ
// Y = 100 to absolute light for Jzazbz.
const DefaultDisplayLuminance = 200

// jzazbzBias is the published Jz of absolute black before correction.
// jzBlack recomputes it at each precision.
const jzazbzBias = 1.6295499532821566e-11

const (
	jzB  = 1.15
	jzG  = 0.66
	jzD  = -0.56
	jzN  = 0.1593017578125 // 2610/16384
	jzP  = 134.034375      // 1.7·2523/32
	jzC1 = 0.8359375
	jzC2 = 18.8515625
	jzC3 = 18.6875

	jzPeak = 10000.0
)

var (
	jzLMS = Matrix3{
		{0.41478972, 0.579999, 0.0146480},
		{-0.2015100, 1.120649, 0.0531008},
		{-0.0166008, 0.264800, 0.6684799},
	}
	jzLMSInv = jzLMS.mustInverse()
)

// Jzazbz is the Safdar et al. HDR perceptual space. Jz is roughly [0, 1]
// for SDR content at the default luminance.
type Jzazbz struct {
	Jz, Az, Bz float32
}

// Jzczhz is Jzazbz in polar form, Hz in radians.
type Jzczhz struct {
	Jz, Cz, Hz float32
}

// jzPQ is the perceptual quantizer with the Jzazbz exponent p. Negative
// absolute luminance clamps to zero.
func jzPQ[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.MapLanes(v, func(x T) T {
		xp := stdmath.Pow(max(float64(x), 0)/jzPeak, jzN)
		return T(stdmath.Pow((jzC1+jzC2*xp)/(1+jzC3*xp), jzP))
	})
}

func jzPQInv[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.MapLanes(v, func(x T) T {
		xp := stdmath.Pow(max(float64(x), 0), 1/jzP)
		return T(jzPeak * stdmath.Pow(max(xp-jzC1, 0)/(jzC2-jzC3*xp), 1/jzN))
	})
}

// jzLightness maps Iz to uncorrected Jz.
func jzLightness[T hwy.Floats](iz hwy.Vec[T]) hwy.Vec[T] {
	n := iz.NumLanes()
	num := hwy.Mul(iz, splat[T](1+jzD, n))
	den := hwy.MulAdd(iz, splat[T](jzD, n), splat[T](1, n))
	return hwy.Div(num, den)
}

// jzBlack is Jz of absolute black evaluated in T with the forward kernel's
// own operations. It is subtracted on the way in and added back on the way
// out, so black cancels exactly at every precision.
func jzBlack[T hwy.Floats]() T {
	var z T
	if _, ok := any(z).(float32); ok {
		return T(jzBlack32())
	}
	return T(jzBlack64())
}

var (
	jzBlack32 = sync.OnceValue(rawBlack[float32])
	jzBlack64 = sync.OnceValue(rawBlack[float64])
)

func rawBlack[T hwy.Floats]() T {
	p := jzPQ(hwy.ZeroN[T](1))
	iz := hwy.Mul(hwy.Add(p, p), hwy.SetN[T](0.5, 1))
	return hwy.GetLane(jzLightness(iz), 0)
}

// BaseXYZToJzazbz converts XYZ (0..100) to Jzazbz. luminance is the
// display peak in cd/m² for Y = 100.
func BaseXYZToJzazbz[T hwy.Floats](luminance float64, x, y, z hwy.Vec[T]) (jz, az, bz hwy.Vec[T]) {
	n := x.NumLanes()
	scale := splat[T](luminance/100, n)
	xa, ya, za := hwy.Mul(x, scale), hwy.Mul(y, scale), hwy.Mul(z, scale)

	xp := hwy.Sub(hwy.Mul(xa, splat[T](jzB, n)), hwy.Mul(za, splat[T](jzB-1, n)))
	yp := hwy.Sub(hwy.Mul(ya, splat[T](jzG, n)), hwy.Mul(xa, splat[T](jzG-1, n)))
	l, m, s := Vec3Mul(jzLMS, xp, yp, za)
	l, m, s = jzPQ(l), jzPQ(m), jzPQ(s)

	iz := hwy.Mul(hwy.Add(l, m), splat[T](0.5, n))
	jz = hwy.Sub(jzLightness(iz), hwy.SetN(jzBlack[T](), n))

	// The opponent rows sum to zero; grouping them as differences makes a
	// neutral input give exactly zero.
	lm, sm, ls := hwy.Sub(l, m), hwy.Sub(s, m), hwy.Sub(l, s)
	az = hwy.MulAdd(sm, splat[T](0.542708, n), hwy.Mul(lm, splat[T](3.524000, n)))
	bz = hwy.MulAdd(hwy.Sub(m, s), splat[T](1.096799, n), hwy.Mul(ls, splat[T](0.199076, n)))
	return jz, az, bz
}

// BaseJzazbzToXYZ is the inverse of BaseXYZToJzazbz.
func BaseJzazbzToXYZ[T hwy.Floats](luminance float64, jz, az, bz hwy.Vec[T]) (x, y, z hwy.Vec[T]) {
	n := jz.NumLanes()
	j := hwy.Add(jz, hwy.SetN(jzBlack[T](), n))
	iz := hwy.Div(j, hwy.MulAdd(j, splat[T](-jzD, n), splat[T](1+jzD, n)))

	l := hwy.MulAdd(az, splat[T](1.386050432715393e-1, n), iz)
	l = hwy.MulAdd(bz, splat[T](5.804731615611869e-2, n), l)
	m := hwy.MulAdd(az, splat[T](-1.386050432715393e-1, n), iz)
	m = hwy.MulAdd(bz, splat[T](-5.804731615611869e-2, n), m)
	s := hwy.MulAdd(az, splat[T](-9.601924202631895e-2, n), iz)
	s = hwy.MulAdd(bz, splat[T](-8.118918960560390e-1, n), s)

	xp, yp, za := Vec3Mul(jzLMSInv, jzPQInv(l), jzPQInv(m), jzPQInv(s))
	xa := hwy.Div(hwy.MulAdd(za, splat[T](jzB-1, n), xp), splat[T](jzB, n))
	ya := hwy.Div(hwy.MulAdd(xa, splat[T](jzG-1, n), yp), splat[T](jzG, n))

	scale := splat[T](100/luminance, n)
	return hwy.Mul(xa, scale), hwy.Mul(ya, scale), hwy.Mul(za, scale)
}

func (c Jzazbz) Coords() [3]float32 { return [3]float32{c.Jz, c.Az, c.Bz} }

func (c Jzazbz) ApproxEqual(o Jzazbz, eps float32) bool {
	return approxCoords(c.Coords(), o.Coords(), eps)
}

// ToXYZ converts back using the given display luminance in cd/m².
func (c Jzazbz) ToXYZ(luminance float32) XYZ {
	j, a, b := one(c.Jz, c.Az, c.Bz)
	x, y, z := lane0(BaseJzazbzToXYZ(float64(luminance), j, a, b))
	return XYZ{x, y, z}
}

func (c Jzazbz) ToRgb(tf transfer.Function) Rgb[float32] {
	return c.ToXYZ(DefaultDisplayLuminance).ToRgb(tf)
}

func (c Jzazbz) ToJzczhz() Jzczhz {
	ch, h := polar1(c.Az, c.Bz)
	return Jzczhz{c.Jz, ch, h}
}

func (c Jzczhz) Coords() [3]float32 { return [3]float32{c.Jz, c.Cz, c.Hz} }

func (c Jzczhz) ApproxEqual(o Jzczhz, eps float32) bool {
	return approxPolar(c.Jz, c.Cz, c.Hz, o.Jz, o.Cz, o.Hz, eps, false)
}

func (c Jzczhz) ToJzazbz() Jzazbz {
	a, b := cartesian1(c.Cz, c.Hz)
	return Jzazbz{c.Jz, a, b}
}

func (c Jzczhz) ToRgb(tf transfer.Function) Rgb[float32] { return c.ToJzazbz().ToRgb(tf) }
