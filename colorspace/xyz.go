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
	"github.com/ajroetker/go-colorutils/transfer"
)

// XYZ is a CIE 1931 tristimulus value on the 0 to 100 scale.
type XYZ struct {
	X, Y, Z float32
}

// BaseLinearToXYZ multiplies linear RGB by m and scales to 0..100.
// Out-of-gamut input passes through unclamped.
func BaseLinearToXYZ[T hwy.Floats](m Matrix3, r, g, b hwy.Vec[T]) (x, y, z hwy.Vec[T]) {
	n := r.NumLanes()
	x, y, z = Vec3Mul(m, r, g, b)
	hundred := splat[T](100, n)
	return hwy.Mul(x, hundred), hwy.Mul(y, hundred), hwy.Mul(z, hundred)
}

// BaseXYZToLinear is the inverse of BaseLinearToXYZ given m's inverse.
func BaseXYZToLinear[T hwy.Floats](inv Matrix3, x, y, z hwy.Vec[T]) (r, g, b hwy.Vec[T]) {
	hundred := splat[T](100, x.NumLanes())
	return Vec3Mul(inv, hwy.Div(x, hundred), hwy.Div(y, hundred), hwy.Div(z, hundred))
}

func (c XYZ) Coords() [3]float32 { return [3]float32{c.X, c.Y, c.Z} }

func (c XYZ) ApproxEqual(o XYZ, eps float32) bool {
	return approxCoords(c.Coords(), o.Coords(), eps)
}

// Saturate clamps each component to [0, white].
func (c XYZ) Saturate(w WhitePoint) XYZ {
	return XYZ{
		X: min(max(c.X, 0), float32(w.X)),
		Y: min(max(c.Y, 0), float32(w.Y)),
		Z: min(max(c.Z, 0), float32(w.Z)),
	}
}

// ToLinear applies the XYZ to linear RGB matrix inv.
func (c XYZ) ToLinear(inv Matrix3) Rgb[float32] {
	x, y, z := one(c.X, c.Y, c.Z)
	r, g, b := lane0(BaseXYZToLinear(inv, x, y, z))
	return Rgb[float32]{r, g, b}
}

// ToRgb converts to gamma-encoded sRGB in [0, 1], unclamped.
func (c XYZ) ToRgb(tf transfer.Function) Rgb[float32] {
	return FromLinear(c.ToLinear(XYZToSRGB), tf)
}

func (c XYZ) ToLab() Lab {
	x, y, z := one(c.X, c.Y, c.Z)
	l, a, b := lane0(BaseXYZToLab(D65, x, y, z))
	return Lab{l, a, b}
}

func (c XYZ) ToLuv() Luv {
	x, y, z := one(c.X, c.Y, c.Z)
	l, u, v := lane0(BaseXYZToLuv(D65, x, y, z))
	return Luv{l, u, v}
}

// ToJzazbz converts using the given display peak luminance in cd/m².
func (c XYZ) ToJzazbz(luminance float32) Jzazbz {
	x, y, z := one(c.X, c.Y, c.Z)
	jz, az, bz := lane0(BaseXYZToJzazbz(float64(luminance), x, y, z))
	return Jzazbz{jz, az, bz}
}

func (c XYZ) ToLAlphaBeta() LAlphaBeta {
	l, a, b := lane0(BaseXYZToLAlphaBeta(one(c.X, c.Y, c.Z)))
	return LAlphaBeta{l, a, b}
}
