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

// Matrix3 is a row-major 3×3 matrix.
type Matrix3 [3][3]float64

// Identity3 is the 3×3 identity matrix.
var Identity3 = Matrix3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// Linear RGB to XYZ matrices (rows produce X, Y, Z for unit-scale input).
var (
	// SRGBToXYZ is the sRGB/Rec.709 primaries matrix, D65.
	SRGBToXYZ = Matrix3{
		{0.4124564, 0.3575761, 0.1804375},
		{0.2126729, 0.7151522, 0.0721750},
		{0.0193339, 0.1191920, 0.9503041},
	}
	// XYZToSRGB is the inverse of SRGBToXYZ.
	XYZToSRGB = Matrix3{
		{3.2404542, -1.5371385, -0.4985314},
		{-0.9692660, 1.8760108, 0.0415560},
		{0.0556434, -0.2040259, 1.0572252},
	}

	// DisplayP3ToXYZ uses the DCI-P3 primaries with a D65 white.
	DisplayP3ToXYZ = Matrix3{
		{0.4865709486482162, 0.26566769316909306, 0.1982172852343625},
		{0.2289745640697488, 0.6917385218365064, 0.079286914093745},
		{0, 0.04511338185890264, 1.043944368900976},
	}
	XYZToDisplayP3 = DisplayP3ToXYZ.mustInverse()

	// Rec2020ToXYZ uses the BT.2020 primaries, D65.
	Rec2020ToXYZ = Matrix3{
		{0.6369580483012914, 0.14461690358620832, 0.1688809751641721},
		{0.2627002120112671, 0.6779980715188708, 0.05930171646986196},
		{0, 0.028072693049087428, 1.060985057710791},
	}
	XYZToRec2020 = Rec2020ToXYZ.mustInverse()
)

// Mul returns m·o.
func (m Matrix3) Mul(o Matrix3) Matrix3 {
	var r Matrix3
	for i := range 3 {
		for j := range 3 {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

// Transform applies m to the column vector (a, b, c).
func (m Matrix3) Transform(a, b, c float64) (float64, float64, float64) {
	return m[0][0]*a + m[0][1]*b + m[0][2]*c,
		m[1][0]*a + m[1][1]*b + m[1][2]*c,
		m[2][0]*a + m[2][1]*b + m[2][2]*c
}

// Determinant returns det(m).
func (m Matrix3) Determinant() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

// Inverse returns m⁻¹ by the adjugate. ok is false for a singular matrix.
func (m Matrix3) Inverse() (inv Matrix3, ok bool) {
	det := m.Determinant()
	if det == 0 {
		return Matrix3{}, false
	}
	d := 1 / det
	inv[0][0] = (m[1][1]*m[2][2] - m[1][2]*m[2][1]) * d
	inv[0][1] = (m[0][2]*m[2][1] - m[0][1]*m[2][2]) * d
	inv[0][2] = (m[0][1]*m[1][2] - m[0][2]*m[1][1]) * d
	inv[1][0] = (m[1][2]*m[2][0] - m[1][0]*m[2][2]) * d
	inv[1][1] = (m[0][0]*m[2][2] - m[0][2]*m[2][0]) * d
	inv[1][2] = (m[0][2]*m[1][0] - m[0][0]*m[1][2]) * d
	inv[2][0] = (m[1][0]*m[2][1] - m[1][1]*m[2][0]) * d
	inv[2][1] = (m[0][1]*m[2][0] - m[0][0]*m[2][1]) * d
	inv[2][2] = (m[0][0]*m[1][1] - m[0][1]*m[1][0]) * d
	return inv, true
}

func (m Matrix3) mustInverse() Matrix3 {
	inv, ok := m.Inverse()
	if !ok {
		panic("colorspace: singular matrix")
	}
	return inv
}

// Scale returns m with every coefficient multiplied by s.
func (m Matrix3) Scale(s float64) Matrix3 {
	for i := range 3 {
		for j := range 3 {
			m[i][j] *= s
		}
	}
	return m
}

// Vec3Mul multiplies the lanes of (a, b, c) by m. The coefficients are
// rounded to T once; each output is accumulated left to right.
func Vec3Mul[T hwy.Floats](m Matrix3, a, b, c hwy.Vec[T]) (x, y, z hwy.Vec[T]) {
	n := a.NumLanes()
	row := func(r [3]float64) hwy.Vec[T] {
		acc := hwy.Mul(a, hwy.SetN(T(r[0]), n))
		acc = hwy.MulAdd(b, hwy.SetN(T(r[1]), n), acc)
		return hwy.MulAdd(c, hwy.SetN(T(r[2]), n), acc)
	}
	return row(m[0]), row(m[1]), row(m[2])
}

func splat[T hwy.Floats](v float64, n int) hwy.Vec[T] {
	return hwy.SetN(T(v), n)
}

// WhitePoint is a reference white in XYZ on the 0 to 100 scale.
type WhitePoint struct {
	X, Y, Z float64
}

var (
	D65 = WhitePoint{95.047, 100, 108.883}
	D50 = WhitePoint{96.422, 100, 82.521}
)

// XYZ returns the white point as an XYZ value.
func (w WhitePoint) XYZ() XYZ {
	return XYZ{X: float32(w.X), Y: float32(w.Y), Z: float32(w.Z)}
}

// uvPrime returns the CIE 1976 u′v′ chromaticity of the white point.
func (w WhitePoint) uvPrime() (u, v float64) {
	den := w.X + 15*w.Y + 3*w.Z
	return 4 * w.X / den, 9 * w.Y / den
}
