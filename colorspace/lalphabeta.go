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

var (
	// Hunt-Pointer-Estevez XYZ -> LMS.
	hpeLMS = Matrix3{
		{0.38971, 0.68898, -0.07868},
		{-0.22981, 1.18340, 0.04641},
		{0, 0, 1},
	}
	hpeLMSInv = hpeLMS.mustInverse()

	invSqrt3 = 1 / stdmath.Sqrt(3)
	invSqrt6 = 1 / stdmath.Sqrt(6)
	invSqrt2 = 1 / stdmath.Sqrt(2)

	// log LMS -> l, alpha, beta
	opponent = Matrix3{
		{invSqrt3, invSqrt3, invSqrt3},
		{invSqrt6, invSqrt6, -2 * invSqrt6},
		{invSqrt2, -invSqrt2, 0},
	}
	opponentInv = Matrix3{
		{invSqrt3, invSqrt6, invSqrt2},
		{invSqrt3, invSqrt6, -invSqrt2},
		{invSqrt3, -2 * invSqrt6, 0},
	}
)

// LAlphaBeta is Ruderman's lαβ opponent space over log cone responses.
type LAlphaBeta struct {
	L, Alpha, Beta float32
}

// guardedLog10 maps non-positive responses to 0.
func guardedLog10[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.IfThenZeroElse(hwy.LessEqual(v, hwy.ZeroN[T](v.NumLanes())), math.Log10(v))
}

// guardedExp10 maps exactly 0 back to 0, mirroring guardedLog10.
func guardedExp10[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.IfThenZeroElse(hwy.Equal(v, hwy.ZeroN[T](v.NumLanes())), math.Exp10(v))
}

// BaseXYZToLAlphaBeta converts XYZ (0..100) to lαβ.
func BaseXYZToLAlphaBeta[T hwy.Floats](x, y, z hwy.Vec[T]) (l, alpha, beta hwy.Vec[T]) {
	lc, mc, sc := Vec3Mul(hpeLMS, x, y, z)
	return Vec3Mul(opponent, guardedLog10(lc), guardedLog10(mc), guardedLog10(sc))
}

// BaseLAlphaBetaToXYZ is the inverse of BaseXYZToLAlphaBeta.
func BaseLAlphaBetaToXYZ[T hwy.Floats](l, alpha, beta hwy.Vec[T]) (x, y, z hwy.Vec[T]) {
	lc, mc, sc := Vec3Mul(opponentInv, l, alpha, beta)
	return Vec3Mul(hpeLMSInv, guardedExp10(lc), guardedExp10(mc), guardedExp10(sc))
}

func (c LAlphaBeta) Coords() [3]float32 { return [3]float32{c.L, c.Alpha, c.Beta} }

func (c LAlphaBeta) ApproxEqual(o LAlphaBeta, eps float32) bool {
	return approxCoords(c.Coords(), o.Coords(), eps)
}

func (c LAlphaBeta) ToXYZ() XYZ {
	x, y, z := lane0(BaseLAlphaBetaToXYZ(one(c.L, c.Alpha, c.Beta)))
	return XYZ{x, y, z}
}

func (c LAlphaBeta) ToRgb(tf transfer.Function) Rgb[float32] { return c.ToXYZ().ToRgb(tf) }
