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
	"github.com/ajroetker/go-colorutils/hwy/contrib/math"
	"github.com/ajroetker/go-colorutils/transfer"
)

// CIE piecewise constants shared by Lab.
const (
	labEpsilon = 0.008856 // (6/29)³, rounded as in CIE 15
	labSlope   = 7.787
	labOffset  = 16.0 / 116.0
)

// Lab is CIE L*a*b* relative to D65. L is nominally [0, 100].
type Lab struct {
	L, A, B float32
}

// labF is the cube-root-or-linear compression of one white-relative channel.
func labF[T hwy.Floats](t hwy.Vec[T]) hwy.Vec[T] {
	n := t.NumLanes()
	lin := hwy.MulAdd(t, splat[T](labSlope, n), splat[T](labOffset, n))
	return hwy.IfThenElse(hwy.GreaterThan(t, splat[T](labEpsilon, n)), math.Cbrt(t), lin)
}

// labFInv re-applies the branch test to the cubed value.
func labFInv[T hwy.Floats](f hwy.Vec[T]) hwy.Vec[T] {
	n := f.NumLanes()
	cube := hwy.Mul(hwy.Mul(f, f), f)
	lin := hwy.Div(hwy.Sub(f, splat[T](labOffset, n)), splat[T](labSlope, n))
	return hwy.IfThenElse(hwy.GreaterThan(cube, splat[T](labEpsilon, n)), cube, lin)
}

// BaseXYZToLab converts XYZ (0..100) to Lab relative to white.
func BaseXYZToLab[T hwy.Floats](w WhitePoint, x, y, z hwy.Vec[T]) (l, a, b hwy.Vec[T]) {
	n := x.NumLanes()
	fx := labF(hwy.Div(x, splat[T](w.X, n)))
	fy := labF(hwy.Div(y, splat[T](w.Y, n)))
	fz := labF(hwy.Div(z, splat[T](w.Z, n)))

	l = hwy.Sub(hwy.Mul(fy, splat[T](116, n)), splat[T](16, n))
	a = hwy.Mul(hwy.Sub(fx, fy), splat[T](500, n))
	b = hwy.Mul(hwy.Sub(fy, fz), splat[T](200, n))
	return l, a, b
}

// BaseLabToXYZ is the inverse of BaseXYZToLab.
func BaseLabToXYZ[T hwy.Floats](w WhitePoint, l, a, b hwy.Vec[T]) (x, y, z hwy.Vec[T]) {
	n := l.NumLanes()
	fy := hwy.Div(hwy.Add(l, splat[T](16, n)), splat[T](116, n))
	fx := hwy.Add(hwy.Div(a, splat[T](500, n)), fy)
	fz := hwy.Sub(fy, hwy.Div(b, splat[T](200, n)))

	x = hwy.Mul(labFInv(fx), splat[T](w.X, n))
	y = hwy.Mul(labFInv(fy), splat[T](w.Y, n))
	z = hwy.Mul(labFInv(fz), splat[T](w.Z, n))
	return x, y, z
}

func (c Lab) Coords() [3]float32 { return [3]float32{c.L, c.A, c.B} }

func (c Lab) ApproxEqual(o Lab, eps float32) bool {
	return approxCoords(c.Coords(), o.Coords(), eps)
}

func (c Lab) ToXYZ() XYZ {
	l, a, b := one(c.L, c.A, c.B)
	x, y, z := lane0(BaseLabToXYZ(D65, l, a, b))
	return XYZ{x, y, z}
}

func (c Lab) ToRgb(tf transfer.Function) Rgb[float32] { return c.ToXYZ().ToRgb(tf) }
