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

var (
	// linear sRGB -> LMS
	oklabM1 = Matrix3{
		{0.4122214708, 0.5363325363, 0.0514459929},
		{0.2119034982, 0.6806995451, 0.1073969566},
		{0.0883024619, 0.2817188376, 0.6299787005},
	}
	// LMS' -> Lab
	oklabM2 = Matrix3{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
	oklabM2Inv = Matrix3{
		{1, 0.3963377774, 0.2158037573},
		{1, -0.1055613458, -0.0638541728},
		{1, -0.0894841775, -1.2914855480},
	}
	oklabM1Inv = Matrix3{
		{4.0767416621, -3.3077115913, 0.2309699292},
		{-1.2684380046, 2.6097574011, -0.3413193965},
		{-0.0041960863, -0.7034186147, 1.7076147010},
	}
)

// Oklab is Björn Ottosson's perceptual space over linear sRGB. L is [0, 1].
type Oklab struct {
	L, A, B float32
}

// Oklch is Oklab in polar form, H in radians.
type Oklch struct {
	L, C, H float32
}

// BaseLinearToOklab converts linear sRGB to Oklab: matrix, signed cube
// root, matrix.
func BaseLinearToOklab[T hwy.Floats](r, g, b hwy.Vec[T]) (l, a, bb hwy.Vec[T]) {
	lms0, lms1, lms2 := Vec3Mul(oklabM1, r, g, b)
	return Vec3Mul(oklabM2, math.Cbrt(lms0), math.Cbrt(lms1), math.Cbrt(lms2))
}

// BaseOklabToLinear mirrors BaseLinearToOklab: matrix, cube, matrix.
func BaseOklabToLinear[T hwy.Floats](l, a, b hwy.Vec[T]) (r, g, bb hwy.Vec[T]) {
	p0, p1, p2 := Vec3Mul(oklabM2Inv, l, a, b)
	cube := func(v hwy.Vec[T]) hwy.Vec[T] { return hwy.Mul(hwy.Mul(v, v), v) }
	return Vec3Mul(oklabM1Inv, cube(p0), cube(p1), cube(p2))
}

func (c Oklab) Coords() [3]float32 { return [3]float32{c.L, c.A, c.B} }

func (c Oklab) ApproxEqual(o Oklab, eps float32) bool {
	return approxCoords(c.Coords(), o.Coords(), eps)
}

func (c Oklab) ToLinear() Rgb[float32] {
	r, g, b := lane0(BaseOklabToLinear(one(c.L, c.A, c.B)))
	return Rgb[float32]{r, g, b}
}

func (c Oklab) ToRgb(tf transfer.Function) Rgb[float32] { return FromLinear(c.ToLinear(), tf) }

func (c Oklab) ToOklch() Oklch {
	ch, h := polar1(c.A, c.B)
	return Oklch{c.L, ch, h}
}

func (c Oklch) Coords() [3]float32 { return [3]float32{c.L, c.C, c.H} }

// ApproxEqual compares on the hue circle and ignores hue at zero chroma.
func (c Oklch) ApproxEqual(o Oklch, eps float32) bool {
	return approxPolar(c.L, c.C, c.H, o.L, o.C, o.H, eps, false)
}

func (c Oklch) ToOklab() Oklab {
	a, b := cartesian1(c.C, c.H)
	return Oklab{c.L, a, b}
}

func (c Oklch) ToRgb(tf transfer.Function) Rgb[float32] { return c.ToOklab().ToRgb(tf) }
