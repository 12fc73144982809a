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

package math

import (
	stdmath "math"

	"github.com/ajroetker/go-colorutils/hwy"
)

// Cbrt computes the cube root of each element in the vector.
// Negative inputs yield negative roots.
func Cbrt[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.MapLanes(v, func(x T) T { return T(stdmath.Cbrt(float64(x))) })
}

// Pow computes base^exp element-wise.
func Pow[T hwy.Floats](base, exp hwy.Vec[T]) hwy.Vec[T] {
	return hwy.MapLanes2(base, exp, func(x, y T) T { return T(stdmath.Pow(float64(x), float64(y))) })
}

// PowConst raises every lane to the same exponent. The exponent is kept in
// float64 so that constants such as 1/2.4 are not rounded to T first.
func PowConst[T hwy.Floats](v hwy.Vec[T], exp float64) hwy.Vec[T] {
	return hwy.MapLanes(v, func(x T) T { return T(stdmath.Pow(float64(x), exp)) })
}

// Exp computes e^x for each lane.
func Exp[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.MapLanes(v, func(x T) T { return T(stdmath.Exp(float64(x))) })
}

// Exp10 computes 10^x for each lane.
func Exp10[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.MapLanes(v, func(x T) T { return T(stdmath.Pow(10, float64(x))) })
}

// Log computes the natural logarithm of each lane.
func Log[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.MapLanes(v, func(x T) T { return T(stdmath.Log(float64(x))) })
}

// Log10 computes the base-10 logarithm of each lane.
func Log10[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.MapLanes(v, func(x T) T { return T(stdmath.Log10(float64(x))) })
}

// Sin computes the sine of each lane (radians).
func Sin[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.MapLanes(v, func(x T) T { return T(stdmath.Sin(float64(x))) })
}

// Cos computes the cosine of each lane (radians).
func Cos[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	return hwy.MapLanes(v, func(x T) T { return T(stdmath.Cos(float64(x))) })
}

// Atan2 computes atan2(y, x) for each lane, in (-π, π].
func Atan2[T hwy.Floats](y, x hwy.Vec[T]) hwy.Vec[T] {
	return hwy.MapLanes2(y, x, func(a, b T) T { return T(stdmath.Atan2(float64(a), float64(b))) })
}

// Hypot computes sqrt(x*x + y*y) for each lane without undue overflow.
func Hypot[T hwy.Floats](x, y hwy.Vec[T]) hwy.Vec[T] {
	return hwy.MapLanes2(x, y, func(a, b T) T { return T(stdmath.Hypot(float64(a), float64(b))) })
}
