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
)

// BaseToPolar returns the chroma hypot(a, b) and hue atan2(b, a) wrapped
// into [0, 2π).
func BaseToPolar[T hwy.Floats](a, b hwy.Vec[T]) (c, h hwy.Vec[T]) {
	n := a.NumLanes()
	c = math.Hypot(a, b)
	h = math.Atan2(b, a)
	tau := splat[T](2*stdmath.Pi, n)
	h = hwy.IfThenElse(hwy.LessThan(h, hwy.ZeroN[T](n)), hwy.Add(h, tau), h)
	h = hwy.IfThenElse(hwy.GreaterEqual(h, tau), hwy.Sub(h, tau), h)
	return c, h
}

// BaseFromPolar returns (c·cos h, c·sin h).
func BaseFromPolar[T hwy.Floats](c, h hwy.Vec[T]) (a, b hwy.Vec[T]) {
	return hwy.Mul(c, math.Cos(h)), hwy.Mul(c, math.Sin(h))
}

func polar1(a, b float32) (c, h float32) {
	cv, hv := BaseToPolar(hwy.SetN(a, 1), hwy.SetN(b, 1))
	return hwy.GetLane(cv, 0), hwy.GetLane(hv, 0)
}

func cartesian1(c, h float32) (a, b float32) {
	av, bv := BaseFromPolar(hwy.SetN(c, 1), hwy.SetN(h, 1))
	return hwy.GetLane(av, 0), hwy.GetLane(bv, 0)
}
