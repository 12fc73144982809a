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
)

// Sigmoidal holds the logistic image of normalized RGB.
type Sigmoidal struct {
	R, G, B float32
}

func sigmoid[T hwy.Floats](x hwy.Vec[T]) hwy.Vec[T] {
	n := x.NumLanes()
	den := hwy.Add(splat[T](1, n), math.Exp(hwy.Neg(x)))
	return hwy.IfThenZeroElse(hwy.Equal(den, hwy.ZeroN[T](n)), hwy.Div(splat[T](1, n), den))
}

// logit is ln(y / (1-y)); a zero denominator or a non-positive ratio gives 0.
func logit[T hwy.Floats](y hwy.Vec[T]) hwy.Vec[T] {
	n := y.NumLanes()
	zero := hwy.ZeroN[T](n)
	den := hwy.Sub(splat[T](1, n), y)
	ratio := hwy.Div(y, den)
	guard := hwy.MaskOr(hwy.Equal(den, zero), hwy.LessEqual(ratio, zero))
	return hwy.IfThenZeroElse(guard, math.Log(ratio))
}

// BaseRGBToSigmoidal applies 1/(1+e^-x) per channel.
func BaseRGBToSigmoidal[T hwy.Floats](r, g, b hwy.Vec[T]) (sr, sg, sb hwy.Vec[T]) {
	return sigmoid(r), sigmoid(g), sigmoid(b)
}

// BaseSigmoidalToRGB applies the guarded logit per channel.
func BaseSigmoidalToRGB[T hwy.Floats](sr, sg, sb hwy.Vec[T]) (r, g, b hwy.Vec[T]) {
	return logit(sr), logit(sg), logit(sb)
}

func (c Sigmoidal) Coords() [3]float32 { return [3]float32{c.R, c.G, c.B} }

func (c Sigmoidal) ApproxEqual(o Sigmoidal, eps float32) bool {
	return approxCoords(c.Coords(), o.Coords(), eps)
}

// ToRgb returns normalized RGB.
func (c Sigmoidal) ToRgb() Rgb[float32] {
	r, g, b := lane0(BaseSigmoidalToRGB(one(c.R, c.G, c.B)))
	return Rgb[float32]{r, g, b}
}
