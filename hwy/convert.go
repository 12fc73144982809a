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

package hwy

import "math"

// ConvertTo converts every lane of v to type U using Go conversion rules.
// Float to integer conversion truncates toward zero; callers that need
// rounding or saturation apply Round and Clamp first.
func ConvertTo[U, T Lanes](v Vec[T]) Vec[U] {
	r := Vec[U]{n: v.n}
	for i := range v.n {
		r.data[i] = U(v.data[i])
	}
	return r
}

// Round rounds each lane to the nearest integer, halves away from zero.
func Round[T Floats](v Vec[T]) Vec[T] {
	for i := range v.n {
		v.data[i] = T(math.Round(float64(v.data[i])))
	}
	return v
}

// Floor rounds each lane toward negative infinity.
func Floor[T Floats](v Vec[T]) Vec[T] {
	for i := range v.n {
		v.data[i] = T(math.Floor(float64(v.data[i])))
	}
	return v
}
