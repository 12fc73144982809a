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

import stdmath "math"

// Coordinates is implemented by every value type in this package.
type Coordinates interface {
	Coords() [3]float32
}

// EuclideanDistance returns sqrt(Σ(aᵢ-bᵢ)²). Both operands share a type,
// so no cross-space comparison can compile.
func EuclideanDistance[C Coordinates](a, b C) float32 {
	ca, cb := a.Coords(), b.Coords()
	var sum float64
	for i := range ca {
		d := float64(ca[i] - cb[i])
		sum += d * d
	}
	return float32(stdmath.Sqrt(sum))
}

// TaxicabDistance returns Σ|aᵢ-bᵢ|.
func TaxicabDistance[C Coordinates](a, b C) float32 {
	ca, cb := a.Coords(), b.Coords()
	var sum float32
	for i := range ca {
		sum += abs32(ca[i] - cb[i])
	}
	return sum
}

func approxCoords(a, b [3]float32, eps float32) bool {
	for i := range a {
		if abs32(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
