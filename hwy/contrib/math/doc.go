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

// Package math provides transcendental functions over hwy.Vec.
//
// This package corresponds to Google Highway's hwy/contrib/math directory.
// Every function here is the portable form: it evaluates the standard
// library routine lane by lane in float64 and rounds back to T, so a kernel
// built on these functions yields the same bits at every vector width.
//
// Exponential and logarithmic:
//   - Exp, Exp10, Log, Log10
//   - Pow (vector exponent), PowConst (broadcast exponent), Cbrt
//
// Trigonometric and geometric:
//   - Sin, Cos, Atan2, Hypot
package math
