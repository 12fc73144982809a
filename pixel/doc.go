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

// Package pixel rearranges interleaved pixel buffers without any
// colorimetric math: adding and removing alpha, swapping red and blue,
// splitting channels into planes and back, and the packed 565 and 1010102
// formats.
//
// Every function validates its views before the first write, so a call that
// returns an error leaves the destination untouched.
//
// Packing to 565 and 1010102 is lossy: low bits are dropped. Each unpack
// comes in two forms. The Scaled form rescales to the full sample range
// with rounding, so the maximum code maps to the maximum sample. The Shifted
// form left-shifts by the dropped bit count, which is faster but leaves the
// low bits zero.
package pixel
