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

// LoadInterleaved3 loads n interleaved triples and deinterleaves them into
// three vectors. This converts Array-of-Structures (AoS) format to
// Structure-of-Arrays (SoA).
//
// Input memory layout (interleaved triples):
//
//	[a0, b0, c0, a1, b1, c1, a2, b2, c2, ...]
//
// Output vectors:
//
//	vec_a = [a0, a1, a2, ...]
//	vec_b = [b0, b1, b2, ...]
//	vec_c = [c0, c1, c2, ...]
//
// Triples missing from src leave their lanes zero.
func LoadInterleaved3[T Lanes](src []T, n int) (Vec[T], Vec[T], Vec[T]) {
	n = clampLanes(n)
	a, b, c := Vec[T]{n: n}, Vec[T]{n: n}, Vec[T]{n: n}
	srcIdx := 0
	for i := 0; i < n && srcIdx+2 < len(src); i++ {
		a.data[i] = src[srcIdx]
		b.data[i] = src[srcIdx+1]
		c.data[i] = src[srcIdx+2]
		srcIdx += 3
	}
	return a, b, c
}

// LoadInterleaved4 loads n interleaved quads and deinterleaves them into
// four vectors.
//
// Input memory layout (interleaved quads):
//
//	[a0, b0, c0, d0, a1, b1, c1, d1, ...]
func LoadInterleaved4[T Lanes](src []T, n int) (Vec[T], Vec[T], Vec[T], Vec[T]) {
	n = clampLanes(n)
	a, b, c, d := Vec[T]{n: n}, Vec[T]{n: n}, Vec[T]{n: n}, Vec[T]{n: n}
	srcIdx := 0
	for i := 0; i < n && srcIdx+3 < len(src); i++ {
		a.data[i] = src[srcIdx]
		b.data[i] = src[srcIdx+1]
		c.data[i] = src[srcIdx+2]
		d.data[i] = src[srcIdx+3]
		srcIdx += 4
	}
	return a, b, c, d
}

// StoreInterleaved3 stores three vectors interleaved to dst.
// This is the inverse of LoadInterleaved3.
func StoreInterleaved3[T Lanes](a, b, c Vec[T], dst []T) {
	n := min(a.n, b.n, c.n)
	dstIdx := 0
	for i := 0; i < n && dstIdx+2 < len(dst); i++ {
		dst[dstIdx] = a.data[i]
		dst[dstIdx+1] = b.data[i]
		dst[dstIdx+2] = c.data[i]
		dstIdx += 3
	}
}

// StoreInterleaved4 stores four vectors interleaved to dst.
// This is the inverse of LoadInterleaved4.
func StoreInterleaved4[T Lanes](a, b, c, d Vec[T], dst []T) {
	n := min(a.n, b.n, c.n, d.n)
	dstIdx := 0
	for i := 0; i < n && dstIdx+3 < len(dst); i++ {
		dst[dstIdx] = a.data[i]
		dst[dstIdx+1] = b.data[i]
		dst[dstIdx+2] = c.data[i]
		dst[dstIdx+3] = d.data[i]
		dstIdx += 4
	}
}
