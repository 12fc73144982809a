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

// Package hwy provides a portable lane-width vector abstraction with runtime
// capability detection.
//
// Kernels are written once against Vec[T] and run unchanged at every batch
// width: a one-lane vector is the scalar reference path, and 4, 8 or 16
// float32 lanes model the 128, 256 and 512-bit targets. Because every width
// executes the same sequence of lane operations, results are identical across
// widths.
//
// Basic usage:
//
//	import "github.com/ajroetker/go-colorutils/hwy"
//
//	a := hwy.LoadN(data1, 8)
//	b := hwy.LoadN(data2, 8)
//	hwy.Store(hwy.Add(a, b), output)
package hwy

// MaxVectorLanes is the largest lane count a Vec can hold (512 bits of float32).
const MaxVectorLanes = 16

// Floats is a constraint for floating-point types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Integers is a constraint for all integer types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Lanes is a constraint for all types that can be stored in SIMD lanes.
type Lanes interface {
	Floats | Integers
}

// Vec is a portable vector handle holding between 1 and MaxVectorLanes
// elements. It is a value type: operations never alias their inputs and do
// not allocate.
//
// Vec instances should not be created directly; use LoadN, SetN or ZeroN
// instead.
type Vec[T Lanes] struct {
	data [MaxVectorLanes]T
	n    int
}

// NumLanes returns the number of lanes (elements) in this vector.
func (v Vec[T]) NumLanes() int {
	return v.n
}

// Data returns a copy of the active lanes.
// This is primarily for testing and should not be used in performance-critical code.
func (v Vec[T]) Data() []T {
	out := make([]T, v.n)
	copy(out, v.data[:v.n])
	return out
}

// Mask represents the result of a comparison operation.
// It selects lanes in IfThenElse and its zeroing variants.
type Mask[T Lanes] struct {
	bits [MaxVectorLanes]bool
	n    int
}

// NumLanes returns the number of lanes in this mask.
func (m Mask[T]) NumLanes() int {
	return m.n
}
