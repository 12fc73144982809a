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

// This file provides the pure Go implementations of the Highway operations.
// Every operation works lane by lane over the active lanes of its inputs, so
// the same kernel produces identical results at every vector width.

func clampLanes(n int) int {
	return max(0, min(n, MaxVectorLanes))
}

// LoadN creates an n-lane vector from the first n elements of src.
// Lanes beyond len(src) are zero.
func LoadN[T Lanes](src []T, n int) Vec[T] {
	v := Vec[T]{n: clampLanes(n)}
	copy(v.data[:v.n], src)
	return v
}

// Store writes a vector's data to a slice.
func Store[T Lanes](v Vec[T], dst []T) {
	n := min(len(dst), v.n)
	copy(dst[:n], v.data[:n])
}

// SetN creates an n-lane vector with all lanes set to value.
func SetN[T Lanes](value T, n int) Vec[T] {
	v := Vec[T]{n: clampLanes(n)}
	for i := range v.n {
		v.data[i] = value
	}
	return v
}

// ZeroN creates an n-lane vector with all lanes set to zero.
func ZeroN[T Lanes](n int) Vec[T] {
	return Vec[T]{n: clampLanes(n)}
}

// GetLane returns the value of lane idx, or zero when idx is out of range.
func GetLane[T Lanes](v Vec[T], idx int) T {
	if idx < 0 || idx >= v.n {
		var zero T
		return zero
	}
	return v.data[idx]
}

// Add performs element-wise addition.
func Add[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] + b.data[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func Sub[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] - b.data[i]
	}
	return r
}

// Mul performs element-wise multiplication.
func Mul[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] * b.data[i]
	}
	return r
}

// Div performs element-wise division.
func Div[T Floats](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] / b.data[i]
	}
	return r
}

// Neg negates all lanes.
func Neg[T Lanes](v Vec[T]) Vec[T] {
	for i := range v.n {
		v.data[i] = -v.data[i]
	}
	return v
}

// Abs computes absolute value.
func Abs[T Lanes](v Vec[T]) Vec[T] {
	for i := range v.n {
		if v.data[i] < 0 {
			v.data[i] = -v.data[i]
		}
	}
	return v
}

// Min returns element-wise minimum.
func Min[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = min(a.data[i], b.data[i])
	}
	return r
}

// Max returns element-wise maximum.
func Max[T Lanes](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = max(a.data[i], b.data[i])
	}
	return r
}

// Clamp limits every lane to [lo, hi].
func Clamp[T Lanes](v Vec[T], lo, hi T) Vec[T] {
	for i := range v.n {
		v.data[i] = min(max(v.data[i], lo), hi)
	}
	return v
}

// MulAdd computes a*b + c element-wise with the product rounded to T
// before the add. The explicit conversion keeps the compiler from
// contracting the expression into a fused multiply-add.
func MulAdd[T Floats](a, b, c Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n, c.n)}
	for i := range r.n {
		r.data[i] = T(a.data[i]*b.data[i]) + c.data[i]
	}
	return r
}

func compare[T Lanes](a, b Vec[T], pred func(x, y T) bool) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.bits[i] = pred(a.data[i], b.data[i])
	}
	return m
}

// Equal performs element-wise equality comparison.
func Equal[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x == y })
}

// NotEqual performs element-wise inequality comparison.
func NotEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x != y })
}

// LessThan performs element-wise less-than comparison.
func LessThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x < y })
}

// GreaterThan performs element-wise greater-than comparison.
func GreaterThan[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x > y })
}

// LessEqual performs element-wise less-than-or-equal comparison.
func LessEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x <= y })
}

// GreaterEqual performs element-wise greater-than-or-equal comparison.
func GreaterEqual[T Lanes](a, b Vec[T]) Mask[T] {
	return compare(a, b, func(x, y T) bool { return x >= y })
}

// IsNaN returns a mask indicating which lanes contain NaN values.
func IsNaN[T Floats](v Vec[T]) Mask[T] {
	m := Mask[T]{n: v.n}
	for i := range v.n {
		m.bits[i] = v.data[i] != v.data[i]
	}
	return m
}

// MaskOr returns the lane-wise disjunction of two masks.
func MaskOr[T Lanes](a, b Mask[T]) Mask[T] {
	m := Mask[T]{n: min(a.n, b.n)}
	for i := range m.n {
		m.bits[i] = a.bits[i] || b.bits[i]
	}
	return m
}

// IfThenElse selects elements from a where mask is true, b otherwise.
func IfThenElse[T Lanes](mask Mask[T], a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(mask.n, a.n, b.n)}
	for i := range r.n {
		if mask.bits[i] {
			r.data[i] = a.data[i]
		} else {
			r.data[i] = b.data[i]
		}
	}
	return r
}

// IfThenElseZero returns a where mask is true, zero otherwise.
func IfThenElseZero[T Lanes](mask Mask[T], a Vec[T]) Vec[T] {
	return IfThenElse(mask, a, ZeroN[T](a.n))
}

// IfThenZeroElse returns zero where mask is true, b otherwise.
func IfThenZeroElse[T Lanes](mask Mask[T], b Vec[T]) Vec[T] {
	return IfThenElse(mask, ZeroN[T](b.n), b)
}

// And performs bitwise AND on integer lanes.
func And[T Integers](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] & b.data[i]
	}
	return r
}

// Or performs bitwise OR on integer lanes.
func Or[T Integers](a, b Vec[T]) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = a.data[i] | b.data[i]
	}
	return r
}

// ShiftLeft shifts each integer lane left by bits.
func ShiftLeft[T Integers](v Vec[T], bits int) Vec[T] {
	for i := range v.n {
		v.data[i] <<= bits
	}
	return v
}

// ShiftRight shifts each integer lane right by bits (arithmetic for signed types).
func ShiftRight[T Integers](v Vec[T], bits int) Vec[T] {
	for i := range v.n {
		v.data[i] >>= bits
	}
	return v
}

// MapLanes applies fn to every lane. It is the building block for lane-wise
// fallbacks of operations with no portable vector form.
func MapLanes[T Lanes](v Vec[T], fn func(T) T) Vec[T] {
	for i := range v.n {
		v.data[i] = fn(v.data[i])
	}
	return v
}

// MapLanes2 applies fn to every pair of lanes of a and b.
func MapLanes2[T Lanes](a, b Vec[T], fn func(x, y T) T) Vec[T] {
	r := Vec[T]{n: min(a.n, b.n)}
	for i := range r.n {
		r.data[i] = fn(a.data[i], b.data[i])
	}
	return r
}
