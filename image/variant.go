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

package image

import (
	"fmt"

	"github.com/ajroetker/go-colorutils/hwy"
)

// Variant selects how many pixels the traversal converts per batch.
type Variant uint8

const (
	// VariantAuto follows the dispatch level detected by hwy.
	VariantAuto Variant = iota
	// VariantScalar converts one pixel at a time. It is the reference
	// every other variant must match.
	VariantScalar
	Variant128
	Variant256
	Variant512
	numVariants
)

// Tag returns the float32 vector tag the variant batches with. The scalar
// variant has none.
func (v Variant) Tag() hwy.Tag {
	switch v {
	case VariantScalar:
		return nil
	case Variant128:
		return hwy.FixedTag128[float32]{}
	case Variant256:
		return hwy.FixedTag256[float32]{}
	case Variant512:
		return hwy.FixedTag512[float32]{}
	}
	return hwy.ScalableTag[float32]{}
}

// Lanes returns the pixels per batch, resolving VariantAuto.
func (v Variant) Lanes() int {
	tag := v.Tag()
	if tag == nil {
		return 1
	}
	return max(tag.MaxLanes(), 1)
}

// Resolve maps VariantAuto to the concrete variant for this machine.
func (v Variant) Resolve() Variant {
	if v != VariantAuto {
		return v
	}
	switch hwy.MaxLanes[float32]() {
	case 16:
		return Variant512
	case 8:
		return Variant256
	case 4:
		return Variant128
	}
	return VariantScalar
}

func (v Variant) String() string {
	switch v {
	case VariantAuto:
		return "auto"
	case VariantScalar:
		return "scalar"
	case Variant128:
		return "128"
	case Variant256:
		return "256"
	case Variant512:
		return "512"
	}
	return fmt.Sprintf("Variant(%d)", v)
}

// Variants lists the concrete variants, narrowest first.
func Variants() []Variant {
	return []Variant{VariantScalar, Variant128, Variant256, Variant512}
}

// ParseVariant accepts the names produced by String.
func ParseVariant(s string) (Variant, error) {
	for v := range numVariants {
		if v.String() == s {
			return v, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}
