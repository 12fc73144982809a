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
	"slices"
	"sync"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"github.com/ajroetker/go-colorutils/colorspace"
	"github.com/ajroetker/go-colorutils/transfer"
)

type lutKey struct {
	tf    transfer.Function
	depth int
}

// luts memoizes linearization tables per (curve, bit depth) for the named
// curves. Tables are never written after publication and are shared by
// every call.
var luts sync.Map // lutKey -> []float32

// cacheable reports whether tf is one of the finitely many named curves.
// Arbitrary power exponents get a fresh table per call.
func cacheable(tf transfer.Function) bool {
	return tf.Curve() != transfer.CurvePower || lo.Contains(transfer.Named(), tf)
}

// LinearizeLUT returns a copy of the table mapping every S code value to
// tf.Linearize of its normalized value. Entries equal the per-sample
// computation exactly. S must be uint8 or uint16.
func LinearizeLUT[S uint8 | uint16](tf transfer.Function) []float32 {
	return slices.Clone(linearizeTable[S](tf))
}

// linearizeTable returns the shared, read-only table for tf.
func linearizeTable[S uint8 | uint16](tf transfer.Function) []float32 {
	key := lutKey{tf: tf, depth: colorspace.BitDepth[S]()}
	if t, ok := luts.Load(key); ok {
		return t.([]float32)
	}

	size := 1 << key.depth
	table := make([]float32, size)
	for i := range table {
		table[i] = tf.Linearize(colorspace.Normalize(S(i)))
	}
	if !cacheable(tf) {
		return table
	}
	t, loaded := luts.LoadOrStore(key, table)
	if !loaded {
		log.WithFields(log.Fields{"curve": tf.String(), "depth": key.depth, "entries": size}).
			Debug("built linearization table")
	}
	return t.([]float32)
}
