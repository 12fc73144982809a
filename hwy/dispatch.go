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

import (
	"os"
	"strconv"
	"unsafe"

	log "github.com/sirupsen/logrus"
)

// DispatchLevel represents the current SIMD instruction set being used.
type DispatchLevel int

const (
	// DispatchScalar indicates no SIMD, pure Go implementation.
	DispatchScalar DispatchLevel = iota

	// DispatchSSE2 indicates SSE2 instructions (x86-64 baseline, 128-bit).
	DispatchSSE2

	// DispatchAVX2 indicates AVX2 instructions (256-bit SIMD).
	DispatchAVX2

	// DispatchAVX512 indicates AVX-512 instructions (512-bit SIMD).
	DispatchAVX512

	// DispatchNEON indicates ARM NEON instructions (128-bit SIMD).
	DispatchNEON
)

// String returns a human-readable name for the dispatch level.
func (d DispatchLevel) String() string {
	switch d {
	case DispatchScalar:
		return "scalar"
	case DispatchSSE2:
		return "sse2"
	case DispatchAVX2:
		return "avx2"
	case DispatchAVX512:
		return "avx512"
	case DispatchNEON:
		return "neon"
	default:
		return "unknown"
	}
}

// currentLevel is the detected SIMD level for this runtime.
// Set by init() in dispatch_*.go files.
var currentLevel DispatchLevel

// currentWidth is the SIMD register width in bytes for the current level.
// Set by init() in dispatch_*.go files.
var currentWidth int

// CurrentLevel returns the SIMD instruction set being used.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the SIMD register width in bytes.
// For example: 16 for SSE2/NEON, 32 for AVX2, 64 for AVX-512.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the current SIMD target.
// For example: "avx2", "neon", "scalar".
func CurrentName() string {
	return currentLevel.String()
}

// NoSimdEnv checks if the HWY_NO_SIMD environment variable is set.
// When set, Highway will use scalar fallback regardless of CPU capabilities.
// This is useful for testing and debugging.
func NoSimdEnv() bool {
	val := os.Getenv("HWY_NO_SIMD")
	if val == "" {
		return false
	}
	// Any non-empty value is considered true, but also parse as bool
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// MaxWidthEnv returns the vector width cap in bytes from HWY_MAX_WIDTH, or 0
// when unset or invalid. Only 16, 32 and 64 are accepted.
func MaxWidthEnv() int {
	val := os.Getenv("HWY_MAX_WIDTH")
	if val == "" {
		return 0
	}
	w, err := strconv.Atoi(val)
	if err != nil {
		log.Warnf("hwy: ignoring HWY_MAX_WIDTH=%q: %v", val, err)
		return 0
	}
	switch w {
	case 16, 32, 64:
		return w
	}
	log.Warnf("hwy: ignoring HWY_MAX_WIDTH=%d: must be 16, 32 or 64", w)
	return 0
}

// setLevel records the detected level, honoring HWY_MAX_WIDTH.
func setLevel(level DispatchLevel, width int) {
	if capWidth := MaxWidthEnv(); capWidth != 0 && width > capWidth {
		width = capWidth
		switch {
		case width == 16 && level != DispatchNEON:
			level = DispatchSSE2
		case width == 32:
			level = DispatchAVX2
		}
	}
	currentLevel = level
	currentWidth = width
	log.Debugf("hwy: dispatch level %s, %d-byte vectors", level, width)
}

func setScalarMode() {
	// Use 16-byte vectors even in scalar mode for consistency.
	setLevel(DispatchScalar, 16)
}

// MaxLanes returns the maximum number of lanes for type T with the current SIMD width.
//
// For example, with AVX2 (256 bits / 32 bytes):
//   - float32: 32/4 = 8 lanes
//   - float64: 32/8 = 4 lanes
//   - int32: 32/4 = 8 lanes
//
// The result never exceeds MaxVectorLanes.
func MaxLanes[T Lanes]() int {
	var dummy T
	elementSize := int(unsafe.Sizeof(dummy))
	if elementSize == 0 {
		return 0
	}
	return min(currentWidth/elementSize, MaxVectorLanes)
}
