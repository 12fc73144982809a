package hwy

import "testing"

func TestDispatchLevelString(t *testing.T) {
	tests := []struct {
		level DispatchLevel
		want  string
	}{
		{DispatchScalar, "scalar"},
		{DispatchSSE2, "sse2"},
		{DispatchAVX2, "avx2"},
		{DispatchAVX512, "avx512"},
		{DispatchNEON, "neon"},
		{DispatchLevel(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("DispatchLevel(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestCurrentWidth(t *testing.T) {
	switch CurrentWidth() {
	case 16, 32, 64:
	default:
		t.Errorf("CurrentWidth() = %d, want 16, 32 or 64", CurrentWidth())
	}
	if CurrentName() == "unknown" {
		t.Errorf("CurrentName() = %q", CurrentName())
	}
}

func TestMaxLanes(t *testing.T) {
	if got, want := MaxLanes[float32](), CurrentWidth()/4; got != want {
		t.Errorf("MaxLanes[float32]() = %d, want %d", got, want)
	}
	if got := MaxLanes[uint8](); got > MaxVectorLanes {
		t.Errorf("MaxLanes[uint8]() = %d exceeds %d", got, MaxVectorLanes)
	}
}

func TestMaxWidthEnv(t *testing.T) {
	tests := []struct {
		val  string
		want int
	}{
		{"", 0},
		{"32", 32},
		{"16", 16},
		{"24", 0},
		{"wide", 0},
	}
	for _, tt := range tests {
		t.Setenv("HWY_MAX_WIDTH", tt.val)
		if got := MaxWidthEnv(); got != tt.want {
			t.Errorf("HWY_MAX_WIDTH=%q: got %d, want %d", tt.val, got, tt.want)
		}
	}
}

func TestNoSimdEnv(t *testing.T) {
	t.Setenv("HWY_NO_SIMD", "")
	if NoSimdEnv() {
		t.Error("NoSimdEnv() with empty value = true")
	}
	t.Setenv("HWY_NO_SIMD", "false")
	if NoSimdEnv() {
		t.Error("NoSimdEnv() with false = true")
	}
	t.Setenv("HWY_NO_SIMD", "yes")
	if !NoSimdEnv() {
		t.Error("NoSimdEnv() with non-bool value = false")
	}
}

func TestTags(t *testing.T) {
	if got := (FixedTag128[float32]{}).MaxLanes(); got != 4 {
		t.Errorf("FixedTag128[float32] lanes = %d", got)
	}
	if got := (FixedTag256[float32]{}).MaxLanes(); got != 8 {
		t.Errorf("FixedTag256[float32] lanes = %d", got)
	}
	if got := (FixedTag512[float32]{}).MaxLanes(); got != 16 {
		t.Errorf("FixedTag512[float32] lanes = %d", got)
	}
	if got := (FixedTag512[uint8]{}).MaxLanes(); got != MaxVectorLanes {
		t.Errorf("FixedTag512[uint8] lanes = %d, want clamp to %d", got, MaxVectorLanes)
	}
	var tag Tag = ScalableTag[float32]{}
	if tag.Width() != CurrentWidth() || tag.Name() != CurrentName() || tag.MaxLanes() != MaxLanes[float32]() {
		t.Errorf("ScalableTag = %s/%d/%d", tag.Name(), tag.Width(), tag.MaxLanes())
	}
}

func TestProcessWithTail(t *testing.T) {
	for _, lanes := range []int{0, 1, 4, 8} {
		var full, scalar []int
		ProcessWithTail(19, lanes,
			func(offset int) { full = append(full, offset) },
			func(offset int) { scalar = append(scalar, offset) },
		)
		step := max(lanes, 1)
		covered := len(full)*step + len(scalar)
		if covered != 19 {
			t.Errorf("lanes=%d: covered %d elements, want 19", lanes, covered)
		}
		if len(scalar) >= step && step > 1 {
			t.Errorf("lanes=%d: %d scalar elements, want < %d", lanes, len(scalar), step)
		}
	}
}
