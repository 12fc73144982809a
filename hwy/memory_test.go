package hwy

import "testing"

func TestLoadStoreInterleaved3(t *testing.T) {
	for _, n := range testLaneCounts {
		src := make([]uint8, 3*n)
		for i := range src {
			src[i] = uint8(i)
		}
		a, b, c := LoadInterleaved3(src, n)
		for i := range n {
			if GetLane(a, i) != uint8(3*i) || GetLane(b, i) != uint8(3*i+1) || GetLane(c, i) != uint8(3*i+2) {
				t.Fatalf("n=%d lane %d: got (%d,%d,%d)", n, i, GetLane(a, i), GetLane(b, i), GetLane(c, i))
			}
		}

		dst := make([]uint8, 3*n)
		StoreInterleaved3(a, b, c, dst)
		for i := range dst {
			if dst[i] != src[i] {
				t.Fatalf("n=%d: round trip mismatch at %d: got %d, want %d", n, i, dst[i], src[i])
			}
		}
	}
}

func TestLoadStoreInterleaved4(t *testing.T) {
	for _, n := range testLaneCounts {
		src := make([]float32, 4*n)
		for i := range src {
			src[i] = float32(i) * 0.5
		}
		a, b, c, d := LoadInterleaved4(src, n)
		dst := make([]float32, 4*n)
		StoreInterleaved4(a, b, c, d, dst)
		for i := range dst {
			if dst[i] != src[i] {
				t.Fatalf("n=%d: round trip mismatch at %d: got %v, want %v", n, i, dst[i], src[i])
			}
		}
	}
}

func TestLoadInterleavedShortSource(t *testing.T) {
	a, b, c := LoadInterleaved3([]int32{1, 2, 3, 4, 5}, 4)
	if GetLane(a, 0) != 1 || GetLane(b, 0) != 2 || GetLane(c, 0) != 3 {
		t.Errorf("first triple = (%d,%d,%d)", GetLane(a, 0), GetLane(b, 0), GetLane(c, 0))
	}
	if GetLane(a, 1) != 0 {
		t.Errorf("incomplete triple should stay zero, got %d", GetLane(a, 1))
	}
}
