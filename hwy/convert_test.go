package hwy

import "testing"

func TestConvertTo(t *testing.T) {
	v := LoadN([]float32{0.9, 1.5, 254.6, 255}, 4)
	got := ConvertTo[uint8](v).Data()
	want := []uint8{0, 1, 254, 255}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ConvertTo lane %d: got %d, want %d", i, got[i], want[i])
		}
	}
}

func TestRounding(t *testing.T) {
	v := LoadN([]float32{-1.5, -0.5, 0.5, 2.5}, 4)

	tests := []struct {
		name string
		got  []float32
		want []float32
	}{
		{"Round", Round(v).Data(), []float32{-2, -1, 1, 3}},
		{"Floor", Floor(v).Data(), []float32{-2, -1, 0, 2}},
	}
	for _, tt := range tests {
		for i := range tt.want {
			if tt.got[i] != tt.want[i] {
				t.Errorf("%s lane %d: got %v, want %v", tt.name, i, tt.got[i], tt.want[i])
			}
		}
	}
}

func TestConvertWidens(t *testing.T) {
	v := LoadN([]uint16{0, 0xf800, 0xffff}, 3)
	got := ShiftRight(ConvertTo[uint32](v), 11).Data()
	want := []uint32{0, 31, 31}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("lane %d: got %d, want %d", i, got[i], want[i])
		}
	}
}
