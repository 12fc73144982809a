package math

import (
	stdmath "math"
	"testing"

	"github.com/ajroetker/go-colorutils/hwy"
)

func TestCbrt_F32(t *testing.T) {
	tests := []struct {
		name string
		x    float32
		want float32
	}{
		{"cbrt(8) = 2", 8.0, 2.0},
		{"cbrt(27) = 3", 27.0, 3.0},
		{"cbrt(1) = 1", 1.0, 1.0},
		{"cbrt(0) = 0", 0.0, 0.0},
		{"cbrt(-8) = -2", -8.0, -2.0},
		{"cbrt(0.001) = 0.1", 0.001, 0.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x := hwy.LoadN([]float32{tt.x, tt.x, tt.x, tt.x}, 4)
			got := Cbrt(x).Data()[0]

			if stdmath.Abs(float64(got-tt.want)) > 1e-4 {
				t.Errorf("Cbrt(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestLaneWidthsAgree(t *testing.T) {
	inputs := []float64{0.001, 0.25, 0.5, 1, 2, 17.5, 100, 1e4}
	for _, n := range []int{1, 4, 8, 16} {
		for i := 0; i < len(inputs); i += n {
			v := hwy.LoadN(inputs[i:], n)
			ops := map[string]func(hwy.Vec[float64]) hwy.Vec[float64]{
				"Cbrt":  Cbrt[float64],
				"Exp":   Exp[float64],
				"Log":   Log[float64],
				"Log10": Log10[float64],
				"Sin":   Sin[float64],
				"Cos":   Cos[float64],
			}
			ref := map[string]func(float64) float64{
				"Cbrt":  stdmath.Cbrt,
				"Exp":   stdmath.Exp,
				"Log":   stdmath.Log,
				"Log10": stdmath.Log10,
				"Sin":   stdmath.Sin,
				"Cos":   stdmath.Cos,
			}
			for name, op := range ops {
				got := op(v).Data()
				for lane := 0; lane < n && i+lane < len(inputs); lane++ {
					if want := ref[name](inputs[i+lane]); got[lane] != want {
						t.Errorf("%s n=%d lane %d: got %v, want %v", name, n, lane, got[lane], want)
					}
				}
			}
		}
	}
}

func TestPow(t *testing.T) {
	base := hwy.LoadN([]float32{2, 9, 0.5, 0}, 4)
	exp := hwy.LoadN([]float32{3, 0.5, 2, 2.4}, 4)
	got := Pow(base, exp).Data()
	want := []float32{8, 3, 0.25, 0}
	for i := range want {
		if stdmath.Abs(float64(got[i]-want[i])) > 1e-6 {
			t.Errorf("Pow lane %d: got %v, want %v", i, got[i], want[i])
		}
	}

	if got := PowConst(hwy.SetN[float32](8, 2), 1.0/3.0).Data(); stdmath.Abs(float64(got[1]-2)) > 1e-6 {
		t.Errorf("PowConst(8, 1/3) = %v", got[1])
	}
}

func TestExp10(t *testing.T) {
	got := Exp10(hwy.LoadN([]float64{0, 1, 2, -1}, 4)).Data()
	want := []float64{1, 10, 100, 0.1}
	for i := range want {
		if stdmath.Abs(got[i]-want[i]) > 1e-12 {
			t.Errorf("Exp10 lane %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestAtan2Hypot(t *testing.T) {
	y := hwy.LoadN([]float64{0, 1, -1, 3}, 4)
	x := hwy.LoadN([]float64{1, 0, 0, 4}, 4)

	angles := Atan2(y, x).Data()
	wantAngles := []float64{0, stdmath.Pi / 2, -stdmath.Pi / 2, stdmath.Atan2(3, 4)}
	for i := range wantAngles {
		if angles[i] != wantAngles[i] {
			t.Errorf("Atan2 lane %d: got %v, want %v", i, angles[i], wantAngles[i])
		}
	}

	lengths := Hypot(x, y).Data()
	wantLengths := []float64{1, 1, 1, 5}
	for i := range wantLengths {
		if lengths[i] != wantLengths[i] {
			t.Errorf("Hypot lane %d: got %v, want %v", i, lengths[i], wantLengths[i])
		}
	}
}
