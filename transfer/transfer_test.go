package transfer

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-colorutils/hwy"
)

func TestKnownValues(t *testing.T) {
	tests := []struct {
		name      string
		f         Function
		encoded   float64
		linear    float64
		tolerance float64
	}{
		{"srgb mid", SRGB, 0.5, 0.21404114048223255, 1e-9},
		{"srgb toe", SRGB, 0.04, 0.04 / 12.92, 1e-12},
		{"srgb white", SRGB, 1, 1, 1e-12},
		{"rec709 toe", Rec709, 0.05, 0.05 / 4.5, 1e-12},
		{"rec709 white", Rec709, 1, 1, 1e-12},
		{"rec601 matches 709", Rec601, 0.5, Rec709.Linearize64(0.5), 0},
		{"rec2020 white", Rec2020, 1, 1, 1e-12},
		{"rec2020 10-bit matches 709", Rec2020, 0.5, Rec709.Linearize64(0.5), 0},
		{"rec2020 toe", Rec2020, 0.05, 0.05 / 4.5, 1e-12},
		{"smpte240 toe", SMPTE240, 0.05, 0.05 / 4, 1e-12},
		{"smpte428 white", SMPTE428, 1, 52.37 / 48, 1e-12},
		{"log100 one decade", Log100, 0.5, 0.1, 1e-12},
		{"log100sqrt10", Log100Sqrt10, 0.6, math.Pow(10, -1), 1e-12},
		{"pq white", PQ, 1, 1, 1e-9},
		{"hlg knee", HLG, 0.5, 1.0 / 12, 1e-12},
		{"hlg white", HLG, 1, 1, 1e-6},
		{"gamma22", Gamma22, 0.5, math.Pow(0.5, 2.2), 1e-12},
		{"linear", Linear, 0.37, 0.37, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.linear, tt.f.Linearize64(tt.encoded), tt.tolerance)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	for _, f := range append(Named(), Power(2.4), Power(1.8)) {
		t.Run(f.String(), func(t *testing.T) {
			for i := 1; i <= 1000; i++ {
				v := float64(i) / 1000
				if f.Curve() == CurveLog100 && v <= log100Cutoff ||
					f.Curve() == CurveLog100Sqrt10 && v <= log100Sqrt10Cutoff {
					continue
				}
				got := f.Linearize64(f.Gamma64(v))
				require.InDelta(t, v, got, 1e-9*math.Max(1, v)+1e-12, "v=%v", v)
			}
		})
	}
}

func TestLogCutoff(t *testing.T) {
	assert.Equal(t, 0.0, Log100.Gamma64(0.0099))
	assert.Equal(t, 0.0, Log100.Gamma64(0))
	assert.Equal(t, 0.0, Log100.Gamma64(-1))
	assert.InDelta(t, 0.0, Log100.Gamma64(0.01), 1e-12)
	assert.Equal(t, 0.0, Log100Sqrt10.Gamma64(0.003))
	assert.InDelta(t, 0.0, Log100Sqrt10.Gamma64(math.Sqrt(10)/1000), 1e-12)
	assert.Equal(t, 0.0, Log100.Linearize64(0))
}

func TestNoNaN(t *testing.T) {
	inputs := []float64{-1, -0.5, -1e-9, 0, 1e-9, 0.001, 0.5, 1, 1.5}
	for _, f := range append(Named(), Power(2.4)) {
		for _, v := range inputs {
			lin := f.Linearize64(v)
			enc := f.Gamma64(v)
			assert.False(t, math.IsNaN(lin) || math.IsInf(lin, 0), "%s.Linearize(%v) = %v", f, v, lin)
			assert.False(t, math.IsNaN(enc) || math.IsInf(enc, 0), "%s.Gamma(%v) = %v", f, v, enc)
		}
	}
}

func TestIECOddSymmetry(t *testing.T) {
	for _, v := range []float64{0.01, 0.2, 0.5, 1} {
		assert.InDelta(t, -IEC61966.Gamma64(v), IEC61966.Gamma64(-v), 1e-12)
		assert.InDelta(t, -IEC61966.Linearize64(v), IEC61966.Linearize64(-v), 1e-12)
	}
}

func TestVecMatchesScalar(t *testing.T) {
	src := make([]float32, 16)
	for i := range src {
		src[i] = float32(i) / 15
	}
	for _, f := range Named() {
		for _, n := range []int{1, 4, 8, 16} {
			for off := 0; off+n <= len(src); off += n {
				lin := LinearizeVec(f, hwy.LoadN(src[off:], n)).Data()
				enc := GammaVec(f, hwy.LoadN(src[off:], n)).Data()
				for i := 0; i < n; i++ {
					require.Equal(t, f.Linearize(src[off+i]), lin[i], "%s n=%d", f, n)
					require.Equal(t, f.Gamma(src[off+i]), enc[i], "%s n=%d", f, n)
				}
			}
		}
	}
}

func TestSlices(t *testing.T) {
	buf := []float32{0, 0.25, 0.5, 1}
	want := make([]float32, len(buf))
	for i, v := range buf {
		want[i] = SRGB.Linearize(v)
	}
	LinearizeSlice(SRGB, buf, buf)
	assert.Equal(t, want, buf)
	GammaSlice(SRGB, buf, buf)
	assert.InDeltaSlice(t, []float32{0, 0.25, 0.5, 1}, buf, 1e-6)
}

func TestParse(t *testing.T) {
	for _, f := range Named() {
		got, err := Parse(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	f, err := Parse("Gamma2.4")
	require.NoError(t, err)
	assert.Equal(t, Power(2.4), f)

	_, err = Parse("sRGB-ish")
	assert.True(t, errors.Is(err, ErrUnknownCurve))
	_, err = Parse("gamma-1")
	assert.ErrorIs(t, err, ErrUnknownCurve)
	assert.ErrorIs(t, Function{curve: numCurves}.Validate(), ErrUnknownCurve)
}

func TestComparableKey(t *testing.T) {
	m := map[Function]int{SRGB: 1, Power(2.2): 2}
	assert.Equal(t, 2, m[Gamma22])
	assert.Equal(t, 1, m[SRGB])
	assert.NotEqual(t, Rec709, Rec601)
}
