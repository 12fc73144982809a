package image

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ajroetker/go-colorutils/colorspace"
	"github.com/ajroetker/go-colorutils/hwy"
	"github.com/ajroetker/go-colorutils/hwy/contrib/workerpool"
	"github.com/ajroetker/go-colorutils/transfer"
)

// randomPixels returns a packed w×h buffer of seeded random samples.
func randomPixels(w, h int, layout Layout, seed uint64) []uint8 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	buf := make([]uint8, w*h*layout.Channels())
	for i := range buf {
		buf[i] = uint8(rng.UintN(256))
	}
	return buf
}

func mustView[S colorspace.Sample](t testing.TB, data []S, w, h int, layout Layout) View[S] {
	t.Helper()
	v, err := NewPackedView(data, w, h, layout)
	if err != nil {
		t.Fatalf("NewPackedView(%dx%d, %v): %v", w, h, layout, err)
	}
	return v
}

func forwardReference(s Space, c colorspace.Rgb[uint8], tf transfer.Function) [3]float32 {
	switch s {
	case SpaceLinearRGB:
		l := c.ToLinear(tf)
		return [3]float32{l.R, l.G, l.B}
	case SpaceXYZ:
		return c.ToXYZ(tf).Coords()
	case SpaceLab:
		return c.ToLab(tf).Coords()
	case SpaceLuv:
		return c.ToLuv(tf).Coords()
	case SpaceLCh:
		return c.ToLCh(tf).Coords()
	case SpaceOklab:
		return c.ToOklab(tf).Coords()
	case SpaceOklch:
		return c.ToOklch(tf).Coords()
	case SpaceJzazbz:
		return c.ToJzazbz(tf).Coords()
	case SpaceJzczhz:
		return c.ToJzczhz(tf).Coords()
	case SpaceHSV:
		return c.ToHsv().Coords()
	case SpaceHSL:
		return c.ToHsl().Coords()
	case SpaceSigmoidal:
		return c.ToSigmoidal().Coords()
	case SpaceLAlphaBeta:
		return c.ToLAlphaBeta(tf).Coords()
	}
	panic(s)
}

func inverseReference(s Space, p [3]float32, tf transfer.Function) colorspace.Rgb[float32] {
	a, b, c := p[0], p[1], p[2]
	switch s {
	case SpaceLinearRGB:
		return colorspace.FromLinear(colorspace.Rgb[float32]{R: a, G: b, B: c}, tf)
	case SpaceXYZ:
		return colorspace.XYZ{X: a, Y: b, Z: c}.ToRgb(tf)
	case SpaceLab:
		return colorspace.Lab{L: a, A: b, B: c}.ToRgb(tf)
	case SpaceLuv:
		return colorspace.Luv{L: a, U: b, V: c}.ToRgb(tf)
	case SpaceLCh:
		return colorspace.LCh{L: a, C: b, H: c}.ToRgb(tf)
	case SpaceOklab:
		return colorspace.Oklab{L: a, A: b, B: c}.ToRgb(tf)
	case SpaceOklch:
		return colorspace.Oklch{L: a, C: b, H: c}.ToRgb(tf)
	case SpaceJzazbz:
		return colorspace.Jzazbz{Jz: a, Az: b, Bz: c}.ToRgb(tf)
	case SpaceJzczhz:
		return colorspace.Jzczhz{Jz: a, Cz: b, Hz: c}.ToRgb(tf)
	case SpaceHSV:
		return colorspace.Hsv{H: a, S: b, V: c}.ToRgb()
	case SpaceHSL:
		return colorspace.Hsl{H: a, S: b, L: c}.ToRgb()
	case SpaceSigmoidal:
		return colorspace.Sigmoidal{R: a, G: b, B: c}.ToRgb()
	case SpaceLAlphaBeta:
		return colorspace.LAlphaBeta{L: a, Alpha: b, Beta: c}.ToRgb(tf)
	}
	panic(s)
}

func TestNewView(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		w, h    int
		stride  int
		layout  Layout
		wantErr error
	}{
		{"packed", 2 * 2 * 3, 2, 2, 6, RGB, nil},
		{"padded", 8 + 6, 2, 2, 8, RGB, nil},
		{"short last row ok", 16 + 8, 2, 2, 16, RGBA, nil},
		{"empty", 0, 0, 0, 0, RGB, nil},
		{"negative width", 12, -1, 2, 6, RGB, ErrInvalidDimensions},
		{"stride below row", 12, 2, 2, 5, RGB, ErrInvalidStride},
		{"buffer too small", 11, 2, 2, 6, RGB, ErrBufferTooSmall},
		{"bad layout", 12, 2, 2, 6, Layout(9), ErrUnknownLayout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewView(make([]uint8, tt.size), tt.w, tt.h, tt.stride, tt.layout)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("NewView error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNewView_StrideAlignment(t *testing.T) {
	_, err := NewView(make([]uint16, 64), 2, 2, 13, RGB)
	if !errors.Is(err, ErrInvalidStride) {
		t.Errorf("odd byte stride for uint16: got %v, want ErrInvalidStride", err)
	}
	v, err := NewView(make([]uint16, 64), 2, 2, 16, RGB)
	if err != nil {
		t.Fatal(err)
	}
	if v.Stride() != 16 {
		t.Errorf("Stride() = %d, want 16", v.Stride())
	}
}

// TestVariantsAgree checks every batch width against the one-pixel path
// on an odd-sized image, so full batches and tails are both exercised.
func TestVariantsAgree(t *testing.T) {
	const w, h = 131, 83 // > 10k pixels
	src := mustView(t, randomPixels(w, h, RGBA, 1), w, h, RGBA)

	for _, s := range Spaces() {
		t.Run(s.String(), func(t *testing.T) {
			want := make([]float32, w*h*4)
			if err := ToColorspace(src, mustView(t, want, w, h, RGBA), s, transfer.SRGB, WithVariant(VariantScalar)); err != nil {
				t.Fatal(err)
			}
			for _, v := range []Variant{Variant128, Variant256, Variant512, VariantAuto} {
				got := make([]float32, w*h*4)
				if err := ToColorspace(src, mustView(t, got, w, h, RGBA), s, transfer.SRGB, WithVariant(v)); err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(want, got); diff != "" {
					t.Errorf("%v forward differs from scalar (-want +got):\n%s", v, diff)
				}

				back := make([]uint8, w*h*4)
				wantBack := make([]uint8, w*h*4)
				fv := mustView(t, want, w, h, RGBA)
				if err := FromColorspace(fv, mustView(t, wantBack, w, h, RGBA), s, transfer.SRGB, WithVariant(VariantScalar)); err != nil {
					t.Fatal(err)
				}
				if err := FromColorspace(fv, mustView(t, back, w, h, RGBA), s, transfer.SRGB, WithVariant(v)); err != nil {
					t.Fatal(err)
				}
				if diff := cmp.Diff(wantBack, back); diff != "" {
					t.Errorf("%v inverse differs from scalar (-want +got):\n%s", v, diff)
				}
			}
		})
	}
}

func TestMatchesSinglePixel(t *testing.T) {
	const w, h = 37, 11
	pixels := randomPixels(w, h, BGR, 2)
	src := mustView(t, pixels, w, h, BGR)

	for _, s := range Spaces() {
		t.Run(s.String(), func(t *testing.T) {
			out := make([]float32, w*h*3)
			if err := ToColorspace(src, mustView(t, out, w, h, RGB), s, transfer.SRGB); err != nil {
				t.Fatal(err)
			}
			for i := range w * h {
				p := pixels[i*3:]
				c := colorspace.Rgb[uint8]{R: p[2], G: p[1], B: p[0]}
				want := forwardReference(s, c, transfer.SRGB)
				got := [3]float32(out[i*3 : i*3+3])
				if got != want {
					t.Fatalf("pixel %d %v: bulk %v, single %v", i, c, got, want)
				}

				rgb := colorspace.Quantize[uint8](inverseReference(s, want, transfer.SRGB))
				back := make([]uint8, 3)
				fv := mustView(t, out[i*3:i*3+3], 1, 1, RGB)
				if err := FromColorspace(fv, mustView(t, back, 1, 1, RGB), s, transfer.SRGB); err != nil {
					t.Fatal(err)
				}
				if got := (colorspace.Rgb[uint8]{R: back[0], G: back[1], B: back[2]}); got != rgb {
					t.Fatalf("pixel %d: bulk inverse %v, single %v", i, got, rgb)
				}
			}
		})
	}
}

func TestRoundTripWithinOne(t *testing.T) {
	const w, h = 64, 64
	pixels := randomPixels(w, h, RGB, 3)
	src := mustView(t, pixels, w, h, RGB)

	for _, s := range Spaces() {
		t.Run(s.String(), func(t *testing.T) {
			mid := make([]float32, w*h*3)
			back := make([]uint8, w*h*3)
			if err := ToColorspace(src, mustView(t, mid, w, h, RGB), s, transfer.SRGB); err != nil {
				t.Fatal(err)
			}
			if err := FromColorspace(mustView(t, mid, w, h, RGB), mustView(t, back, w, h, RGB), s, transfer.SRGB); err != nil {
				t.Fatal(err)
			}
			for i := range pixels {
				d := int(pixels[i]) - int(back[i])
				if d < -1 || d > 1 {
					t.Fatalf("sample %d: %d -> %d", i, pixels[i], back[i])
				}
			}
		})
	}
}

func TestStridePaddingUntouched(t *testing.T) {
	const w, h, pad = 5, 4, 7
	const stride = w*3 + pad
	const sentinel = float32(-12345)

	src := mustView(t, randomPixels(w, h, RGB, 4), w, h, RGB)
	buf := make([]float32, stride*h)
	for i := range buf {
		buf[i] = sentinel
	}
	dst, err := NewView(buf, w, h, stride*4, RGB)
	if err != nil {
		t.Fatal(err)
	}
	if err := ToLab(src, dst, transfer.SRGB, WithVariant(Variant128)); err != nil {
		t.Fatal(err)
	}
	for y := range h {
		for i := w * 3; i < stride && y*stride+i < len(buf); i++ {
			if buf[y*stride+i] != sentinel {
				t.Errorf("padding at row %d offset %d overwritten: %v", y, i, buf[y*stride+i])
			}
		}
	}
}

func TestErrorsLeaveDestinationUntouched(t *testing.T) {
	src := mustView(t, randomPixels(4, 4, RGB, 5), 4, 4, RGB)
	fresh := func() ([]float32, View[float32]) {
		buf := make([]float32, 4*4*3)
		for i := range buf {
			buf[i] = 7
		}
		return buf, mustView(t, buf, 4, 4, RGB)
	}

	tests := []struct {
		name    string
		run     func(View[float32]) error
		wantErr error
	}{
		{"size mismatch", func(dst View[float32]) error {
			return ToLab(mustView(t, make([]uint8, 12), 2, 2, RGB), dst, transfer.SRGB)
		}, ErrSizeMismatch},
		{"unknown space", func(dst View[float32]) error {
			return ToColorspace(src, dst, numSpaces, transfer.SRGB)
		}, ErrUnknownTarget},
		{"unknown variant", func(dst View[float32]) error {
			return ToLab(src, dst, transfer.SRGB, WithVariant(numVariants))
		}, ErrUnknownVariant},
		{"bad curve", func(dst View[float32]) error {
			return ToLab(src, dst, transfer.Power(-1))
		}, transfer.ErrUnknownCurve},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, dst := fresh()
			err := tt.run(dst)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			for i, v := range buf {
				if v != 7 {
					t.Fatalf("dst[%d] = %v after failed call", i, v)
				}
			}
		})
	}
}

func TestEmptyImage(t *testing.T) {
	src := mustView(t, []uint8(nil), 0, 0, RGB)
	dst := mustView(t, []float32(nil), 0, 0, RGB)
	if err := ToLab(src, dst, transfer.SRGB); err != nil {
		t.Errorf("empty conversion: %v", err)
	}
	if err := FromLab(dst, src, transfer.SRGB); err != nil {
		t.Errorf("empty inverse: %v", err)
	}
}

func TestAlpha(t *testing.T) {
	t.Run("passthrough", func(t *testing.T) {
		src := mustView(t, []uint8{255, 0, 0, 51}, 1, 1, RGBA)
		mid := make([]float32, 4)
		if err := ToHSL(src, mustView(t, mid, 1, 1, RGBA)); err != nil {
			t.Fatal(err)
		}
		if mid[3] != colorspace.Normalize[uint8](51) {
			t.Errorf("alpha = %v, want %v", mid[3], colorspace.Normalize[uint8](51))
		}
		back := make([]uint8, 4)
		if err := FromHSL(mustView(t, mid, 1, 1, RGBA), mustView(t, back, 1, 1, BGRA)); err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff([]uint8{0, 0, 255, 51}, back); diff != "" {
			t.Errorf("BGRA output (-want +got):\n%s", diff)
		}
	})
	t.Run("default fill", func(t *testing.T) {
		src := mustView(t, []uint8{10, 20, 30}, 1, 1, RGB)
		mid := make([]float32, 4)
		if err := ToHSV(src, mustView(t, mid, 1, 1, RGBA), WithDefaultAlpha(0.5)); err != nil {
			t.Fatal(err)
		}
		if mid[3] != 0.5 {
			t.Errorf("alpha = %v, want 0.5", mid[3])
		}
		back := make([]uint16, 4)
		if err := FromHSV(mustView(t, mid[:3], 1, 1, RGB), mustView(t, back, 1, 1, RGBA)); err != nil {
			t.Fatal(err)
		}
		if back[3] != 65535 {
			t.Errorf("filled alpha = %d, want 65535", back[3])
		}
	})
}

func TestPoolParity(t *testing.T) {
	const w, h = 97, 61
	src := mustView(t, randomPixels(w, h, RGB, 6), w, h, RGB)
	pool := workerpool.New(4)
	defer pool.Close()

	want := make([]float32, w*h*3)
	got := make([]float32, w*h*3)
	if err := ToJzczhz(src, mustView(t, want, w, h, RGB), transfer.SRGB); err != nil {
		t.Fatal(err)
	}
	if err := ToJzczhz(src, mustView(t, got, w, h, RGB), transfer.SRGB, WithPool(pool), WithMinRows(3)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("pooled output differs (-want +got):\n%s", diff)
	}
}

func TestLinearizeLUT(t *testing.T) {
	for _, tf := range []transfer.Function{transfer.SRGB, transfer.Rec709, transfer.PQ, transfer.Gamma22} {
		lut := LinearizeLUT[uint8](tf)
		if len(lut) != 256 {
			t.Fatalf("%v: %d entries", tf, len(lut))
		}
		for i, v := range lut {
			if want := tf.Linearize(float32(i) / 255); v != want {
				t.Errorf("%v[%d] = %v, want %v", tf, i, v, want)
			}
		}
		shared := linearizeTable[uint8](tf)
		if again := linearizeTable[uint8](tf); &again[0] != &shared[0] {
			t.Errorf("%v: table rebuilt on second call", tf)
		}
	}
	if got := len(LinearizeLUT[uint16](transfer.SRGB)); got != 65536 {
		t.Errorf("uint16 table has %d entries", got)
	}
}

func TestLinearizeLUT_CallerCopy(t *testing.T) {
	src := mustView(t, []uint8{10, 128, 250}, 1, 1, RGB)
	convert := func() []float32 {
		out := make([]float32, 3)
		if err := ToLinearRGB(src, mustView(t, out, 1, 1, RGB), transfer.SRGB); err != nil {
			t.Fatal(err)
		}
		return out
	}
	before := convert()

	lut := LinearizeLUT[uint8](transfer.SRGB)
	for i := range lut {
		lut[i] = 42
	}
	if diff := cmp.Diff(before, convert()); diff != "" {
		t.Errorf("writing the returned table changed later conversions (-before +after):\n%s", diff)
	}
}

func TestQuantizeMatchesDenormalize(t *testing.T) {
	inputs := []float32{
		0, 1, -0.25, 1.5, 0.5 / 255, 1.5 / 255, 254.5 / 255, 0.5 / 65535,
		float32(math.NaN()), float32(math.Inf(1)), float32(math.Inf(-1)),
		0.1, 0.2, 0.3, 0.7, 0.999,
	}
	v := hwy.LoadN(inputs, len(inputs))
	q8, q16, qf := quantize[uint8](v), quantize[uint16](v), quantize[float32](v)
	for i, x := range inputs {
		if got, want := hwy.GetLane(q8, i), colorspace.Denormalize[uint8](x); got != want {
			t.Errorf("uint8 %v: got %d, want %d", x, got, want)
		}
		if got, want := hwy.GetLane(q16, i), colorspace.Denormalize[uint16](x); got != want {
			t.Errorf("uint16 %v: got %d, want %d", x, got, want)
		}
		if got := hwy.GetLane(qf, i); got != x && !(x != x && got != got) {
			t.Errorf("float32 %v: got %v", x, got)
		}
	}
}

func TestLinearizeLUT_PowerNotCached(t *testing.T) {
	tf := transfer.Power(1.7)
	a := linearizeTable[uint8](tf)
	b := linearizeTable[uint8](tf)
	if &a[0] == &b[0] {
		t.Error("arbitrary power curve was cached")
	}
	if _, ok := luts.Load(lutKey{tf: tf, depth: 8}); ok {
		t.Error("arbitrary power curve stored in the shared cache")
	}
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("fresh tables differ:\n%s", diff)
	}
	if !cacheable(transfer.Gamma22) || !cacheable(transfer.SRGB) {
		t.Error("named curves must be cacheable")
	}
}

func TestOptionsMatrixAndWhite(t *testing.T) {
	src := mustView(t, []uint8{255, 255, 255}, 1, 1, RGB)
	out := make([]float32, 3)
	err := ToXYZ(src, mustView(t, out, 1, 1, RGB), transfer.SRGB,
		WithMatrix(colorspace.DisplayP3ToXYZ, colorspace.XYZToDisplayP3))
	if err != nil {
		t.Fatal(err)
	}
	if d := out[1] - 100; d > 0.01 || d < -0.01 {
		t.Errorf("P3 white Y = %v, want 100", out[1])
	}

	err = ToLab(src, mustView(t, out, 1, 1, RGB), transfer.SRGB, WithWhitePoint(colorspace.D50))
	if err != nil {
		t.Fatal(err)
	}
	if out[2] > -10 {
		t.Errorf("D65 white against a D50 reference: b = %v, want strongly blue", out[2])
	}
}

func TestParse(t *testing.T) {
	for _, s := range Spaces() {
		got, err := ParseSpace(s.String())
		if err != nil || got != s {
			t.Errorf("ParseSpace(%q) = %v, %v", s.String(), got, err)
		}
	}
	if _, err := ParseSpace("cmyk"); !errors.Is(err, ErrUnknownTarget) {
		t.Errorf("ParseSpace(cmyk) error = %v", err)
	}
	for _, v := range Variants() {
		got, err := ParseVariant(v.String())
		if err != nil || got != v {
			t.Errorf("ParseVariant(%q) = %v, %v", v.String(), got, err)
		}
	}
}

func TestVariantLanes(t *testing.T) {
	tests := []struct {
		v     Variant
		lanes int
		tag   string
	}{
		{VariantScalar, 1, ""},
		{Variant128, 4, "128bit"},
		{Variant256, 8, "256bit"},
		{Variant512, 16, "512bit"},
	}
	for _, tt := range tests {
		if got := tt.v.Lanes(); got != tt.lanes {
			t.Errorf("%s.Lanes() = %d, want %d", tt.v, got, tt.lanes)
		}
		tag := tt.v.Tag()
		if tt.tag == "" {
			if tag != nil {
				t.Errorf("%s.Tag() = %v, want nil", tt.v, tag)
			}
			continue
		}
		if tag.Name() != tt.tag || tag.Width() != tt.lanes*4 {
			t.Errorf("%s.Tag() = %s/%d bytes", tt.v, tag.Name(), tag.Width())
		}
	}
	if got, want := VariantAuto.Lanes(), hwy.MaxLanes[float32](); got != want {
		t.Errorf("auto lanes = %d, want %d", got, want)
	}
}

func BenchmarkToLab(b *testing.B) {
	const w, h = 1920, 1080
	src := mustView(b, randomPixels(w, h, RGB, 7), w, h, RGB)
	dst := mustView(b, make([]float32, w*h*3), w, h, RGB)
	for _, v := range Variants() {
		b.Run(v.String(), func(b *testing.B) {
			b.SetBytes(w * h * 3)
			for b.Loop() {
				_ = ToLab(src, dst, transfer.SRGB, WithVariant(v))
			}
		})
	}
}
