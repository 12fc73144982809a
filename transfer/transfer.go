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

// Package transfer implements the nonlinear encoding curves that relate
// stored pixel values to linear light.
//
// A Function is a small comparable value: it can be passed by value,
// compared with ==, and used as a map key (the image package keys its
// lookup tables on it). Linearize maps an encoded sample to linear light
// and Gamma maps linear light back to the encoded form. Both operate on
// normalized samples; values outside [0, 1] never produce NaN.
package transfer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ajroetker/go-colorutils/hwy"
)

// Curve names a transfer curve family.
type Curve uint8

const (
	CurveLinear Curve = iota
	CurveSRGB
	CurveRec709
	CurveRec601
	CurveRec2020
	CurveSMPTE240
	CurveSMPTE428
	CurveLog100
	CurveLog100Sqrt10
	CurveIEC61966
	CurvePQ
	CurveHLG
	CurvePower
	numCurves
)

// Function selects a transfer curve. The zero value is the identity.
type Function struct {
	curve Curve
	// exponent is only meaningful for CurvePower.
	exponent float64
}

var (
	Linear       = Function{curve: CurveLinear}
	SRGB         = Function{curve: CurveSRGB}
	Rec709       = Function{curve: CurveRec709}
	Rec601       = Function{curve: CurveRec601}
	// Rec2020 is the BT.2020 10-bit system curve. It shares the Rec.709
	// constants 1.099 and 0.018; the 12-bit values are not used.
	Rec2020      = Function{curve: CurveRec2020}
	SMPTE240     = Function{curve: CurveSMPTE240}
	SMPTE428     = Function{curve: CurveSMPTE428}
	Log100       = Function{curve: CurveLog100}
	Log100Sqrt10 = Function{curve: CurveLog100Sqrt10}
	IEC61966     = Function{curve: CurveIEC61966}
	PQ           = Function{curve: CurvePQ}
	HLG          = Function{curve: CurveHLG}
	Gamma22      = Power(2.2)
	Gamma28      = Power(2.8)
)

// ErrUnknownCurve is returned when parsing or validating an unsupported curve.
var ErrUnknownCurve = errors.New("transfer: unknown curve")

// Power returns a pure power-law curve: Linearize(v) = v^exp.
func Power(exp float64) Function {
	return Function{curve: CurvePower, exponent: exp}
}

// Curve returns the curve family.
func (f Function) Curve() Curve { return f.curve }

// Exponent returns the power-law exponent, or 0 for non-power curves.
func (f Function) Exponent() float64 { return f.exponent }

// Validate reports whether f names a supported curve.
func (f Function) Validate() error {
	if f.curve >= numCurves {
		return fmt.Errorf("%w: %d", ErrUnknownCurve, f.curve)
	}
	if f.curve == CurvePower && !(f.exponent > 0) {
		return fmt.Errorf("%w: power exponent %v must be positive", ErrUnknownCurve, f.exponent)
	}
	return nil
}

var curveNames = [...]string{
	CurveLinear:       "linear",
	CurveSRGB:         "srgb",
	CurveRec709:       "rec709",
	CurveRec601:       "rec601",
	CurveRec2020:      "rec2020",
	CurveSMPTE240:     "smpte240",
	CurveSMPTE428:     "smpte428",
	CurveLog100:       "log100",
	CurveLog100Sqrt10: "log100sqrt10",
	CurveIEC61966:     "iec61966",
	CurvePQ:           "pq",
	CurveHLG:          "hlg",
	CurvePower:        "gamma",
}

func (c Curve) String() string {
	if c < numCurves {
		return curveNames[c]
	}
	return fmt.Sprintf("Curve(%d)", c)
}

func (f Function) String() string {
	if f.curve == CurvePower {
		return "gamma" + strconv.FormatFloat(f.exponent, 'g', -1, 64)
	}
	return f.curve.String()
}

// Named returns every fixed curve plus Gamma22 and Gamma28, in Curve order.
func Named() []Function {
	return []Function{
		Linear, SRGB, Rec709, Rec601, Rec2020, SMPTE240, SMPTE428,
		Log100, Log100Sqrt10, IEC61966, PQ, HLG, Gamma22, Gamma28,
	}
}

// Parse accepts the names produced by String, case-insensitively.
// "gamma<exp>" yields a power curve, e.g. "gamma2.4".
func Parse(name string) (Function, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if rest, ok := strings.CutPrefix(s, "gamma"); ok && rest != "" {
		exp, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return Function{}, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
		}
		f := Power(exp)
		return f, f.Validate()
	}
	for c, n := range curveNames {
		if n == s && Curve(c) != CurvePower {
			return Function{curve: Curve(c)}, nil
		}
	}
	return Function{}, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
}

// Linearize maps an encoded sample to linear light.
func (f Function) Linearize(v float32) float32 {
	return float32(f.Linearize64(float64(v)))
}

// Gamma maps a linear-light sample to its encoded form.
func (f Function) Gamma(v float32) float32 {
	return float32(f.Gamma64(float64(v)))
}

// Linearize64 is Linearize in double precision.
func (f Function) Linearize64(v float64) float64 {
	switch f.curve {
	case CurveSRGB:
		return srgbLinearize(v)
	case CurveRec709, CurveRec601, CurveRec2020:
		return rec709Linearize(v, rec709Alpha, rec709Beta, 4.5)
	case CurveSMPTE240:
		return rec709Linearize(v, smpte240Alpha, smpte240Beta, 4)
	case CurveSMPTE428:
		return smpte428Linearize(v)
	case CurveLog100:
		return logLinearize(v, 2)
	case CurveLog100Sqrt10:
		return logLinearize(v, 2.5)
	case CurveIEC61966:
		return iecLinearize(v)
	case CurvePQ:
		return pqLinearize(v)
	case CurveHLG:
		return hlgLinearize(v)
	case CurvePower:
		return powerCurve(v, f.exponent)
	}
	return v
}

// Gamma64 is Gamma in double precision.
func (f Function) Gamma64(v float64) float64 {
	switch f.curve {
	case CurveSRGB:
		return srgbGamma(v)
	case CurveRec709, CurveRec601, CurveRec2020:
		return rec709Gamma(v, rec709Alpha, rec709Beta, 4.5)
	case CurveSMPTE240:
		return rec709Gamma(v, smpte240Alpha, smpte240Beta, 4)
	case CurveSMPTE428:
		return smpte428Gamma(v)
	case CurveLog100:
		return logGamma(v, 2, log100Cutoff)
	case CurveLog100Sqrt10:
		return logGamma(v, 2.5, log100Sqrt10Cutoff)
	case CurveIEC61966:
		return iecGamma(v)
	case CurvePQ:
		return pqGamma(v)
	case CurveHLG:
		return hlgGamma(v)
	case CurvePower:
		return powerCurve(v, 1/f.exponent)
	}
	return v
}

// LinearizeVec applies Linearize to every lane of v.
func LinearizeVec[T hwy.Floats](f Function, v hwy.Vec[T]) hwy.Vec[T] {
	if f.curve == CurveLinear {
		return v
	}
	return hwy.MapLanes(v, func(x T) T { return T(f.Linearize64(float64(x))) })
}

// GammaVec applies Gamma to every lane of v.
func GammaVec[T hwy.Floats](f Function, v hwy.Vec[T]) hwy.Vec[T] {
	if f.curve == CurveLinear {
		return v
	}
	return hwy.MapLanes(v, func(x T) T { return T(f.Gamma64(float64(x))) })
}

// LinearizeSlice linearizes src into dst.
// dst and src may be the same slice; dst must be at least len(src).
func LinearizeSlice(f Function, dst, src []float32) {
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = f.Linearize(v)
	}
}

// GammaSlice encodes src into dst. dst and src may be the same slice.
func GammaSlice(f Function, dst, src []float32) {
	dst = dst[:len(src)]
	for i, v := range src {
		dst[i] = f.Gamma(v)
	}
}
