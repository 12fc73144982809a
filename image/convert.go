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

	"github.com/ajroetker/go-colorutils/colorspace"
	"github.com/ajroetker/go-colorutils/transfer"
)

// Space names a colorspace a bulk conversion targets.
type Space uint8

const (
	SpaceLinearRGB Space = iota
	SpaceXYZ
	SpaceLab
	SpaceLuv
	SpaceLCh
	SpaceOklab
	SpaceOklch
	SpaceJzazbz
	SpaceJzczhz
	SpaceHSV
	SpaceHSL
	SpaceSigmoidal
	SpaceLAlphaBeta
	numSpaces
)

var spaceNames = [numSpaces]string{
	"linear", "xyz", "lab", "luv", "lch", "oklab", "oklch",
	"jzazbz", "jzczhz", "hsv", "hsl", "sigmoidal", "lalphabeta",
}

func (s Space) String() string {
	if s < numSpaces {
		return spaceNames[s]
	}
	return fmt.Sprintf("Space(%d)", uint8(s))
}

// Spaces lists every supported colorspace.
func Spaces() []Space {
	out := make([]Space, numSpaces)
	for i := range out {
		out[i] = Space(i)
	}
	return out
}

// ParseSpace is the inverse of Space.String.
func ParseSpace(name string) (Space, error) {
	for i, n := range spaceNames {
		if n == name {
			return Space(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownTarget, name)
}

// Linearizes reports whether the conversion goes through linear light.
// HSV, HSL and sigmoidal work on the stored values directly.
func (s Space) Linearizes() bool {
	switch s {
	case SpaceHSV, SpaceHSL, SpaceSigmoidal:
		return false
	}
	return true
}

func (c *config) toXYZKernel() kernel {
	m := c.toXYZ
	return func(r, g, b lane) (lane, lane, lane) { return colorspace.BaseLinearToXYZ(m, r, g, b) }
}

func (c *config) fromXYZKernel() kernel {
	m := c.fromXYZ
	return func(x, y, z lane) (lane, lane, lane) { return colorspace.BaseXYZToLinear(m, x, y, z) }
}

func toPolar(l, a, b lane) (lane, lane, lane) {
	ch, h := colorspace.BaseToPolar(a, b)
	return l, ch, h
}

func fromPolar(l, ch, h lane) (lane, lane, lane) {
	a, b := colorspace.BaseFromPolar(ch, h)
	return l, a, b
}

// forward builds the kernel from normalized (and, where the space needs it,
// linearized) RGB to s.
func (c *config) forward(s Space) kernel {
	w, lum := c.white, c.luminance
	lab := func(x, y, z lane) (lane, lane, lane) { return colorspace.BaseXYZToLab(w, x, y, z) }
	luv := func(x, y, z lane) (lane, lane, lane) { return colorspace.BaseXYZToLuv(w, x, y, z) }
	jz := func(x, y, z lane) (lane, lane, lane) { return colorspace.BaseXYZToJzazbz(lum, x, y, z) }

	switch s {
	case SpaceLinearRGB:
		return identity
	case SpaceXYZ:
		return c.toXYZKernel()
	case SpaceLab:
		return chain(c.toXYZKernel(), lab)
	case SpaceLuv:
		return chain(c.toXYZKernel(), luv)
	case SpaceLCh:
		return chain(c.toXYZKernel(), luv, toPolar)
	case SpaceOklab:
		return colorspace.BaseLinearToOklab[float32]
	case SpaceOklch:
		return chain(colorspace.BaseLinearToOklab[float32], toPolar)
	case SpaceJzazbz:
		return chain(c.toXYZKernel(), jz)
	case SpaceJzczhz:
		return chain(c.toXYZKernel(), jz, toPolar)
	case SpaceHSV:
		return colorspace.BaseRGBToHSV[float32]
	case SpaceHSL:
		return colorspace.BaseRGBToHSL[float32]
	case SpaceSigmoidal:
		return colorspace.BaseRGBToSigmoidal[float32]
	case SpaceLAlphaBeta:
		return chain(c.toXYZKernel(), colorspace.BaseXYZToLAlphaBeta[float32])
	}
	panic("unreachable")
}

// inverse builds the kernel from s back to linear (or, for HSV, HSL and
// sigmoidal, stored) RGB.
func (c *config) inverse(s Space) kernel {
	w, lum := c.white, c.luminance
	lab := func(l, a, b lane) (lane, lane, lane) { return colorspace.BaseLabToXYZ(w, l, a, b) }
	luv := func(l, u, v lane) (lane, lane, lane) { return colorspace.BaseLuvToXYZ(w, l, u, v) }
	jz := func(j, a, b lane) (lane, lane, lane) { return colorspace.BaseJzazbzToXYZ(lum, j, a, b) }

	switch s {
	case SpaceLinearRGB:
		return identity
	case SpaceXYZ:
		return c.fromXYZKernel()
	case SpaceLab:
		return chain(lab, c.fromXYZKernel())
	case SpaceLuv:
		return chain(luv, c.fromXYZKernel())
	case SpaceLCh:
		return chain(fromPolar, luv, c.fromXYZKernel())
	case SpaceOklab:
		return colorspace.BaseOklabToLinear[float32]
	case SpaceOklch:
		return chain(fromPolar, colorspace.BaseOklabToLinear[float32])
	case SpaceJzazbz:
		return chain(jz, c.fromXYZKernel())
	case SpaceJzczhz:
		return chain(fromPolar, jz, c.fromXYZKernel())
	case SpaceHSV:
		return colorspace.BaseHSVToRGB[float32]
	case SpaceHSL:
		return colorspace.BaseHSLToRGB[float32]
	case SpaceSigmoidal:
		return colorspace.BaseSigmoidalToRGB[float32]
	case SpaceLAlphaBeta:
		return chain(colorspace.BaseLAlphaBetaToXYZ[float32], c.fromXYZKernel())
	}
	panic("unreachable")
}

// prepare validates everything a conversion depends on, so that a failing
// call writes nothing.
func prepare[S, D colorspace.Sample](src View[S], dst View[D], s Space, tf transfer.Function, opts []Option) (*config, error) {
	if s >= numSpaces {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTarget, s)
	}
	if s.Linearizes() {
		if err := tf.Validate(); err != nil {
			return nil, err
		}
	}
	if err := src.layout.validate(); err != nil {
		return nil, err
	}
	if err := dst.layout.validate(); err != nil {
		return nil, err
	}
	if err := sameSize(src, dst); err != nil {
		return nil, err
	}
	return newConfig(opts)
}

// ToColorspace converts RGB samples in src to s, writing positional float
// coordinates to dst. tf is ignored for HSV, HSL and sigmoidal. Alpha is
// carried through normalized when both views have it; a dst alpha channel
// with no source alpha is filled with the default alpha.
func ToColorspace[S colorspace.Sample](src View[S], dst View[float32], s Space, tf transfer.Function, opts ...Option) error {
	cfg, err := prepare(src, dst, s, tf, opts)
	if err != nil {
		return err
	}
	k := cfg.forward(s)
	dec := decoder[S](tf, s.Linearizes())
	lanes := cfg.variant.Lanes()
	traverse(cfg, src.width, src.height, func(y0, y1 int) {
		forwardRows(src, dst, y0, y1, lanes, k, dec, cfg.defaultAlpha)
	})
	return nil
}

// FromColorspace converts positional float coordinates of s in src back to
// RGB samples in dst, encoding with tf where s goes through linear light.
// Results are rounded and clamped to the sample range.
func FromColorspace[S colorspace.Sample](src View[float32], dst View[S], s Space, tf transfer.Function, opts ...Option) error {
	cfg, err := prepare(src, dst, s, tf, opts)
	if err != nil {
		return err
	}
	k := cfg.inverse(s)
	encode := s.Linearizes() && tf.Curve() != transfer.CurveLinear
	lanes := cfg.variant.Lanes()
	traverse(cfg, src.width, src.height, func(y0, y1 int) {
		inverseRows(src, dst, y0, y1, lanes, k, tf, encode, cfg.defaultAlpha)
	})
	return nil
}

func ToLinearRGB[S colorspace.Sample](src View[S], dst View[float32], tf transfer.Function, opts ...Option) error {
	return ToColorspace(src, dst, SpaceLinearRGB, tf, opts...)
}

func ToXYZ[S colorspace.Sample](src View[S], dst View[float32], tf transfer.Function, opts ...Option) error {
	return ToColorspace(src, dst, SpaceXYZ, tf, opts...)
}

func ToLab[S colorspace.Sample](src View[S], dst View[float32], tf transfer.Function, opts ...Option) error {
	return ToColorspace(src, dst, SpaceLab, tf, opts...)
}

func ToLuv[S colorspace.Sample](src View[S], dst View[float32], tf transfer.Function, opts ...Option) error {
	return ToColorspace(src, dst, SpaceLuv, tf, opts...)
}

func ToLCh[S colorspace.Sample](src View[S], dst View[float32], tf transfer.Function, opts ...Option) error {
	return ToColorspace(src, dst, SpaceLCh, tf, opts...)
}

func ToOklab[S colorspace.Sample](src View[S], dst View[float32], tf transfer.Function, opts ...Option) error {
	return ToColorspace(src, dst, SpaceOklab, tf, opts...)
}

func ToOklch[S colorspace.Sample](src View[S], dst View[float32], tf transfer.Function, opts ...Option) error {
	return ToColorspace(src, dst, SpaceOklch, tf, opts...)
}

func ToJzazbz[S colorspace.Sample](src View[S], dst View[float32], tf transfer.Function, opts ...Option) error {
	return ToColorspace(src, dst, SpaceJzazbz, tf, opts...)
}

func ToJzczhz[S colorspace.Sample](src View[S], dst View[float32], tf transfer.Function, opts ...Option) error {
	return ToColorspace(src, dst, SpaceJzczhz, tf, opts...)
}

func ToLAlphaBeta[S colorspace.Sample](src View[S], dst View[float32], tf transfer.Function, opts ...Option) error {
	return ToColorspace(src, dst, SpaceLAlphaBeta, tf, opts...)
}

// ToHSV converts stored RGB values to hue in degrees, saturation and value.
func ToHSV[S colorspace.Sample](src View[S], dst View[float32], opts ...Option) error {
	return ToColorspace(src, dst, SpaceHSV, transfer.Linear, opts...)
}

func ToHSL[S colorspace.Sample](src View[S], dst View[float32], opts ...Option) error {
	return ToColorspace(src, dst, SpaceHSL, transfer.Linear, opts...)
}

func ToSigmoidal[S colorspace.Sample](src View[S], dst View[float32], opts ...Option) error {
	return ToColorspace(src, dst, SpaceSigmoidal, transfer.Linear, opts...)
}

func FromLinearRGB[S colorspace.Sample](src View[float32], dst View[S], tf transfer.Function, opts ...Option) error {
	return FromColorspace(src, dst, SpaceLinearRGB, tf, opts...)
}

func FromXYZ[S colorspace.Sample](src View[float32], dst View[S], tf transfer.Function, opts ...Option) error {
	return FromColorspace(src, dst, SpaceXYZ, tf, opts...)
}

func FromLab[S colorspace.Sample](src View[float32], dst View[S], tf transfer.Function, opts ...Option) error {
	return FromColorspace(src, dst, SpaceLab, tf, opts...)
}

func FromLuv[S colorspace.Sample](src View[float32], dst View[S], tf transfer.Function, opts ...Option) error {
	return FromColorspace(src, dst, SpaceLuv, tf, opts...)
}

func FromLCh[S colorspace.Sample](src View[float32], dst View[S], tf transfer.Function, opts ...Option) error {
	return FromColorspace(src, dst, SpaceLCh, tf, opts...)
}

func FromOklab[S colorspace.Sample](src View[float32], dst View[S], tf transfer.Function, opts ...Option) error {
	return FromColorspace(src, dst, SpaceOklab, tf, opts...)
}

func FromOklch[S colorspace.Sample](src View[float32], dst View[S], tf transfer.Function, opts ...Option) error {
	return FromColorspace(src, dst, SpaceOklch, tf, opts...)
}

func FromJzazbz[S colorspace.Sample](src View[float32], dst View[S], tf transfer.Function, opts ...Option) error {
	return FromColorspace(src, dst, SpaceJzazbz, tf, opts...)
}

func FromJzczhz[S colorspace.Sample](src View[float32], dst View[S], tf transfer.Function, opts ...Option) error {
	return FromColorspace(src, dst, SpaceJzczhz, tf, opts...)
}

func FromLAlphaBeta[S colorspace.Sample](src View[float32], dst View[S], tf transfer.Function, opts ...Option) error {
	return FromColorspace(src, dst, SpaceLAlphaBeta, tf, opts...)
}

func FromHSV[S colorspace.Sample](src View[float32], dst View[S], opts ...Option) error {
	return FromColorspace(src, dst, SpaceHSV, transfer.Linear, opts...)
}

func FromHSL[S colorspace.Sample](src View[float32], dst View[S], opts ...Option) error {
	return FromColorspace(src, dst, SpaceHSL, transfer.Linear, opts...)
}

func FromSigmoidal[S colorspace.Sample](src View[float32], dst View[S], opts ...Option) error {
	return FromColorspace(src, dst, SpaceSigmoidal, transfer.Linear, opts...)
}
