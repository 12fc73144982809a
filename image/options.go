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
	"github.com/ajroetker/go-colorutils/hwy/contrib/workerpool"
)

// Option configures a bulk conversion.
type Option func(*config)

type config struct {
	variant      Variant
	pool         *workerpool.Pool
	minRows      int
	defaultAlpha float32
	toXYZ        colorspace.Matrix3
	fromXYZ      colorspace.Matrix3
	white        colorspace.WhitePoint
	luminance    float64
}

func newConfig(opts []Option) (*config, error) {
	cfg := &config{
		variant:      VariantAuto,
		defaultAlpha: 1,
		toXYZ:        colorspace.SRGBToXYZ,
		fromXYZ:      colorspace.XYZToSRGB,
		white:        colorspace.D65,
		luminance:    colorspace.DefaultDisplayLuminance,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.variant >= numVariants {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, cfg.variant)
	}
	return cfg, nil
}

// WithVariant pins the batch width instead of following hwy dispatch.
func WithVariant(v Variant) Option {
	return func(c *config) { c.variant = v }
}

// WithPool spreads rows across pool. Rows are written disjointly, so the
// output is identical to a sequential run.
func WithPool(p *workerpool.Pool) Option {
	return func(c *config) { c.pool = p }
}

// WithMinRows sets the smallest row range handed to one worker.
func WithMinRows(n int) Option {
	return func(c *config) { c.minRows = n }
}

// WithDefaultAlpha sets the normalized alpha written when the destination
// has an alpha channel and the source does not. The default is 1.
func WithDefaultAlpha(a float32) Option {
	return func(c *config) { c.defaultAlpha = a }
}

// WithMatrix replaces the linear RGB to XYZ matrix and its inverse.
func WithMatrix(toXYZ, fromXYZ colorspace.Matrix3) Option {
	return func(c *config) {
		c.toXYZ = toXYZ
		c.fromXYZ = fromXYZ
	}
}

// WithWhitePoint sets the reference white of Lab, Luv and LCh.
func WithWhitePoint(w colorspace.WhitePoint) Option {
	return func(c *config) { c.white = w }
}

// WithDisplayLuminance sets the Jzazbz peak luminance in cd/m².
func WithDisplayLuminance(nits float32) Option {
	return func(c *config) { c.luminance = float64(nits) }
}

// rowsPerTask picks a row chunk of roughly 16K pixels unless overridden.
func (c *config) rowsPerTask(width int) int {
	if c.minRows > 0 {
		return c.minRows
	}
	return max(1, (16<<10)/max(width, 1))
}
