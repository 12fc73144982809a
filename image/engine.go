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
	log "github.com/sirupsen/logrus"

	"github.com/ajroetker/go-colorutils/colorspace"
	"github.com/ajroetker/go-colorutils/hwy"
	"github.com/ajroetker/go-colorutils/transfer"
)

type lane = hwy.Vec[float32]

// kernel is one colorimetric step over a batch of pixels.
type kernel func(a, b, c lane) (lane, lane, lane)

func identity(a, b, c lane) (lane, lane, lane) { return a, b, c }

// chain composes kernels left to right.
func chain(ks ...kernel) kernel {
	if len(ks) == 1 {
		return ks[0]
	}
	return func(a, b, c lane) (lane, lane, lane) {
		for _, k := range ks {
			a, b, c = k(a, b, c)
		}
		return a, b, c
	}
}

// decoder turns one stored sample into the kernel's input: normalized, and
// linearized when linearize is set. Integer samples linearize through the
// shared lookup table, whose entries equal the direct computation.
func decoder[S colorspace.Sample](tf transfer.Function, linearize bool) func(S) float32 {
	if !linearize || tf.Curve() == transfer.CurveLinear {
		return colorspace.Normalize[S]
	}
	var z S
	switch any(z).(type) {
	case uint8:
		lut := linearizeTable[uint8](tf)
		return func(v S) float32 { return lut[int(v)] }
	case uint16:
		lut := linearizeTable[uint16](tf)
		return func(v S) float32 { return lut[int(v)] }
	}
	return func(v S) float32 { return tf.Linearize(float32(v)) }
}

// forwardRows converts rows [y0, y1) of RGB samples to positional float
// coordinates.
func forwardRows[S colorspace.Sample](src View[S], dst View[float32], y0, y1, lanes int, k kernel, dec func(S) float32, defaultAlpha float32) {
	so := src.layout.Offsets()
	dch := dst.layout.Channels()
	withAlpha := dst.layout.HasAlpha()

	var a, b, c, alpha [hwy.MaxVectorLanes]float32
	for y := y0; y < y1; y++ {
		in, out := src.Row(y), dst.Row(y)

		batch := func(x, n int) {
			for i := range n {
				p := in[(x+i)*so.Channels:]
				a[i], b[i], c[i] = dec(p[so.R]), dec(p[so.G]), dec(p[so.B])
				if withAlpha {
					alpha[i] = defaultAlpha
					if so.A >= 0 {
						alpha[i] = colorspace.Normalize(p[so.A])
					}
				}
			}
			va, vb, vc := k(hwy.LoadN(a[:], n), hwy.LoadN(b[:], n), hwy.LoadN(c[:], n))
			o := out[x*dch:]
			if withAlpha {
				hwy.StoreInterleaved4(va, vb, vc, hwy.LoadN(alpha[:], n), o)
			} else {
				hwy.StoreInterleaved3(va, vb, vc, o)
			}
		}

		hwy.ProcessWithTail(src.width, lanes,
			func(x int) { batch(x, lanes) },
			func(x int) { batch(x, 1) },
		)
	}
}

// inverseRows converts rows [y0, y1) of positional float coordinates to
// RGB samples, applying tf.Gamma when encode is set.
func inverseRows[S colorspace.Sample](src View[float32], dst View[S], y0, y1, lanes int, k kernel, tf transfer.Function, encode bool, defaultAlpha float32) {
	sch := src.layout.Channels()
	srcAlpha := src.layout.HasAlpha()
	do := dst.layout.Offsets()
	fill := colorspace.Denormalize[S](defaultAlpha)

	for y := y0; y < y1; y++ {
		in, out := src.Row(y), dst.Row(y)

		batch := func(x, n int) {
			p := in[x*sch:]
			var va, vb, vc, al lane
			if srcAlpha {
				va, vb, vc, al = hwy.LoadInterleaved4(p, n)
			} else {
				va, vb, vc = hwy.LoadInterleaved3(p, n)
			}
			r, g, b := k(va, vb, vc)
			if encode {
				r, g, b = transfer.GammaVec(tf, r), transfer.GammaVec(tf, g), transfer.GammaVec(tf, b)
			}

			qr, qg, qb := quantize[S](r), quantize[S](g), quantize[S](b)
			var qa hwy.Vec[S]
			if srcAlpha {
				qa = quantize[S](al)
			}

			o := out[x*do.Channels:]
			for i := range n {
				q := o[i*do.Channels:]
				q[do.R], q[do.G], q[do.B] = hwy.GetLane(qr, i), hwy.GetLane(qg, i), hwy.GetLane(qb, i)
				if do.A >= 0 {
					q[do.A] = fill
					if srcAlpha {
						q[do.A] = hwy.GetLane(qa, i)
					}
				}
			}
		}

		hwy.ProcessWithTail(src.width, lanes,
			func(x int) { batch(x, lanes) },
			func(x int) { batch(x, 1) },
		)
	}
}

// quantize stores normalized lanes as S with the rounding and clamping of
// colorspace.Denormalize. NaN lanes become zero.
func quantize[S colorspace.Sample](v lane) hwy.Vec[S] {
	if colorspace.BitDepth[S]() == 32 {
		return hwy.ConvertTo[S](v)
	}
	m := colorspace.MaxValue[S]()
	q := hwy.Clamp(hwy.Round(hwy.Mul(v, hwy.SetN(m, v.NumLanes()))), 0, m)
	return hwy.ConvertTo[S](hwy.IfThenZeroElse(hwy.IsNaN(v), q))
}

// traverse runs fn over all rows, through the pool when one is configured.
func traverse(cfg *config, width, height int, fn func(y0, y1 int)) {
	if height == 0 || width == 0 {
		return
	}
	if log.IsLevelEnabled(log.TraceLevel) {
		log.WithFields(log.Fields{
			"variant": cfg.variant.Resolve().String(),
			"lanes":   cfg.variant.Lanes(),
			"workers": cfg.pool.NumWorkers(),
			"width":   width,
			"height":  height,
		}).Trace("image conversion")
	}
	if cfg.pool == nil {
		fn(0, height)
		return
	}
	cfg.pool.ParallelRows(height, cfg.rowsPerTask(width), fn)
}
