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

package main

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/pkg/profile"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-colorutils/hwy/contrib/workerpool"
	"github.com/ajroetker/go-colorutils/image"
	"github.com/ajroetker/go-colorutils/transfer"
)

type benchOptions struct {
	width, height int
	iterations    int
	space         string
	curve         string
	variants      []string
	workers       int
	jobs          int
	profile       string
}

type benchResult struct {
	variant image.Variant
	elapsed time.Duration
}

func newBenchCmd() *cobra.Command {
	o := benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure bulk conversion throughput per variant",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, o)
		},
	}
	addBenchFlags(cmd.Flags(), &o)
	return cmd
}

func addBenchFlags(f *pflag.FlagSet, o *benchOptions) {
	f.IntVar(&o.width, "width", 1920, "image width in pixels")
	f.IntVar(&o.height, "height", 1080, "image height in pixels")
	f.IntVarP(&o.iterations, "iterations", "n", 10, "conversions per variant")
	f.StringVar(&o.space, "space", "lab", "target colorspace")
	f.StringVar(&o.curve, "transfer", "srgb", "transfer function")
	f.StringSliceVar(&o.variants, "variant", lo.Map(image.Variants(), func(v image.Variant, _ int) string { return v.String() }), "variants to run")
	f.IntVar(&o.workers, "workers", 0, "worker pool size per conversion (0 runs rows sequentially)")
	f.IntVarP(&o.jobs, "jobs", "j", 1, "variants benchmarked at the same time")
	f.StringVar(&o.profile, "profile", "", "write a cpu or mem profile to the current directory")
}

func runBench(cmd *cobra.Command, o benchOptions) error {
	space, err := image.ParseSpace(o.space)
	if err != nil {
		return err
	}
	tf, err := transfer.Parse(o.curve)
	if err != nil {
		return err
	}
	variants := make([]image.Variant, len(o.variants))
	for i, name := range o.variants {
		if variants[i], err = image.ParseVariant(name); err != nil {
			return err
		}
	}

	switch o.profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileHeap, profile.ProfilePath("."), profile.Quiet).Stop()
	default:
		return fmt.Errorf("unknown profile %q, want cpu or mem", o.profile)
	}

	var opts []image.Option
	if o.workers > 0 {
		pool := workerpool.New(o.workers)
		defer pool.Close()
		opts = append(opts, image.WithPool(pool))
	}

	log.WithFields(log.Fields{
		"size":     fmt.Sprintf("%dx%d", o.width, o.height),
		"space":    space,
		"transfer": tf,
		"workers":  o.workers,
	}).Info("benchmarking")

	var (
		mu      sync.Mutex
		results []benchResult
	)
	g := new(errgroup.Group)
	g.SetLimit(max(o.jobs, 1))
	for _, v := range variants {
		g.Go(func() error {
			elapsed, err := benchVariant(o, space, tf, v, opts)
			if err != nil {
				return fmt.Errorf("%v: %w", v, err)
			}
			mu.Lock()
			results = append(results, benchResult{v, elapsed})
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	p := message.NewPrinter(language.English)
	pixels := float64(o.width * o.height * o.iterations)
	for _, v := range variants {
		r, _ := lo.Find(results, func(r benchResult) bool { return r.variant == v })
		perIter := r.elapsed / time.Duration(max(o.iterations, 1))
		p.Fprintf(cmd.OutOrStdout(), "%-8s %14.0f px/s  %v per round trip\n", v, pixels/r.elapsed.Seconds(), perIter)
	}
	return nil
}

// benchVariant converts a seeded random image forward and back with its
// own buffers and returns the total time.
func benchVariant(o benchOptions, space image.Space, tf transfer.Function, v image.Variant, opts []image.Option) (time.Duration, error) {
	rng := rand.New(rand.NewPCG(uint64(v), 42))
	pixels := make([]uint8, o.width*o.height*3)
	for i := range pixels {
		pixels[i] = uint8(rng.UintN(256))
	}
	src, err := image.NewPackedView(pixels, o.width, o.height, image.RGB)
	if err != nil {
		return 0, err
	}
	dst, err := image.NewPackedView(make([]float32, len(pixels)), o.width, o.height, image.RGB)
	if err != nil {
		return 0, err
	}
	opts = append([]image.Option{image.WithVariant(v)}, opts...)

	start := time.Now()
	for range o.iterations {
		if err := image.ToColorspace(src, dst, space, tf, opts...); err != nil {
			return 0, err
		}
		if err := image.FromColorspace(dst, src, space, tf, opts...); err != nil {
			return 0, err
		}
	}
	elapsed := time.Since(start)
	log.WithFields(log.Fields{"variant": v, "elapsed": elapsed}).Debug("variant done")
	return elapsed, nil
}
