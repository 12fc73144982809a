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

// Package contrib groups the helpers built on hwy.Vec that the color
// kernels and bulk traversal need.
//
// # Subpackages
//
//   - math: lane-wise transcendental functions (Cbrt, Pow, Exp10, Log10,
//     Atan2, Hypot, Sin, Cos) used by the Lab, Luv, Oklab, Jzazbz and
//     lαβ kernels.
//   - workerpool: a persistent pool whose ParallelRows splits an image
//     into row ranges for the optional parallel conversion mode.
//
// A pool is shared across conversions:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	err := image.ToLab(src, dst, transfer.SRGB, image.WithPool(pool))
package contrib
