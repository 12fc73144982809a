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

package hwy

// ProcessWithTail splits [0, size) into full batches of lanes elements and a
// scalar remainder.
//
// It calls:
//   - fullFn(offset) for each full batch (offset is the starting index)
//   - scalarFn(offset) once per leftover element, in increasing order
//
// With lanes <= 1 every element goes through fullFn.
//
// Example:
//
//	hwy.ProcessWithTail(len(data), 8,
//	    func(offset int) {
//	        v := hwy.LoadN(data[offset:], 8)
//	        hwy.Store(hwy.Add(v, v), output[offset:])
//	    },
//	    func(offset int) {
//	        output[offset] = data[offset] + data[offset]
//	    },
//	)
func ProcessWithTail(size, lanes int, fullFn func(offset int), scalarFn func(offset int)) {
	if lanes < 1 {
		lanes = 1
	}
	i := 0
	for ; i+lanes <= size; i += lanes {
		fullFn(i)
	}
	for ; i < size; i++ {
		scalarFn(i)
	}
}
