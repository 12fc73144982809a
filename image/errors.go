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

import "errors"

var (
	ErrInvalidDimensions = errors.New("image: invalid dimensions")
	ErrInvalidStride     = errors.New("image: invalid stride")
	ErrBufferTooSmall    = errors.New("image: buffer too small")
	ErrSizeMismatch      = errors.New("image: source and destination sizes differ")
	ErrNoAlpha           = errors.New("image: layout has no alpha channel")
	ErrLayoutMismatch    = errors.New("image: incompatible layouts")
	ErrUnknownLayout     = errors.New("image: unknown layout")
	ErrUnknownVariant    = errors.New("image: unknown variant")
	ErrUnknownTarget     = errors.New("image: unknown colorspace")
)
