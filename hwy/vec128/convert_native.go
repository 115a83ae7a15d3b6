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

//go:build hwybf16

package vec128

import "github.com/go-highway/vecbf16/hwy"

// NativeBF16Conversion reports whether promote/demote use the per-lane
// BFCVT-style path (-tags hwybf16) rather than Uint32x4 bit manipulation.
const NativeBF16Conversion = true

func promoteBFloat16x4(v BFloat16x4) Float32x4 {
	var r Float32x4
	for i, u := range v {
		r[i] = hwy.BFloat16ToFloat32(hwy.BFloat16(u))
	}
	return r
}

func demoteFloat32x4(v Float32x4) BFloat16x4 {
	var r BFloat16x4
	for i, f := range v {
		r[i] = uint16(hwy.Float32ToBFloat16(f))
	}
	return r
}
