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

package algo

import (
	"github.com/go-highway/vecbf16/hwy"
	"github.com/go-highway/vecbf16/hwy/vec128"
)

// PromoteBF16ToF32 widens min(len(input), len(output)) elements to float32.
// The conversion is exact.
func PromoteBF16ToF32(input []hwy.BFloat16, output []float32) {
	n := min(len(input), len(output))
	i := 0
	for ; i+lanes <= n; i += lanes {
		lo, hi := vec128.ConvertBFloat16x8ToFloat32(vec128.LoadBFloat16x8(input[i:]))
		lo.StoreSlice(output[i:])
		hi.StoreSlice(output[i+4:])
	}
	if rem := n - i; rem > 0 {
		lo, hi := vec128.ConvertBFloat16x8ToFloat32(vec128.LoadBFloat16x8N(input[i:], rem))
		var buf [lanes]float32
		lo.StoreSlice(buf[:4])
		hi.StoreSlice(buf[4:])
		copy(output[i:n], buf[:rem])
	}
}

// DemoteF32ToBF16 narrows min(len(input), len(output)) float32 elements to
// bfloat16, rounding to nearest even. NaN stays NaN.
func DemoteF32ToBF16(input []float32, output []hwy.BFloat16) {
	n := min(len(input), len(output))
	i := 0
	for ; i+lanes <= n; i += lanes {
		lo := vec128.LoadFloat32x4(input[i:])
		hi := vec128.LoadFloat32x4(input[i+4:])
		vec128.ConvertFloat32ToBFloat16x8(lo, hi).Store(output[i:])
	}
	if rem := n - i; rem > 0 {
		var buf [lanes]float32
		copy(buf[:], input[i:n])
		lo := vec128.LoadFloat32x4(buf[:4])
		hi := vec128.LoadFloat32x4(buf[4:])
		vec128.ConvertFloat32ToBFloat16x8(lo, hi).StoreN(output[i:], rem)
	}
}
