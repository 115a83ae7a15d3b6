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

package vec128

// PromoteBFloat16x4 widens four bfloat16 lanes to float32. Exact.
func PromoteBFloat16x4(v BFloat16x4) Float32x4 {
	return promoteBFloat16x4(v)
}

// DemoteFloat32x4 narrows four float32 lanes to bfloat16 with
// round-to-nearest-even. NaN lanes stay NaN; an all-ones mask lane
// narrows to 0xFFFF.
func DemoteFloat32x4(v Float32x4) BFloat16x4 {
	return demoteFloat32x4(v)
}

// ConvertBFloat16x8ToFloat32 widens all eight lanes, returning lanes 0-3
// and 4-7 as separate Float32x4 vectors.
func ConvertBFloat16x8ToFloat32(v BFloat16x8) (lo, hi Float32x4) {
	return promoteBFloat16x4(v.LowerHalf()), promoteBFloat16x4(v.UpperHalf())
}

// ConvertFloat32ToBFloat16x8 narrows two Float32x4 vectors into one
// BFloat16x8: lo fills lanes 0-3 and hi lanes 4-7.
func ConvertFloat32ToBFloat16x8(lo, hi Float32x4) BFloat16x8 {
	return CombineBFloat16x4(demoteFloat32x4(lo), demoteFloat32x4(hi))
}
