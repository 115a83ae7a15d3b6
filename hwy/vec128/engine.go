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

// The helpers below run a Float32x4 operation over both halves of one or
// more BFloat16x8 operands. Ops are passed as method expressions, e.g.
// Float32x4.Add, so each BFloat16x8 operator is a one-line binding.

// mapViaF32 applies a unary Float32x4 op to both halves of v.
func mapViaF32(v BFloat16x8, op func(Float32x4) Float32x4) BFloat16x8 {
	lo := op(promoteBFloat16x4(v.LowerHalf()))
	hi := op(promoteBFloat16x4(v.UpperHalf()))
	return CombineBFloat16x4(demoteFloat32x4(lo), demoteFloat32x4(hi))
}

// binaryViaF32 applies a binary Float32x4 op lane-wise to a and b.
func binaryViaF32(a, b BFloat16x8, op func(Float32x4, Float32x4) Float32x4) BFloat16x8 {
	lo := op(promoteBFloat16x4(a.LowerHalf()), promoteBFloat16x4(b.LowerHalf()))
	hi := op(promoteBFloat16x4(a.UpperHalf()), promoteBFloat16x4(b.UpperHalf()))
	return CombineBFloat16x4(demoteFloat32x4(lo), demoteFloat32x4(hi))
}

// ternaryViaF32 applies a three-operand Float32x4 op, such as a fused
// multiply-add, with a single rounding back to bfloat16.
func ternaryViaF32(a, b, c BFloat16x8, op func(Float32x4, Float32x4, Float32x4) Float32x4) BFloat16x8 {
	lo := op(
		promoteBFloat16x4(a.LowerHalf()),
		promoteBFloat16x4(b.LowerHalf()),
		promoteBFloat16x4(c.LowerHalf()),
	)
	hi := op(
		promoteBFloat16x4(a.UpperHalf()),
		promoteBFloat16x4(b.UpperHalf()),
		promoteBFloat16x4(c.UpperHalf()),
	)
	return CombineBFloat16x4(demoteFloat32x4(lo), demoteFloat32x4(hi))
}
