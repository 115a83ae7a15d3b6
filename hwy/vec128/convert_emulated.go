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

//go:build !hwybf16

package vec128

// NativeBF16Conversion reports whether promote/demote use the per-lane
// BFCVT-style path (-tags hwybf16) rather than Uint32x4 bit manipulation.
const NativeBF16Conversion = false

var (
	bf16RoundingBias = BroadcastUint32x4(0x7FFF)
	bf16Lsb          = BroadcastUint32x4(1)
	f32AbsMask       = BroadcastUint32x4(0x7FFFFFFF)
	f32Inf           = BroadcastUint32x4(0x7F800000)
	f32QuietBit      = BroadcastUint32x4(0x00400000)
)

// promoteBFloat16x4: zero-extend to 32 bits, shift into the high half.
func promoteBFloat16x4(v BFloat16x4) Float32x4 {
	return Uint16x4(v).ExtendToUint32x4().ShiftAllLeft(16).AsFloat32x4()
}

// demoteFloat32x4 adds 0x7FFF plus the lsb of the kept half, then keeps the
// upper 16 bits. NaN lanes bypass the bias so the carry cannot turn them
// into Inf or wrap 0xFFFFFFFF to zero; they keep their top bits with the
// quiet bit set instead.
func demoteFloat32x4(v Float32x4) BFloat16x4 {
	bits := v.AsUint32x4()
	bias := bits.ShiftAllRight(16).And(bf16Lsb).Add(bf16RoundingBias)
	rounded := bits.Add(bias)
	isNaN := bits.And(f32AbsMask).Greater(f32Inf)
	quieted := bits.Or(f32QuietBit)
	return BFloat16x4(IfThenElseUint32x4(isNaN, quieted, rounded).ShiftRightNarrow(16))
}
