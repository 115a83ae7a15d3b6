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

// Package vec128 provides 128-bit vector value types shaped after ARM NEON
// registers, centred on BFloat16x8: eight bfloat16 lanes.
//
// NEON without FEAT_BF16 can only move bfloat16 data around, so every
// BFloat16x8 operation is computed by splitting the vector into two 4-lane
// halves, promoting each half to a Float32x4, applying the float32
// operation, and demoting the results back with round-to-nearest-even:
//
//	lo, hi := v.LowerHalf(), v.UpperHalf()
//	r := CombineBFloat16x4(
//	    DemoteFloat32x4(op(PromoteBFloat16x4(lo))),
//	    DemoteFloat32x4(op(PromoteBFloat16x4(hi))),
//	)
//
// # Conversion strategy
//
// Promotion and demotion come in two flavours selected at build time:
//
//   - default: bit manipulation on Uint32x4 (shift for promote, a
//     0x7FFF + lsb rounding bias for demote), the sequence emitted for
//     NEON targets without BFCVT;
//   - -tags hwybf16: per-lane scalar conversion standing in for the
//     BFCVT/SHLL instructions of ARMv8.6-A.
//
// Both produce identical bits. NativeBF16Conversion reports which one was
// compiled in.
//
// # Accuracy
//
// Single operations are correctly rounded: the float32 result of an add,
// multiply, divide or square root of bfloat16 inputs is exact or rounds to
// the same bfloat16 as the exact value. MulAdd and MulSub are the
// exception. No instruction accumulates into bfloat16, so they round the
// fused float32 result and then round again to bfloat16, which can differ
// from a true bfloat16 fused operation by one unit in the last place.
//
// # Masks
//
// Comparisons follow the NEON convention: a true lane is all ones
// (0xFFFF) and a false lane is zero, returned in the same BFloat16x8 type.
// Eq, Ne, Lt, Le, Gt and Ge collapse those masks to 1.0 / 0.0.
//
// # Usage
//
//	a := vec128.LoadBFloat16x8(x)
//	b := vec128.LoadBFloat16x8(y)
//	a.MulAdd(b, vec128.BroadcastBFloat16x8F32(1)).Store(out)
//
// All types are plain values: copying is cheap and nothing is shared.
package vec128

//go:generate go run ../../cmd/bf16gen -output ops_bf16x8_gen.go -pkg vec128
