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

import "github.com/go-highway/vecbf16/hwy"

// MulAdd returns v*a + b per lane.
//
// The fused operation runs in float32 and its result is rounded twice:
// once to float32 and again to bfloat16. This is not a true bfloat16
// fused multiply-add; an exact result just off a bfloat16 tie can round
// to the wrong neighbour.
func (v BFloat16x8) MulAdd(a, b BFloat16x8) BFloat16x8 {
	return ternaryViaF32(v, a, b, Float32x4.MulAdd)
}

// MulSub returns v*a - b per lane, with the same two roundings as MulAdd.
func (v BFloat16x8) MulSub(a, b BFloat16x8) BFloat16x8 {
	return ternaryViaF32(v, a, b, Float32x4.MulSub)
}

// Frac returns v - Trunc(v): the fractional part, carrying the sign of v.
func (v BFloat16x8) Frac() BFloat16x8 {
	return v.Sub(v.Trunc())
}

// ===== Boolean comparisons =====
//
// These return 1.0 in true lanes and 0.0 in false lanes, by masking the
// relational result with the bit pattern of 1.0.

var bf16OneBits = BroadcastBFloat16x8(hwy.BFloat16One)

// Eq returns 1.0 where v == other and 0.0 elsewhere.
func (v BFloat16x8) Eq(other BFloat16x8) BFloat16x8 {
	return v.Equal(other).And(bf16OneBits)
}

// Ne returns 1.0 where v != other and 0.0 elsewhere.
func (v BFloat16x8) Ne(other BFloat16x8) BFloat16x8 {
	return v.NotEqual(other).And(bf16OneBits)
}

// Lt returns 1.0 where v < other and 0.0 elsewhere.
func (v BFloat16x8) Lt(other BFloat16x8) BFloat16x8 {
	return v.Less(other).And(bf16OneBits)
}

// Le returns 1.0 where v <= other and 0.0 elsewhere.
func (v BFloat16x8) Le(other BFloat16x8) BFloat16x8 {
	return v.LessEqual(other).And(bf16OneBits)
}

// Gt returns 1.0 where v > other and 0.0 elsewhere.
func (v BFloat16x8) Gt(other BFloat16x8) BFloat16x8 {
	return v.Greater(other).And(bf16OneBits)
}

// Ge returns 1.0 where v >= other and 0.0 elsewhere.
func (v BFloat16x8) Ge(other BFloat16x8) BFloat16x8 {
	return v.GreaterEqual(other).And(bf16OneBits)
}

// ===== Bitwise =====

// And performs a bitwise AND of the raw lane bits.
func (v BFloat16x8) And(other BFloat16x8) BFloat16x8 {
	return v.AsUint16x8().And(other.AsUint16x8()).AsBFloat16x8()
}

// Or performs a bitwise OR of the raw lane bits.
func (v BFloat16x8) Or(other BFloat16x8) BFloat16x8 {
	return v.AsUint16x8().Or(other.AsUint16x8()).AsBFloat16x8()
}

// Xor performs a bitwise XOR of the raw lane bits.
func (v BFloat16x8) Xor(other BFloat16x8) BFloat16x8 {
	return v.AsUint16x8().Xor(other.AsUint16x8()).AsBFloat16x8()
}

// Not inverts every bit of every lane.
func (v BFloat16x8) Not() BFloat16x8 {
	return v.AsUint16x8().Not().AsBFloat16x8()
}

// ===== Min / max / clamp =====

// MaximumBFloat16x8 returns the lane-wise maximum of a and b,
// propagating NaN.
func MaximumBFloat16x8(a, b BFloat16x8) BFloat16x8 {
	return a.Max(b)
}

// MinimumBFloat16x8 returns the lane-wise minimum of a and b,
// propagating NaN.
func MinimumBFloat16x8(a, b BFloat16x8) BFloat16x8 {
	return a.Min(b)
}

// ClampBFloat16x8 returns Min(Max(v, lo), hi) per lane.
// If lo > hi in some lane, that lane is hi.
func ClampBFloat16x8(v, lo, hi BFloat16x8) BFloat16x8 {
	return v.Max(lo).Min(hi)
}

// ClampMinBFloat16x8 returns Max(v, lo) per lane.
func ClampMinBFloat16x8(v, lo BFloat16x8) BFloat16x8 {
	return v.Max(lo)
}

// ClampMaxBFloat16x8 returns Min(v, hi) per lane.
func ClampMaxBFloat16x8(v, hi BFloat16x8) BFloat16x8 {
	return v.Min(hi)
}
