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

import (
	"math"
	"strconv"

	"github.com/x448/float16"
)

// BFloat16 represents a Brain Float 16 (bfloat16) number.
// It has the same exponent range as float32 but reduced precision,
// making it ideal for machine learning where dynamic range
// matters more than precision.
//
// Format: Sign (1 bit) | Exponent (8 bits) | Mantissa (7 bits)
//
//	S | EEEEEEEE | MMMMMMM
//
// BFloat16 is float32 with the lower 16 mantissa bits dropped, so widening
// is a shift and narrowing is a rounding of the upper half.
//
// Properties:
//   - Total bits: 16
//   - Exponent bits: 8 (same as float32, bias: 127)
//   - Mantissa bits: 7
//   - Max value: ~3.4e38 (same as float32)
//   - Min positive normal: ~1.2e-38 (same as float32)
//   - Precision: ~2.4 decimal digits
type BFloat16 uint16

// BFloat16 constants for special values.
const (
	BFloat16Zero      BFloat16 = 0x0000 // Positive zero
	BFloat16NegZero   BFloat16 = 0x8000 // Negative zero
	BFloat16One       BFloat16 = 0x3F80 // 1.0
	BFloat16NegOne    BFloat16 = 0xBF80 // -1.0
	BFloat16MaxValue  BFloat16 = 0x7F7F // ~3.39e38 (max finite value)
	BFloat16MinNormal BFloat16 = 0x0080 // ~1.18e-38 (smallest normal)
	BFloat16MinValue  BFloat16 = 0x0001 // Smallest denormal
	BFloat16Inf       BFloat16 = 0x7F80 // Positive infinity
	BFloat16NegInf    BFloat16 = 0xFF80 // Negative infinity
	BFloat16NaN       BFloat16 = 0x7FC0 // Quiet NaN (canonical)

	// BFloat16ExpMask selects the exponent field; a lane is Inf or NaN
	// exactly when all of these bits are set.
	BFloat16ExpMask BFloat16 = 0x7F80

	// BFloat16AbsMask clears the sign bit.
	BFloat16AbsMask BFloat16 = 0x7FFF

	// BFloat16QuietBit is the most significant mantissa bit.
	BFloat16QuietBit BFloat16 = 0x0040

	bfloat16SignMask = 0x8000
)

// BFloat16ToFloat32 converts a single BFloat16 to float32.
// This is a simple bit shift since bfloat16 is truncated float32.
func BFloat16ToFloat32(b BFloat16) float32 {
	return math.Float32frombits(uint32(b) << 16)
}

// Float32ToBFloat16 converts a float32 to BFloat16.
// Uses round-to-nearest-even on the truncated bits.
func Float32ToBFloat16(f float32) BFloat16 {
	bits := math.Float32bits(f)

	// NaN keeps its sign and upper payload and is forced quiet, so a payload
	// living only in the low 16 bits cannot collapse into Inf.
	if bits&0x7FFFFFFF > 0x7F800000 {
		return BFloat16((bits >> 16) | uint32(BFloat16QuietBit))
	}

	// Round to nearest even. The rounding position is bit 15 (just below
	// the bf16 mantissa); adding 0x7FFF + (bit 16) carries into bit 16
	// when the discarded half is above the midpoint, or exactly at it with
	// an odd retained LSB.
	rounding := uint32(0x7FFF) + ((bits >> 16) & 1)
	bits += rounding

	return BFloat16(bits >> 16)
}

// IsNaN returns true if b is a NaN value.
func (b BFloat16) IsNaN() bool {
	return b&BFloat16AbsMask > BFloat16Inf
}

// IsInf returns true if b is positive or negative infinity.
func (b BFloat16) IsInf() bool {
	return b&BFloat16AbsMask == BFloat16Inf
}

// IsFinite returns true if b is neither NaN nor infinity.
func (b BFloat16) IsFinite() bool {
	return b&BFloat16ExpMask != BFloat16ExpMask
}

// IsZero returns true if b is positive or negative zero.
func (b BFloat16) IsZero() bool {
	return b&BFloat16AbsMask == 0
}

// IsNegative returns true if the sign bit is set.
func (b BFloat16) IsNegative() bool {
	return b&bfloat16SignMask != 0
}

// IsDenormal returns true if b is a denormalized number.
func (b BFloat16) IsDenormal() bool {
	exp := (b >> 7) & 0xFF
	mant := b & 0x7F
	return exp == 0 && mant != 0
}

// Float32 converts this BFloat16 to float32.
func (b BFloat16) Float32() float32 {
	return BFloat16ToFloat32(b)
}

// Float64 converts this BFloat16 to float64.
func (b BFloat16) Float64() float64 {
	return float64(BFloat16ToFloat32(b))
}

// String implements fmt.Stringer with the shortest decimal form that
// round-trips through float32.
func (b BFloat16) String() string {
	return strconv.FormatFloat(b.Float64(), 'g', -1, 32)
}

// NewBFloat16 creates a BFloat16 from a float32 value.
func NewBFloat16(f float32) BFloat16 {
	return Float32ToBFloat16(f)
}

// NewBFloat16FromFloat64 creates a BFloat16 from a float64 value.
func NewBFloat16FromFloat64(f float64) BFloat16 {
	return Float32ToBFloat16(float32(f))
}

// Bits returns the raw uint16 representation.
func (b BFloat16) Bits() uint16 {
	return uint16(b)
}

// BFloat16FromBits creates a BFloat16 from raw bits.
func BFloat16FromBits(bits uint16) BFloat16 {
	return BFloat16(bits)
}

// Float16ToBFloat16 converts an IEEE 754 half to BFloat16.
// Every half value is exactly representable in float32, so the only
// rounding happens in the final narrowing.
func Float16ToBFloat16(h float16.Float16) BFloat16 {
	return Float32ToBFloat16(h.Float32())
}

// BFloat16ToFloat16 converts a BFloat16 to an IEEE 754 half.
// Note: values beyond ±65504 overflow to infinity and tiny values flush
// towards zero, since half has a much smaller exponent range.
func BFloat16ToFloat16(b BFloat16) float16.Float16 {
	return float16.Fromfloat32(BFloat16ToFloat32(b))
}
