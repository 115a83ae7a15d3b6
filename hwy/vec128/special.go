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

// Special-value checks work on the raw bfloat16 bits, so no lane is widened
// and the result does not depend on the conversion strategy.

var (
	bf16AbsMask = BroadcastUint16x8(uint16(hwy.BFloat16AbsMask))
	bf16ExpMask = BroadcastUint16x8(uint16(hwy.BFloat16ExpMask))
	bf16InfBits = BroadcastUint16x8(uint16(hwy.BFloat16Inf))
)

// IsNaN returns 0xFFFF in lanes holding any NaN (either sign, any payload)
// and 0 elsewhere.
func (v BFloat16x8) IsNaN() BFloat16x8 {
	return v.AsUint16x8().And(bf16AbsMask).Greater(bf16InfBits).AsBFloat16x8()
}

// IsInf returns 0xFFFF in lanes holding +Inf or -Inf and 0 elsewhere.
func (v BFloat16x8) IsInf() BFloat16x8 {
	return v.AsUint16x8().And(bf16AbsMask).Equal(bf16InfBits).AsBFloat16x8()
}

// HasInfNaN reports whether any lane is Inf or NaN, i.e. has an all-ones
// exponent field.
func (v BFloat16x8) HasInfNaN() bool {
	return v.AsUint16x8().And(bf16ExpMask).Equal(bf16ExpMask).AnyTrue()
}
