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

import "math"

// Uint16x8 represents a 128-bit vector of 8 uint16 values.
//
// It is also the mask type for BFloat16x8: a set lane is 0xFFFF.
type Uint16x8 [8]uint16

// BroadcastUint16x8 creates a vector with all lanes set to the given value.
func BroadcastUint16x8(v uint16) Uint16x8 {
	return Uint16x8{v, v, v, v, v, v, v, v}
}

// FirstNUint16x8 returns a mask with the first count lanes set.
// count is clamped to [0, 8].
func FirstNUint16x8(count int) Uint16x8 {
	count = max(0, min(count, 8))
	var r Uint16x8
	for i := range count {
		r[i] = math.MaxUint16
	}
	return r
}

// Get returns the element at the given index.
func (v Uint16x8) Get(i int) uint16 {
	return v[i]
}

// AsBFloat16x8 reinterprets the lanes as bfloat16 bit patterns.
func (v Uint16x8) AsBFloat16x8() BFloat16x8 {
	return BFloat16x8(v)
}

// And performs element-wise bitwise AND.
func (v Uint16x8) And(other Uint16x8) Uint16x8 {
	var r Uint16x8
	for i := range v {
		r[i] = v[i] & other[i]
	}
	return r
}

// Or performs element-wise bitwise OR.
func (v Uint16x8) Or(other Uint16x8) Uint16x8 {
	var r Uint16x8
	for i := range v {
		r[i] = v[i] | other[i]
	}
	return r
}

// Xor performs element-wise bitwise XOR.
func (v Uint16x8) Xor(other Uint16x8) Uint16x8 {
	var r Uint16x8
	for i := range v {
		r[i] = v[i] ^ other[i]
	}
	return r
}

// Not performs element-wise bitwise NOT.
func (v Uint16x8) Not() Uint16x8 {
	var r Uint16x8
	for i := range v {
		r[i] = ^v[i]
	}
	return r
}

// Equal returns all-ones lanes where v[i] == other[i].
func (v Uint16x8) Equal(other Uint16x8) Uint16x8 {
	var r Uint16x8
	for i := range v {
		if v[i] == other[i] {
			r[i] = math.MaxUint16
		}
	}
	return r
}

// Greater returns all-ones lanes where v[i] > other[i] as unsigned integers.
func (v Uint16x8) Greater(other Uint16x8) Uint16x8 {
	var r Uint16x8
	for i := range v {
		if v[i] > other[i] {
			r[i] = math.MaxUint16
		}
	}
	return r
}

// AnyTrue reports whether any lane is non-zero, like UMAXV != 0.
func (v Uint16x8) AnyTrue() bool {
	for _, u := range v {
		if u != 0 {
			return true
		}
	}
	return false
}

// IfThenElseUint16x8 selects bits from yes where mask is set and from no
// elsewhere, like BSL.
func IfThenElseUint16x8(mask, yes, no Uint16x8) Uint16x8 {
	var r Uint16x8
	for i := range mask {
		r[i] = (mask[i] & yes[i]) | (^mask[i] & no[i])
	}
	return r
}
