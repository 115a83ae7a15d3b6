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

// Uint32x4 represents a 128-bit vector of 4 uint32 values.
type Uint32x4 [4]uint32

// Uint16x4 represents a 64-bit vector of 4 uint16 values.
type Uint16x4 [4]uint16

// BroadcastUint32x4 creates a vector with all lanes set to the given value.
func BroadcastUint32x4(v uint32) Uint32x4 {
	return Uint32x4{v, v, v, v}
}

// Get returns the element at the given index.
func (v Uint32x4) Get(i int) uint32 {
	return v[i]
}

// AsFloat32x4 reinterprets the lanes as float32 bit patterns.
func (v Uint32x4) AsFloat32x4() Float32x4 {
	var r Float32x4
	for i, u := range v {
		r[i] = math.Float32frombits(u)
	}
	return r
}

// Add performs element-wise wrapping addition.
func (v Uint32x4) Add(other Uint32x4) Uint32x4 {
	var r Uint32x4
	for i := range v {
		r[i] = v[i] + other[i]
	}
	return r
}

// And performs element-wise bitwise AND.
func (v Uint32x4) And(other Uint32x4) Uint32x4 {
	var r Uint32x4
	for i := range v {
		r[i] = v[i] & other[i]
	}
	return r
}

// Or performs element-wise bitwise OR.
func (v Uint32x4) Or(other Uint32x4) Uint32x4 {
	var r Uint32x4
	for i := range v {
		r[i] = v[i] | other[i]
	}
	return r
}

// ShiftAllLeft shifts every lane left by n bits.
func (v Uint32x4) ShiftAllLeft(n uint) Uint32x4 {
	var r Uint32x4
	for i := range v {
		r[i] = v[i] << n
	}
	return r
}

// ShiftAllRight shifts every lane right by n bits (logical).
func (v Uint32x4) ShiftAllRight(n uint) Uint32x4 {
	var r Uint32x4
	for i := range v {
		r[i] = v[i] >> n
	}
	return r
}

// Greater compares element-wise as unsigned integers, returning
// all-ones lanes where v[i] > other[i].
func (v Uint32x4) Greater(other Uint32x4) Uint32x4 {
	var r Uint32x4
	for i := range v {
		if v[i] > other[i] {
			r[i] = math.MaxUint32
		}
	}
	return r
}

// ShiftRightNarrow shifts every lane right by n bits and keeps the low
// 16 bits of each, like SHRN.
func (v Uint32x4) ShiftRightNarrow(n uint) Uint16x4 {
	var r Uint16x4
	for i := range v {
		r[i] = uint16(v[i] >> n)
	}
	return r
}

// IfThenElseUint32x4 selects bits from yes where mask is set and from no
// elsewhere, like BSL.
func IfThenElseUint32x4(mask, yes, no Uint32x4) Uint32x4 {
	var r Uint32x4
	for i := range mask {
		r[i] = (mask[i] & yes[i]) | (^mask[i] & no[i])
	}
	return r
}

// ExtendToUint32x4 zero-extends every lane to 32 bits, like USHLL #0.
func (v Uint16x4) ExtendToUint32x4() Uint32x4 {
	var r Uint32x4
	for i := range v {
		r[i] = uint32(v[i])
	}
	return r
}
