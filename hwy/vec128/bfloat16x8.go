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

import (
	"strings"
	"unsafe"

	"github.com/go-highway/vecbf16/hwy"
)

// BFloat16x8Lanes is the number of lanes in a BFloat16x8.
const BFloat16x8Lanes = 8

// BFloat16x8 represents a 128-bit vector of 8 bfloat16 values.
// Lanes hold raw bfloat16 bit patterns; use Get or Data for typed access.
type BFloat16x8 [8]uint16

// BFloat16x4 represents a 64-bit vector of 4 bfloat16 values,
// one half of a BFloat16x8.
type BFloat16x4 [4]uint16

// ===== BFloat16x8 constructors =====

// BroadcastBFloat16x8 creates a vector with all lanes set to the given value.
func BroadcastBFloat16x8(v hwy.BFloat16) BFloat16x8 {
	u := uint16(v)
	return BFloat16x8{u, u, u, u, u, u, u, u}
}

// BroadcastBFloat16x8F32 rounds f to bfloat16 (nearest, ties to even) and
// broadcasts it to every lane.
func BroadcastBFloat16x8F32(f float32) BFloat16x8 {
	return BroadcastBFloat16x8(hwy.Float32ToBFloat16(f))
}

// NewBFloat16x8 creates a vector from eight explicit lanes, lane 0 first.
func NewBFloat16x8(v0, v1, v2, v3, v4, v5, v6, v7 hwy.BFloat16) BFloat16x8 {
	return BFloat16x8{
		uint16(v0), uint16(v1), uint16(v2), uint16(v3),
		uint16(v4), uint16(v5), uint16(v6), uint16(v7),
	}
}

// ZeroBFloat16x8 returns a vector with every lane +0.
func ZeroBFloat16x8() BFloat16x8 {
	return BFloat16x8{}
}

// ===== Load / store =====

// LoadBFloat16x8 loads 8 bfloat16 values from a slice.
// The slice must hold at least 8 elements.
func LoadBFloat16x8(s []hwy.BFloat16) BFloat16x8 {
	_ = s[BFloat16x8Lanes-1]
	var v BFloat16x8
	for i, b := range s[:BFloat16x8Lanes] {
		v[i] = uint16(b)
	}
	return v
}

// LoadBFloat16x8N loads the first count elements of s into lanes
// [0, count) and zeroes the rest. Nothing beyond s[count-1] is read.
//
// count must lie in [0, 8] and s must hold at least count elements;
// anything else panics.
func LoadBFloat16x8N(s []hwy.BFloat16, count int) BFloat16x8 {
	if count == BFloat16x8Lanes {
		return LoadBFloat16x8(s)
	}
	var v BFloat16x8
	for i, b := range s[:count:len(s)] {
		v[i] = uint16(b)
	}
	return v
}

// LoadBFloat16x8Ptr is LoadBFloat16x8N over raw memory, for callers that
// hold a pointer instead of a slice (e.g. cgo buffers). ptr must address
// at least count contiguous bfloat16 values.
func LoadBFloat16x8Ptr(ptr unsafe.Pointer, count int) BFloat16x8 {
	if count == 0 {
		return BFloat16x8{}
	}
	return LoadBFloat16x8N(unsafe.Slice((*hwy.BFloat16)(ptr), count), count)
}

// Store writes all 8 lanes to s, which must hold at least 8 elements.
func (v BFloat16x8) Store(s []hwy.BFloat16) {
	_ = s[BFloat16x8Lanes-1]
	for i, u := range v {
		s[i] = hwy.BFloat16(u)
	}
}

// StoreN writes lanes [0, count) to s. Elements at s[count] and beyond are
// never touched.
//
// count must lie in [0, 8] and s must hold at least count elements;
// anything else panics.
func (v BFloat16x8) StoreN(s []hwy.BFloat16, count int) {
	if count == BFloat16x8Lanes {
		v.Store(s)
		return
	}
	s = s[:count:len(s)]
	for i := range s {
		s[i] = hwy.BFloat16(v[i])
	}
}

// StorePtr is StoreN over raw memory. ptr must address at least count
// writable bfloat16 values.
func (v BFloat16x8) StorePtr(ptr unsafe.Pointer, count int) {
	if count == 0 {
		return
	}
	v.StoreN(unsafe.Slice((*hwy.BFloat16)(ptr), count), count)
}

// ===== Accessors =====

// NumLanes returns the number of lanes.
func (v BFloat16x8) NumLanes() int {
	return BFloat16x8Lanes
}

// Get returns the element at the given index.
func (v BFloat16x8) Get(i int) hwy.BFloat16 {
	return hwy.BFloat16(v[i])
}

// GetFloat32 returns the element at the given index widened to float32.
func (v BFloat16x8) GetFloat32(i int) float32 {
	return hwy.BFloat16ToFloat32(hwy.BFloat16(v[i]))
}

// Data returns the lanes as a typed array.
func (v BFloat16x8) Data() [8]hwy.BFloat16 {
	var d [8]hwy.BFloat16
	for i, u := range v {
		d[i] = hwy.BFloat16(u)
	}
	return d
}

// AsUint16x8 reinterprets the lanes as raw 16-bit integers.
func (v BFloat16x8) AsUint16x8() Uint16x8 {
	return Uint16x8(v)
}

// String formats the lanes as float values, e.g. "[1 2 0.5 ...]".
func (v BFloat16x8) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, u := range v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(hwy.BFloat16(u).String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// LowerHalf returns lanes 0-3.
func (v BFloat16x8) LowerHalf() BFloat16x4 {
	return BFloat16x4(v[:4])
}

// UpperHalf returns lanes 4-7.
func (v BFloat16x8) UpperHalf() BFloat16x4 {
	return BFloat16x4(v[4:])
}

// CombineBFloat16x4 joins two halves: lo becomes lanes 0-3, hi lanes 4-7.
func CombineBFloat16x4(lo, hi BFloat16x4) BFloat16x8 {
	return BFloat16x8{lo[0], lo[1], lo[2], lo[3], hi[0], hi[1], hi[2], hi[3]}
}

// Get returns the element at the given index.
func (v BFloat16x4) Get(i int) hwy.BFloat16 {
	return hwy.BFloat16(v[i])
}

// ===== Lane-wise callbacks =====

// Map applies f to every lane and returns the results.
func (v BFloat16x8) Map(f func(hwy.BFloat16) hwy.BFloat16) BFloat16x8 {
	var r BFloat16x8
	for i, u := range v {
		r[i] = uint16(f(hwy.BFloat16(u)))
	}
	return r
}

// Map2 applies f to each pair of corresponding lanes.
func (v BFloat16x8) Map2(other BFloat16x8, f func(a, b hwy.BFloat16) hwy.BFloat16) BFloat16x8 {
	var r BFloat16x8
	for i := range v {
		r[i] = uint16(f(hwy.BFloat16(v[i]), hwy.BFloat16(other[i])))
	}
	return r
}

// ===== Blending =====

// BlendBFloat16x8 takes lane i from b when bit i of mask is set and from a
// otherwise.
func BlendBFloat16x8(a, b BFloat16x8, mask uint8) BFloat16x8 {
	r := a
	for i := range r {
		if mask&(1<<i) != 0 {
			r[i] = b[i]
		}
	}
	return r
}

// BlendVBFloat16x8 selects bitwise: bits set in mask come from b, the rest
// from a. With a comparison mask this picks whole lanes.
func BlendVBFloat16x8(a, b, mask BFloat16x8) BFloat16x8 {
	return IfThenElseUint16x8(mask.AsUint16x8(), b.AsUint16x8(), a.AsUint16x8()).AsBFloat16x8()
}

// SetBFloat16x8 takes lanes [0, count) from b and the rest from a.
// count is clamped to [0, 8].
func SetBFloat16x8(a, b BFloat16x8, count int) BFloat16x8 {
	return IfThenElseUint16x8(FirstNUint16x8(count), b.AsUint16x8(), a.AsUint16x8()).AsBFloat16x8()
}
