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

// Float32x4 represents a 128-bit vector of 4 float32 values.
type Float32x4 [4]float32

// maskTrue32 is the all-ones lane pattern of a true comparison.
var maskTrue32 = math.Float32frombits(0xFFFFFFFF)

// ===== Float32x4 constructors =====

// BroadcastFloat32x4 creates a vector with all lanes set to the given value.
func BroadcastFloat32x4(v float32) Float32x4 {
	return Float32x4{v, v, v, v}
}

// LoadFloat32x4 loads 4 float32 values from a slice.
func LoadFloat32x4(s []float32) Float32x4 {
	return Float32x4(s[:4])
}

// ZeroFloat32x4 returns a zero vector.
func ZeroFloat32x4() Float32x4 {
	return Float32x4{}
}

// ===== Float32x4 accessors =====

// Get returns the element at the given index.
func (v Float32x4) Get(i int) float32 {
	return v[i]
}

// Set sets the element at the given index.
func (v *Float32x4) Set(i int, val float32) {
	v[i] = val
}

// StoreSlice stores the vector to a slice.
func (v Float32x4) StoreSlice(s []float32) {
	copy(s[:4], v[:])
}

// AsUint32x4 reinterprets the lanes as raw IEEE-754 bit patterns.
func (v Float32x4) AsUint32x4() Uint32x4 {
	var r Uint32x4
	for i, f := range v {
		r[i] = math.Float32bits(f)
	}
	return r
}

// ===== Float32x4 arithmetic =====

// Add performs element-wise addition.
func (v Float32x4) Add(other Float32x4) Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = v[i] + other[i]
	}
	return r
}

// Sub performs element-wise subtraction.
func (v Float32x4) Sub(other Float32x4) Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = v[i] - other[i]
	}
	return r
}

// Mul performs element-wise multiplication.
func (v Float32x4) Mul(other Float32x4) Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = v[i] * other[i]
	}
	return r
}

// Div performs element-wise division.
func (v Float32x4) Div(other Float32x4) Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = v[i] / other[i]
	}
	return r
}

// Min performs element-wise minimum.
// A NaN in either lane yields NaN, and -0 < +0, matching NEON FMIN.
func (v Float32x4) Min(other Float32x4) Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = float32(math.Min(float64(v[i]), float64(other[i])))
	}
	return r
}

// Max performs element-wise maximum.
// A NaN in either lane yields NaN, and +0 > -0, matching NEON FMAX.
func (v Float32x4) Max(other Float32x4) Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = float32(math.Max(float64(v[i]), float64(other[i])))
	}
	return r
}

// MulAdd performs fused multiply-add: v * a + b, rounded once to float32.
func (v Float32x4) MulAdd(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = fmaFloat32(v[i], a[i], b[i])
	}
	return r
}

// MulSub performs fused multiply-subtract: v * a - b, rounded once to float32.
func (v Float32x4) MulSub(a, b Float32x4) Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = fmaFloat32(v[i], a[i], -b[i])
	}
	return r
}

// f32OverflowTie is the midpoint between math.MaxFloat32 and the next
// binade; float32 conversion rounds it to infinity.
const f32OverflowTie = 0x1.ffffffp127

// fmaFloat32 returns x*y + z correctly rounded to float32.
//
// The float64 product of two float32 values is exact, so only the sum is
// rounded before narrowing. That float64 rounding can land exactly on a
// float32 midpoint; the TwoSum error term then breaks the tie in the
// direction of the exact result.
func fmaFloat32(x, y, z float32) float32 {
	p := float64(x) * float64(y)
	zz := float64(z)
	s := p + zz
	if s == 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		return float32(s)
	}
	bv := s - p
	e := (p - (s - bv)) + (zz - bv)
	if e == 0 {
		return float32(s)
	}

	r := float32(s)
	if float64(r) == s {
		return r
	}
	if math.IsInf(float64(r), 0) {
		if math.Abs(s) == f32OverflowTie && (e < 0) == (s > 0) {
			return float32(math.Copysign(math.MaxFloat32, s))
		}
		return r
	}
	toward := float32(math.Inf(1))
	if float64(r) > s {
		toward = float32(math.Inf(-1))
	}
	other := math.Nextafter32(r, toward)
	if s != (float64(r)+float64(other))/2 {
		return r
	}
	if e > 0 {
		return max(r, other)
	}
	return min(r, other)
}

// Neg performs element-wise negation.
func (v Float32x4) Neg() Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = -v[i]
	}
	return r
}

// Abs performs element-wise absolute value.
func (v Float32x4) Abs() Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = math.Float32frombits(math.Float32bits(v[i]) &^ 0x80000000)
	}
	return r
}

// Trunc rounds every lane towards zero.
func (v Float32x4) Trunc() Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = float32(math.Trunc(float64(v[i])))
	}
	return r
}

// Sqrt performs element-wise square root.
func (v Float32x4) Sqrt() Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = float32(math.Sqrt(float64(v[i])))
	}
	return r
}

// Reciprocal returns 1/x for every lane, correctly rounded (not an estimate).
func (v Float32x4) Reciprocal() Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = 1 / v[i]
	}
	return r
}

// Exp computes e^x for every lane.
func (v Float32x4) Exp() Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = float32(math.Exp(float64(v[i])))
	}
	return r
}

// Log computes the natural logarithm of every lane.
func (v Float32x4) Log() Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = float32(math.Log(float64(v[i])))
	}
	return r
}

// Tanh computes the hyperbolic tangent of every lane.
func (v Float32x4) Tanh() Float32x4 {
	var r Float32x4
	for i := range v {
		r[i] = float32(math.Tanh(float64(v[i])))
	}
	return r
}

// ===== Float32x4 comparisons =====
//
// Comparisons return all-ones lanes for true and zero lanes for false,
// like FCMEQ/FCMGT. Any comparison involving NaN is false except NotEqual.

func compareFloat32x4(v, other Float32x4, pred func(a, b float32) bool) Float32x4 {
	var r Float32x4
	for i := range v {
		if pred(v[i], other[i]) {
			r[i] = maskTrue32
		}
	}
	return r
}

// Equal compares element-wise: result[i] = (v[i] == other[i]) ? all-ones : 0.
func (v Float32x4) Equal(other Float32x4) Float32x4 {
	return compareFloat32x4(v, other, func(a, b float32) bool { return a == b })
}

// NotEqual compares element-wise: result[i] = (v[i] != other[i]) ? all-ones : 0.
func (v Float32x4) NotEqual(other Float32x4) Float32x4 {
	return compareFloat32x4(v, other, func(a, b float32) bool { return a != b })
}

// Less compares element-wise: result[i] = (v[i] < other[i]) ? all-ones : 0.
func (v Float32x4) Less(other Float32x4) Float32x4 {
	return compareFloat32x4(v, other, func(a, b float32) bool { return a < b })
}

// LessEqual compares element-wise: result[i] = (v[i] <= other[i]) ? all-ones : 0.
func (v Float32x4) LessEqual(other Float32x4) Float32x4 {
	return compareFloat32x4(v, other, func(a, b float32) bool { return a <= b })
}

// Greater compares element-wise: result[i] = (v[i] > other[i]) ? all-ones : 0.
func (v Float32x4) Greater(other Float32x4) Float32x4 {
	return compareFloat32x4(v, other, func(a, b float32) bool { return a > b })
}

// GreaterEqual compares element-wise: result[i] = (v[i] >= other[i]) ? all-ones : 0.
func (v Float32x4) GreaterEqual(other Float32x4) Float32x4 {
	return compareFloat32x4(v, other, func(a, b float32) bool { return a >= b })
}
