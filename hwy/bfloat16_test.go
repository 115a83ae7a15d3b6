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
	"testing"

	"github.com/x448/float16"
)

// TestBFloat16Constants checks every named constant against the float32
// value it encodes.
func TestBFloat16Constants(t *testing.T) {
	tests := []struct {
		name  string
		value BFloat16
		want  float32
	}{
		{"Zero", BFloat16Zero, 0},
		{"NegZero", BFloat16NegZero, float32(math.Copysign(0, -1))},
		{"One", BFloat16One, 1},
		{"NegOne", BFloat16NegOne, -1},
		{"MaxValue", BFloat16MaxValue, 0x1.fep127},
		{"MinNormal", BFloat16MinNormal, 0x1p-126},
		{"MinValue", BFloat16MinValue, 0x1p-133},
		{"Inf", BFloat16Inf, float32(math.Inf(1))},
		{"NegInf", BFloat16NegInf, float32(math.Inf(-1))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BFloat16ToFloat32(tt.value)
			if math.Float32bits(got) != math.Float32bits(tt.want) {
				t.Errorf("BFloat16%s = %v, want %v", tt.name, got, tt.want)
			}
			if back := Float32ToBFloat16(tt.want); back != tt.value {
				t.Errorf("Float32ToBFloat16(%v) = 0x%04X, want 0x%04X", tt.want, back, tt.value)
			}
		})
	}
}

// TestFloat32ToBFloat16 covers exact conversions, the exact midpoint
// between two bfloat16 neighbours (where the retained LSB decides the
// direction) and the overflow boundary.
func TestFloat32ToBFloat16(t *testing.T) {
	tests := []struct {
		name     string
		bits     uint32
		expected BFloat16
	}{
		{"Exact", 0x40490000, 0x4049},
		{"ExactNegative", 0xC0A00000, 0xC0A0},
		{"NegZero", 0x80000000, BFloat16NegZero},
		{"Denormal", 0x00010000, 0x0001},
		{"EvenTieStays", 0x3F808000, 0x3F80},
		{"OddTieRoundsUp", 0x3F818000, 0x3F82},
		{"BelowTieTruncates", 0x3F807FFF, 0x3F80},
		{"AboveTieRoundsUp", 0x3F808001, 0x3F81},
		{"NegativeEvenTie", 0xBF808000, 0xBF80},
		{"NegativeOddTie", 0xBF818000, 0xBF82},
		{"DenormalTie", 0x00018000, 0x0002},
		{"MantissaCarryIntoExponent", 0x3FFF8000, 0x4000},
		{"MaxFiniteOverflowsToInf", 0x7F7FFFFF, BFloat16Inf},
		{"LargestBelowOverflow", 0x7F7F7FFF, BFloat16MaxValue},
		{"NegativeOverflow", 0xFF7F8000, BFloat16NegInf},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Float32ToBFloat16(math.Float32frombits(tt.bits))
			if got != tt.expected {
				t.Errorf("Float32ToBFloat16(0x%08X): got 0x%04X, want 0x%04X", tt.bits, got, tt.expected)
			}
		})
	}
}

// TestFloat32ToBFloat16ErrorBound checks that narrowing a normal float32
// is off by at most half a bfloat16 unit in the last place.
func TestFloat32ToBFloat16ErrorBound(t *testing.T) {
	for bits := uint32(0x00800000); bits < 0x7F7F8000; bits += 0x1003 {
		for _, sign := range []uint32{0, 0x80000000} {
			f := math.Float32frombits(bits | sign)
			back := BFloat16ToFloat32(Float32ToBFloat16(f))
			_, exp := math.Frexp(float64(f))
			halfULP := math.Ldexp(1, exp-9)
			if diff := math.Abs(float64(back) - float64(f)); diff > halfULP {
				t.Fatalf("0x%08X: narrowed to %v, error %g > %g", bits|sign, back, diff, halfULP)
			}
		}
	}
}

// TestBFloat16Predicates checks the helper predicates over a spread of
// representative values.
func TestBFloat16Predicates(t *testing.T) {
	tests := []struct {
		value                                      BFloat16
		zero, negative, denormal, finite, nan, inf bool
	}{
		{BFloat16Zero, true, false, false, true, false, false},
		{BFloat16NegZero, true, true, false, true, false, false},
		{BFloat16One, false, false, false, true, false, false},
		{BFloat16NegOne, false, true, false, true, false, false},
		{BFloat16MinValue, false, false, true, true, false, false},
		{0x807F, false, true, true, true, false, false},
		{BFloat16MinNormal, false, false, false, true, false, false},
		{BFloat16Inf, false, false, false, false, false, true},
		{BFloat16NegInf, false, true, false, false, false, true},
		{BFloat16NaN, false, false, false, false, true, false},
		{0xFFC1, false, true, false, false, true, false},
	}

	for _, tt := range tests {
		b := tt.value
		got := [...]bool{b.IsZero(), b.IsNegative(), b.IsDenormal(), b.IsFinite(), b.IsNaN(), b.IsInf()}
		want := [...]bool{tt.zero, tt.negative, tt.denormal, tt.finite, tt.nan, tt.inf}
		if got != want {
			t.Errorf("0x%04X: zero/neg/denormal/finite/nan/inf = %v, want %v", uint16(b), got, want)
		}
	}
}

func TestBFloat16Accessors(t *testing.T) {
	b := BFloat16(0x4049) // 3.140625
	if got := b.Float32(); got != 3.140625 {
		t.Errorf("Float32() = %v", got)
	}
	if got := b.Float64(); got != 3.140625 {
		t.Errorf("Float64() = %v", got)
	}
	if got := b.Bits(); got != 0x4049 {
		t.Errorf("Bits() = 0x%04X", got)
	}
	if got := BFloat16FromBits(0x4049); got != b {
		t.Errorf("BFloat16FromBits = 0x%04X", got)
	}
	if got := NewBFloat16(3.14159); got != b {
		t.Errorf("NewBFloat16(3.14159) = 0x%04X, want 0x4049", got)
	}
	if got := NewBFloat16FromFloat64(math.Pi); got != b {
		t.Errorf("NewBFloat16FromFloat64(Pi) = 0x%04X, want 0x4049", got)
	}
}

// TestFloat16Bridge converts between bfloat16 and IEEE half. The formats
// trade range for precision, so each direction rounds or saturates.
func TestFloat16Bridge(t *testing.T) {
	toBF16 := []struct {
		name string
		half float16.Float16
		want BFloat16
	}{
		{"One", float16.Fromfloat32(1), BFloat16One},
		{"NegHundred", float16.Fromfloat32(-100), 0xC2C8},
		{"ExtraMantissaRounds", float16.Fromfloat32(1 + 0x1p-10), BFloat16One},
		{"HalfDenormal", float16.Frombits(0x0001), 0x3380},
		{"Inf", float16.Inf(1), BFloat16Inf},
	}
	for _, tt := range toBF16 {
		if got := Float16ToBFloat16(tt.half); got != tt.want {
			t.Errorf("Float16ToBFloat16(%s) = 0x%04X, want 0x%04X", tt.name, got, tt.want)
		}
	}

	toHalf := []struct {
		name string
		b    BFloat16
		want float32
	}{
		{"One", BFloat16One, 1},
		{"ExactMantissa", 0x3F81, 1 + 0x1p-7},
		{"NegFifty", 0xC248, -50},
		{"Overflow", Float32ToBFloat16(1e10), float32(math.Inf(1))},
		{"Underflow", Float32ToBFloat16(1e-10), 0},
	}
	for _, tt := range toHalf {
		if got := BFloat16ToFloat16(tt.b).Float32(); got != tt.want {
			t.Errorf("BFloat16ToFloat16(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// TestFloat32ToBFloat16NaNPayloads checks that every NaN narrows to a NaN
// of the same sign, including payloads that only live in the discarded
// half and would otherwise round into Inf.
func TestFloat32ToBFloat16NaNPayloads(t *testing.T) {
	nan := math.Float32bits(float32(math.NaN()))
	for _, bits := range []uint32{nan, 0x7F800001, 0x7F80FFFF, 0xFF800001, 0x7FFFFFFF, 0xFFFFFFFF, 0x7FC00000, 0x7FC10000} {
		got := Float32ToBFloat16(math.Float32frombits(bits))
		if !got.IsNaN() {
			t.Errorf("Float32ToBFloat16(0x%08X) = 0x%04X, want a NaN", bits, got)
		}
		if got.IsNegative() != (bits&0x80000000 != 0) {
			t.Errorf("Float32ToBFloat16(0x%08X) = 0x%04X, sign not preserved", bits, got)
		}
	}
}

// TestBFloat16Classify exhaustively checks IsNaN/IsInf/IsFinite against
// the float32 classification of the widened value.
func TestBFloat16Classify(t *testing.T) {
	for i := range 1 << 16 {
		b := BFloat16(i)
		f := float64(BFloat16ToFloat32(b))
		if b.IsNaN() != math.IsNaN(f) {
			t.Fatalf("0x%04X: IsNaN=%v, float32 says %v", i, b.IsNaN(), math.IsNaN(f))
		}
		if b.IsInf() != math.IsInf(f, 0) {
			t.Fatalf("0x%04X: IsInf=%v, float32 says %v", i, b.IsInf(), math.IsInf(f, 0))
		}
		finite := !math.IsNaN(f) && !math.IsInf(f, 0)
		if b.IsFinite() != finite {
			t.Fatalf("0x%04X: IsFinite=%v, want %v", i, b.IsFinite(), finite)
		}
	}
}

// TestBFloat16WidenNarrowIdentity verifies every non-NaN pattern survives
// a widen/narrow round trip bit for bit.
func TestBFloat16WidenNarrowIdentity(t *testing.T) {
	for i := range 1 << 16 {
		b := BFloat16(i)
		if b.IsNaN() {
			continue
		}
		if got := Float32ToBFloat16(BFloat16ToFloat32(b)); got != b {
			t.Fatalf("round trip 0x%04X -> 0x%04X", i, got)
		}
	}
}

func TestBFloat16String(t *testing.T) {
	tests := []struct {
		value    BFloat16
		expected string
	}{
		{BFloat16One, "1"},
		{BFloat16NegOne, "-1"},
		{0x3F00, "0.5"},
		{BFloat16Inf, "+Inf"},
		{BFloat16NaN, "NaN"},
	}
	for _, tt := range tests {
		if got := tt.value.String(); got != tt.expected {
			t.Errorf("BFloat16(0x%04X).String() = %q, want %q", uint16(tt.value), got, tt.expected)
		}
	}
}

func BenchmarkFloat32ToBFloat16(b *testing.B) {
	var sink BFloat16
	for i := 0; i < b.N; i++ {
		sink ^= Float32ToBFloat16(float32(i) * 1.0001)
	}
	_ = sink
}
