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

package algo

import (
	"fmt"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/floats"

	"github.com/go-highway/vecbf16/hwy"
	"github.com/go-highway/vecbf16/hwy/contrib/workerpool"
	"github.com/go-highway/vecbf16/hwy/vec128"
)

const sentinel = hwy.BFloat16(0xDEAD)

var testSizes = []int{0, 1, 3, 7, 8, 9, 15, 16, 17, 100}

func bf16Slice(n int, f func(i int) float32) []hwy.BFloat16 {
	s := make([]hwy.BFloat16, n)
	for i := range s {
		s[i] = hwy.Float32ToBFloat16(f(i))
	}
	return s
}

// guarded returns an output slice of length n followed by sentinel elements
// in the same backing array, plus the full backing array for inspection.
func guarded(n int) (out, backing []hwy.BFloat16) {
	backing = make([]hwy.BFloat16, n+8)
	for i := range backing {
		backing[i] = sentinel
	}
	return backing[:n], backing
}

func checkGuard(t *testing.T, backing []hwy.BFloat16, n int) {
	t.Helper()
	for i := n; i < len(backing); i++ {
		if backing[i] != sentinel {
			t.Fatalf("element %d past length %d was overwritten: 0x%04X", i, n, uint16(backing[i]))
		}
	}
}

func TestTransformBF16(t *testing.T) {
	for _, n := range testSizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			input := bf16Slice(n, func(i int) float32 { return float32(i) - 20 })
			out, backing := guarded(n)

			TransformBF16(input, out, func(x vec128.BFloat16x8) vec128.BFloat16x8 {
				return x.Mul(x).Add(x)
			})

			want := make([]hwy.BFloat16, n)
			for i, x := range input {
				xf := x.Float32()
				sq := hwy.Float32ToBFloat16(xf * xf).Float32()
				want[i] = hwy.Float32ToBFloat16(sq + xf)
			}
			if diff := cmp.Diff(want, out); diff != "" {
				t.Errorf("TransformBF16 mismatch (-want +got):\n%s", diff)
			}
			checkGuard(t, backing, n)
		})
	}
}

func TestTransformBF16ShortOutput(t *testing.T) {
	input := bf16Slice(20, func(i int) float32 { return float32(i) })
	out, backing := guarded(11)

	SqrtBF16(input, out)

	for i := range out {
		want := hwy.Float32ToBFloat16(float32(math.Sqrt(float64(i))))
		if out[i] != want {
			t.Errorf("out[%d] = %v, want %v", i, out[i], want)
		}
	}
	checkGuard(t, backing, 11)
}

func TestTransform2BF16(t *testing.T) {
	for _, n := range testSizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			a := bf16Slice(n, func(i int) float32 { return float32(i) * 0.5 })
			b := bf16Slice(n+3, func(i int) float32 { return 2 - float32(i) })

			sum, sumBacking := guarded(n)
			AddBF16(a, b, sum)
			prod, prodBacking := guarded(n)
			MulBF16(a, b, prod)

			wantSum := make([]hwy.BFloat16, n)
			wantProd := make([]hwy.BFloat16, n)
			for i := range n {
				wantSum[i] = hwy.Float32ToBFloat16(a[i].Float32() + b[i].Float32())
				wantProd[i] = hwy.Float32ToBFloat16(a[i].Float32() * b[i].Float32())
			}
			if diff := cmp.Diff(wantSum, sum); diff != "" {
				t.Errorf("AddBF16 mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(wantProd, prod); diff != "" {
				t.Errorf("MulBF16 mismatch (-want +got):\n%s", diff)
			}
			checkGuard(t, sumBacking, n)
			checkGuard(t, prodBacking, n)
		})
	}
}

func TestClampBF16(t *testing.T) {
	input := bf16Slice(13, func(i int) float32 { return float32(i) - 6 })
	input[12] = hwy.BFloat16NaN
	out := make([]hwy.BFloat16, len(input))

	ClampBF16(input, out, hwy.Float32ToBFloat16(-2), hwy.Float32ToBFloat16(3))

	got := make([]float32, 12)
	for i := range got {
		got[i] = out[i].Float32()
	}
	want := []float32{-2, -2, -2, -2, -2, -1, 0, 1, 2, 3, 3, 3}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ClampBF16 mismatch (-want +got):\n%s", diff)
	}
	if !out[12].IsNaN() {
		t.Errorf("ClampBF16(NaN) = %v, want NaN", out[12])
	}
}

func TestParallelTransformBF16(t *testing.T) {
	pool := workerpool.New(4)
	defer pool.Close()

	for _, n := range []int{0, 5, 64, 1000, 1003} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			input := bf16Slice(n, func(i int) float32 { return float32(i%37) * 0.25 })
			other := bf16Slice(n, func(i int) float32 { return float32(i % 11) })

			want := make([]hwy.BFloat16, n)
			SqrtBF16(input, want)
			got, backing := guarded(n)
			ParallelTransformBF16(pool, input, got, vec128.BFloat16x8.Sqrt)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("ParallelTransformBF16 mismatch (-want +got):\n%s", diff)
			}
			checkGuard(t, backing, n)

			want2 := make([]hwy.BFloat16, n)
			MulBF16(input, other, want2)
			got2, backing2 := guarded(n)
			ParallelTransform2BF16(pool, input, other, got2, vec128.BFloat16x8.Mul)
			if diff := cmp.Diff(want2, got2); diff != "" {
				t.Errorf("ParallelTransform2BF16 mismatch (-want +got):\n%s", diff)
			}
			checkGuard(t, backing2, n)
		})
	}
}

func TestPromoteDemoteBF16(t *testing.T) {
	for _, n := range testSizes {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			src := make([]float32, n)
			for i := range src {
				src[i] = float32(math.Sin(float64(i))) * 100
			}

			bf := make([]hwy.BFloat16, n+2)
			bf[n], bf[n+1] = sentinel, sentinel
			DemoteF32ToBF16(src, bf[:n])
			for i := range n {
				if want := hwy.Float32ToBFloat16(src[i]); bf[i] != want {
					t.Fatalf("DemoteF32ToBF16[%d] = 0x%04X, want 0x%04X", i, uint16(bf[i]), uint16(want))
				}
			}
			checkGuard(t, bf, n)

			back := make([]float32, n)
			PromoteBF16ToF32(bf[:n], back)
			for i := range n {
				if back[i] != bf[i].Float32() {
					t.Fatalf("PromoteBF16ToF32[%d] = %v, want %v", i, back[i], bf[i].Float32())
				}
			}
			// Round-tripping loses at most half a bfloat16 ulp (2^-8 relative).
			src64, back64 := make([]float64, n), make([]float64, n)
			for i := range n {
				src64[i], back64[i] = float64(src[i]), float64(back[i])
			}
			if !floats.EqualApprox(src64, back64, 1.0/128) {
				t.Errorf("round trip drifted too far:\n src=%v\nback=%v", src, back)
			}
		})
	}
}

func BenchmarkTransformBF16(b *testing.B) {
	input := bf16Slice(4096, func(i int) float32 { return float32(i) * 0.01 })
	output := make([]hwy.BFloat16, len(input))
	two := vec128.BroadcastBFloat16x8F32(2)

	for b.Loop() {
		TransformBF16(input, output, func(x vec128.BFloat16x8) vec128.BFloat16x8 {
			return x.MulAdd(two, x)
		})
	}
}

func BenchmarkDemoteF32ToBF16(b *testing.B) {
	input := make([]float32, 4096)
	for i := range input {
		input[i] = float32(i) * 0.37
	}
	output := make([]hwy.BFloat16, len(input))

	for b.Loop() {
		DemoteF32ToBF16(input, output)
	}
}
