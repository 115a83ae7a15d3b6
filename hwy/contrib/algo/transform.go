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
	"github.com/go-highway/vecbf16/hwy"
	"github.com/go-highway/vecbf16/hwy/contrib/workerpool"
	"github.com/go-highway/vecbf16/hwy/vec128"
)

const lanes = vec128.BFloat16x8Lanes

// Function types for generic Transform operations.
type (
	// VecFuncBF16 is a unary operation on a whole BFloat16x8.
	VecFuncBF16 func(vec128.BFloat16x8) vec128.BFloat16x8

	// VecFunc2BF16 is a binary operation on a pair of BFloat16x8 vectors.
	VecFunc2BF16 func(x, y vec128.BFloat16x8) vec128.BFloat16x8
)

// TransformBF16 applies fn to input eight lanes at a time and stores the
// results in output. It processes min(len(input), len(output)) elements;
// the last partial vector is zero-padded on load and only its valid lanes
// are stored.
//
// Example usage:
//
//	TransformBF16(input, output, func(x vec128.BFloat16x8) vec128.BFloat16x8 {
//	    return x.Mul(x).Add(x)
//	})
func TransformBF16(input, output []hwy.BFloat16, fn VecFuncBF16) {
	n := min(len(input), len(output))
	i := 0
	for ; i+lanes <= n; i += lanes {
		fn(vec128.LoadBFloat16x8(input[i:])).Store(output[i:])
	}
	if rem := n - i; rem > 0 {
		fn(vec128.LoadBFloat16x8N(input[i:], rem)).StoreN(output[i:], rem)
	}
}

// Transform2BF16 applies fn lane-wise to a and b, processing the shortest
// of the three slices.
func Transform2BF16(a, b, output []hwy.BFloat16, fn VecFunc2BF16) {
	n := min(len(a), len(b), len(output))
	i := 0
	for ; i+lanes <= n; i += lanes {
		fn(vec128.LoadBFloat16x8(a[i:]), vec128.LoadBFloat16x8(b[i:])).Store(output[i:])
	}
	if rem := n - i; rem > 0 {
		x := vec128.LoadBFloat16x8N(a[i:], rem)
		y := vec128.LoadBFloat16x8N(b[i:], rem)
		fn(x, y).StoreN(output[i:], rem)
	}
}

// ParallelTransformBF16 is TransformBF16 split across pool. Every worker
// range except the last holds whole vectors. fn must not keep state
// between calls.
func ParallelTransformBF16(pool *workerpool.Pool, input, output []hwy.BFloat16, fn VecFuncBF16) {
	n := min(len(input), len(output))
	pool.ParallelFor(n, lanes, func(start, end int) {
		TransformBF16(input[start:end], output[start:end], fn)
	})
}

// ParallelTransform2BF16 is Transform2BF16 split across pool.
func ParallelTransform2BF16(pool *workerpool.Pool, a, b, output []hwy.BFloat16, fn VecFunc2BF16) {
	n := min(len(a), len(b), len(output))
	pool.ParallelFor(n, lanes, func(start, end int) {
		Transform2BF16(a[start:end], b[start:end], output[start:end], fn)
	})
}

// AddBF16 computes output[i] = a[i] + b[i].
func AddBF16(a, b, output []hwy.BFloat16) {
	Transform2BF16(a, b, output, vec128.BFloat16x8.Add)
}

// MulBF16 computes output[i] = a[i] * b[i].
func MulBF16(a, b, output []hwy.BFloat16) {
	Transform2BF16(a, b, output, vec128.BFloat16x8.Mul)
}

// SqrtBF16 computes output[i] = sqrt(input[i]).
func SqrtBF16(input, output []hwy.BFloat16) {
	TransformBF16(input, output, vec128.BFloat16x8.Sqrt)
}

// ClampBF16 limits every element of input to [lo, hi].
// NaN elements stay NaN.
func ClampBF16(input, output []hwy.BFloat16, lo, hi hwy.BFloat16) {
	vlo := vec128.BroadcastBFloat16x8(lo)
	vhi := vec128.BroadcastBFloat16x8(hi)
	TransformBF16(input, output, func(x vec128.BFloat16x8) vec128.BFloat16x8 {
		return vec128.ClampBFloat16x8(x, vlo, vhi)
	})
}
