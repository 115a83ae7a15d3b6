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

// Package algo applies BFloat16x8 operations to whole slices.
//
// # Transform API
//
// The Transform functions walk a slice eight lanes at a time and finish
// with one partial vector loaded by LoadBFloat16x8N and written by StoreN,
// so no element past the processed length is read or written:
//   - TransformBF16(input, output []hwy.BFloat16, fn VecFuncBF16)
//   - Transform2BF16(a, b, output []hwy.BFloat16, fn VecFunc2BF16)
//   - ParallelTransformBF16 / ParallelTransform2BF16, the same split across
//     a workerpool.Pool
//
// Named transforms:
//   - AddBF16, MulBF16, SqrtBF16, ClampBF16
//
// Bulk conversion:
//   - PromoteBF16ToF32 (exact)
//   - DemoteF32ToBF16 (round to nearest even)
//
// # Example Usage
//
//	import "github.com/go-highway/vecbf16/hwy/contrib/algo"
//
//	func Scale(xs []hwy.BFloat16, k float32) []hwy.BFloat16 {
//	    out := make([]hwy.BFloat16, len(xs))
//	    vk := vec128.BroadcastBFloat16x8F32(k)
//	    algo.TransformBF16(xs, out, func(x vec128.BFloat16x8) vec128.BFloat16x8 {
//	        return x.Mul(vk)
//	    })
//	    return out
//	}
package algo
