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

// Package hwy provides the scalar BFloat16 type and the CPU capability
// reporting shared by the vector packages.
//
// The vector types live in hwy/vec128:
//
//	import (
//	    "github.com/go-highway/vecbf16/hwy"
//	    "github.com/go-highway/vecbf16/hwy/vec128"
//	)
//
//	a := vec128.LoadBFloat16x8(data1)
//	b := vec128.LoadBFloat16x8(data2)
//	a.Add(b).Store(output)
//
// BFloat16 arithmetic is never done in 16 bits: every operation promotes
// to float32, computes, and demotes back with round-to-nearest-even.
package hwy
