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

// Command bf16gen generates the BFloat16x8 operator methods that run through
// the widen/compute/narrow helpers of package vec128.
//
// Usage:
//
//	bf16gen -output ops_bf16x8_gen.go -pkg vec128
//
// Or via go:generate:
//
//	//go:generate go run ../../cmd/bf16gen -output ops_bf16x8_gen.go -pkg vec128
//
// Every entry of the operator table becomes one method whose body binds the
// Float32x4 method of the same name to mapViaF32 (unary) or binaryViaF32
// (binary and relational).
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	outputFile = flag.String("output", "ops_bf16x8_gen.go", "Output file, or - for stdout")
	packageOut = flag.String("pkg", "vec128", "Output package name")
)

func main() {
	flag.Parse()

	if *packageOut == "" {
		fmt.Fprintf(os.Stderr, "Error: -pkg must not be empty\n\n")
		flag.Usage()
		os.Exit(1)
	}

	src, err := Generate(*packageOut, operators)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outputFile == "-" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*outputFile, src, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: write %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %d operators in %s\n", len(operators), *outputFile)
}
