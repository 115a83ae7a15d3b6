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

// Command bf16info prints the CPU features relevant to bfloat16 vectors and
// which conversion strategy this binary was built with.
//
// Usage:
//
//	go run ./cmd/bf16info
//	go run -tags hwybf16 ./cmd/bf16info
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/go-highway/vecbf16/hwy"
	"github.com/go-highway/vecbf16/hwy/vec128"
)

func main() {
	report(os.Stdout, runtime.GOARCH)
}

func report(w io.Writer, arch string) {
	fmt.Fprintf(w, "GOOS: %s\n", runtime.GOOS)
	fmt.Fprintf(w, "GOARCH: %s\n", runtime.GOARCH)
	fmt.Fprintf(w, "NumCPU: %d\n", runtime.NumCPU())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Highway dispatch level: %s\n", hwy.CurrentLevel())
	fmt.Fprintf(w, "Highway dispatch width: %d bytes\n", hwy.CurrentWidth())
	fmt.Fprintf(w, "Highway dispatch name: %s\n", hwy.CurrentName())
	fmt.Fprintf(w, "HWY_NO_SIMD set: %v\n", hwy.NoSimdEnv())
	fmt.Fprintln(w)

	switch arch {
	case "arm64":
		printARM64Features(w)
	case "amd64":
		printAMD64Features(w)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Highway HasARMFP16: %v\n", hwy.HasARMFP16())
	fmt.Fprintf(w, "Highway HasARMBF16: %v\n", hwy.HasARMBF16())
	fmt.Fprintf(w, "Highway HasAVX512BF16: %v\n", hwy.HasAVX512BF16())
	fmt.Fprintln(w)

	strategy := "emulated (Uint32x4 shift + round-to-nearest-even bias)"
	if vec128.NativeBF16Conversion {
		strategy = "native (per-lane BFCVT-style conversion, -tags hwybf16)"
	}
	fmt.Fprintf(w, "BFloat16x8 lanes: %d\n", vec128.BFloat16x8Lanes)
	fmt.Fprintf(w, "BFloat16x8 conversion: %s\n", strategy)
}

func printARM64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Fprintf(w, "  HasASIMD:    %v (NEON baseline)\n", cpu.ARM64.HasASIMD)
	fmt.Fprintf(w, "  HasFP:       %v (Floating point)\n", cpu.ARM64.HasFP)
	fmt.Fprintf(w, "  HasFPHP:     %v (FP16 scalar, ARMv8.2-A)\n", cpu.ARM64.HasFPHP)
	fmt.Fprintf(w, "  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Fprintf(w, "  HasASIMDFHM: %v (FP16 FMA, ARMv8.4-A)\n", cpu.ARM64.HasASIMDFHM)
	fmt.Fprintf(w, "  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
	fmt.Fprintf(w, "  HasSVE2:     %v (SVE2)\n", cpu.ARM64.HasSVE2)
}

func printAMD64Features(w io.Writer) {
	fmt.Fprintln(w, "=== golang.org/x/sys/cpu.X86 ===")
	fmt.Fprintf(w, "  HasSSE2:       %v\n", cpu.X86.HasSSE2)
	fmt.Fprintf(w, "  HasAVX2:       %v\n", cpu.X86.HasAVX2)
	fmt.Fprintf(w, "  HasFMA:        %v\n", cpu.X86.HasFMA)
	fmt.Fprintf(w, "  HasAVX512F:    %v\n", cpu.X86.HasAVX512F)
	fmt.Fprintf(w, "  HasAVX512BW:   %v\n", cpu.X86.HasAVX512BW)
	fmt.Fprintf(w, "  HasAVX512VL:   %v\n", cpu.X86.HasAVX512VL)
	fmt.Fprintf(w, "  HasAVX512BF16: %v\n", cpu.X86.HasAVX512BF16)
}
