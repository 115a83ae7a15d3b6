//go:build arm64

package hwy

import "golang.org/x/sys/cpu"

func init() {
	// Check for HWY_NO_SIMD environment variable first
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// ARM64 (AArch64) always has NEON (ASIMD) available.
	// It's part of the ARMv8-A base architecture.
	if cpu.ARM64.HasASIMD {
		currentLevel = DispatchNEON
		currentWidth = 16 // NEON is 128-bit (16 bytes)
	} else {
		// Fallback to scalar (should never happen on ARMv8+)
		setScalarMode()
	}
}

// HasARMFP16 returns true if the CPU has ARMv8.2-A half-precision
// arithmetic in the vector unit (FEAT_FP16).
func HasARMFP16() bool {
	if NoSimdEnv() {
		return false
	}
	return cpu.ARM64.HasFPHP && cpu.ARM64.HasASIMDHP
}

// HasARMBF16 returns true if the CPU has the ARMv8.6-A BF16 extension
// (BFCVT, BFDOT, BFMMLA). Returns false when HWY_NO_SIMD is set.
//
// This is informational: the bfloat16 conversion strategy of hwy/vec128
// is fixed at build time by the hwybf16 tag.
func HasARMBF16() bool {
	if NoSimdEnv() {
		return false
	}
	return hasARMBF16
}

// HasAVX512BF16 returns false on ARM (AVX-512 is x86-specific).
func HasAVX512BF16() bool {
	return false
}
