//go:build !amd64 && !arm64

package hwy

func init() {
	// Other architectures only run the portable Go code paths.
	setScalarMode()
}

// HasARMFP16 returns false on non-ARM architectures.
func HasARMFP16() bool {
	return false
}

// HasARMBF16 returns false on non-ARM architectures.
func HasARMBF16() bool {
	return false
}

// HasAVX512BF16 returns false on non-x86 architectures.
func HasAVX512BF16() bool {
	return false
}
