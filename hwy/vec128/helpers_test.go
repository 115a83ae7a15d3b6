package vec128

import (
	"math"
	"math/rand/v2"

	"github.com/go-highway/vecbf16/hwy"
)

// vecOf rounds up to eight float32 values into a BFloat16x8; missing lanes
// are zero.
func vecOf(fs ...float32) BFloat16x8 {
	var v BFloat16x8
	for i, f := range fs {
		v[i] = uint16(hwy.Float32ToBFloat16(f))
	}
	return v
}

// floatsOf widens every lane of v.
func floatsOf(v BFloat16x8) [8]float32 {
	var r [8]float32
	for i := range v {
		r[i] = v.GetFloat32(i)
	}
	return r
}

// specialBits are bfloat16 patterns that exercise signed zeros, denormals,
// the finite extremes, infinities and NaN payloads.
var specialBits = []uint16{
	0x0000, 0x8000, 0x0001, 0x8001, 0x007F, 0x0080,
	0x3F80, 0xBF80, 0x3FC0, 0x4000, 0x4049, 0xC0A0,
	0x7F7F, 0xFF7F, 0x7F80, 0xFF80,
	0x7FC0, 0xFFC0, 0x7F81, 0x7FFF, 0xFFFF,
}

// randomVectors returns n vectors mixing ordinary finite values with
// entries from specialBits. The seed is fixed so failures reproduce.
func randomVectors(n int) []BFloat16x8 {
	rng := rand.New(rand.NewPCG(1, 2))
	out := make([]BFloat16x8, n)
	for k := range out {
		for i := range out[k] {
			if rng.IntN(4) == 0 {
				out[k][i] = specialBits[rng.IntN(len(specialBits))]
				continue
			}
			f := float32((rng.Float64()*2 - 1) * math.Pow(2, float64(rng.IntN(16)-8)))
			out[k][i] = uint16(hwy.Float32ToBFloat16(f))
		}
	}
	return out
}
