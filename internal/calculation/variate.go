package calculation

import (
	"math"
	"math/rand/v2"
)

// Uniform yields draws in [0, 1)
type Uniform interface {
	Float64() float64
}

// Source is a uniform generator that can also seed child generators for
// parallel workers. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	Uniform
	Uint64() uint64
}

// NewSource returns a PCG-backed source for the given seed
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// childSource derives an independent generator from the parent's stream
func childSource(parent Source) Source {
	return rand.New(rand.NewPCG(parent.Uint64(), parent.Uint64()))
}

// BoxMuller turns uniform draws into normal draws
type BoxMuller struct {
	src Uniform
}

// NewBoxMuller wraps a uniform source
func NewBoxMuller(src Uniform) *BoxMuller {
	return &BoxMuller{src: src}
}

// Sample draws from Normal(mean, stdDev). Zero uniform draws are resampled
// so the logarithm is always finite.
func (b *BoxMuller) Sample(mean, stdDev float64) float64 {
	u1 := b.nonZero()
	u2 := b.nonZero()
	z := math.Sqrt(-2.0*math.Log(u1)) * math.Cos(2.0*math.Pi*u2)
	return mean + stdDev*z
}

func (b *BoxMuller) nonZero() float64 {
	u := b.src.Float64()
	for u == 0 {
		u = b.src.Float64()
	}
	return u
}
