package core

import (
	"math"
	"math/rand/v2"
)

// Sampler provides uniform random numbers for rendering algorithms
// Can be swapped out for deterministic testing or different sampling patterns
type Sampler interface {
	// Get1D returns a uniform float64 in [0, 1)
	Get1D() float64
}

// RandomSampler wraps a standard Go random generator
type RandomSampler struct {
	random *rand.Rand
}

// NewRandomSampler creates a sampler from a Go random generator
func NewRandomSampler(random *rand.Rand) *RandomSampler {
	return &RandomSampler{random: random}
}

// Get1D returns a random float64 in [0, 1)
func (r *RandomSampler) Get1D() float64 {
	return r.random.Float64()
}

// NewPixelSampler returns the sampler stream owned by one pixel. The stream
// depends only on the render seed and the pixel position, so a pixel draws
// the same sequence no matter which worker renders it or in which order.
func NewPixelSampler(seed uint64, x, y int) *RandomSampler {
	stream := uint64(uint32(y))<<32 | uint64(uint32(x))
	return NewRandomSampler(rand.New(rand.NewPCG(seed, splitmix64(stream))))
}

// splitmix64 scrambles neighbouring pixel indices into unrelated PCG streams
func splitmix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

// StratifiedAngle returns the jittered angle of stratum i out of n strata
// covering [0, 2π). u is a uniform sample in [0, 1).
func StratifiedAngle(i, n int, u float64) float64 {
	return 2 * math.Pi * (float64(i) + u) / float64(n)
}
