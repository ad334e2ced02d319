package integrator

import (
	"sync"

	"github.com/df07/go-light2d/pkg/core"
)

// sampleAngles draws one jittered angle per stratum, in stratum order. Every
// caller consumes exactly n draws from the sampler, whatever it does next.
func sampleAngles(n int, sampler core.Sampler) []float64 {
	angles := make([]float64, n)
	for i := range angles {
		angles[i] = core.StratifiedAngle(i, n, sampler.Get1D())
	}
	return angles
}

// SamplePixel estimates the mean radiance arriving at p over all directions
// using n stratified samples.
func SamplePixel(tracer Integrator, p core.Vec2, n int, sampler core.Sampler) core.Color {
	if n <= 0 {
		return core.Black
	}

	sum := core.Black
	for _, theta := range sampleAngles(n, sampler) {
		sum = sum.Add(tracer.Trace(core.NewRay(p, core.FromAngle(theta)), 0))
	}
	return sum.Divide(float64(n))
}

// SamplePixelParallel is SamplePixel with the n traces spread over up to
// workers goroutines. The draws are taken up front and the results summed in
// stratum order, so the result is bit-identical to SamplePixel.
func SamplePixelParallel(tracer Integrator, p core.Vec2, n int, sampler core.Sampler, workers int) core.Color {
	if n <= 0 {
		return core.Black
	}
	if workers <= 1 || n == 1 {
		return SamplePixel(tracer, p, n, sampler)
	}
	if workers > n {
		workers = n
	}

	angles := sampleAngles(n, sampler)
	colors := make([]core.Color, n)

	var wg sync.WaitGroup
	chunk := (n + workers - 1) / workers
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				colors[i] = tracer.Trace(core.NewRay(p, core.FromAngle(angles[i])), 0)
			}
		}(start, end)
	}
	wg.Wait()

	sum := core.Black
	for _, c := range colors {
		sum = sum.Add(c)
	}
	return sum.Divide(float64(n))
}
