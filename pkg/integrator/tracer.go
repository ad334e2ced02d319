package integrator

import (
	"github.com/df07/go-light2d/pkg/core"
	"github.com/df07/go-light2d/pkg/material"
)

// Tracer implements recursive Whitted-style light transport in the plane.
// It is safe for concurrent use: it holds no mutable state.
type Tracer struct {
	scene  Scene
	config Config
}

// NewTracer creates a tracer over an immutable scene
func NewTracer(scene Scene, config Config) *Tracer {
	return &Tracer{
		scene:  scene,
		config: config,
	}
}

// Trace returns the radiance gathered along ray. Rays that escape the scene
// return black. Beyond MaxDepth only emission is gathered.
func (tr *Tracer) Trace(ray core.Ray, depth int) core.Color {
	hit, ok := tr.scene.Intersect(ray)
	if !ok {
		return core.Black
	}

	d := ray.Direction.Normalize()

	// Orient the normal against the incoming ray; sign < 0 means the ray
	// travels inside the hit entity
	sign := 1.0
	if d.Dot(hit.Normal) > 0 {
		sign = -1
	}
	normal := hit.Normal.Multiply(sign)

	sum := hit.Emissive

	if depth < tr.config.MaxDepth && hit.Scatters() {
		reflectivity := hit.Reflectivity

		if hit.IsRefractive() {
			eta, etaFrom, etaTo := 1/hit.Eta, 1.0, hit.Eta
			if sign < 0 {
				eta, etaFrom, etaTo = hit.Eta, hit.Eta, 1.0
			}

			if refracted, ok := material.Refract(d, normal, eta); ok {
				cosI := -d.Dot(normal)
				cosT := -refracted.Dot(normal)
				reflectivity = material.Schlick(cosI, cosT, etaFrom, etaTo)

				origin := hit.Point.Subtract(normal.Multiply(tr.config.Bias))
				transmitted := tr.Trace(core.NewRay(origin, refracted), depth+1)
				sum = sum.Add(transmitted.Multiply(1 - reflectivity))
			} else {
				// Total internal reflection
				reflectivity = 1
			}
		}

		if reflectivity > 0 {
			origin := hit.Point.Add(normal.Multiply(tr.config.Bias))
			reflected := tr.Trace(core.NewRay(origin, material.Reflect(d, normal)), depth+1)
			sum = sum.Add(reflected.Multiply(reflectivity))
		}
	}

	if sign < 0 {
		sum = sum.MultiplyColor(material.BeerLambert(hit.Absorption, hit.Distance))
	}

	return sum
}
