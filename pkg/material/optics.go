package material

import (
	"math"

	"github.com/df07/go-light2d/pkg/core"
)

// Reflect calculates the reflection of d off a surface with unit normal n
func Reflect(d, n core.Vec2) core.Vec2 {
	// r = d - 2*dot(d,n)*n
	return d.Subtract(n.Multiply(2 * d.Dot(n)))
}

// Refract bends the unit direction d through a surface with unit normal n
// facing against d, using Snell's law with relative index eta = etaFrom/etaTo.
// It returns false on total internal reflection.
func Refract(d, n core.Vec2, eta float64) (core.Vec2, bool) {
	cosI := -d.Dot(n)
	k := 1 - eta*eta*(1-cosI*cosI)
	if k < 0 {
		return core.Vec2{}, false
	}
	return d.Multiply(eta).Add(n.Multiply(eta*cosI - math.Sqrt(k))), true
}

// Schlick calculates the Fresnel reflectance using Schlick's approximation.
// The angle term uses the incident cosine when entering a denser medium and
// the transmitted cosine otherwise.
func Schlick(cosI, cosT, etaFrom, etaTo float64) float64 {
	r0 := (etaFrom - etaTo) / (etaFrom + etaTo)
	r0 *= r0

	cosine := cosT
	if etaFrom < etaTo {
		cosine = cosI
	}
	a := math.Max(0, 1-cosine)
	aa := a * a
	return math.Min(1, r0+(1-r0)*aa*aa*a)
}

// BeerLambert returns the per-channel transmittance exp(-a·distance)
func BeerLambert(absorption core.Color, distance float64) core.Color {
	return core.Color{
		R: math.Exp(-absorption.R * distance),
		G: math.Exp(-absorption.G * distance),
		B: math.Exp(-absorption.B * distance),
	}
}
