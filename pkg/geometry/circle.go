package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-light2d/pkg/core"
)

// Circle represents a filled circle
type Circle struct {
	Center core.Vec2
	Radius float64
}

// NewCircle creates a new circle
func NewCircle(center core.Vec2, radius float64) *Circle {
	return &Circle{
		Center: center,
		Radius: radius,
	}
}

func (c *Circle) shape() {}

// Intersect tests if a ray intersects with the circle
func (c *Circle) Intersect(ray core.Ray) (Hit, bool) {
	// Vector from circle center to ray origin
	oc := ray.Origin.Subtract(c.Center)

	// Quadratic equation coefficients: at² + 2·halfB·t + c = 0
	a := ray.Direction.LengthSquared()
	if a < Epsilon*Epsilon {
		return Hit{}, false
	}
	halfB := oc.Dot(ray.Direction)
	cc := oc.LengthSquared() - c.Radius*c.Radius

	discriminant := halfB*halfB - a*cc
	if discriminant < 0 {
		return Hit{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer root first
	root := (-halfB - sqrtD) / a
	if root <= Epsilon {
		root = (-halfB + sqrtD) / a
		if root <= Epsilon {
			return Hit{}, false
		}
	}

	point := ray.At(root)
	return Hit{
		Point:  point,
		Normal: point.Subtract(c.Center).Normalize(),
		T:      root,
	}, true
}

// IsInside reports whether p is strictly closer to the center than the radius
func (c *Circle) IsInside(p core.Vec2) bool {
	return p.Subtract(c.Center).LengthSquared() < c.Radius*c.Radius
}

// Validate checks that the radius is usable
func (c *Circle) Validate() error {
	if !(c.Radius > 0) || math.IsInf(c.Radius, 0) {
		return fmt.Errorf("circle at %v: %w", c.Center, ErrInvalidRadius)
	}
	return nil
}
