package geometry

import (
	"errors"

	"github.com/df07/go-light2d/pkg/core"
)

// Epsilon is the minimum ray parameter accepted as a hit and the threshold
// below which denominators are treated as degenerate.
const Epsilon = 1e-6

// Configuration errors reported when a shape is built or validated
var (
	ErrDegeneratePolygon = errors.New("polygon needs at least 2 vertices")
	ErrInvalidRadius     = errors.New("circle radius must be positive and finite")
	ErrInvalidNormal     = errors.New("half-plane normal must be a unit vector")
	ErrMissingOperand    = errors.New("csg node is missing an operand")
)

// Hit contains information about a ray-shape intersection
type Hit struct {
	Point  core.Vec2 // Point of intersection
	Normal core.Vec2 // Unit normal pointing out of the shape's boundary (not necessarily toward the ray)
	T      float64   // Parameter t along the ray
}

// Shape is implemented by the closed set of shapes in this package: Circle,
// HalfPlane, Polygon, Union, Intersection and Difference.
type Shape interface {
	// Intersect returns the closest hit with t > Epsilon along the ray
	Intersect(ray core.Ray) (Hit, bool)

	// IsInside reports whether p lies strictly inside the enclosed region
	IsInside(p core.Vec2) bool

	// Validate reports configuration errors in the shape or its operands
	Validate() error

	shape()
}
