package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec2 represents a 2D point or direction
type Vec2 struct {
	X, Y float64
}

// NewVec2 creates a new Vec2
func NewVec2(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) vec() r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

func fromR2(v r2.Vec) Vec2 {
	return Vec2{X: v.X, Y: v.Y}
}

// Add returns the sum of two vectors
func (v Vec2) Add(other Vec2) Vec2 {
	return fromR2(r2.Add(v.vec(), other.vec()))
}

// Subtract returns the difference of two vectors
func (v Vec2) Subtract(other Vec2) Vec2 {
	return fromR2(r2.Sub(v.vec(), other.vec()))
}

// Multiply returns the vector scaled by a scalar
func (v Vec2) Multiply(scalar float64) Vec2 {
	return fromR2(r2.Scale(scalar, v.vec()))
}

// Negate returns the negative of the vector
func (v Vec2) Negate() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Dot returns the dot product of two vectors
func (v Vec2) Dot(other Vec2) float64 {
	return r2.Dot(v.vec(), other.vec())
}

// Cross returns the z component of the 3D cross product of v and other
func (v Vec2) Cross(other Vec2) float64 {
	return r2.Cross(v.vec(), other.vec())
}

// Length returns the magnitude of the vector
func (v Vec2) Length() float64 {
	return r2.Norm(v.vec())
}

// LengthSquared returns the squared magnitude of the vector
func (v Vec2) LengthSquared() float64 {
	return r2.Norm2(v.vec())
}

// Normalize returns a unit vector in the same direction
func (v Vec2) Normalize() Vec2 {
	if v.X == 0 && v.Y == 0 {
		return Vec2{}
	}
	return fromR2(r2.Unit(v.vec()))
}

// Perp returns the vector rotated by -90 degrees. For an edge of a
// counter-clockwise polygon this points away from the interior.
func (v Vec2) Perp() Vec2 {
	return Vec2{X: v.Y, Y: -v.X}
}

// FromAngle returns the unit direction at the given angle in radians
func FromAngle(theta float64) Vec2 {
	s, c := math.Sincos(theta)
	return Vec2{X: c, Y: s}
}

// Ray represents a ray with an origin and direction
type Ray struct {
	Origin    Vec2
	Direction Vec2
}

// NewRay creates a new ray
func NewRay(origin, direction Vec2) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec2 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
