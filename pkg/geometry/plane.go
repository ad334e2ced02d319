package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-light2d/pkg/core"
)

// HalfPlane represents the region on the negative side of an infinite line
// defined by a point and an outward normal
type HalfPlane struct {
	Point  core.Vec2 // A point on the boundary line
	Normal core.Vec2 // Outward unit normal
}

// NewHalfPlane creates a new half-plane
func NewHalfPlane(point, normal core.Vec2) *HalfPlane {
	return &HalfPlane{
		Point:  point,
		Normal: normal.Normalize(), // Ensure normal is normalized
	}
}

// unitTolerance bounds how far a normal's squared length may drift from 1
const unitTolerance = 1e-9

func (h *HalfPlane) shape() {}

// Intersect tests if a ray crosses the boundary line. The returned normal is
// always the outward normal, whichever side the ray comes from.
func (h *HalfPlane) Intersect(ray core.Ray) (Hit, bool) {
	denominator := ray.Direction.Dot(h.Normal)

	// Ray parallel to the line
	if math.Abs(denominator) < Epsilon {
		return Hit{}, false
	}

	t := h.Point.Subtract(ray.Origin).Dot(h.Normal) / denominator
	if t <= Epsilon {
		return Hit{}, false
	}

	return Hit{
		Point:  ray.At(t),
		Normal: h.Normal,
		T:      t,
	}, true
}

// IsInside reports whether p lies strictly on the negative side of the line
func (h *HalfPlane) IsInside(p core.Vec2) bool {
	return p.Subtract(h.Point).Dot(h.Normal) < 0
}

// Validate checks that the normal is a unit vector. NewHalfPlane normalizes;
// literal values must do so themselves.
func (h *HalfPlane) Validate() error {
	if lengthSquared := h.Normal.LengthSquared(); !(math.Abs(lengthSquared-1) <= unitTolerance) {
		return fmt.Errorf("half-plane at %v: %w", h.Point, ErrInvalidNormal)
	}
	return nil
}
