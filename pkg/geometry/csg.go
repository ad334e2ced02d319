package geometry

import (
	"fmt"

	"github.com/df07/go-light2d/pkg/core"
)

// maxTrimSteps bounds how many rejected candidate surfaces Intersection and
// Difference step over before giving up on a ray
const maxTrimSteps = 32

// Union is the region covered by either operand
type Union struct {
	A, B Shape
}

// NewUnion creates a new union of two shapes
func NewUnion(a, b Shape) *Union {
	return &Union{A: a, B: b}
}

func (u *Union) shape() {}

// Intersect returns whichever operand hit is closer
func (u *Union) Intersect(ray core.Ray) (Hit, bool) {
	hitA, okA := u.A.Intersect(ray)
	hitB, okB := u.B.Intersect(ray)
	switch {
	case okA && okB:
		if hitB.T < hitA.T {
			return hitB, true
		}
		return hitA, true
	case okA:
		return hitA, true
	default:
		return hitB, okB
	}
}

// IsInside reports whether p is inside either operand
func (u *Union) IsInside(p core.Vec2) bool {
	return u.A.IsInside(p) || u.B.IsInside(p)
}

// Validate validates both operands
func (u *Union) Validate() error {
	return validateOperands("union", u.A, u.B)
}

// Intersection is the region covered by both operands
type Intersection struct {
	A, B Shape
}

// NewIntersection creates a new intersection of two shapes
func NewIntersection(a, b Shape) *Intersection {
	return &Intersection{A: a, B: b}
}

func (n *Intersection) shape() {}

// Intersect accepts a surface point of one operand only if it lies inside (or
// on) the other
func (n *Intersection) Intersect(ray core.Ray) (Hit, bool) {
	return trim(ray, n.A, n.B, func(h Hit, fromA bool, inside containment) (Hit, bool) {
		if fromA {
			return h, inside(n.B, h.Point)
		}
		return h, inside(n.A, h.Point)
	})
}

// IsInside reports whether p is inside both operands
func (n *Intersection) IsInside(p core.Vec2) bool {
	return n.A.IsInside(p) && n.B.IsInside(p)
}

// Validate validates both operands
func (n *Intersection) Validate() error {
	return validateOperands("intersection", n.A, n.B)
}

// Difference is the region covered by A but not by B
type Difference struct {
	A, B Shape
}

// NewDifference creates a new shape subtracting b from a
func NewDifference(a, b Shape) *Difference {
	return &Difference{A: a, B: b}
}

func (d *Difference) shape() {}

// Intersect accepts A's surface outside B and B's surface inside A. B's
// normal is flipped since its inside becomes the outside of the result.
func (d *Difference) Intersect(ray core.Ray) (Hit, bool) {
	return trim(ray, d.A, d.B, func(h Hit, fromA bool, inside containment) (Hit, bool) {
		if fromA {
			return h, !d.B.IsInside(h.Point)
		}
		h.Normal = h.Normal.Negate()
		return h, inside(d.A, h.Point)
	})
}

// IsInside reports whether p is inside A and not inside B
func (d *Difference) IsInside(p core.Vec2) bool {
	return d.A.IsInside(p) && !d.B.IsInside(p)
}

// Validate validates both operands
func (d *Difference) Validate() error {
	return validateOperands("difference", d.A, d.B)
}

// containment decides whether a surface point of one operand counts as inside
// the other
type containment func(s Shape, p core.Vec2) bool

// crossing is one operand's surface hit along the current ray
type crossing struct {
	hit   Hit
	fromA bool
}

// trim walks along the ray through the operands' surface crossings, nearest
// first, and returns the first one accept keeps. Each pass offers both
// operands' hits, first under strict containment and then allowing points
// within Epsilon of the other operand's boundary. T is reported relative to
// the original ray.
func trim(ray core.Ray, a, b Shape, accept func(h Hit, fromA bool, inside containment) (Hit, bool)) (Hit, bool) {
	strict := Shape.IsInside
	onBoundary := func(s Shape, p core.Vec2) bool {
		return insideOrOn(s, p, ray.Direction)
	}

	offset := 0.0
	current := ray

	for step := 0; step < maxTrimSteps; step++ {
		hitA, okA := a.Intersect(current)
		hitB, okB := b.Intersect(current)
		if !okA && !okB {
			return Hit{}, false
		}

		near, far := crossing{hitA, true}, crossing{hitB, false}
		if !okA || (okB && hitB.T < hitA.T) {
			near, far = far, near
		}
		crossings := []crossing{near}
		if okA && okB {
			crossings = append(crossings, far)
		}

		for _, inside := range []containment{strict, onBoundary} {
			for _, c := range crossings {
				if h, ok := accept(c.hit, c.fromA, inside); ok {
					h.T += offset
					return h, true
				}
			}
		}

		// Both rejected: step past the nearer crossing only, the other
		// operand may still cross again before the farther one
		offset += near.hit.T
		current = core.NewRay(near.hit.Point, ray.Direction)
	}

	return Hit{}, false
}

// insideOrOn reports whether p is inside s or within Epsilon of it along dir
func insideOrOn(s Shape, p, dir core.Vec2) bool {
	if s.IsInside(p) {
		return true
	}
	nudge := dir.Normalize().Multiply(Epsilon)
	return s.IsInside(p.Add(nudge)) || s.IsInside(p.Subtract(nudge))
}

func validateOperands(kind string, a, b Shape) error {
	if a == nil || b == nil {
		return fmt.Errorf("%s: %w", kind, ErrMissingOperand)
	}
	if err := a.Validate(); err != nil {
		return fmt.Errorf("%s: %w", kind, err)
	}
	if err := b.Validate(); err != nil {
		return fmt.Errorf("%s: %w", kind, err)
	}
	return nil
}
