package geometry

import (
	"fmt"
	"math"

	"github.com/df07/go-light2d/pkg/core"
)

// Polygon represents a convex polygon. Vertices must be wound counter-clockwise;
// convexity and winding are not checked.
type Polygon struct {
	Vertices []core.Vec2
}

// NewPolygon creates a new polygon, returning ErrDegeneratePolygon for fewer than 2 vertices
func NewPolygon(vertices ...core.Vec2) (*Polygon, error) {
	p := &Polygon{Vertices: append([]core.Vec2(nil), vertices...)}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// MustPolygon is like NewPolygon but panics on error. Intended for fixed
// scene presets and tests.
func MustPolygon(vertices ...core.Vec2) *Polygon {
	p, err := NewPolygon(vertices...)
	if err != nil {
		panic(err)
	}
	return p
}

// NewRectangle creates an axis-aligned rectangle polygon from its center and half extents
func NewRectangle(center core.Vec2, halfWidth, halfHeight float64) *Polygon {
	return &Polygon{Vertices: []core.Vec2{
		core.NewVec2(center.X-halfWidth, center.Y-halfHeight),
		core.NewVec2(center.X+halfWidth, center.Y-halfHeight),
		core.NewVec2(center.X+halfWidth, center.Y+halfHeight),
		core.NewVec2(center.X-halfWidth, center.Y+halfHeight),
	}}
}

// NewRegularPolygon creates a regular n-gon with counter-clockwise winding
func NewRegularPolygon(center core.Vec2, radius float64, sides int, rotation float64) (*Polygon, error) {
	vertices := make([]core.Vec2, 0, sides)
	for i := 0; i < sides; i++ {
		theta := rotation + 2*math.Pi*float64(i)/float64(sides)
		vertices = append(vertices, center.Add(core.FromAngle(theta).Multiply(radius)))
	}
	return NewPolygon(vertices...)
}

func (p *Polygon) shape() {}

// edge returns the oriented edge starting at vertex i
func (p *Polygon) edge(i int) (a, b core.Vec2) {
	return p.Vertices[i], p.Vertices[(i+1)%len(p.Vertices)]
}

// Intersect finds the closest edge crossing along the ray. An edge is a
// candidate only when its endpoints lie on opposite sides of the ray's line;
// a crossing exactly at a shared vertex is reported once.
func (p *Polygon) Intersect(ray core.Ray) (Hit, bool) {
	var closest Hit
	found := false
	closestSoFar := math.Inf(1)

	for i := range p.Vertices {
		a, b := p.edge(i)
		e := b.Subtract(a)
		if e.LengthSquared() < Epsilon*Epsilon {
			continue
		}

		// Which side of the ray's line each endpoint is on
		sa := ray.Direction.Cross(a.Subtract(ray.Origin))
		sb := ray.Direction.Cross(b.Subtract(ray.Origin))
		if (sa > 0 && sb > 0) || (sa < 0 && sb < 0) {
			continue
		}

		denominator := ray.Direction.Cross(e)
		if math.Abs(denominator) < Epsilon {
			continue
		}

		t := a.Subtract(ray.Origin).Cross(e) / denominator
		if t <= Epsilon || t >= closestSoFar {
			continue
		}

		closestSoFar = t
		closest = Hit{
			Point:  ray.At(t),
			Normal: e.Perp().Normalize(),
			T:      t,
		}
		found = true
	}

	return closest, found
}

// IsInside reports whether q is strictly to the left of every edge
func (p *Polygon) IsInside(q core.Vec2) bool {
	for i := range p.Vertices {
		a, b := p.edge(i)
		e := b.Subtract(a)
		if e.LengthSquared() < Epsilon*Epsilon {
			continue
		}
		if e.Cross(q.Subtract(a)) <= 0 {
			return false
		}
	}
	return true
}

// Validate checks the vertex count
func (p *Polygon) Validate() error {
	if len(p.Vertices) < 2 {
		return fmt.Errorf("polygon with %d vertices: %w", len(p.Vertices), ErrDegeneratePolygon)
	}
	return nil
}
