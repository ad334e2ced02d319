package scene

import (
	"fmt"
	"math"

	"github.com/df07/go-light2d/pkg/core"
	"github.com/df07/go-light2d/pkg/geometry"
	"github.com/df07/go-light2d/pkg/log"
	"github.com/df07/go-light2d/pkg/material"
)

var logger = log.New("scene")

// Entity binds a shape to the material of its surface and interior
type Entity struct {
	Shape    geometry.Shape
	Material material.Material
}

// HitRecord is the nearest hit in a scene with the owning entity's material
// merged in
type HitRecord struct {
	geometry.Hit
	material.Material
	Distance float64 // Euclidean distance from the ray origin to the hit point
}

// Scene is an immutable collection of entities
type Scene struct {
	entities []Entity
}

// New validates the entities and freezes them into a scene. Configuration
// errors are reported here, before any ray is traced.
func New(entities ...Entity) (*Scene, error) {
	for i, e := range entities {
		if e.Shape == nil {
			return nil, fmt.Errorf("entity %d: %w", i, geometry.ErrMissingOperand)
		}
		if err := e.Shape.Validate(); err != nil {
			return nil, fmt.Errorf("entity %d: %w", i, err)
		}
		if err := e.Material.Validate(); err != nil {
			return nil, fmt.Errorf("entity %d: %w", i, err)
		}
	}

	logger.Debugf("built scene with %d entities", len(entities))
	return &Scene{entities: append([]Entity(nil), entities...)}, nil
}

// Len returns the number of entities
func (s *Scene) Len() int {
	return len(s.entities)
}

// Entities returns a copy of the scene's entities in insertion order
func (s *Scene) Entities() []Entity {
	return append([]Entity(nil), s.entities...)
}

// Intersect finds the hit closest to the ray origin across all entities
func (s *Scene) Intersect(ray core.Ray) (HitRecord, bool) {
	var closest HitRecord
	found := false
	closestSoFar := math.Inf(1)

	for _, e := range s.entities {
		hit, ok := e.Shape.Intersect(ray)
		if !ok {
			continue
		}
		distance := hit.Point.Subtract(ray.Origin).Length()
		if distance < closestSoFar {
			closestSoFar = distance
			closest = HitRecord{Hit: hit, Material: e.Material, Distance: distance}
			found = true
		}
	}

	return closest, found
}

// Builder collects entities and reports the first configuration error on Build
type Builder struct {
	entities []Entity
	err      error
}

// NewBuilder creates an empty builder
func NewBuilder() *Builder {
	return &Builder{}
}

// Add appends an entity
func (b *Builder) Add(shape geometry.Shape, m material.Material) *Builder {
	b.entities = append(b.entities, Entity{Shape: shape, Material: m})
	return b
}

// AddPolygon builds a polygon from vertices and appends it. A degenerate
// polygon is recorded and returned by Build.
func (b *Builder) AddPolygon(m material.Material, vertices ...core.Vec2) *Builder {
	p, err := geometry.NewPolygon(vertices...)
	if err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("entity %d: %w", len(b.entities), err)
		}
		return b
	}
	return b.Add(p, m)
}

// Build validates everything added so far and returns the scene
func (b *Builder) Build() (*Scene, error) {
	if b.err != nil {
		return nil, b.err
	}
	return New(b.entities...)
}
