package integrator

import (
	"errors"
	"fmt"

	"github.com/df07/go-light2d/pkg/core"
	"github.com/df07/go-light2d/pkg/scene"
)

// ErrInvalidConfig is returned by Config.Validate
var ErrInvalidConfig = errors.New("invalid integrator config")

// Config controls the recursion of the tracer
type Config struct {
	MaxDepth int     // Number of secondary bounces allowed after the primary hit
	Bias     float64 // Offset applied to secondary ray origins along the oriented normal
}

// DefaultConfig returns the standard tracing limits
func DefaultConfig() Config {
	return Config{
		MaxDepth: 3,
		Bias:     1e-4,
	}
}

// Validate checks the config ranges
func (c Config) Validate() error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("%w: negative max depth %d", ErrInvalidConfig, c.MaxDepth)
	}
	if !(c.Bias > 0) {
		return fmt.Errorf("%w: bias %v must be positive", ErrInvalidConfig, c.Bias)
	}
	return nil
}

// Scene is the query the tracer needs from a scene
type Scene interface {
	Intersect(ray core.Ray) (scene.HitRecord, bool)
}

// Integrator computes the radiance arriving along a ray
type Integrator interface {
	// Trace returns the radiance along ray; depth is the number of bounces
	// already taken to reach this ray.
	Trace(ray core.Ray, depth int) core.Color
}
