package renderer

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/df07/go-light2d/pkg/integrator"
)

// ErrInvalidConfig is returned by Config.Validate
var ErrInvalidConfig = errors.New("invalid render config")

// Config contains the image and scheduling parameters of a render
type Config struct {
	Width           int    // Image width in pixels
	Height          int    // Image height in pixels
	SamplesPerPixel int    // Stratified angular samples per pixel
	Seed            uint64 // Base seed for the per-pixel random streams
	TileSize        int    // Edge length of a square work tile
	NumWorkers      int    // Number of parallel workers (0 = use CPU count)

	Integrator integrator.Config
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:           512,
		Height:          512,
		SamplesPerPixel: 64,
		Seed:            42,
		TileSize:        64,
		NumWorkers:      0,
		Integrator:      integrator.DefaultConfig(),
	}
}

// Validate checks the config ranges
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: image size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: %d samples per pixel", ErrInvalidConfig, c.SamplesPerPixel)
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d", ErrInvalidConfig, c.TileSize)
	case c.NumWorkers < 0:
		return fmt.Errorf("%w: %d workers", ErrInvalidConfig, c.NumWorkers)
	}
	if err := c.Integrator.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// workers resolves the worker count, never exceeding the number of tiles
func (c Config) workers(numTiles int) int {
	n := c.NumWorkers
	if n <= 0 {
		n = runtime.NumCPU()
	}
	return max(1, min(n, numTiles))
}
