package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-light2d/pkg/core"
	"github.com/df07/go-light2d/pkg/integrator"
	"github.com/df07/go-light2d/pkg/log"
)

var logger = log.New("renderer")

// Renderer drives the tile-parallel pixel loop over an immutable scene
type Renderer struct {
	config Config
	tracer integrator.Integrator
}

// New validates the config and prepares a renderer for the scene
func New(s integrator.Scene, config Config) (*Renderer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Renderer{
		config: config,
		tracer: integrator.NewTracer(s, config.Integrator),
	}, nil
}

// Render integrates every pixel and writes it to sink in row-major order.
// The result depends only on the scene and config, never on the worker count
// or tile size. Cancelling ctx stops the render between tiles; nothing is
// written to sink in that case.
func (r *Renderer) Render(ctx context.Context, sink ImageSink) (RenderStats, error) {
	pixels, stats, err := r.RenderRadiance(ctx)
	if err != nil {
		return stats, err
	}

	for j := 0; j < r.config.Height; j++ {
		for i := 0; i < r.config.Width; i++ {
			red, green, blue := ToRGB8(pixels[j*r.config.Width+i])
			sink.SetRGB(i, j, red, green, blue)
		}
	}
	return stats, nil
}

// RenderImage renders into a newly allocated image
func (r *Renderer) RenderImage(ctx context.Context) (*image.RGBA, RenderStats, error) {
	sink := NewRGBASink(r.config.Width, r.config.Height)
	stats, err := r.Render(ctx, sink)
	if err != nil {
		return nil, stats, err
	}
	return sink.RGBA, stats, nil
}

// RenderRadiance returns the unclamped per-pixel radiance in row-major order
func (r *Renderer) RenderRadiance(ctx context.Context) ([]core.Color, RenderStats, error) {
	startTime := time.Now()

	tiles := NewTileGrid(r.config.Width, r.config.Height, r.config.TileSize)
	numWorkers := r.config.workers(len(tiles))
	pixels := make([]core.Color, r.config.Width*r.config.Height)

	tileRenderer := NewTileRenderer(r.tracer, r.config.Width, r.config.Height, r.config.SamplesPerPixel, r.config.Seed)
	workerPool := NewWorkerPool(tileRenderer, len(tiles), numWorkers)

	logger.Infof("Rendering %dx%d at %d samples/pixel, max depth %d (%d tiles, %d workers)",
		r.config.Width, r.config.Height, r.config.SamplesPerPixel, r.config.Integrator.MaxDepth, len(tiles), numWorkers)

	workerPool.Start(ctx)
	for taskID, tile := range tiles {
		workerPool.SubmitTask(TileTask{Tile: tile, TaskID: taskID, Pixels: pixels})
	}

	stats := RenderStats{SamplesPerPixel: r.config.SamplesPerPixel, Workers: numWorkers}
	var firstErr error
	for range tiles {
		result, ok := workerPool.GetResult()
		if !ok {
			firstErr = fmt.Errorf("worker pool closed unexpectedly")
			break
		}
		if result.Error != nil {
			if firstErr == nil {
				firstErr = result.Error
			}
			continue
		}
		stats.merge(result.Stats)
		logger.Debugf("Tile %d/%d done by worker %d", stats.Tiles, len(tiles), result.WorkerID)
	}
	workerPool.Stop()

	stats.Duration = time.Since(startTime)
	if firstErr != nil {
		logger.Warningf("Render stopped after %d of %d tiles: %v", stats.Tiles, len(tiles), firstErr)
		return nil, stats, firstErr
	}

	stats.measure(pixels)
	logger.Infof("Render completed in %v", stats.Duration)
	return pixels, stats, nil
}
