package renderer

import (
	"image"

	"github.com/df07/go-light2d/pkg/core"
	"github.com/df07/go-light2d/pkg/integrator"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier, row-major
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// TileRenderer integrates the pixels of a tile. It holds no mutable state
// and is shared by all workers.
type TileRenderer struct {
	integrator    integrator.Integrator
	width, height int
	samples       int
	seed          uint64
}

// NewTileRenderer creates a tile renderer for an image of the given size
func NewTileRenderer(integratorInst integrator.Integrator, width, height, samples int, seed uint64) *TileRenderer {
	return &TileRenderer{
		integrator: integratorInst,
		width:      width,
		height:     height,
		samples:    samples,
		seed:       seed,
	}
}

// PixelPosition maps pixel (i, j) to normalized scene coordinates (i/W, j/H)
func (tr *TileRenderer) PixelPosition(i, j int) core.Vec2 {
	return core.NewVec2(float64(i)/float64(tr.width), float64(j)/float64(tr.height))
}

// RenderTileBounds renders the pixels inside bounds into the row-major
// pixels buffer of the whole image. Tiles never overlap, so concurrent calls
// on distinct tiles write disjoint entries.
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle, pixels []core.Color) RenderStats {
	stats := RenderStats{
		TotalPixels:     bounds.Dx() * bounds.Dy(),
		SamplesPerPixel: tr.samples,
		Tiles:           1,
	}

	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			sampler := core.NewPixelSampler(tr.seed, i, j)
			pixels[j*tr.width+i] = integrator.SamplePixel(tr.integrator, tr.PixelPosition(i, j), tr.samples, sampler)
		}
	}

	stats.TotalSamples = stats.TotalPixels * tr.samples
	return stats
}
