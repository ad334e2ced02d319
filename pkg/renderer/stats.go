package renderer

import (
	"image"
	"time"

	"github.com/df07/go-light2d/pkg/core"
)

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels      int           // Total number of pixels rendered
	TotalSamples     int           // Total number of angular samples taken
	SamplesPerPixel  int           // Samples taken for every pixel
	Tiles            int           // Number of tiles rendered
	Workers          int           // Number of parallel workers used
	Duration         time.Duration // Wall-clock render time
	AverageLuminance float64       // Mean luminance of the unclamped radiance
	MaxLuminance     float64       // Brightest pixel luminance before clamping
}

// merge folds the counters of a finished tile into s
func (s *RenderStats) merge(tile RenderStats) {
	s.TotalPixels += tile.TotalPixels
	s.TotalSamples += tile.TotalSamples
	s.Tiles += tile.Tiles
}

// measure records the luminance summary of the final radiance buffer
func (s *RenderStats) measure(pixels []core.Color) {
	if len(pixels) == 0 {
		return
	}
	var sum float64
	for _, c := range pixels {
		l := c.Luminance()
		sum += l
		s.MaxLuminance = max(s.MaxLuminance, l)
	}
	s.AverageLuminance = sum / float64(len(pixels))
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of an 8-bit
// image in [0, 1]
func CalculateAverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	count := bounds.Dx() * bounds.Dy()
	if count == 0 {
		return 0
	}

	var sum float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			sum += 0.2126*float64(r)/0xffff + 0.7152*float64(g)/0xffff + 0.0722*float64(b)/0xffff
		}
	}
	return sum / float64(count)
}
