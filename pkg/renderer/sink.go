package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-light2d/pkg/core"
)

// ImageSink receives one 8-bit RGB write per pixel
type ImageSink interface {
	SetRGB(x, y int, r, g, b uint8)
}

// RGBASink writes pixels into an opaque *image.RGBA
type RGBASink struct {
	*image.RGBA
}

// NewRGBASink allocates a width x height image
func NewRGBASink(width, height int) *RGBASink {
	return &RGBASink{RGBA: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// SetRGB implements ImageSink
func (s *RGBASink) SetRGB(x, y int, r, g, b uint8) {
	s.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
}

// ToRGB8 converts radiance to display bytes by clamping round(c*255) into
// [0,255]. No tone mapping or gamma is applied.
func ToRGB8(c core.Color) (r, g, b uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B)
}

func toByte(v float64) uint8 {
	x := math.Round(v * 255)
	if !(x > 0) {
		return 0
	}
	if x >= 255 {
		return 255
	}
	return uint8(x)
}
