package renderer

import (
	"image/color"
	"math"
	"testing"

	"github.com/df07/go-light2d/pkg/core"
)

func TestToRGB8(t *testing.T) {
	tests := []struct {
		name     string
		value    float64
		expected uint8
	}{
		{"black", 0, 0},
		{"white", 1, 255},
		{"half rounds up", 0.5, 128},
		{"one step", 1.0 / 255, 1},
		{"below half a step", 0.001, 0},
		{"overexposed", 10, 255},
		{"negative", -0.3, 0},
		{"NaN", math.NaN(), 0},
		{"infinite", math.Inf(1), 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := ToRGB8(core.Gray(tt.value))
			if r != tt.expected || g != tt.expected || b != tt.expected {
				t.Errorf("Expected %d, got (%d,%d,%d)", tt.expected, r, g, b)
			}
		})
	}
}

func TestToRGB8_ChannelsIndependent(t *testing.T) {
	r, g, b := ToRGB8(core.NewColor(2, 0.2, -1))
	if r != 255 || g != 51 || b != 0 {
		t.Errorf("Expected (255,51,0), got (%d,%d,%d)", r, g, b)
	}
}

func TestRGBASink(t *testing.T) {
	sink := NewRGBASink(3, 2)
	if b := sink.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("Expected 3x2 image, got %v", b)
	}

	sink.SetRGB(2, 1, 10, 20, 30)
	if got := sink.RGBAAt(2, 1); got != (color.RGBA{R: 10, G: 20, B: 30, A: 255}) {
		t.Errorf("Expected opaque (10,20,30), got %v", got)
	}

	var _ ImageSink = sink
}
