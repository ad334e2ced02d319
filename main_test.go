package main

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-light2d/pkg/renderer"
	"github.com/df07/go-light2d/pkg/scene"
)

func TestScenesCommand(t *testing.T) {
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out

	if err := app.Run([]string{"light2d", "scenes"}); err != nil {
		t.Fatalf("scenes: %v", err)
	}

	for _, info := range scene.List() {
		if !strings.Contains(out.String(), info.ID) {
			t.Errorf("Expected listing to contain %q", info.ID)
		}
	}
}

func TestRenderCommand(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expectError error
	}{
		{"basic scene", []string{"--scene", "basic"}, nil},
		{"lens with preview", []string{"--scene", "lens", "--preview", "4"}, nil},
		{"single worker tiny tiles", []string{"--scene", "csg", "--workers", "1", "--tile", "3"}, nil},
		{"unknown scene", []string{"--scene", "nonexistent"}, scene.ErrUnknownScene},
		{"empty scene name", []string{"--scene", ""}, scene.ErrUnknownScene},
		{"zero samples", []string{"--samples", "0"}, renderer.ErrInvalidConfig},
		{"negative depth", []string{"--depth", "-1"}, renderer.ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := filepath.Join(t.TempDir(), "frames", "out.png")
			args := append([]string{"light2d", "render", "--width", "12", "--height", "8", "--samples", "4", "--out", out}, tt.args...)

			err := newApp().Run(args)
			if tt.expectError != nil {
				if !errors.Is(err, tt.expectError) {
					t.Errorf("Expected %v, got %v", tt.expectError, err)
				}
				if _, statErr := os.Stat(out); statErr == nil {
					t.Errorf("Expected no image to be written on error")
				}
				return
			}
			if err != nil {
				t.Fatalf("render: %v", err)
			}

			img := decodePNG(t, out)
			if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 8 {
				t.Errorf("Expected 12x8 image, got %v", b)
			}
		})
	}
}

func TestRenderCommand_Preview(t *testing.T) {
	out := filepath.Join(t.TempDir(), "lens.png")
	args := []string{"light2d", "render", "--scene", "lens", "--width", "16", "--height", "8", "--samples", "2", "--out", out, "--preview", "4"}
	if err := newApp().Run(args); err != nil {
		t.Fatalf("render: %v", err)
	}

	preview := decodePNG(t, filepath.Join(filepath.Dir(out), "lens.preview.png"))
	if b := preview.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Errorf("Expected 4x2 preview keeping the aspect ratio, got %v", b)
	}
}

func decodePNG(t *testing.T, path string) image.Image {
	t.Helper()
	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img
}
