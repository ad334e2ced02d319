package cmd

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/df07/go-light2d/pkg/renderer"
	"github.com/df07/go-light2d/pkg/scene"
	"github.com/nfnt/resize"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

// Render a preset scene to a png file.
func RenderFrame(ctx *cli.Context) error {
	setupLogging(ctx)

	config := renderer.DefaultConfig()
	config.Width = ctx.Int("width")
	config.Height = ctx.Int("height")
	config.SamplesPerPixel = ctx.Int("samples")
	config.Seed = ctx.Uint64("seed")
	config.TileSize = ctx.Int("tile")
	config.NumWorkers = ctx.Int("workers")
	config.Integrator.MaxDepth = ctx.Int("depth")

	sc, err := scene.Create(ctx.String("scene"))
	if err != nil {
		return err
	}
	logger.Infof("loaded scene %q with %d entities", ctx.String("scene"), sc.Len())

	r, err := renderer.New(sc, config)
	if err != nil {
		return err
	}

	renderCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, stats, err := r.RenderImage(renderCtx)
	if err != nil {
		return err
	}

	out := ctx.String("out")
	if err := writePNG(out, img); err != nil {
		return err
	}
	logger.Noticef("wrote %s", out)

	if size := ctx.Int("preview"); size > 0 {
		preview := resize.Thumbnail(uint(size), uint(size), img, resize.Lanczos3)
		path := previewPath(out)
		if err := writePNG(path, preview); err != nil {
			return err
		}
		logger.Noticef("wrote preview %s (%dx%d)", path, preview.Bounds().Dx(), preview.Bounds().Dy())
	}

	displayRenderStats(ctx.String("scene"), stats, renderer.CalculateAverageLuminance(img))
	return nil
}

func displayRenderStats(name string, stats renderer.RenderStats, displayLuminance float64) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Scene", "Pixels", "Samples/pixel", "Tiles", "Workers", "Mean luminance", "Render time"})
	table.Append([]string{
		name,
		fmt.Sprintf("%d", stats.TotalPixels),
		fmt.Sprintf("%d", stats.SamplesPerPixel),
		fmt.Sprintf("%d", stats.Tiles),
		fmt.Sprintf("%d", stats.Workers),
		fmt.Sprintf("%.4f (%.4f displayed)", stats.AverageLuminance, displayLuminance),
		stats.Duration.String(),
	})
	table.SetFooter([]string{"", "", "", "", "", "TOTAL SAMPLES", fmt.Sprintf("%d", stats.TotalSamples)})

	table.Render()
	logger.Noticef("render statistics\n%s", buf.String())
}

// previewPath turns "dir/out.png" into "dir/out.preview.png"
func previewPath(out string) string {
	ext := filepath.Ext(out)
	return strings.TrimSuffix(out, ext) + ".preview" + ext
}

func writePNG(path string, img image.Image) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return file.Close()
}
