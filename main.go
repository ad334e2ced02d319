package main

import (
	"os"

	"github.com/df07/go-light2d/cmd"
	"github.com/df07/go-light2d/pkg/log"
	"github.com/df07/go-light2d/pkg/renderer"
	"github.com/urfave/cli"
)

var logger = log.New("main")

func newApp() *cli.App {
	defaults := renderer.DefaultConfig()

	app := cli.NewApp()
	app.Name = "light2d"
	app.Usage = "render 2D scenes with emission, reflection, refraction and absorption"
	app.Version = "0.1.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a built-in scene to a png file",
			Description: `
Every pixel integrates the light arriving from all directions using stratified
angular samples. Output is reproducible for a given seed regardless of the
number of workers or the tile size.`,
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "scene, s",
					Value: "basic",
					Usage: "scene to render (see the scenes command)",
				},
				cli.IntFlag{
					Name:  "width",
					Value: defaults.Width,
					Usage: "image width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: defaults.Height,
					Usage: "image height",
				},
				cli.IntFlag{
					Name:  "samples, spp",
					Value: defaults.SamplesPerPixel,
					Usage: "angular samples per pixel",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: defaults.Integrator.MaxDepth,
					Usage: "maximum number of reflection/refraction bounces",
				},
				cli.Uint64Flag{
					Name:  "seed",
					Value: defaults.Seed,
					Usage: "random seed",
				},
				cli.IntFlag{
					Name:  "workers",
					Value: defaults.NumWorkers,
					Usage: "number of parallel workers (0 = number of CPUs)",
				},
				cli.IntFlag{
					Name:  "tile",
					Value: defaults.TileSize,
					Usage: "tile edge length in pixels",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "out.png",
					Usage: "image filename for the rendered frame",
				},
				cli.IntFlag{
					Name:  "preview",
					Value: 0,
					Usage: "also write a downscaled copy fitting in NxN pixels (0 = off)",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "scenes",
			Usage:  "list the built-in scenes",
			Action: cmd.ListScenes,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}
