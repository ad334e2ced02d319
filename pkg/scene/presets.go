package scene

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/df07/go-light2d/pkg/core"
	"github.com/df07/go-light2d/pkg/geometry"
	"github.com/df07/go-light2d/pkg/material"
)

// ErrUnknownScene is returned by Create for names that are not registered
var ErrUnknownScene = errors.New("unknown scene")

// Info describes a built-in scene
type Info struct {
	ID          string // Name passed to Create
	DisplayName string
	Description string
	Group       string
}

type preset struct {
	info  Info
	build func() (*Scene, error)
}

// All presets live in the unit square, matching the renderer's pixel mapping.
var presets = map[string]preset{
	"empty": {
		info:  Info{Description: "No entities; every pixel is black", Group: "Basics"},
		build: func() (*Scene, error) { return New() },
	},
	"basic": {
		info:  Info{Description: "A single emissive circle", Group: "Basics"},
		build: NewBasicScene,
	},
	"reflect": {
		info:  Info{Description: "A light among mirror boxes, circles and a hexagon", Group: "Reflection"},
		build: NewReflectScene,
	},
	"lens": {
		info:  Info{Description: "A convex glass lens built from two intersecting circles", Group: "Refraction"},
		build: NewLensScene,
	},
	"prism": {
		info:  Info{Description: "A tinted glass triangle lit from the side", Group: "Refraction"},
		build: NewPrismScene,
	},
	"beer": {
		info:  Info{Description: "Absorbing tinted glass attenuating light with distance", Group: "Refraction"},
		build: NewBeerScene,
	},
	"csg": {
		info:  Info{Description: "Union, intersection and difference shapes over a mirror floor", Group: "Geometry"},
		build: NewCSGScene,
	},
}

// List returns the built-in scenes sorted by group and ID
func List() []Info {
	infos := make([]Info, 0, len(presets))
	for id, p := range presets {
		info := p.info
		info.ID = id
		info.DisplayName = titleCase(id)
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Group != infos[j].Group {
			return infos[i].Group < infos[j].Group
		}
		return infos[i].ID < infos[j].ID
	})
	return infos
}

// Create builds the named scene
func Create(name string) (*Scene, error) {
	p, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	logger.Debugf("creating scene %q", name)
	return p.build()
}

// titleCase converts a string like "my-scene" to "My Scene"
func titleCase(s string) string {
	words := strings.FieldsFunc(s, func(r rune) bool { return r == '-' || r == '_' })
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}
	return strings.Join(words, " ")
}

// NewBasicScene creates a single emissive circle in the middle of the frame
func NewBasicScene() (*Scene, error) {
	return NewBuilder().
		Add(geometry.NewCircle(core.NewVec2(0.5, 0.5), 0.1), material.NewEmissive(core.Gray(2))).
		Build()
}

// NewReflectScene creates a light next to mirror surfaces
func NewReflectScene() (*Scene, error) {
	mirror := material.NewMirror(0.9)
	hexagon, err := geometry.NewRegularPolygon(core.NewVec2(0.2, 0.7), 0.08, 6, 0)
	if err != nil {
		return nil, err
	}
	return NewBuilder().
		Add(geometry.NewCircle(core.NewVec2(0.4, 0.2), 0.1), material.NewEmissive(core.Gray(2))).
		Add(geometry.NewRectangle(core.NewVec2(0.5, 0.8), 0.1, 0.1), mirror).
		Add(geometry.NewCircle(core.NewVec2(0.8, 0.5), 0.1), mirror).
		Add(hexagon, mirror).
		Build()
}

// NewLensScene creates a convex lens between a light and the frame center
func NewLensScene() (*Scene, error) {
	lens := geometry.NewIntersection(
		geometry.NewCircle(core.NewVec2(0.4, 0.5), 0.2),
		geometry.NewCircle(core.NewVec2(0.6, 0.5), 0.2),
	)
	glass := material.Material{Reflectivity: 0.2, Eta: 1.5}
	return NewBuilder().
		Add(geometry.NewCircle(core.NewVec2(0.15, 0.5), 0.05), material.NewEmissive(core.Gray(8))).
		Add(lens, glass).
		Build()
}

// NewPrismScene creates a glass triangle with a light to its side
func NewPrismScene() (*Scene, error) {
	glass := material.Material{Reflectivity: 0.2, Eta: 1.5, Absorption: core.NewColor(0.5, 0.1, 2)}
	return NewBuilder().
		Add(geometry.NewCircle(core.NewVec2(0.15, 0.3), 0.05), material.NewEmissive(core.NewColor(6, 6, 5))).
		AddPolygon(glass,
			core.NewVec2(0.4, 0.7),
			core.NewVec2(0.5, 0.45),
			core.NewVec2(0.6, 0.7),
		).
		Build()
}

// NewBeerScene creates tinted absorbing glass shapes around a light
func NewBeerScene() (*Scene, error) {
	tinted := material.Material{Reflectivity: 0.2, Eta: 1.5, Absorption: core.NewColor(4, 4, 1)}
	return NewBuilder().
		Add(geometry.NewCircle(core.NewVec2(0.5, -0.5), 0.05), material.NewEmissive(core.Gray(20))).
		Add(geometry.NewCircle(core.NewVec2(0.5, 0.5), 0.2), tinted).
		Add(geometry.NewRectangle(core.NewVec2(0.5, 0.85), 0.3, 0.05), tinted).
		Build()
}

// NewCSGScene creates boolean-combined shapes over a mirror floor
func NewCSGScene() (*Scene, error) {
	crescent := geometry.NewDifference(
		geometry.NewCircle(core.NewVec2(0.3, 0.3), 0.12),
		geometry.NewCircle(core.NewVec2(0.36, 0.27), 0.1),
	)
	capsule := geometry.NewUnion(
		geometry.NewUnion(
			geometry.NewCircle(core.NewVec2(0.6, 0.5), 0.06),
			geometry.NewCircle(core.NewVec2(0.8, 0.5), 0.06),
		),
		geometry.NewRectangle(core.NewVec2(0.7, 0.5), 0.1, 0.06),
	)
	slab := geometry.NewIntersection(
		geometry.NewCircle(core.NewVec2(0.35, 0.65), 0.15),
		geometry.NewHalfPlane(core.NewVec2(0, 0.65), core.NewVec2(0, -1)),
	)
	floor := geometry.NewHalfPlane(core.NewVec2(0, 0.9), core.NewVec2(0, -1))

	return NewBuilder().
		Add(crescent, material.NewEmissive(core.NewColor(3, 2, 1))).
		Add(capsule, material.Material{Reflectivity: 0.2, Eta: 1.4}).
		Add(slab, material.Material{Emissive: core.NewColor(0.2, 0.6, 1.5)}).
		Add(floor, material.NewMirror(0.8)).
		Build()
}
