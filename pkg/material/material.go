package material

import (
	"errors"
	"fmt"

	"github.com/df07/go-light2d/pkg/core"
)

// ErrInvalidMaterial is returned by Validate for out-of-range parameters
var ErrInvalidMaterial = errors.New("invalid material")

// Material describes how a surface emits and redirects light
type Material struct {
	Emissive     core.Color // Light emitted by the surface
	Reflectivity float64    // Fraction reflected, in [0, 1]; overridden by Fresnel for refractive materials
	Eta          float64    // Refractive index; 0 means opaque
	Absorption   core.Color // Beer-Lambert absorption coefficient per unit distance inside the medium
}

// NewEmissive creates a pure light source
func NewEmissive(emissive core.Color) Material {
	return Material{Emissive: emissive}
}

// NewMirror creates a non-emissive reflector
func NewMirror(reflectivity float64) Material {
	return Material{Reflectivity: reflectivity}
}

// NewDielectric creates a transparent material like glass that can both reflect and refract
func NewDielectric(eta float64, absorption core.Color) Material {
	return Material{Eta: eta, Absorption: absorption}
}

// IsRefractive reports whether light can pass through the material
func (m Material) IsRefractive() bool {
	return m.Eta > 0
}

// Scatters reports whether a hit on this material spawns secondary rays
func (m Material) Scatters() bool {
	return m.Reflectivity > 0 || m.Eta > 0
}

// Validate checks the parameter ranges
func (m Material) Validate() error {
	switch {
	case !(m.Reflectivity >= 0 && m.Reflectivity <= 1):
		return fmt.Errorf("%w: reflectivity %v outside [0,1]", ErrInvalidMaterial, m.Reflectivity)
	case !(m.Eta >= 0):
		return fmt.Errorf("%w: negative eta %v", ErrInvalidMaterial, m.Eta)
	case !nonNegative(m.Emissive):
		return fmt.Errorf("%w: negative emissive %v", ErrInvalidMaterial, m.Emissive)
	case !nonNegative(m.Absorption):
		return fmt.Errorf("%w: negative absorption %v", ErrInvalidMaterial, m.Absorption)
	}
	return nil
}

func nonNegative(c core.Color) bool {
	return c.R >= 0 && c.G >= 0 && c.B >= 0
}
