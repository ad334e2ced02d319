package material

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-light2d/pkg/core"
	"gonum.org/v1/gonum/floats/scalar"
)

const tolerance = 1e-12

func TestReflect(t *testing.T) {
	tests := []struct {
		name     string
		d, n     core.Vec2
		expected core.Vec2
	}{
		{"head on", core.NewVec2(0, -1), core.NewVec2(0, 1), core.NewVec2(0, 1)},
		{"45 degrees", core.NewVec2(1, -1).Normalize(), core.NewVec2(0, 1), core.NewVec2(1, 1).Normalize()},
		{"normal facing away", core.NewVec2(1, -1).Normalize(), core.NewVec2(0, -1), core.NewVec2(1, 1).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflect(tt.d, tt.n)
			if got.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestRefract_NormalIncidencePassesStraight(t *testing.T) {
	d := core.NewVec2(1, 0)
	n := core.NewVec2(-1, 0)
	for _, eta := range []float64{1.0 / 1.5, 1.5, 1} {
		got, ok := Refract(d, n, eta)
		if !ok {
			t.Fatalf("eta=%v: unexpected total internal reflection", eta)
		}
		if got.Subtract(d).Length() > tolerance {
			t.Errorf("eta=%v: expected %v, got %v", eta, d, got)
		}
	}
}

func TestRefract_SnellsLaw(t *testing.T) {
	n := core.NewVec2(0, 1)
	d := core.NewVec2(1, -1).Normalize() // 45° incoming from above
	eta := 1.0 / 1.5

	got, ok := Refract(d, n, eta)
	if !ok {
		t.Fatal("unexpected total internal reflection")
	}
	if !scalar.EqualWithinAbs(got.Length(), 1, 1e-12) {
		t.Errorf("refracted direction not unit length: %v", got.Length())
	}

	sinI := math.Abs(d.Cross(n))
	sinT := math.Abs(got.Cross(n))
	if !scalar.EqualWithinAbs(sinT, eta*sinI, 1e-12) {
		t.Errorf("Snell's law violated: sinT=%v, eta*sinI=%v", sinT, eta*sinI)
	}
	// Bends toward the normal and keeps travelling downward
	if got.Y >= 0 || sinT >= sinI {
		t.Errorf("expected refraction toward the normal, got %v", got)
	}
}

func TestRefract_TotalInternalReflection(t *testing.T) {
	// Leaving glass at a shallow angle
	d := core.NewVec2(1, 0.1).Normalize()
	n := core.NewVec2(0, -1)

	if got, ok := Refract(d, n, 1.5); ok {
		t.Errorf("expected total internal reflection, got %v", got)
	}
}

func TestSchlick(t *testing.T) {
	// Normal incidence, air to glass: r0 = (0.5/2.5)² = 0.04
	r0 := Schlick(1, 1, 1, 1.5)
	if !scalar.EqualWithinAbs(r0, 0.04, tolerance) {
		t.Errorf("Normal incidence reflectance = %.6f, expected 0.04", r0)
	}

	// Symmetric in the index pair at normal incidence
	if r := Schlick(1, 1, 1.5, 1); !scalar.EqualWithinAbs(r, 0.04, tolerance) {
		t.Errorf("Glass to air normal incidence = %.6f, expected 0.04", r)
	}

	// Entering a denser medium uses the incident angle
	grazing := Schlick(0, 0.7, 1, 1.5)
	if !scalar.EqualWithinAbs(grazing, 1, tolerance) {
		t.Errorf("Grazing incidence reflectance = %.6f, expected 1", grazing)
	}

	// Leaving the dense medium uses the transmitted angle
	if got, want := Schlick(0.9, 0.5, 1.5, 1), 0.04+0.96*math.Pow(0.5, 5); !scalar.EqualWithinAbs(got, want, tolerance) {
		t.Errorf("Glass to air reflectance = %.6f, expected %.6f", got, want)
	}

	// Monotonic in angle and always in [0,1]
	prev := -1.0
	for cos := 1.0; cos >= 0; cos -= 0.05 {
		r := Schlick(cos, cos, 1, 1.5)
		if r < 0 || r > 1 {
			t.Fatalf("reflectance %v outside [0,1] at cos=%v", r, cos)
		}
		if r < prev {
			t.Fatalf("reflectance decreased at cos=%v: %v < %v", cos, r, prev)
		}
		prev = r
	}
}

func TestBeerLambert(t *testing.T) {
	// No absorption transmits everything
	for _, dist := range []float64{0, 0.5, 10, 1e6} {
		if got := BeerLambert(core.Color{}, dist); got != core.Gray(1) {
			t.Errorf("distance %v: expected (1,1,1), got %v", dist, got)
		}
	}

	// Zero distance transmits everything
	if got := BeerLambert(core.NewColor(4, 1, 0.5), 0); got != core.Gray(1) {
		t.Errorf("expected (1,1,1) at zero distance, got %v", got)
	}

	// Strictly decreasing in distance for absorbing channels only
	a := core.NewColor(4, 0, 0.25)
	prev := BeerLambert(a, 0)
	for d := 0.1; d <= 2; d += 0.1 {
		cur := BeerLambert(a, d)
		if !(cur.R < prev.R) || !(cur.B < prev.B) {
			t.Errorf("transmittance did not decrease at d=%v: %v -> %v", d, prev, cur)
		}
		if cur.G != 1 {
			t.Errorf("non-absorbing channel attenuated: %v", cur.G)
		}
		prev = cur
	}

	if got := BeerLambert(a, 2); !scalar.EqualWithinAbs(got.R, math.Exp(-8), tolerance) {
		t.Errorf("expected exp(-8), got %v", got.R)
	}
}

func TestMaterial_Validate(t *testing.T) {
	tests := []struct {
		name    string
		m       Material
		wantErr bool
	}{
		{"emissive", NewEmissive(core.Gray(10)), false},
		{"mirror", NewMirror(0.9), false},
		{"glass", NewDielectric(1.5, core.Gray(4)), false},
		{"reflectivity above one", NewMirror(1.1), true},
		{"negative eta", Material{Eta: -1}, true},
		{"negative emissive", NewEmissive(core.NewColor(-1, 0, 0)), true},
		{"negative absorption", NewDielectric(1.5, core.NewColor(0, -1, 0)), true},
		{"nan reflectivity", NewMirror(math.NaN()), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidMaterial) {
				t.Errorf("expected ErrInvalidMaterial, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
