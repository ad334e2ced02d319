package geometry

import (
	"math/rand/v2"
	"testing"

	"github.com/df07/go-light2d/pkg/core"
	"gonum.org/v1/gonum/floats/scalar"
)

const tolerance = 1e-9

// samplePoints returns deterministic points spread over [-lim, lim]²
func samplePoints(n int, lim float64) []core.Vec2 {
	random := rand.New(rand.NewPCG(1, 2))
	points := make([]core.Vec2, n)
	for i := range points {
		points[i] = core.NewVec2((2*random.Float64()-1)*lim, (2*random.Float64()-1)*lim)
	}
	return points
}

// sampleRays returns deterministic rays with unit directions starting in [-lim, lim]²
func sampleRays(n int, lim float64) []core.Ray {
	random := rand.New(rand.NewPCG(3, 4))
	rays := make([]core.Ray, n)
	for i := range rays {
		origin := core.NewVec2((2*random.Float64()-1)*lim, (2*random.Float64()-1)*lim)
		rays[i] = core.NewRay(origin, core.FromAngle(random.Float64()*6.283185307179586))
	}
	return rays
}

func assertVec(t *testing.T, label string, got, want core.Vec2) {
	t.Helper()
	if !scalar.EqualWithinAbs(got.X, want.X, tolerance) || !scalar.EqualWithinAbs(got.Y, want.Y, tolerance) {
		t.Errorf("%s: expected %v, got %v", label, want, got)
	}
}

func assertUnitNormal(t *testing.T, h Hit) {
	t.Helper()
	if !scalar.EqualWithinAbs(h.Normal.Length(), 1, tolerance) {
		t.Errorf("normal %v at %v is not unit length (%v)", h.Normal, h.Point, h.Normal.Length())
	}
}
