package core

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestVec2_Arithmetic(t *testing.T) {
	a := NewVec2(1, 2)
	b := NewVec2(3, -1)

	if got := a.Add(b); got != NewVec2(4, 1) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Subtract(b); got != NewVec2(-2, 3) {
		t.Errorf("Subtract: got %v", got)
	}
	if got := a.Multiply(2); got != NewVec2(2, 4) {
		t.Errorf("Multiply: got %v", got)
	}
	if got := a.Dot(b); got != 1 {
		t.Errorf("Dot: got %v", got)
	}
	if got := a.Cross(b); got != -7 {
		t.Errorf("Cross: got %v", got)
	}
	if got := NewVec2(3, 4).Length(); got != 5 {
		t.Errorf("Length: got %v", got)
	}
}

func TestVec2_Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec2
	}{
		{"axis", NewVec2(0, 7)},
		{"diagonal", NewVec2(-3, 3)},
		{"tiny", NewVec2(1e-12, 2e-12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.v.Normalize()
			if !scalar.EqualWithinAbs(n.Length(), 1, 1e-12) {
				t.Errorf("expected unit length, got %v", n.Length())
			}
			if n.Cross(tt.v) > 1e-12 {
				t.Errorf("direction changed: %v -> %v", tt.v, n)
			}
		})
	}

	if got := (Vec2{}).Normalize(); got != (Vec2{}) {
		t.Errorf("zero vector should normalize to zero, got %v", got)
	}
}

func TestVec2_PerpPointsOutOfCounterClockwiseEdge(t *testing.T) {
	// Edge along +x of a CCW square: interior is above, outward is -y
	edge := NewVec2(1, 0)
	if got := edge.Perp(); got != NewVec2(0, -1) {
		t.Errorf("expected (0,-1), got %v", got)
	}
}

func TestFromAngle(t *testing.T) {
	d := FromAngle(math.Pi / 2)
	if !scalar.EqualWithinAbs(d.X, 0, 1e-12) || !scalar.EqualWithinAbs(d.Y, 1, 1e-12) {
		t.Errorf("expected (0,1), got %v", d)
	}
}

func TestRay_At(t *testing.T) {
	r := NewRay(NewVec2(1, 1), NewVec2(2, 0))
	if got := r.At(1.5); got != NewVec2(4, 1) {
		t.Errorf("expected (4,1), got %v", got)
	}
}

func TestColor_Operations(t *testing.T) {
	a := NewColor(1, 2, 3)
	b := NewColor(0.5, 0, 2)

	if got := a.Add(b); got != NewColor(1.5, 2, 5) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.MultiplyColor(b); got != NewColor(0.5, 0, 6) {
		t.Errorf("MultiplyColor: got %v", got)
	}
	if got := a.Multiply(2); got != NewColor(2, 4, 6) {
		t.Errorf("Multiply: got %v", got)
	}
	if got := a.Divide(2); got != NewColor(0.5, 1, 1.5) {
		t.Errorf("Divide: got %v", got)
	}
	if !Black.IsBlack() || a.IsBlack() {
		t.Error("IsBlack mismatch")
	}
}
