package gamemath

import (
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= eps*math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
}

func TestIsoInverseLaw(t *testing.T) {
	points := []dmath.Vec2{
		{X: 0, Y: 0},
		{X: 1, Y: 0},
		{X: 0, Y: 1},
		{X: -37.5, Y: 12.25},
		{X: 2048, Y: 1024},
		{X: -1e6, Y: 3e5},
		{X: 0.1, Y: -0.3},
	}
	for _, p := range points {
		back := To2D(ToIso(p))
		if !near(back.X, p.X) || !near(back.Y, p.Y) {
			t.Errorf("To2D(ToIso(%v)) = %v", p, back)
		}
		fwd := ToIso(To2D(p))
		if !near(fwd.X, p.X) || !near(fwd.Y, p.Y) {
			t.Errorf("ToIso(To2D(%v)) = %v", p, fwd)
		}
	}
}

func TestToIso(t *testing.T) {
	tests := []struct {
		name string
		in   dmath.Vec2
		want dmath.Vec2
	}{
		{"origin", dmath.Vec2{}, dmath.Vec2{}},
		{"x axis", dmath.Vec2{X: 32}, dmath.Vec2{X: 32, Y: 16}},
		{"y axis", dmath.Vec2{Y: 32}, dmath.Vec2{X: -32, Y: 16}},
		{"diagonal", dmath.Vec2{X: 32, Y: 32}, dmath.Vec2{X: 0, Y: 32}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToIso(tt.in)
			if !near(got.X, tt.want.X) || !near(got.Y, tt.want.Y) {
				t.Errorf("ToIso(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCellToIso(t *testing.T) {
	got := CellToIso(2, 3, 32)
	want := ToIso(dmath.Vec2{X: 96, Y: 64})
	if got != want {
		t.Errorf("CellToIso(2, 3, 32) = %v, want %v", got, want)
	}
}
