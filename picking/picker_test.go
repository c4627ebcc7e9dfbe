package picking

import (
	"testing"

	"github.com/automoto/wideworld/shared/leveldata"
	dmath "github.com/yohamta/donburi/features/math"
)

const cell = 32.0

func faceCenter(c Cell, height byte) dmath.Vec2 {
	f := TopFace(c, height, cell)
	return dmath.Vec2{X: f[0].X, Y: (f[0].Y + f[2].Y) / 2}
}

func TestPickFlat(t *testing.T) {
	lvl := leveldata.NewLevel("flat", 6, 5)
	p := New(lvl, cell)

	for row := 0; row < lvl.Rows; row++ {
		for col := 0; col < lvl.Cols; col++ {
			want := Cell{Row: row, Col: col}
			got, ok := p.Pick(faceCenter(want, 0))
			if !ok || got != want {
				t.Errorf("Pick(center of %v) = %v, %v", want, got, ok)
			}
		}
	}
}

func TestPickOutside(t *testing.T) {
	lvl := leveldata.NewLevel("flat", 4, 4)
	p := New(lvl, cell)

	outside := []dmath.Vec2{
		faceCenter(Cell{Row: -1, Col: 0}, 0),
		faceCenter(Cell{Row: 0, Col: 4}, 0),
		faceCenter(Cell{Row: 9, Col: 9}, 0),
		{X: -5000, Y: -5000},
	}
	for _, w := range outside {
		if c, ok := p.Pick(w); ok {
			t.Errorf("Pick(%v) = %v, want miss", w, c)
		}
	}
}

func TestPickRaisedCell(t *testing.T) {
	lvl := leveldata.NewLevel("hill", 4, 4)
	lvl.Heights[lvl.Index(1, 1)] = 2
	p := New(lvl, cell)

	want := Cell{Row: 1, Col: 1}
	got, ok := p.Pick(faceCenter(want, 2))
	if !ok || got != want {
		t.Errorf("Pick(raised face) = %v, %v; want %v", got, ok, want)
	}

	// Flat cells away from the hill are unaffected.
	got, ok = p.Pick(faceCenter(Cell{Row: 2, Col: 3}, 0))
	if !ok || got != (Cell{Row: 2, Col: 3}) {
		t.Errorf("Pick(flat) = %v, %v", got, ok)
	}
}

func TestTopFace(t *testing.T) {
	f := TopFace(Cell{Row: 0, Col: 0}, 1, cell)
	want := [4]dmath.Vec2{
		{X: 32, Y: -16},
		{X: 64, Y: 0},
		{X: 32, Y: 16},
		{X: 0, Y: 0},
	}
	if f != want {
		t.Errorf("TopFace = %v, want %v", f, want)
	}
}
