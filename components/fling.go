package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FlingData glides the camera after a fast pan. Progress runs 0..1 over the
// tween; each tick pans by the progress gained times the total distance.
type FlingData struct {
	Tween    *gween.Tween
	DX, DY   float64
	Progress float64
}

func (f *FlingData) Active() bool {
	return f.Tween != nil
}

func (f *FlingData) Stop() {
	f.Tween = nil
	f.Progress = 0
}

var Fling = donburi.NewComponentType[FlingData]()
