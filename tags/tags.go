package tags

import "github.com/yohamta/donburi"

var (
	Camera    = donburi.NewTag().SetName("Camera")
	Level     = donburi.NewTag().SetName("Level")
	Gesture   = donburi.NewTag().SetName("Gesture")
	Selection = donburi.NewTag().SetName("Selection")
	HUD       = donburi.NewTag().SetName("HUD")
)

// Resolv tags for the picking space
const (
	ResolvTile  = "tile"
	ResolvProbe = "probe"
)
