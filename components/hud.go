package components

import (
	"github.com/automoto/wideworld/tilebatch"
	"github.com/yohamta/donburi"
)

type HUDData struct {
	Visible bool
	Stats   tilebatch.Stats
}

var HUD = donburi.NewComponentType[HUDData]()
