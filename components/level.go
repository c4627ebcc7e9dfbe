package components

import (
	"github.com/automoto/wideworld/picking"
	"github.com/automoto/wideworld/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
	Picker       *picking.Picker
	// Cache holds generated levels; nil when the cache could not be built
	Cache *leveldata.Cache
	Seed  uint64
}

var Level = donburi.NewComponentType[LevelData]()
