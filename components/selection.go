package components

import (
	"github.com/automoto/wideworld/picking"
	"github.com/yohamta/donburi"
)

type SelectionData struct {
	Cell  picking.Cell
	Valid bool
}

var Selection = donburi.NewComponentType[SelectionData]()
