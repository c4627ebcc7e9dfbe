package components

import (
	"github.com/automoto/wideworld/gesture"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// GestureData feeds raw pointers into the recognizer. Positions from the
// previous tick are kept so only actual movement becomes a Move event.
type GestureData struct {
	Recognizer *gesture.Recognizer

	Touches   []ebiten.TouchID
	Pressed   []ebiten.TouchID
	Released  []ebiten.TouchID
	LastTouch map[ebiten.TouchID][2]int

	MouseDown bool
	LastMouse [2]int
}

var Gesture = donburi.NewComponentType[GestureData]()
