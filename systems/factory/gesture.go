package factory

import (
	"github.com/automoto/wideworld/archetypes"
	"github.com/automoto/wideworld/components"
	cfg "github.com/automoto/wideworld/config"
	"github.com/automoto/wideworld/gesture"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGesture spawns the pointer input entity. Handlers are registered on
// the returned recognizer by the caller.
func CreateGesture(ecs *ecs.ECS) (*donburi.Entry, *gesture.Recognizer) {
	entry := archetypes.Gesture.Spawn(ecs)

	r := gesture.NewRecognizer(cfg.Gesture.PinchDebounce)
	components.Gesture.Set(entry, &components.GestureData{
		Recognizer: r,
		LastTouch:  map[ebiten.TouchID][2]int{},
	})
	components.Input.Set(entry, &components.InputData{})
	return entry, r
}
