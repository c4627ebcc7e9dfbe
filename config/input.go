package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical viewer action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionScrollLeft
	ActionScrollRight
	ActionScrollUp
	ActionScrollDown
	ActionZoomIn
	ActionZoomOut
	ActionRegenerate
	ActionToggleHUD
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionScrollLeft:  {Keys: []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}},
			ActionScrollRight: {Keys: []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}},
			ActionScrollUp:    {Keys: []ebiten.Key{ebiten.KeyArrowUp}},
			ActionScrollDown:  {Keys: []ebiten.Key{ebiten.KeyArrowDown}},
			ActionZoomIn:      {Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyEqual}},
			ActionZoomOut:     {Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyMinus}},
			ActionRegenerate:  {Keys: []ebiten.Key{ebiten.KeyN}},
			ActionToggleHUD:   {Keys: []ebiten.Key{ebiten.KeyF3, ebiten.KeyH}},
		},
	}
}
