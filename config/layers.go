package config

import "github.com/yohamta/donburi/ecs"

// Render layers, drawn in ascending order
const (
	LayerTiles ecs.LayerID = iota
	LayerSelection
	LayerHUD
)

// Default is the layer entities are created on.
const Default = LayerTiles
