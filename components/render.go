package components

import (
	"github.com/automoto/wideworld/gpu"
	"github.com/automoto/wideworld/tilebatch"
	"github.com/yohamta/donburi"
)

type RenderData struct {
	Renderer *tilebatch.Renderer
	// Program is nil when the shader failed to build; Renderer is then a no-op
	Program *gpu.Program
}

var Render = donburi.NewComponentType[RenderData]()
