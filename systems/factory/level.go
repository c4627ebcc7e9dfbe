package factory

import (
	"github.com/automoto/wideworld/archetypes"
	"github.com/automoto/wideworld/components"
	cfg "github.com/automoto/wideworld/config"
	"github.com/automoto/wideworld/gpu"
	"github.com/automoto/wideworld/picking"
	"github.com/automoto/wideworld/shared/leveldata"
	"github.com/automoto/wideworld/tilebatch"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity with its picker and tile renderer. A
// nil program leaves the renderer drawing nothing.
func CreateLevel(ecs *ecs.ECS, level *leveldata.Level, cache *leveldata.Cache, program *gpu.Program) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)

	components.Level.Set(entry, &components.LevelData{
		CurrentLevel: level,
		Picker:       picking.New(level, cfg.Render.CellSize),
		Cache:        cache,
		Seed:         cfg.Level.Seed,
	})

	var p tilebatch.Program
	if program != nil {
		p = program
	}
	components.Render.Set(entry, &components.RenderData{
		Renderer: tilebatch.NewRenderer(p, tilebatch.Options{
			CellSize:     cfg.Render.CellSize,
			SpriteAspect: cfg.Render.SpriteAspect,
			BufferCells:  cfg.Render.BufferCells,
			BatchQuads:   cfg.Render.BatchQuads,
		}),
		Program: program,
	})
	return entry
}

// CreateSelection spawns the empty cell selection.
func CreateSelection(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.Selection.Spawn(ecs)
	components.Selection.Set(entry, &components.SelectionData{})
	return entry
}

// CreateHUD spawns the stats overlay.
func CreateHUD(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.HUD.Spawn(ecs)
	components.HUD.Set(entry, &components.HUDData{Visible: cfg.HUD.Enabled})
	return entry
}
