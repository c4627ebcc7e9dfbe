package systems

import (
	"github.com/automoto/wideworld/components"
	cfg "github.com/automoto/wideworld/config"
	"github.com/automoto/wideworld/picking"
	"github.com/automoto/wideworld/shared/leveldata"
	"github.com/automoto/wideworld/systems/factory"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLevel generates a new level from the next seed when the regenerate
// action is pressed.
func UpdateLevel(e *ecs.ECS) {
	input := getOrCreateInput(e)
	if !input.JustPressed(cfg.ActionRegenerate) {
		return
	}

	entry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(entry)
	levelData.Seed++
	SetLevel(e, GenerateLevel(levelData.Cache, cfg.Level.Rows, cfg.Level.Cols, levelData.Seed))
}

// GenerateLevel returns the generated level for seed, through the cache when
// there is one.
func GenerateLevel(cache *leveldata.Cache, rows, cols int, seed uint64) *leveldata.Level {
	if cache != nil {
		return cache.Generate(rows, cols, seed)
	}
	return leveldata.Generate(rows, cols, seed)
}

// SetLevel swaps the displayed level, clears the selection and moves the
// camera to the middle of the new map.
func SetLevel(e *ecs.ECS, level *leveldata.Level) {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(entry)
	levelData.CurrentLevel = level
	levelData.Picker = picking.New(level, cfg.Render.CellSize)

	getOrCreateSelection(e).Valid = false

	if cam, fling, ok := cameraAndFling(e); ok {
		fling.Stop()
		center := factory.LevelCenter(level, cfg.Render.CellSize)
		cam.View.MoveTo(center.X, center.Y)
	}

	log.WithFields(log.Fields{
		"level": level.Name,
		"rows":  level.Rows,
		"cols":  level.Cols,
	}).Info("level loaded")
}
