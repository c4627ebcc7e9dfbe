package scenes

import (
	"sync"

	"github.com/automoto/wideworld/assets"
	cfg "github.com/automoto/wideworld/config"
	"github.com/automoto/wideworld/fonts"
	"github.com/automoto/wideworld/gpu"
	"github.com/automoto/wideworld/shared/leveldata"
	"github.com/automoto/wideworld/systems"
	"github.com/automoto/wideworld/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type WorldScene struct {
	ecs  *ecs.ECS
	once sync.Once
}

func NewWorldScene() *WorldScene {
	return &WorldScene{}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	if ws.ecs == nil {
		screen.Fill(cfg.Render.ClearColor)
		return
	}
	ws.ecs.Draw(screen)
}

// Close stores the current view for the next run.
func (ws *WorldScene) Close() {
	if ws.ecs == nil || !cfg.Persist.Enabled {
		return
	}
	if err := systems.SaveView(systems.CurrentView(ws.ecs)); err != nil {
		log.WithError(err).Warn("could not save view")
	}
}

func (ws *WorldScene) configure() {
	if err := fonts.LoadDefaults(cfg.HUD.FontSize); err != nil {
		log.WithError(err).Warn("HUD font unavailable")
	}

	cache, err := leveldata.NewCache(cfg.Level.CacheBytes)
	if err != nil {
		log.WithError(err).Warn("level cache disabled")
	}
	level := loadLevel(cache)

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePointer)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateLevel)
	ecs.AddSystem(systems.UpdateHUD)

	ecs.AddRenderer(cfg.LayerTiles, systems.DrawTiles)
	ecs.AddRenderer(cfg.LayerSelection, systems.DrawSelection)
	ecs.AddRenderer(cfg.LayerHUD, systems.DrawHUD)

	factory.CreateLevel(ecs, level, cache, newProgram())
	factory.CreateCamera(ecs, level)
	factory.CreateSelection(ecs)
	factory.CreateHUD(ecs)
	_, recognizer := factory.CreateGesture(ecs)
	systems.BindGestures(ecs, recognizer)

	ws.ecs = ecs

	if cfg.Persist.Enabled {
		saved, err := systems.LoadView()
		if err != nil {
			log.WithError(err).Warn("could not load saved view")
		}
		systems.ApplySavedView(ecs, saved)
	}

	log.WithFields(log.Fields{
		"level": level.Name,
		"rows":  level.Rows,
		"cols":  level.Cols,
	}).Info("world ready")
}

// loadLevel returns the configured embedded level, or a generated one when
// none is named or it fails to load.
func loadLevel(cache *leveldata.Cache) *leveldata.Level {
	if name := cfg.Level.Name; name != "" {
		loader := assets.NewLevelLoader()
		level, err := loader.LoadLevel(name)
		if err == nil {
			return level
		}
		names, _ := loader.Names()
		log.WithError(err).WithFields(log.Fields{
			"level":     name,
			"available": names,
		}).Warn("falling back to a generated level")
	}
	return systems.GenerateLevel(cache, cfg.Level.Rows, cfg.Level.Cols, cfg.Level.Seed)
}

// newProgram builds the tile program. Failure is logged and leaves the map
// undrawn rather than stopping the viewer.
func newProgram() *gpu.Program {
	src, err := assets.ShaderSource(assets.TileShader)
	if err != nil {
		log.WithError(err).Error("tile shader unavailable")
		return nil
	}
	atlas, err := assets.LoadImage(assets.TileAtlasPath)
	if err != nil {
		log.WithError(err).Error("tile atlas unavailable")
		return nil
	}
	program, err := gpu.NewProgram(src, atlas)
	if err != nil {
		log.WithError(err).Error("tile rendering disabled")
		return nil
	}
	return program
}
