package systems

import (
	"github.com/automoto/wideworld/components"
	cfg "github.com/automoto/wideworld/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawTiles clears the screen and draws the visible part of the level.
func DrawTiles(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Render.ClearColor)

	cam, _, ok := cameraAndFling(e)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	render := components.Render.Get(levelEntry)

	cam.View.Resize(screen.Bounds().Dx(), screen.Bounds().Dy())

	if render.Program != nil {
		render.Program.SetTarget(screen)
	}
	render.Renderer.Render(levelData.CurrentLevel, cam.View)

	if hudEntry, ok := components.HUD.First(e.World); ok {
		components.HUD.Get(hudEntry).Stats = render.Renderer.Stats()
	}
}
