package systems

import (
	"fmt"

	"github.com/automoto/wideworld/components"
	cfg "github.com/automoto/wideworld/config"
	"github.com/automoto/wideworld/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const hudWidth = 300

var hudLines []string

// UpdateHUD toggles the overlay.
func UpdateHUD(e *ecs.ECS) {
	entry, ok := components.HUD.First(e.World)
	if !ok {
		return
	}
	if getOrCreateInput(e).JustPressed(cfg.ActionToggleHUD) {
		hud := components.HUD.Get(entry)
		hud.Visible = !hud.Visible
	}
}

// DrawHUD renders frame rate, camera and renderer counters in the top-left
// corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.HUD.First(e.World)
	if !ok || !fonts.Loaded(fonts.Mono) {
		return
	}
	hud := components.HUD.Get(entry)
	if !hud.Visible {
		return
	}

	hudLines = hudLines[:0]
	hudLines = append(hudLines, fmt.Sprintf("FPS %.1f  TPS %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))

	if cam, _, ok := cameraAndFling(e); ok {
		focus := cam.View.Coord()
		hudLines = append(hudLines, fmt.Sprintf("zoom %.2f  focus %.0f,%.0f", cam.View.Zoom(), focus.X, focus.Y))
	}

	stats := hud.Stats
	hudLines = append(hudLines,
		fmt.Sprintf("cells %d  quads %d  draws %d", stats.Range.Cells(), stats.Quads, stats.DrawCalls))

	if levelEntry, ok := components.Level.First(e.World); ok {
		levelData := components.Level.Get(levelEntry)
		if levelData.CurrentLevel != nil {
			hudLines = append(hudLines, fmt.Sprintf("level %s  %dx%d",
				levelData.CurrentLevel.Name, levelData.CurrentLevel.Rows, levelData.CurrentLevel.Cols))
		}
	}

	if selEntry, ok := components.Selection.First(e.World); ok {
		if sel := components.Selection.Get(selEntry); sel.Valid {
			hudLines = append(hudLines, fmt.Sprintf("cell %d,%d", sel.Cell.Row, sel.Cell.Col))
		}
	}

	lh := cfg.HUD.LineHeight
	vector.FillRect(screen,
		float32(cfg.HUD.X-6), float32(cfg.HUD.Y-lh+2),
		hudWidth, float32(len(hudLines)*lh+6),
		cfg.BlackOverlay, false)

	face := fonts.Mono.Get()
	for i, line := range hudLines {
		text.Draw(screen, line, face, cfg.HUD.X, cfg.HUD.Y+i*lh, cfg.HUD.TextColor)
	}
}
