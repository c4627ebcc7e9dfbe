package systems

import (
	"github.com/automoto/wideworld/components"
	cfg "github.com/automoto/wideworld/config"
	"github.com/automoto/wideworld/picking"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawSelection outlines the top face of the selected cell.
func DrawSelection(e *ecs.ECS, screen *ebiten.Image) {
	selEntry, ok := components.Selection.First(e.World)
	if !ok {
		return
	}
	sel := components.Selection.Get(selEntry)
	if !sel.Valid {
		return
	}
	cam, _, ok := cameraAndFling(e)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil || !level.InBounds(sel.Cell.Row, sel.Cell.Col) {
		return
	}

	height := level.Heights[level.Index(sel.Cell.Row, sel.Cell.Col)]
	corners := picking.TopFace(sel.Cell, height, cfg.Render.CellSize)
	for i := range corners {
		a := cam.View.Project(corners[i])
		b := cam.View.Project(corners[(i+1)%len(corners)])
		vector.StrokeLine(screen,
			float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			cfg.HUD.SelectionWidth, cfg.HUD.SelectionColor, true)
	}
}
