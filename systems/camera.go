package systems

import (
	cfg "github.com/automoto/wideworld/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera applies keyboard scrolling and zooming, wheel zoom at the
// cursor, and any running fling.
func UpdateCamera(e *ecs.ECS) {
	cam, fling, ok := cameraAndFling(e)
	if !ok {
		return
	}
	dt := 1 / float64(ebiten.TPS())
	input := getOrCreateInput(e)

	dirX := axis(input, cfg.ActionScrollLeft, cfg.ActionScrollRight)
	dirY := axis(input, cfg.ActionScrollUp, cfg.ActionScrollDown)
	if dirX != 0 || dirY != 0 {
		fling.Stop()
	}
	cam.Control.Scroll(cam.View, dirX, dirY, dt)
	cam.Control.ZoomStep(cam.View, axis(input, cfg.ActionZoomOut, cfg.ActionZoomIn), dt)

	if _, wy := ebiten.Wheel(); wy != 0 {
		x, y := ebiten.CursorPosition()
		cam.Control.Wheel(cam.View, float64(x), float64(y), wy)
	}

	stepFling(cam, fling, dt)
}
