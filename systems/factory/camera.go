package factory

import (
	"github.com/automoto/wideworld/archetypes"
	"github.com/automoto/wideworld/camera"
	"github.com/automoto/wideworld/components"
	cfg "github.com/automoto/wideworld/config"
	"github.com/automoto/wideworld/shared/gamemath"
	"github.com/automoto/wideworld/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera looking at the middle of level.
func CreateCamera(ecs *ecs.ECS, level *leveldata.Level) *donburi.Entry {
	entry := archetypes.Camera.Spawn(ecs)

	view := camera.New(cfg.C.Width, cfg.C.Height, LevelCenter(level, cfg.Render.CellSize))
	view.ZoomToCenter(gamemath.ClampFloat(cfg.Camera.StartZoom, cfg.Camera.MinZoom, cfg.Camera.MaxZoom))

	components.Camera.Set(entry, &components.CameraData{
		View:    view,
		Control: NewController(),
	})
	components.Fling.Set(entry, &components.FlingData{})
	return entry
}

// NewController builds a camera controller from the current config.
func NewController() camera.Controller {
	return camera.Controller{
		MinZoom:          cfg.Camera.MinZoom,
		MaxZoom:          cfg.Camera.MaxZoom,
		DPI:              cfg.Camera.DPI,
		ScrollSpeed:      cfg.Camera.ScrollSpeed,
		ZoomSpeed:        cfg.Camera.ZoomSpeed,
		WheelZoomStep:    cfg.Camera.WheelZoomStep,
		PinchZoomDivisor: cfg.Camera.PinchZoomDivisor,
	}
}

// LevelCenter is the world position of the middle of the middle cell's
// ground diamond.
func LevelCenter(level *leveldata.Level, cellSize float64) dmath.Vec2 {
	if level == nil {
		return dmath.Vec2{}
	}
	top := gamemath.CellToIso(level.Rows/2, level.Cols/2, cellSize)
	return dmath.Vec2{X: top.X + cellSize, Y: top.Y + cellSize/2}
}
