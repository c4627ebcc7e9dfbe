package systems

import (
	"math"

	"github.com/automoto/wideworld/components"
	cfg "github.com/automoto/wideworld/config"
	"github.com/automoto/wideworld/gesture"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

// BindGestures routes recognizer events to the camera and the selection.
func BindGestures(e *ecs.ECS, r *gesture.Recognizer) {
	r.OnTap(func(ev gesture.TapEvent) {
		SelectAt(e, ev.X, ev.Y)
	})
	r.OnPanStart(func(ev gesture.PanEvent) {
		cam, fling, ok := cameraAndFling(e)
		if !ok {
			return
		}
		fling.Stop()
		cam.Control.Pan(cam.View, ev.DX, ev.DY)
	})
	r.OnPan(func(ev gesture.PanEvent) {
		if cam, _, ok := cameraAndFling(e); ok {
			cam.Control.Pan(cam.View, ev.DX, ev.DY)
		}
	})
	r.OnPanEnd(func(ev gesture.PanEvent) {
		if _, fling, ok := cameraAndFling(e); ok {
			StartFling(fling, ev.VX, ev.VY)
		}
	})
	r.OnPinchStart(func(gesture.PinchEvent) {
		if _, fling, ok := cameraAndFling(e); ok {
			fling.Stop()
		}
	})
	r.OnPinch(func(ev gesture.PinchEvent) {
		cam, _, ok := cameraAndFling(e)
		if !ok {
			return
		}
		cam.Control.Pan(cam.View, ev.DeltaMidpoint.X, ev.DeltaMidpoint.Y)
		cam.Control.Pinch(cam.View, ev.Midpoint.X, ev.Midpoint.Y, ev.DeltaXY)
	})
}

// SelectAt selects the cell under the screen position, or clears the
// selection when no cell is there.
func SelectAt(e *ecs.ECS, sx, sy float64) {
	cam, _, ok := cameraAndFling(e)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.Picker == nil {
		return
	}

	sel := getOrCreateSelection(e)
	cell, found := levelData.Picker.Pick(cam.View.Unproject(sx, sy))
	sel.Cell, sel.Valid = cell, found

	if found {
		level := levelData.CurrentLevel
		log.WithFields(log.Fields{
			"row":    cell.Row,
			"col":    cell.Col,
			"tile":   level.Tiles1[level.Index(cell.Row, cell.Col)],
			"height": level.Heights[level.Index(cell.Row, cell.Col)],
		}).Debug("cell selected")
	}
}

// StartFling keeps the camera moving after a pan released at (vx, vy)
// pixels per second. Slow releases stop any running fling.
func StartFling(f *components.FlingData, vx, vy float64) {
	if math.Hypot(vx, vy) < cfg.Camera.FlingMinSpeed || cfg.Camera.FlingDuration <= 0 {
		f.Stop()
		return
	}
	f.DX = vx * cfg.Camera.FlingFactor
	f.DY = vy * cfg.Camera.FlingFactor
	f.Progress = 0
	f.Tween = gween.New(0, 1, float32(cfg.Camera.FlingDuration), ease.OutCubic)
}

// stepFling advances the fling by dt seconds and pans by the distance
// covered in that step.
func stepFling(cam *components.CameraData, f *components.FlingData, dt float64) {
	if !f.Active() {
		return
	}
	p, done := f.Tween.Update(float32(dt))
	step := float64(p) - f.Progress
	f.Progress = float64(p)
	cam.Control.Pan(cam.View, f.DX*step, f.DY*step)
	if done {
		f.Stop()
	}
}

func cameraAndFling(e *ecs.ECS) (*components.CameraData, *components.FlingData, bool) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, nil, false
	}
	return components.Camera.Get(entry), components.Fling.Get(entry), true
}

func getOrCreateSelection(e *ecs.ECS) *components.SelectionData {
	entry, ok := components.Selection.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Selection))
	}
	return components.Selection.Get(entry)
}
