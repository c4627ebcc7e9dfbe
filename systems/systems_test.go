package systems

import (
	"math"
	"testing"
	"time"

	"github.com/automoto/wideworld/components"
	cfg "github.com/automoto/wideworld/config"
	"github.com/automoto/wideworld/gesture"
	"github.com/automoto/wideworld/picking"
	"github.com/automoto/wideworld/shared/leveldata"
	"github.com/automoto/wideworld/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func newWorld(t *testing.T, level *leveldata.Level) (*ecs.ECS, *gesture.Recognizer) {
	t.Helper()
	cfg.Reset()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateLevel(e, level, nil, nil)
	factory.CreateCamera(e, level)
	factory.CreateSelection(e)
	factory.CreateHUD(e)
	_, r := factory.CreateGesture(e)
	BindGestures(e, r)
	return e, r
}

func mouse(x, y float64, ms int) gesture.PointerEvent {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return gesture.PointerEvent{ID: gesture.MouseID, X: x, Y: y, Time: base.Add(time.Duration(ms) * time.Millisecond)}
}

func closeTo(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestCameraStartsAtLevelCenter(t *testing.T) {
	level := leveldata.NewLevel("flat", 8, 8)
	e, _ := newWorld(t, level)

	cam, _, ok := cameraAndFling(e)
	if !ok {
		t.Fatal("no camera")
	}
	want := factory.LevelCenter(level, cfg.Render.CellSize)
	if got := cam.View.Coord(); !closeTo(got.X, want.X) || !closeTo(got.Y, want.Y) {
		t.Errorf("focus = %v, want %v", got, want)
	}
}

func TestDragPansCamera(t *testing.T) {
	e, r := newWorld(t, leveldata.NewLevel("flat", 8, 8))
	cam, _, _ := cameraAndFling(e)
	before := cam.View.Coord()

	r.Start(mouse(100, 100, 0))
	r.Move(mouse(110, 100, 10))
	r.Move(mouse(110, 120, 20))

	got := cam.View.Coord()
	if !closeTo(got.X, before.X-10) || !closeTo(got.Y, before.Y-20) {
		t.Errorf("focus = %v, want %v", got, dmath.Vec2{X: before.X - 10, Y: before.Y - 20})
	}
}

func TestTapSelectsCell(t *testing.T) {
	level := leveldata.NewLevel("flat", 8, 8)
	e, r := newWorld(t, level)
	cam, _, _ := cameraAndFling(e)

	want := picking.Cell{Row: 3, Col: 5}
	face := picking.TopFace(want, 0, cfg.Render.CellSize)
	center := dmath.Vec2{X: face[0].X, Y: (face[0].Y + face[2].Y) / 2}
	screen := cam.View.Project(center)

	r.Start(mouse(screen.X, screen.Y, 0))
	r.End(mouse(screen.X, screen.Y, 50))

	sel := getOrCreateSelection(e)
	if !sel.Valid || sel.Cell != want {
		t.Errorf("selection = %+v, want %v", sel, want)
	}

	// Tapping far off the map clears it.
	SelectAt(e, -1e6, -1e6)
	if sel.Valid {
		t.Error("selection still valid after tapping outside the map")
	}
}

func TestFlingGlidesAndStops(t *testing.T) {
	e, _ := newWorld(t, leveldata.NewLevel("flat", 8, 8))
	cam, fling, _ := cameraAndFling(e)
	before := cam.View.Coord()

	StartFling(fling, 1000, 0)
	if !fling.Active() {
		t.Fatal("fast release did not start a fling")
	}

	dt := 1.0 / 60
	for i := 0; i < 120 && fling.Active(); i++ {
		stepFling(cam, fling, dt)
	}
	if fling.Active() {
		t.Fatal("fling still running after twice its duration")
	}

	moved := before.X - cam.View.Coord().X
	want := 1000 * cfg.Camera.FlingFactor
	if !closeTo(moved, want) {
		t.Errorf("fling moved %v, want %v", moved, want)
	}
}

func TestSlowReleaseDoesNotFling(t *testing.T) {
	fling := &components.FlingData{}
	cfg.Reset()

	StartFling(fling, cfg.Camera.FlingMinSpeed/2, 0)
	if fling.Active() {
		t.Error("slow release started a fling")
	}
}

func TestSetLevelRecentersAndClearsSelection(t *testing.T) {
	e, _ := newWorld(t, leveldata.NewLevel("small", 4, 4))
	sel := getOrCreateSelection(e)
	sel.Cell, sel.Valid = picking.Cell{Row: 1, Col: 1}, true

	next := leveldata.Generate(16, 16, 7)
	SetLevel(e, next)

	if sel.Valid {
		t.Error("selection kept across level change")
	}
	levelEntry, _ := components.Level.First(e.World)
	if got := components.Level.Get(levelEntry); got.CurrentLevel != next || got.Picker.Level() != next {
		t.Error("level or picker not replaced")
	}
	cam, _, _ := cameraAndFling(e)
	want := factory.LevelCenter(next, cfg.Render.CellSize)
	if got := cam.View.Coord(); !closeTo(got.X, want.X) || !closeTo(got.Y, want.Y) {
		t.Errorf("focus = %v, want %v", got, want)
	}
}

func TestGenerateLevelUsesCache(t *testing.T) {
	cache, err := leveldata.NewCache(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	defer cache.Close()

	a := GenerateLevel(cache, 8, 8, 3)
	b := GenerateLevel(cache, 8, 8, 3)
	if a != b {
		t.Error("second generation did not come from the cache")
	}
	if c := GenerateLevel(nil, 8, 8, 3); c == a {
		t.Error("uncached generation returned the cached level")
	}
}

func TestSavedViewRoundTripOnSameLevel(t *testing.T) {
	e, _ := newWorld(t, leveldata.NewLevel("flat", 8, 8))
	saved := &SavedView{Level: "flat", FocusX: 12, FocusY: -4, Zoom: 2}

	ApplySavedView(e, saved)
	got := CurrentView(e)
	if got.FocusX != 12 || got.FocusY != -4 || got.Zoom != 2 {
		t.Errorf("view = %+v", got)
	}

	ApplySavedView(e, &SavedView{Level: "other", FocusX: 99, Zoom: 3})
	if CurrentView(e).FocusX != 12 {
		t.Error("view from another level was applied")
	}
}

func TestReleaseAfterHoldDoesNotFling(t *testing.T) {
	tests := []struct {
		name      string
		release   int
		wantFling bool
	}{
		{"released while moving", 48, true},
		{"held before release", 48 + 2000, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, r := newWorld(t, leveldata.NewLevel("flat", 8, 8))
			_, fling, _ := cameraAndFling(e)

			r.Start(mouse(100, 100, 0))
			r.Move(mouse(110, 100, 16))
			r.Move(mouse(120, 100, 32))
			r.Move(mouse(130, 100, 48))
			r.End(mouse(130, 100, tt.release))

			if fling.Active() != tt.wantFling {
				t.Errorf("fling active = %v, want %v", fling.Active(), tt.wantFling)
			}
		})
	}
}
