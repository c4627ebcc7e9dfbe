package systems

import (
	"encoding/json"

	"github.com/automoto/wideworld/components"
	cfg "github.com/automoto/wideworld/config"
	"github.com/automoto/wideworld/shared/gamemath"
	"github.com/quasilyte/gdata"
	log "github.com/sirupsen/logrus"
	"github.com/yohamta/donburi/ecs"
)

const viewItem = "view"

// SavedView is the camera state stored between runs
type SavedView struct {
	Level  string  `json:"level"`
	Seed   uint64  `json:"seed"`
	FocusX float64 `json:"focusX"`
	FocusY float64 `json:"focusY"`
	Zoom   float64 `json:"zoom"`
}

var gdataManager *gdata.Manager

// InitPersistence opens the per-user data store.
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Persist.AppName,
	})
	if err != nil {
		return err
	}
	gdataManager = m
	return nil
}

// LoadView returns the stored view, or nil when there is none.
func LoadView() (*SavedView, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(viewItem)
	if err != nil || data == nil {
		return nil, err
	}

	var view SavedView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// SaveView writes the view to the data store.
func SaveView(view *SavedView) error {
	if gdataManager == nil || view == nil {
		return nil
	}

	data, err := json.Marshal(view)
	if err != nil {
		return err
	}
	return gdataManager.SaveItem(viewItem, data)
}

// CurrentView captures the level and camera of the world.
func CurrentView(e *ecs.ECS) *SavedView {
	cam, _, ok := cameraAndFling(e)
	if !ok {
		return nil
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return nil
	}

	focus := cam.View.Coord()
	return &SavedView{
		Level:  levelData.CurrentLevel.Name,
		Seed:   levelData.Seed,
		FocusX: focus.X,
		FocusY: focus.Y,
		Zoom:   cam.View.Zoom(),
	}
}

// ApplySavedView restores the camera when the saved view belongs to the
// level being shown.
func ApplySavedView(e *ecs.ECS, saved *SavedView) {
	if saved == nil {
		return
	}
	current := CurrentView(e)
	if current == nil || current.Level != saved.Level {
		return
	}

	cam, _, _ := cameraAndFling(e)
	cam.View.MoveTo(saved.FocusX, saved.FocusY)
	if saved.Zoom > 0 {
		cam.View.ZoomToCenter(gamemath.ClampFloat(saved.Zoom, cam.Control.MinZoom, cam.Control.MaxZoom))
	}
	log.WithField("level", saved.Level).Debug("restored saved view")
}
