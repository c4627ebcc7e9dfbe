package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
)

func TestLoadDefaults(t *testing.T) {
	Reset()
	defer Reset()

	if err := Load(""); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if C.Width != 1280 || Render.CellSize != 32 || Level.Seed != 1024 {
		t.Errorf("defaults changed: width %d cell %v seed %d", C.Width, Render.CellSize, Level.Seed)
	}
	if Gesture.PinchDebounce != 8*time.Millisecond {
		t.Errorf("pinch debounce = %v", Gesture.PinchDebounce)
	}
}

func TestRenderConfigSurvivesLoad(t *testing.T) {
	Reset()
	defer Reset()
	want := Render

	if err := Load(""); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if Render != want {
		t.Errorf("render config = %+v after load, want %+v", Render, want)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	Reset()
	defer Reset()

	t.Setenv("WIDEWORLD_CAMERA_MAX_ZOOM", "8")
	t.Setenv("WIDEWORLD_LEVEL_SEED", "42")
	t.Setenv("WIDEWORLD_LEVEL_NAME", "island")

	if err := Load(""); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if Camera.MaxZoom != 8 {
		t.Errorf("MaxZoom = %v, want 8", Camera.MaxZoom)
	}
	if Level.Seed != 42 || Level.Name != "island" {
		t.Errorf("level = seed %d name %q", Level.Seed, Level.Name)
	}
}

func TestLoadFile(t *testing.T) {
	Reset()
	defer Reset()

	path := filepath.Join(t.TempDir(), "wideworld.yaml")
	body := "window:\n  width: 800\nlevel:\n  rows: 128\n  cols: 96\ngesture:\n  pinch_debounce: 16ms\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := Load(path); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if C.Width != 800 || C.Height != 720 {
		t.Errorf("window = %dx%d, want 800x720", C.Width, C.Height)
	}
	if Level.Rows != 128 || Level.Cols != 96 {
		t.Errorf("level = %dx%d", Level.Rows, Level.Cols)
	}
	if Gesture.PinchDebounce != 16*time.Millisecond {
		t.Errorf("pinch debounce = %v", Gesture.PinchDebounce)
	}
}

func TestLoadMissingFile(t *testing.T) {
	Reset()
	defer Reset()

	if err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadFixesZoomRange(t *testing.T) {
	Reset()
	defer Reset()

	t.Setenv("WIDEWORLD_CAMERA_MIN_ZOOM", "2")
	t.Setenv("WIDEWORLD_CAMERA_MAX_ZOOM", "1")
	if err := Load(""); err != nil {
		t.Fatal(err)
	}
	if Camera.MaxZoom < Camera.MinZoom {
		t.Errorf("zoom range [%v, %v] inverted", Camera.MinZoom, Camera.MaxZoom)
	}
}

func TestSetupLoggingLevel(t *testing.T) {
	Reset()
	defer Reset()
	defer log.SetLevel(log.InfoLevel)

	Log.Level = "debug"
	SetupLogging()
	if log.GetLevel() != log.DebugLevel {
		t.Errorf("level = %v, want debug", log.GetLevel())
	}

	Log.Level = "loud"
	SetupLogging()
	if log.GetLevel() != log.InfoLevel {
		t.Errorf("level = %v, want info fallback", log.GetLevel())
	}
}
