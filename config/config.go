package config

import (
	"image/color"
	"time"
)

// Config holds window configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// CameraConfig contains camera limits and input speeds
type CameraConfig struct {
	MinZoom   float64
	MaxZoom   float64
	StartZoom float64

	DPI              float64 // Scales pointer deltas to surface pixels
	ScrollSpeed      float64 // World units per second for keyboard panning
	ZoomSpeed        float64 // Zoom change per second for keyboard zooming
	WheelZoomStep    float64 // Power-of-two exponent per wheel notch
	PinchZoomDivisor float64 // Pixels of pinch distance per doubling of zoom

	// Fling keeps the map gliding after a fast pan is released
	FlingMinSpeed float64 // Pixels per second below which no fling starts
	FlingDuration float64 // Seconds
	FlingFactor   float64 // Fraction of release velocity carried into the glide
}

// GestureConfig contains pointer gesture configuration
type GestureConfig struct {
	PinchDebounce time.Duration
}

// RenderConfig contains tile renderer configuration
type RenderConfig struct {
	CellSize     float64 // Pixels per grid cell; a sprite is 2x this wide
	SpriteAspect float64 // Sprite height relative to width
	BufferCells  int     // Extra cells drawn beyond the computed radius
	BatchQuads   int     // Quads per draw call
	ClearColor   color.RGBA
}

// LevelConfig selects the level shown at startup
type LevelConfig struct {
	Rows int
	Cols int
	Seed uint64
	// Name of an embedded TMX level; empty generates one from Seed
	Name       string
	CacheBytes int64
}

// HUDConfig contains overlay configuration
type HUDConfig struct {
	Enabled        bool
	FontSize       float64
	X              int
	Y              int
	LineHeight     int
	TextColor      color.RGBA
	SelectionColor color.RGBA
	SelectionWidth float32
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level string
	JSON  bool
	// File, when set, receives a rotated copy of the log
	File       string
	MaxSizeMB  int
	MaxBackups int
}

// PersistConfig controls the saved view
type PersistConfig struct {
	Enabled bool
	AppName string
}

// Global configuration instances
var C *Config
var Camera CameraConfig
var Gesture GestureConfig
var Render RenderConfig
var Level LevelConfig
var HUD HUDConfig
var Log LogConfig
var Persist PersistConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	DeepWater    = color.RGBA{R: 18, G: 38, B: 58, A: 255}
)

func init() {
	Reset()
}

// Reset restores every global to its default.
func Reset() {
	C = &Config{
		Width:  1280,
		Height: 720,
		Title:  "Wide World",
		TPS:    60,
	}

	Camera = CameraConfig{
		MinZoom:          0.25,
		MaxZoom:          4.0,
		StartZoom:        1.0,
		DPI:              1.0,
		ScrollSpeed:      600.0,
		ZoomSpeed:        1.5,
		WheelZoomStep:    0.25,
		PinchZoomDivisor: 100.0,
		FlingMinSpeed:    300.0,
		FlingDuration:    0.6,
		FlingFactor:      0.15,
	}

	Gesture = GestureConfig{
		PinchDebounce: 8 * time.Millisecond, // ~1/120s
	}

	Render = RenderConfig{
		CellSize:     32,
		SpriteAspect: 1.0,
		BufferCells:  1,
		BatchQuads:   256 * 256,
		ClearColor:   DeepWater,
	}

	Level = LevelConfig{
		Rows:       64,
		Cols:       64,
		Seed:       1024,
		CacheBytes: 64 << 20,
	}

	HUD = HUDConfig{
		Enabled:        true,
		FontSize:       14,
		X:              10,
		Y:              20,
		LineHeight:     18,
		TextColor:      White,
		SelectionColor: Yellow,
		SelectionWidth: 2,
	}

	Persist = PersistConfig{
		Enabled: true,
		AppName: "wideworld",
	}

	Log = LogConfig{
		Level:      "info",
		MaxSizeMB:  10,
		MaxBackups: 3,
	}
}
