package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. WIDEWORLD_CAMERA_MAX_ZOOM.
const EnvPrefix = "WIDEWORLD"

// Load overlays the defaults with values from an optional config file (any
// format viper reads) and WIDEWORLD_* environment variables. An empty path
// reads the environment only.
func Load(path string) error {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	apply(v)
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("window.width", C.Width)
	v.SetDefault("window.height", C.Height)
	v.SetDefault("window.title", C.Title)
	v.SetDefault("window.tps", C.TPS)

	v.SetDefault("camera.min_zoom", Camera.MinZoom)
	v.SetDefault("camera.max_zoom", Camera.MaxZoom)
	v.SetDefault("camera.start_zoom", Camera.StartZoom)
	v.SetDefault("camera.dpi", Camera.DPI)
	v.SetDefault("camera.scroll_speed", Camera.ScrollSpeed)
	v.SetDefault("camera.zoom_speed", Camera.ZoomSpeed)
	v.SetDefault("camera.wheel_zoom_step", Camera.WheelZoomStep)
	v.SetDefault("camera.pinch_zoom_divisor", Camera.PinchZoomDivisor)
	v.SetDefault("camera.fling_min_speed", Camera.FlingMinSpeed)
	v.SetDefault("camera.fling_duration", Camera.FlingDuration)
	v.SetDefault("camera.fling_factor", Camera.FlingFactor)

	v.SetDefault("gesture.pinch_debounce", Gesture.PinchDebounce)

	v.SetDefault("render.cell_size", Render.CellSize)
	v.SetDefault("render.sprite_aspect", Render.SpriteAspect)
	v.SetDefault("render.buffer_cells", Render.BufferCells)
	v.SetDefault("render.batch_quads", Render.BatchQuads)

	v.SetDefault("level.rows", Level.Rows)
	v.SetDefault("level.cols", Level.Cols)
	v.SetDefault("level.seed", Level.Seed)
	v.SetDefault("level.name", Level.Name)
	v.SetDefault("level.cache_bytes", Level.CacheBytes)

	v.SetDefault("hud.enabled", HUD.Enabled)
	v.SetDefault("hud.font_size", HUD.FontSize)

	v.SetDefault("persist.enabled", Persist.Enabled)
	v.SetDefault("persist.app_name", Persist.AppName)

	v.SetDefault("log.level", Log.Level)
	v.SetDefault("log.json", Log.JSON)
	v.SetDefault("log.file", Log.File)
	v.SetDefault("log.max_size_mb", Log.MaxSizeMB)
	v.SetDefault("log.max_backups", Log.MaxBackups)
}

func apply(v *viper.Viper) {
	C.Width = v.GetInt("window.width")
	C.Height = v.GetInt("window.height")
	C.Title = v.GetString("window.title")
	C.TPS = v.GetInt("window.tps")

	Camera.MinZoom = v.GetFloat64("camera.min_zoom")
	Camera.MaxZoom = v.GetFloat64("camera.max_zoom")
	Camera.StartZoom = v.GetFloat64("camera.start_zoom")
	Camera.DPI = v.GetFloat64("camera.dpi")
	Camera.ScrollSpeed = v.GetFloat64("camera.scroll_speed")
	Camera.ZoomSpeed = v.GetFloat64("camera.zoom_speed")
	Camera.WheelZoomStep = v.GetFloat64("camera.wheel_zoom_step")
	Camera.PinchZoomDivisor = v.GetFloat64("camera.pinch_zoom_divisor")
	Camera.FlingMinSpeed = v.GetFloat64("camera.fling_min_speed")
	Camera.FlingDuration = v.GetFloat64("camera.fling_duration")
	Camera.FlingFactor = v.GetFloat64("camera.fling_factor")

	Gesture.PinchDebounce = v.GetDuration("gesture.pinch_debounce")

	Render.CellSize = v.GetFloat64("render.cell_size")
	Render.SpriteAspect = v.GetFloat64("render.sprite_aspect")
	Render.BufferCells = v.GetInt("render.buffer_cells")
	Render.BatchQuads = v.GetInt("render.batch_quads")

	Level.Rows = v.GetInt("level.rows")
	Level.Cols = v.GetInt("level.cols")
	Level.Seed = v.GetUint64("level.seed")
	Level.Name = v.GetString("level.name")
	Level.CacheBytes = v.GetInt64("level.cache_bytes")

	HUD.Enabled = v.GetBool("hud.enabled")
	HUD.FontSize = v.GetFloat64("hud.font_size")

	Persist.Enabled = v.GetBool("persist.enabled")
	Persist.AppName = v.GetString("persist.app_name")

	Log.Level = v.GetString("log.level")
	Log.JSON = v.GetBool("log.json")
	Log.File = v.GetString("log.file")
	Log.MaxSizeMB = v.GetInt("log.max_size_mb")
	Log.MaxBackups = v.GetInt("log.max_backups")

	if C.TPS <= 0 {
		C.TPS = 60
	}
	if Camera.MinZoom <= 0 {
		Camera.MinZoom = 0.01
	}
	if Camera.MaxZoom < Camera.MinZoom {
		Camera.MaxZoom = Camera.MinZoom
	}
}
