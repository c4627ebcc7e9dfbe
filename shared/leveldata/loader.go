package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Layer names read from TMX files.
const (
	LayerTiles   = "tiles"
	LayerOverlay = "overlay"
	LayerHeight  = "height"
)

// LoadTMX parses a TMX file into a Level. Tile ids are the tileset-local ids,
// which match the atlas sprite ids. The height layer stores the height as
// the tile id. Missing overlay cells become TileEmpty; a missing base or
// height layer is an error. It takes an fs.FS so callers can pass embed.FS
// or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	lvl := NewLevel(levelName(tmxPath), levelMap.Height, levelMap.Width)

	found := map[string]bool{}
	for _, layer := range levelMap.Layers {
		var dst []byte
		var empty byte
		switch layer.Name {
		case LayerTiles:
			dst, empty = lvl.Tiles1, TileWater
		case LayerOverlay:
			dst, empty = lvl.Tiles2, TileEmpty
		case LayerHeight:
			dst, empty = lvl.Heights, 0
		default:
			continue
		}
		if len(layer.Tiles) != len(dst) {
			return nil, fmt.Errorf("load TMX %s: layer %q has %d tiles, want %d",
				tmxPath, layer.Name, len(layer.Tiles), len(dst))
		}
		for i, tile := range layer.Tiles {
			if tile == nil || tile.IsNil() {
				dst[i] = empty
				continue
			}
			dst[i] = byte(tile.ID)
		}
		found[layer.Name] = true
	}

	for _, name := range []string{LayerTiles, LayerHeight} {
		if !found[name] {
			return nil, fmt.Errorf("load TMX %s: missing layer %q", tmxPath, name)
		}
	}

	return lvl, lvl.Validate()
}

// LevelNames lists the stems of the .tmx files directly inside dir, sorted.
// A directory without levels yields an empty list.
func LevelNames(fsys fs.FS, dir string) ([]string, error) {
	matches, err := fs.Glob(fsys, path.Join(dir, "*.tmx"))
	if err != nil {
		return nil, fmt.Errorf("list levels in %s: %w", dir, err)
	}
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, levelName(m))
	}
	sort.Strings(names)
	return names, nil
}

// LoadNamed loads dir/name.tmx.
func LoadNamed(fsys fs.FS, dir, name string) (*Level, error) {
	return LoadTMX(fsys, path.Join(dir, name+".tmx"))
}

func levelName(tmxPath string) string {
	return strings.TrimSuffix(path.Base(tmxPath), ".tmx")
}
