// Package leveldata defines the level contract consumed by the renderer and
// the picker: three row-major byte layers plus the grid size. It also loads
// levels from TMX, generates stand-in terrain from a seed and caches
// generated levels. It has no dependency on ebitengine.
package leveldata

import "fmt"

// TileEmpty marks a cell with no overlay sprite in Tiles2.
const TileEmpty byte = 255

// Sprite ids in the tile atlas, row-major with AtlasCols sprites per row.
const (
	TileWater byte = iota
	TileSand
	TileGrass
	TileDirt
	TileRock
	TileSnow
)

// Overlay sprites live on the second atlas row.
const (
	TileTree byte = AtlasCols + iota
	TilePine
	TileBush
	TileBoulder
	TileFlower
)

// Atlas layout shared with the sprite sheet.
const (
	AtlasCols = 12
	AtlasRows = 5
)

// MaxHeight is the tallest terrain step the generator produces.
const MaxHeight = 4

// Level is a rows x cols map. Element (row, col) of every layer lives at
// index row*Cols+col.
type Level struct {
	Name    string
	Rows    int
	Cols    int
	Seed    uint64
	Tiles1  []byte // base tile per cell
	Tiles2  []byte // overlay tile per cell, TileEmpty for none
	Heights []byte
}

// NewLevel allocates a level with every overlay empty.
func NewLevel(name string, rows, cols int) *Level {
	n := rows * cols
	lvl := &Level{
		Name:    name,
		Rows:    rows,
		Cols:    cols,
		Tiles1:  make([]byte, n),
		Tiles2:  make([]byte, n),
		Heights: make([]byte, n),
	}
	for i := range lvl.Tiles2 {
		lvl.Tiles2[i] = TileEmpty
	}
	return lvl
}

// Validate checks that every layer has exactly Rows*Cols entries.
func (l *Level) Validate() error {
	if l == nil {
		return fmt.Errorf("level is nil")
	}
	if l.Rows < 0 || l.Cols < 0 {
		return fmt.Errorf("level %q: negative size %dx%d", l.Name, l.Rows, l.Cols)
	}
	n := l.Rows * l.Cols
	for _, layer := range []struct {
		name string
		data []byte
	}{
		{"tiles1", l.Tiles1},
		{"tiles2", l.Tiles2},
		{"heights", l.Heights},
	} {
		if len(layer.data) != n {
			return fmt.Errorf("level %q: %s has %d cells, want %d", l.Name, layer.name, len(layer.data), n)
		}
	}
	return nil
}

// Index returns the layer index of (row, col).
func (l *Level) Index(row, col int) int {
	return row*l.Cols + col
}

// InBounds reports whether (row, col) is a cell of the level.
func (l *Level) InBounds(row, col int) bool {
	return row >= 0 && row < l.Rows && col >= 0 && col < l.Cols
}
