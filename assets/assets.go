package assets

import (
	"bytes"
	"embed"
	"fmt"

	"github.com/automoto/wideworld/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// Embedded asset paths
const (
	TileAtlasPath = "images/tiles.png"

	levelsDir = "levels"
)

// LevelLoader reads the TMX levels embedded in the binary
type LevelLoader struct{}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{}
}

// Names lists the embedded levels by file stem, sorted.
func (l *LevelLoader) Names() ([]string, error) {
	return leveldata.LevelNames(assetFS, levelsDir)
}

// LoadLevel parses the embedded level with the given stem name.
func (l *LevelLoader) LoadLevel(name string) (*leveldata.Level, error) {
	return leveldata.LoadNamed(assetFS, levelsDir, name)
}

var imageCache = map[string]*ebiten.Image{}

// LoadImage decodes an embedded image once and caches it.
func LoadImage(p string) (*ebiten.Image, error) {
	if img, ok := imageCache[p]; ok {
		return img, nil
	}

	imgBytes, err := imageFS.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read image %s: %w", p, err)
	}

	img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(imgBytes))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", p, err)
	}

	imageCache[p] = img
	return img, nil
}
