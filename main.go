package main

import (
	"errors"
	"flag"
	"image"
	"io/fs"

	"github.com/automoto/wideworld/config"
	"github.com/automoto/wideworld/scenes"
	"github.com/automoto/wideworld/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Close()
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame() *Game {
	return &Game{
		scene: scenes.NewWorldScene(),
	}
}

func (g *Game) Update() error {
	if ebiten.IsWindowBeingClosed() {
		g.scene.Close()
		return ebiten.Termination
	}
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window so the camera sees the whole surface.
func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, width, height)
	return width, height
}

func main() {
	configPath := flag.String("config", "", "config file (yaml, json or toml)")
	levelName := flag.String("level", "", "embedded level to show instead of a generated one")
	seed := flag.Uint64("seed", 0, "seed for the generated level")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.WithError(err).Warn("could not read .env")
	}

	if err := config.Load(*configPath); err != nil {
		log.WithError(err).Warn("using default configuration")
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "level":
			config.Level.Name = *levelName
		case "seed":
			config.Level.Seed = *seed
		}
	})

	config.SetupLogging()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowClosingHandled(true)

	if config.Persist.Enabled {
		if err := systems.InitPersistence(); err != nil {
			log.WithError(err).Warn("could not initialize persistence")
		}
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
