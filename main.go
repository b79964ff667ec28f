package main

import (
	"flag"
	"image"
	"log"
	"os"

	"github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/scenes"
	"github.com/automoto/tilebound/shared/leveldata"
	"github.com/automoto/tilebound/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(levels *scenes.Levels, start int) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewWorldScene(g, levels, start)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	flag.StringVar(&config.Paths.Assets, "assets", config.Paths.Assets, "Asset directory")
	flag.StringVar(&config.Paths.Level, "level", config.Paths.Level, "Level to start on (empty = first)")
	debug := flag.Bool("debug", false, "Start with the collision overlay on")
	flag.Parse()

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	if *debug {
		config.Debug.Overlay = true
	}

	byName, names, err := leveldata.LoadAll(os.DirFS(config.Paths.Assets), config.Paths.Levels)
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}
	start := 0
	for i, name := range names {
		if name == config.Paths.Level {
			start = i
		}
	}
	if config.Paths.Level != "" && names[start] != config.Paths.Level {
		log.Printf("Warning: Unknown level %q, starting on %q", config.Paths.Level, names[start])
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle(config.C.Title)

	levels := &scenes.Levels{ByName: byName, Names: names}
	if err := ebiten.RunGame(NewGame(levels, start)); err != nil {
		log.Fatal(err)
	}
}
