package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/scenes"
	"github.com/automoto/platformer/systems"
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

func NewGame(levelPath string, watcher *config.Watcher) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewPlatformerScene(g, levelPath, watcher)
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
	levelPath := flag.String("level", config.Level.Default, "level path inside the embedded assets")
	debug := flag.Bool("debug", false, "draw contact outlines and animation state")
	watch := flag.String("watch", "", "animation definition file to load and reload on change")
	flag.Parse()

	config.Debug.Enabled = *debug
	config.Debug.WatchPath = *watch

	var watcher *config.Watcher
	if config.Debug.WatchPath != "" {
		if err := config.ReloadAnimations(config.Debug.WatchPath); err != nil {
			log.Fatal(err)
		}
		w, err := config.NewWatcher(config.Debug.WatchPath)
		if err != nil {
			log.Fatalf("Failed to watch %s: %v", config.Debug.WatchPath, err)
		}
		defer w.Close()
		watcher = w
	}

	if err := systems.InitPersistence("platformer"); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	systems.InitAudio()

	if err := fonts.LoadDefaults(config.UI.DebugFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)

	if err := ebiten.RunGame(NewGame(*levelPath, watcher)); err != nil {
		log.Fatal(err)
	}
}
