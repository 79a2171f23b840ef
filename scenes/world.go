package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/systems"
	"github.com/automoto/platformer/systems/factory"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

type SceneChanger interface {
	ChangeScene(scene interface{})
}

// PlatformerScene owns the world for one level. Every entity lives in the
// scene's donburi world and goes away with it.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levelPath    string
	level        *assets.Level
	res          factory.Resources
	watcher      *cfg.Watcher
	ticks        int
	once         sync.Once
}

// NewPlatformerScene creates a scene for the level at levelPath inside the
// embedded level filesystem. watcher may be nil.
func NewPlatformerScene(sc SceneChanger, levelPath string, watcher *cfg.Watcher) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, levelPath: levelPath, watcher: watcher}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.pollWatcher()
	ps.ecs.Update()
	ps.ticks++

	player, ok := ps.rescued()
	if !ok {
		return
	}
	record := systems.RecordRescue(player.Deaths, float64(ps.ticks)/float64(ebiten.TPS()))
	ps.sceneChanger.ChangeScene(NewVictoryScene(ps.sceneChanger, ps.res, record, func() interface{} {
		return NewPlatformerScene(ps.sceneChanger, ps.levelPath, ps.watcher)
	}))
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) configure() {
	ps.res = factory.Resources{
		Loader: assets.NewImageLoader(assets.Images()),
		Copy:   assets.CopyImage,
		Flip:   assets.FlipHorizontal,
	}

	level, err := assets.LoadLevel(assets.Levels(), ps.levelPath)
	if err != nil {
		panic(err)
	}
	if err := level.RenderBackground(); err != nil {
		panic(err)
	}
	ps.level = level

	if err := ps.rebuild(); err != nil {
		panic(err)
	}
}

// Reload reads the watched animation definitions again and rebuilds the
// world from them. The running world is kept when anything fails.
func (ps *PlatformerScene) Reload() error {
	if ps.watcher != nil {
		if err := cfg.ReloadAnimations(ps.watcher.Path()); err != nil {
			return err
		}
	}
	return ps.rebuild()
}

func (ps *PlatformerScene) rebuild() error {
	world := newPlatformerECS()
	if err := populate(world, ps.level, ps.res); err != nil {
		return fmt.Errorf("build %s: %w", ps.levelPath, err)
	}
	ps.ecs = world
	return nil
}

func (ps *PlatformerScene) pollWatcher() {
	if ps.watcher == nil {
		return
	}
	changed, err := ps.watcher.Poll()
	if err != nil {
		log.Printf("Warning: watching %s: %v", ps.watcher.Path(), err)
	}
	if !changed {
		return
	}
	if err := ps.Reload(); err != nil {
		log.Printf("Warning: reload animations: %v", err)
		return
	}
	log.Printf("Reloaded animations from %s", ps.watcher.Path())
}

// rescued returns the player once it has reached a princess.
func (ps *PlatformerScene) rescued() (*components.PlayerData, bool) {
	if ps.ecs == nil {
		return nil, false
	}
	playerEntry, ok := tags.Player.First(ps.ecs.World)
	if !ok {
		return nil, false
	}
	player := components.Player.Get(playerEntry)
	return player, player.Winner
}

func newPlatformerECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdatePatrol)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateContacts)
	e.AddSystem(systems.UpdatePlayerState)
	e.AddSystem(systems.UpdateAnimations)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateAudio)

	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawAnimated)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	return e
}

// populate creates every entity of level in e.
func populate(e *ecs.ECS, level *assets.Level, res factory.Resources) error {
	factory.CreateLevel(e, level)
	factory.CreateSpace(e, level.Width, level.Height, level.TileWidth/2, level.TileHeight/2)
	factory.CreateTiles(e, level.Tiles)

	if _, err := factory.CreatePrincesses(e, level.PrincessSpawns, res); err != nil {
		return err
	}

	player, err := factory.CreatePlayer(e, level.PlayerSpawn, res)
	if err != nil {
		return err
	}

	// Start the camera on the player to avoid panning in from the origin
	obj := components.Object.Get(player)
	factory.CreateCamera(e, systems.CameraTarget(
		dmath.Vec2{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2},
		float64(cfg.C.Width), float64(cfg.C.Height),
		float64(level.Width), float64(level.Height),
	))

	return nil
}
