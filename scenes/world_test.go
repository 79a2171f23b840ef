package scenes

import (
	"image"
	"strings"
	"testing"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/assets/animations"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/systems/factory"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
)

type recordingChanger struct{ scenes []interface{} }

func (r *recordingChanger) ChangeScene(scene interface{}) { r.scenes = append(r.scenes, scene) }

type fakeClock struct{ now float64 }

func (c *fakeClock) Now() float64 { return c.now }

func testResources(clock *fakeClock) factory.Resources {
	return factory.Resources{
		Loader: animations.LoaderFunc(func(string) (animations.Image, error) {
			return image.NewRGBA(image.Rect(0, 0, 32, 32)), nil
		}),
		Clock: clock.Now,
		Copy:  assets.CopyImage,
		Flip:  assets.FlipHorizontal,
	}
}

// newTestScene builds a scene for the default level without rendering its
// background.
func newTestScene(t *testing.T, sc SceneChanger, clock *fakeClock) *PlatformerScene {
	t.Helper()
	level, err := assets.LoadLevel(assets.Levels(), cfg.Level.Default)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}
	ps := NewPlatformerScene(sc, cfg.Level.Default, nil)
	ps.level = level
	ps.res = testResources(clock)
	ps.once.Do(func() {})
	if err := ps.rebuild(); err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	return ps
}

func count(world donburi.World, tag *donburi.ComponentType[donburi.Tag]) int {
	n := 0
	tag.Each(world, func(*donburi.Entry) { n++ })
	return n
}

func TestPopulateDefaultLevel(t *testing.T) {
	ps := newTestScene(t, &recordingChanger{}, &fakeClock{})
	world := ps.ecs.World

	if n := count(world, tags.Platform); n != 157 {
		t.Errorf("platforms = %d", n)
	}
	if n := count(world, tags.DieBlock); n != 4 {
		t.Errorf("die blocks = %d", n)
	}
	if n := count(world, tags.Princess); n != 2 {
		t.Errorf("princesses = %d", n)
	}
	if n := count(world, tags.Player); n != 1 {
		t.Fatalf("players = %d", n)
	}

	cameraEntry, ok := components.Camera.First(world)
	if !ok {
		t.Fatalf("no camera")
	}
	pos := components.Camera.Get(cameraEntry).Position
	if pos.X != float64(cfg.C.Width)/2 || pos.Y != float64(ps.level.Height-cfg.C.Height/2) {
		t.Fatalf("camera starts at %v", pos)
	}
}

func TestSceneUpdatesAnimations(t *testing.T) {
	clock := &fakeClock{}
	ps := newTestScene(t, &recordingChanger{}, clock)

	for i := 0; i < 30; i++ {
		clock.now += 1.0 / 60
		ps.Update()
	}

	player, _ := tags.Player.First(ps.ecs.World)
	anim := components.Animation.Get(player)
	if anim.CurrentState != cfg.WalkRight {
		t.Fatalf("player animation %s, want walk_right", anim.CurrentState)
	}
	if anim.Current.State() != animations.Playing {
		t.Fatalf("walk animation is %s", anim.Current.State())
	}

	tags.Princess.Each(ps.ecs.World, func(e *donburi.Entry) {
		if a := components.Animation.Get(e).Current; a == nil || a.State() != animations.Playing {
			t.Errorf("princess not playing")
		}
	})
}

func TestReloadReplacesWorld(t *testing.T) {
	ps := newTestScene(t, &recordingChanger{}, &fakeClock{})
	before := ps.ecs

	if err := ps.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if ps.ecs == before {
		t.Fatalf("world was not rebuilt")
	}
	if n := count(ps.ecs.World, tags.Player); n != 1 {
		t.Fatalf("players after reload = %d", n)
	}
}

func TestRescueShowsVictoryThenRestarts(t *testing.T) {
	clock := &fakeClock{}
	changer := &recordingChanger{}
	ps := newTestScene(t, changer, clock)

	ps.Update()
	if len(changer.scenes) != 0 {
		t.Fatalf("scene changed without a rescue")
	}

	player, _ := tags.Player.First(ps.ecs.World)
	components.Player.Get(player).Winner = true
	ps.Update()
	if len(changer.scenes) != 1 {
		t.Fatalf("got %d scene changes", len(changer.scenes))
	}
	victory, ok := changer.scenes[0].(*VictoryScene)
	if !ok {
		t.Fatalf("changed to %T", changer.scenes[0])
	}

	victory.Update()
	if len(changer.scenes) != 1 {
		t.Fatalf("victory ended immediately")
	}
	entry, _ := components.Victory.First(victory.ecs.World)
	victoryData := components.Victory.Get(entry)
	banner := victoryData.Banner
	if banner == nil {
		t.Fatalf("no banner")
	}
	if !strings.HasPrefix(victoryData.Record, "Rescues: 1 ") {
		t.Fatalf("record line %q", victoryData.Record)
	}

	clock.now += banner.CycleDuration() + 0.1
	victory.Update()
	if len(changer.scenes) != 2 {
		t.Fatalf("got %d scene changes", len(changer.scenes))
	}
	next, ok := changer.scenes[1].(*PlatformerScene)
	if !ok || next.levelPath != cfg.Level.Default {
		t.Fatalf("restarted with %T", changer.scenes[1])
	}
}
