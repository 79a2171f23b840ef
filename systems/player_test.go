package systems

import (
	"testing"

	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/assets/animations"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/systems/factory"
)

func TestPlayerState(t *testing.T) {
	cases := []struct {
		name     string
		speedX   float64
		onGround bool
		want     cfg.StateID
	}{
		{"standing", 0, true, cfg.Idle},
		{"drifting", cfg.Player.MoveThreshold / 2, true, cfg.Idle},
		{"walking_left", -1, true, cfg.WalkLeft},
		{"walking_right", 1, true, cfg.WalkRight},
		{"jumping", 0, false, cfg.Jump},
		{"jumping_left", -3, false, cfg.JumpLeft},
		{"jumping_right", 3, false, cfg.JumpRight},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := PlayerState(c.speedX, c.onGround); got != c.want {
				t.Fatalf("PlayerState(%v, %v) = %s, want %s", c.speedX, c.onGround, got, c.want)
			}
		})
	}
}

func TestPatrolDrivesPlayerAnimation(t *testing.T) {
	e := newTestECS(t)
	clock := &fakeClock{}
	player, err := factory.CreatePlayer(e, assets.Spawn{X: 100, Y: 700}, testResources(clock))
	if err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}

	tick := func() {
		clock.now += 1.0 / 60
		UpdatePatrol(e)
		UpdatePlayerState(e)
		UpdateAnimations(e)
	}

	// Walking right on the ground.
	for i := 0; i < 10; i++ {
		tick()
	}
	data := components.Player.Get(player)
	anim := components.Animation.Get(player)
	if data.State != cfg.WalkRight || data.Running || !data.OnGround {
		t.Fatalf("after 10 ticks: state=%s running=%v onGround=%v", data.State, data.Running, data.OnGround)
	}
	if anim.CurrentState != cfg.WalkRight || anim.Current.Rate() != 1 {
		t.Fatalf("animation %s at rate %v", anim.CurrentState, anim.Current.Rate())
	}
	obj := components.Object.Get(player)
	if obj.X <= 100 || obj.Y != 700 {
		t.Fatalf("player at (%v, %v)", obj.X, obj.Y)
	}

	// Running back to the left in the middle of a hop.
	for i := 10; i < 180; i++ {
		tick()
	}
	if data.State != cfg.JumpLeft || !data.Running || data.OnGround {
		t.Fatalf("after 180 ticks: state=%s running=%v onGround=%v", data.State, data.Running, data.OnGround)
	}
	if anim.CurrentState != cfg.JumpLeft || anim.Current.Rate() != cfg.Player.RunRate() {
		t.Fatalf("animation %s at rate %v", anim.CurrentState, anim.Current.Rate())
	}
	if anim.Animations[cfg.WalkRight].State() != animations.Stopped {
		t.Fatalf("walk_right still %s", anim.Animations[cfg.WalkRight].State())
	}
}

func TestUpdateContacts(t *testing.T) {
	e := newTestECS(t)
	clock := &fakeClock{}
	spawn := assets.Spawn{X: 100, Y: 100}
	player, err := factory.CreatePlayer(e, spawn, testResources(clock))
	if err != nil {
		t.Fatalf("CreatePlayer: %v", err)
	}
	factory.CreateDieBlock(e, assets.Tile{X: 320, Y: 320, Width: 32, Height: 32, Kind: assets.TileDie})
	factory.CreatePlatform(e, assets.Tile{X: 640, Y: 320, Width: 32, Height: 32})
	if _, err := factory.CreatePrincesses(e, []assets.Spawn{{X: 960, Y: 320}}, testResources(clock)); err != nil {
		t.Fatalf("CreatePrincesses: %v", err)
	}

	data := components.Player.Get(player)
	obj := components.Object.Get(player)
	moveTo := func(x, y float64) {
		obj.X, obj.Y = x, y
		obj.Update()
		UpdateContacts(e)
	}

	// Edge to edge is not a touch.
	moveTo(352, 320)
	if data.Deaths != 0 {
		t.Fatalf("adjacent die block killed the player")
	}

	moveTo(340, 310)
	if data.Deaths != 1 {
		t.Fatalf("deaths = %d, want 1", data.Deaths)
	}
	if obj.X != spawn.X || obj.Y != spawn.Y {
		t.Fatalf("player at (%v, %v), want spawn", obj.X, obj.Y)
	}
	patrol := components.Patrol.Get(player)
	if patrol.Origin.X != spawn.X || patrol.Origin.Y != spawn.Y {
		t.Fatalf("patrol origin %+v", patrol.Origin)
	}

	moveTo(640, 300)
	if data.Deaths != 1 || data.Winner {
		t.Fatalf("platform contact changed the player: %+v", data)
	}

	moveTo(950, 330)
	if !data.Winner {
		t.Fatalf("touching the princess did not win")
	}

	queued := GetOrCreateAudio(e).PendingSFX
	if len(queued) != 2 || queued[0] != cfg.SoundDeath || queued[1] != cfg.SoundRescue {
		t.Fatalf("queued sounds %v", queued)
	}
}
