package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// groundTolerance is how far above its origin a patrolling entity may be and
// still count as standing.
const groundTolerance = 0.5

// tickSeconds is the simulated time of one update.
var tickSeconds = func() float32 {
	return 1 / float32(ebiten.TPS())
}

// UpdatePatrol moves patrolling entities along their scripted path and
// records the resulting velocity on players.
func UpdatePatrol(ecs *ecs.ECS) {
	dt := tickSeconds()
	components.Patrol.Each(ecs.World, func(e *donburi.Entry) {
		patrol := components.Patrol.Get(e)
		obj := components.Object.Get(e)

		dx := advance(patrol.X, dt)
		dy := advance(patrol.Y, dt)
		x := patrol.Origin.X + dx
		y := patrol.Origin.Y + dy

		if e.HasComponent(components.Player) {
			player := components.Player.Get(e)
			player.Velocity = math.Vec2{X: x - obj.X, Y: y - obj.Y}
			wasOnGround := player.OnGround
			player.OnGround = dy > -groundTolerance
			if wasOnGround && !player.OnGround {
				PlaySFX(ecs, cfg.SoundHop)
			}
		}

		obj.X, obj.Y = x, y
		obj.Update()
	})
}

// advance steps a looping sequence and returns its value.
func advance(seq *gween.Sequence, dt float32) float64 {
	if seq == nil {
		return 0
	}
	v, _, done := seq.Update(dt)
	if done {
		seq.Reset()
	}
	return float64(v)
}

// ResetPatrol moves the path back to its start at origin.
func ResetPatrol(patrol *components.PatrolData, origin math.Vec2) {
	patrol.Origin = origin
	if patrol.X != nil {
		patrol.X.Reset()
	}
	if patrol.Y != nil {
		patrol.Y.Reset()
	}
}
