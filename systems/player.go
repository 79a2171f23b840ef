package systems

import (
	"log"
	"math"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerState picks the animation state for a horizontal speed and whether
// the player stands on something. Jumping wins over walking.
func PlayerState(speedX float64, onGround bool) cfg.StateID {
	threshold := cfg.Player.MoveThreshold
	switch {
	case !onGround && speedX < -threshold:
		return cfg.JumpLeft
	case !onGround && speedX > threshold:
		return cfg.JumpRight
	case !onGround:
		return cfg.Jump
	case speedX < -threshold:
		return cfg.WalkLeft
	case speedX > threshold:
		return cfg.WalkRight
	default:
		return cfg.Idle
	}
}

// UpdatePlayerState derives the player's state from its last movement.
func UpdatePlayerState(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		player.State = PlayerState(player.Velocity.X, player.OnGround)
		player.Running = math.Abs(player.Velocity.X) > cfg.Player.RunThreshold
	})
}

// UpdateContacts sends a player touching a die block back to its spawn and
// marks a player touching a princess as the winner.
func UpdateContacts(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		obj := components.Object.Get(e)

		if touching(obj.Object, tags.ResolvDie) {
			player.Deaths++
			obj.X, obj.Y = player.Spawn.X, player.Spawn.Y
			obj.Update()
			if e.HasComponent(components.Patrol) {
				ResetPatrol(components.Patrol.Get(e), player.Spawn)
			}
			PlaySFX(ecs, cfg.SoundDeath)
			log.Printf("Player died, respawning at (%.0f, %.0f)", player.Spawn.X, player.Spawn.Y)
			return
		}

		if !player.Winner && touching(obj.Object, tags.ResolvPrincess) {
			player.Winner = true
			PlaySFX(ecs, cfg.SoundRescue)
			log.Printf("Player reached the princess after %d deaths", player.Deaths)
		}
	})
}

// touching reports whether obj overlaps any object carrying tag.
func touching(obj *resolv.Object, tag string) bool {
	if obj == nil || obj.Space == nil {
		return false
	}
	check := obj.Check(0, 0, tag)
	if check == nil {
		return false
	}
	for _, other := range check.Objects {
		if overlaps(obj, other) {
			return true
		}
	}
	return false
}

func overlaps(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && b.X < a.X+a.W && a.Y < b.Y+b.H && b.Y < a.Y+a.H
}
