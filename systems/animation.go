package systems

import (
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations selects the player's animation for its state and speeds
// it up while running.
func UpdateAnimations(ecs *ecs.ECS) {
	tags.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		anim := components.Animation.Get(e)

		anim.SetAnimation(player.State)

		rate := 1.0
		if player.Running {
			rate = cfg.Player.RunRate()
		}
		anim.SetRate(rate)
	})
}
