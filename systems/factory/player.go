package factory

import (
	"fmt"

	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

func CreatePlayer(ecs *ecs.ECS, spawn assets.Spawn, res Resources) (*donburi.Entry, error) {
	animData, err := GenerateAnimations("player", res)
	if err != nil {
		return nil, fmt.Errorf("create player: %w", err)
	}
	if _, ok := animData.Animations[cfg.Idle]; !ok {
		return nil, fmt.Errorf("create player: no %s animation", cfg.Idle)
	}
	animData.SetAnimation(cfg.Idle)

	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, float64(cfg.Player.Width), float64(cfg.Player.Height), tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	origin := math.Vec2{X: spawn.X, Y: spawn.Y}
	components.Player.SetValue(player, components.PlayerData{
		State:    cfg.Idle,
		Spawn:    origin,
		OnGround: true,
	})
	components.Animation.Set(player, animData)
	components.Patrol.SetValue(player, newPlayerPatrol(origin))

	return player, nil
}

// newPlayerPatrol walks right, rests, runs back and rests again while
// hopping on its own schedule.
func newPlayerPatrol(origin math.Vec2) components.PatrolData {
	p := cfg.Player

	x := gween.NewSequence()
	x.Add(
		gween.New(0, p.PatrolDistance, p.WalkDuration, ease.Linear),
		gween.New(p.PatrolDistance, p.PatrolDistance, p.RestDuration, ease.Linear),
		gween.New(p.PatrolDistance, 0, p.RunDuration, ease.Linear),
		gween.New(0, 0, p.RestDuration, ease.Linear),
	)

	y := gween.NewSequence()
	y.Add(
		gween.New(0, 0, p.HopRest, ease.Linear),
		gween.New(0, -p.HopHeight, p.HopDuration, ease.OutQuad),
		gween.New(-p.HopHeight, 0, p.HopDuration, ease.InQuad),
	)

	return components.PatrolData{Origin: origin, X: x, Y: y}
}
