package factory

import (
	"fmt"
	"log"

	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/assets/animations"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePrincesses creates one animated princess per spawn. The frames are
// loaded once and every princess plays its own copy of the animation.
func CreatePrincesses(ecs *ecs.ECS, spawns []assets.Spawn, res Resources) ([]*donburi.Entry, error) {
	if len(spawns) == 0 {
		return nil, nil
	}

	def, ok := cfg.CharacterAnimations["princess"][cfg.Idle]
	if !ok {
		return nil, fmt.Errorf("create princess: no %s animation", cfg.Idle)
	}
	template, err := NewAnimation(def, res)
	if err != nil {
		return nil, fmt.Errorf("create princess: %w", err)
	}

	entries := make([]*donburi.Entry, 0, len(spawns))
	for i, anim := range template.Clones(len(spawns)) {
		entries = append(entries, CreatePrincess(ecs, spawns[i], anim, res))
	}
	return entries, nil
}

// CreatePrincess places a princess playing anim at spawn.
func CreatePrincess(ecs *ecs.ECS, spawn assets.Spawn, anim *animations.Animation, res Resources) *donburi.Entry {
	if spawn.Flip {
		if res.Flip == nil {
			log.Printf("Warning: princess at (%.0f, %.0f) wants flipping but no flip is configured", spawn.X, spawn.Y)
		} else {
			anim.ApplyTransform(func(_ int, img animations.Image) animations.Image {
				return res.Flip(img)
			})
			anim.CommitTransforms()
		}
	}

	princess := archetypes.Princess.Spawn(ecs)

	obj := resolv.NewObject(spawn.X, spawn.Y, float64(cfg.Princess.Width), float64(cfg.Princess.Height), tags.ResolvPrincess)
	obj.Data = princess
	components.Object.SetValue(princess, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	animData := &components.AnimationData{
		Animations:   map[cfg.StateID]*animations.Animation{cfg.Idle: anim},
		CurrentState: cfg.StateNone,
	}
	animData.SetAnimation(cfg.Idle)
	components.Animation.Set(princess, animData)

	// The princess hovers using a *gween.Sequence of tweens, bobbing up and down.
	distance := float32(cfg.Princess.HoverDistance)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(0, -distance, cfg.Princess.HoverDuration, ease.InOutSine),
		gween.New(-distance, 0, cfg.Princess.HoverDuration, ease.InOutSine),
	)
	components.Hover.SetValue(princess, components.HoverData{BaseY: spawn.Y, Tween: tw})

	return princess
}
