package factory

import (
	"fmt"

	"github.com/automoto/platformer/assets/animations"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
)

// Resources is what factories need to build animated entities.
type Resources struct {
	Loader animations.Loader

	// Clock drives every animation built from these resources; nil uses the
	// wall clock.
	Clock animations.Clock

	// Copy bakes transformed frames; nil keeps the transformed image itself.
	Copy func(animations.Image) animations.Image

	// Flip mirrors a frame horizontally.
	Flip func(animations.Image) animations.Image
}

func (r Resources) options() []animations.Option {
	opts := []animations.Option{animations.WithLoader(r.Loader)}
	if r.Clock != nil {
		opts = append(opts, animations.WithClock(r.Clock))
	}
	if r.Copy != nil {
		opts = append(opts, animations.WithImageCopier(r.Copy))
	}
	return opts
}

// NewAnimation builds one animation from its definition.
func NewAnimation(def cfg.AnimationDef, res Resources) (*animations.Animation, error) {
	specs := make([]animations.FrameSpec, len(def.Frames))
	for i, f := range def.Frames {
		specs[i] = animations.FrameSpec{
			Source:   animations.Path(f.Image),
			Duration: f.Duration,
		}
	}
	return animations.New(specs, def.Loop, res.options()...)
}

// GenerateAnimations creates an AnimationData component based on the character key
// (e.g., "player", "princess") which maps to a set of animation definitions in config.
// Nothing is playing until a state is selected.
func GenerateAnimations(key string, res Resources) (*components.AnimationData, error) {
	defs, ok := cfg.CharacterAnimations[key]
	if !ok {
		return nil, fmt.Errorf("no animation definitions found for key: %s", key)
	}

	animData := &components.AnimationData{
		Animations:   make(map[cfg.StateID]*animations.Animation, len(defs)),
		CurrentState: cfg.StateNone,
	}

	for state, def := range defs {
		anim, err := NewAnimation(def, res)
		if err != nil {
			return nil, fmt.Errorf("%s/%s: %w", key, state, err)
		}
		animData.Animations[state] = anim
	}

	return animData, nil
}
