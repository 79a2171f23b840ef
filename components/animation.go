package components

import (
	"github.com/automoto/platformer/assets/animations"
	"github.com/automoto/platformer/config"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

type AnimationData struct {
	Animations   map[config.StateID]*animations.Animation
	Current      *animations.Animation
	CurrentState config.StateID
	Offset       dmath.Vec2 // draw offset from the object's top-left corner
}

// SetAnimation makes the animation for state current and plays it. The
// previous animation is stopped so it restarts from its first frame the next
// time it is selected. Selecting the current state again only resumes it.
// It reports whether the current animation changed.
func (a *AnimationData) SetAnimation(state config.StateID) bool {
	if a.CurrentState == state && a.Current != nil {
		a.Current.Play()
		return false
	}

	if a.Current != nil {
		a.Current.Stop()
	}

	a.CurrentState = state
	a.Current = a.Animations[state]
	if a.Current != nil {
		a.Current.Play()
	}
	return true
}

// SetRate applies a playback rate to every animation in the set.
func (a *AnimationData) SetRate(rate float64) {
	for _, anim := range a.Animations {
		anim.SetRate(rate)
	}
}

var Animation = donburi.NewComponentType[AnimationData]()
