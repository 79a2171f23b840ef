package components

import (
	"github.com/automoto/platformer/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Velocity math.Vec2 // pixels per tick
	Running  bool
	OnGround bool
	State    config.StateID
	Spawn    math.Vec2
	Deaths   int
	Winner   bool
}

var Player = donburi.NewComponentType[PlayerData]()

// PatrolData moves an entity along a scripted path relative to Origin.
// X and Y are looping tween sequences of offsets in pixels.
type PatrolData struct {
	Origin math.Vec2
	X      *gween.Sequence
	Y      *gween.Sequence
}

var Patrol = donburi.NewComponentType[PatrolData]()
