package systems

import (
	"math"

	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/config"
	"github.com/automoto/platformer/tags"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// CameraTarget clamps a camera centre so the level always fills the screen.
// A level smaller than the screen is pinned to its top-left corner.
func CameraTarget(target dmath.Vec2, screenW, screenH, levelW, levelH float64) dmath.Vec2 {
	minX := screenW / 2
	maxX := math.Max(minX, levelW-screenW/2)
	minY := screenH / 2
	maxY := math.Max(minY, levelH-screenH/2)

	return dmath.Vec2{
		X: math.Max(minX, math.Min(maxX, target.X)),
		Y: math.Max(minY, math.Min(maxY, target.Y)),
	}
}

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	target := CameraTarget(
		dmath.Vec2{X: playerObject.X + playerObject.W/2, Y: playerObject.Y + playerObject.H/2},
		float64(config.C.Width), float64(config.C.Height),
		float64(levelData.CurrentLevel.Width), float64(levelData.CurrentLevel.Height),
	)

	camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
}
