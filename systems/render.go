package systems

import (
	"github.com/automoto/platformer/assets/animations"
	"github.com/automoto/platformer/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// screenSurface draws animation frames onto the screen in world coordinates.
type screenSurface struct {
	screen *ebiten.Image
	offset dmath.Vec2
	op     ebiten.DrawImageOptions
}

func (s *screenSurface) DrawImage(img animations.Image, pos dmath.Vec2) {
	frame, ok := img.(*ebiten.Image)
	if !ok {
		return
	}
	s.op.GeoM.Reset()
	s.op.GeoM.Translate(pos.X+s.offset.X, pos.Y+s.offset.Y)
	s.screen.DrawImage(frame, &s.op)
}

// cameraOffset is the translation from world to screen coordinates.
func cameraOffset(camera *components.CameraData, width, height int) dmath.Vec2 {
	return dmath.Vec2{
		X: float64(width)/2 - camera.Position.X,
		Y: float64(height)/2 - camera.Position.Y,
	}
}

// DrawAnimated draws the current frame of every animated entity.
func DrawAnimated(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	// Culling bounds
	padding := 64.0
	minX := camera.Position.X - float64(width)/2 - padding
	maxX := camera.Position.X + float64(width)/2 + padding
	minY := camera.Position.Y - float64(height)/2 - padding
	maxY := camera.Position.Y + float64(height)/2 + padding

	surface := &screenSurface{screen: screen, offset: cameraOffset(camera, width, height)}

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.Current == nil {
			return
		}
		o := components.Object.Get(e)
		if o.X+o.W < minX || o.X > maxX || o.Y+o.H < minY || o.Y > maxY {
			return
		}
		anim.Current.Draw(surface, dmath.Vec2{X: o.X + anim.Offset.X, Y: o.Y + anim.Offset.Y})
	})
}
