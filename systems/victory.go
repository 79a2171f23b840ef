package systems

import (
	"github.com/automoto/platformer/assets/animations"
	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// SceneChanger switches the running scene.
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateVictory creates an UpdateVictory system that moves on to the
// scene built by next once the banner animation has finished. Drawing a
// finished banner stops it, so a stopped banner counts as finished.
func NewUpdateVictory(sceneChanger SceneChanger, next func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.Victory.First(e.World)
		if !ok {
			return
		}
		victory := components.Victory.Get(entry)
		banner := victory.Banner
		if banner == nil || banner.State() == animations.Stopped || banner.IsFinished() {
			sceneChanger.ChangeScene(next())
		}
	}
}

// DrawVictory renders the rescue message with the banner animation under it.
func DrawVictory(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Victory.First(e.World)
	if !ok {
		return
	}
	victory := components.Victory.Get(entry)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.Victory.BackgroundColor, false)

	if fonts.Loaded(fonts.Regular) {
		face := fonts.Regular.Get()
		textWidth := text.BoundString(face, victory.Message).Dx()
		text.Draw(screen, victory.Message, face, int(width-float64(textWidth))/2, cfg.Victory.TitleY, cfg.Victory.TextColor)

		if victory.Record != "" {
			recordWidth := text.BoundString(face, victory.Record).Dx()
			text.Draw(screen, victory.Record, face, int(width-float64(recordWidth))/2, cfg.Victory.TitleY+96, cfg.Victory.TextColor)
		}
	}

	if victory.Banner == nil {
		return
	}
	frame := victory.Banner.CurrentFrame().Bounds()
	surface := &screenSurface{screen: screen}
	victory.Banner.Draw(surface, dmath.Vec2{
		X: (width - float64(frame.Dx())) / 2,
		Y: float64(cfg.Victory.TitleY) + 32,
	})
}
