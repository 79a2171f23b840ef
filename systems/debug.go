package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/platformer/components"
	cfg "github.com/automoto/platformer/config"
	"github.com/automoto/platformer/fonts"
	"github.com/automoto/platformer/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DebugLines describes the playback state of the player and princesses.
func DebugLines(ecs *ecs.ECS) []string {
	var lines []string

	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		player := components.Player.Get(playerEntry)
		anim := components.Animation.Get(playerEntry)
		lines = append(lines, fmt.Sprintf("player %s running=%v deaths=%d", player.State, player.Running, player.Deaths))
		if a := anim.Current; a != nil {
			lines = append(lines, fmt.Sprintf("  %s frame %d/%d elapsed %.2fs rate %.1f",
				a.State(), a.CurrentFrameIndex()+1, a.NumFrames(), a.Elapsed(), a.Rate()))
		} else {
			lines = append(lines, "  no animation")
		}
	}

	tags.Princess.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.Current == nil {
			return
		}
		obj := components.Object.Get(e)
		lines = append(lines, fmt.Sprintf("princess (%.0f, %.0f) frame %d/%d",
			obj.X, obj.Y, anim.Current.CurrentFrameIndex()+1, anim.Current.NumFrames()))
	})

	return lines
}

// DrawDebug outlines contact objects and prints animation state.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	offset := cameraOffset(camera, width, height)

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)

		viewX := camera.Position.X - float64(width)/2
		viewY := camera.Position.Y - float64(height)/2

		for _, obj := range space.Objects() {
			if obj.X+obj.W < viewX || obj.X > viewX+float64(width) || obj.Y+obj.H < viewY || obj.Y > viewY+float64(height) {
				continue
			}

			x := obj.X + offset.X
			y := obj.Y + offset.Y

			c := cfg.Cyan
			if obj.HasTags(tags.ResolvDie) {
				c = cfg.Red
			} else if obj.HasTags(tags.ResolvSolid) {
				c = cfg.Grey
			}

			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)
			vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false)
			vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)
			vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false)
		}
	}

	if !fonts.Loaded(fonts.Debug) {
		return
	}
	lines := append([]string{fmt.Sprintf("tps %.0f", ebiten.ActualTPS())}, DebugLines(ecs)...)
	face := fonts.Debug.Get()
	lineHeight := face.Metrics().Height.Ceil()
	margin := cfg.UI.DebugMargin

	boxW := 0
	for _, line := range lines {
		if w := text.BoundString(face, line).Dx(); w > boxW {
			boxW = w
		}
	}
	boxH := lineHeight * len(lines)
	vector.FillRect(screen, float32(margin/2), float32(margin/2),
		float32(boxW+margin), float32(boxH+margin), cfg.UI.DebugBoxColor, false)

	var textColor color.Color = cfg.UI.DebugTextColor
	for i, line := range lines {
		text.Draw(screen, line, face, margin, margin+lineHeight*(i+1)-lineHeight/4, textColor)
	}
}
