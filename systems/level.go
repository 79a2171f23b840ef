package systems

import (
	"github.com/automoto/platformer/components"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil || levelData.CurrentLevel.Background == nil {
		return
	}

	offset := cameraOffset(camera, width, height)
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(offset.X, offset.Y)
	screen.DrawImage(levelData.CurrentLevel.Background, opts)
}
