package systems

import (
	"github.com/automoto/platformer/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects applies hover tweens to their objects.
func UpdateObjects(ecs *ecs.ECS) {
	dt := tickSeconds()
	components.Hover.Each(ecs.World, func(e *donburi.Entry) {
		hover := components.Hover.Get(e)
		obj := components.Object.Get(e)
		obj.Y = hover.BaseY + advance(hover.Tween, dt)
		obj.Update()
	})
}
