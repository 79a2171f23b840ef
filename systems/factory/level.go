package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{CurrentLevel: level})
	return entry
}
