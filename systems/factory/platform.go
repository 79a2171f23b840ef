package factory

import (
	"github.com/automoto/platformer/archetypes"
	"github.com/automoto/platformer/assets"
	"github.com/automoto/platformer/components"
	"github.com/automoto/platformer/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreatePlatform(ecs *ecs.ECS, tile assets.Tile) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	object := resolv.NewObject(tile.X, tile.Y, tile.Width, tile.Height, tags.ResolvSolid)
	object.Data = platform
	components.Object.SetValue(platform, components.ObjectData{Object: object})
	addToSpace(ecs, object)

	return platform
}

// CreateDieBlock creates a solid tile that kills the player on contact.
func CreateDieBlock(ecs *ecs.ECS, tile assets.Tile) *donburi.Entry {
	block := archetypes.DieBlock.Spawn(ecs)
	object := resolv.NewObject(tile.X, tile.Y, tile.Width, tile.Height, tags.ResolvSolid, tags.ResolvDie)
	object.Data = block
	components.Object.SetValue(block, components.ObjectData{Object: object})
	addToSpace(ecs, object)

	return block
}

// CreateTiles creates a platform or die block for every tile of the level.
func CreateTiles(ecs *ecs.ECS, tiles []assets.Tile) {
	for _, tile := range tiles {
		if tile.Kind == assets.TileDie {
			CreateDieBlock(ecs, tile)
		} else {
			CreatePlatform(ecs, tile)
		}
	}
}
