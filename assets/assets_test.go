package assets

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/platformer/config"
)

func TestLoadDefaultLevel(t *testing.T) {
	level, err := LoadLevel(Levels(), config.Level.Default)
	if err != nil {
		t.Fatalf("LoadLevel: %v", err)
	}

	if level.Width != 40*32 || level.Height != 25*32 {
		t.Fatalf("level size %dx%d", level.Width, level.Height)
	}
	if level.TileWidth != config.Level.TileWidth || level.TileHeight != config.Level.TileHeight {
		t.Fatalf("tile size %dx%d", level.TileWidth, level.TileHeight)
	}

	platforms, dies := 0, 0
	for _, tile := range level.Tiles {
		switch tile.Kind {
		case TilePlatform:
			platforms++
		case TileDie:
			dies++
		}
		if tile.Width != 32 || tile.Height != 32 {
			t.Fatalf("tile at (%v, %v) is %vx%v", tile.X, tile.Y, tile.Width, tile.Height)
		}
	}
	if platforms != 157 || dies != 4 {
		t.Fatalf("got %d platforms and %d die blocks", platforms, dies)
	}

	if level.PlayerSpawn.X != 55 || level.PlayerSpawn.Y != 736 {
		t.Fatalf("player spawn %+v", level.PlayerSpawn)
	}

	if len(level.PrincessSpawns) != 2 {
		t.Fatalf("got %d princess spawns", len(level.PrincessSpawns))
	}
	first, second := level.PrincessSpawns[0], level.PrincessSpawns[1]
	if first.X != 640 || !first.Flip {
		t.Errorf("first princess %+v, want x=640 flipped", first)
	}
	if second.X != 1024 || second.Flip {
		t.Errorf("second princess %+v, want x=1024 unflipped", second)
	}
}

const levelWithoutPlayer = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="1" tilewidth="32" tileheight="32" infinite="0">
 <tileset firstgid="1" name="tiles" tilewidth="32" tileheight="32" tilecount="1" columns="1">
  <image source="tiles.png" width="32" height="32"/>
 </tileset>
 <layer id="1" name="platforms" width="2" height="1">
  <data encoding="csv">1,0</data>
 </layer>
 <objectgroup id="2" name="spawns">
  <object id="1" name="princess" x="32" y="0" width="32" height="32"/>
 </objectgroup>
</map>
`

func TestLoadLevelErrors(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/empty.tmx": {Data: []byte(levelWithoutPlayer)},
	}

	if _, err := LoadLevel(fsys, "levels/empty.tmx"); err == nil || !strings.Contains(err.Error(), "no player spawn") {
		t.Fatalf("expected missing spawn error, got %v", err)
	}
	if _, err := LoadLevel(fsys, "levels/missing.tmx"); err == nil {
		t.Fatalf("expected error for missing level")
	}
}

func TestRenderBackgroundNeedsLoadedLevel(t *testing.T) {
	var level Level
	if err := level.RenderBackground(); err == nil {
		t.Fatalf("expected error for unloaded level")
	}
}

func TestLevelPaths(t *testing.T) {
	paths, err := LevelPaths(Levels(), "levels")
	if err != nil {
		t.Fatalf("LevelPaths: %v", err)
	}
	if len(paths) != 1 || paths[0] != config.Level.Default {
		t.Fatalf("paths %v", paths)
	}

	empty := fstest.MapFS{"levels/readme.txt": {Data: []byte("x")}}
	if _, err := LevelPaths(empty, "levels"); err == nil {
		t.Fatalf("expected error when no tmx files exist")
	}
	if _, err := LevelPaths(empty, "nowhere"); err == nil {
		t.Fatalf("expected error for missing dir")
	}
}
