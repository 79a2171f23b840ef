package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"log"
	"path"
	"sort"

	"github.com/automoto/platformer/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/lafriks/go-tiled/render"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// Levels is the embedded level filesystem, rooted above the levels directory.
func Levels() fs.FS { return levelFS }

// Images is the embedded sprite filesystem, rooted above the images directory.
func Images() fs.FS { return imageFS }

// TileKind is what a level tile does when touched.
type TileKind int

const (
	TilePlatform TileKind = iota
	TileDie
)

func (k TileKind) String() string {
	if k == TileDie {
		return "die"
	}
	return "platform"
}

// Tile is one solid tile of the level in world coordinates.
type Tile struct {
	X, Y, Width, Height float64
	Kind                TileKind
}

// Spawn is a point placed in the level's spawn layer.
type Spawn struct {
	X, Y float64
	Flip bool // mirror the sprite horizontally
}

type Level struct {
	Background     *ebiten.Image
	Tiles          []Tile
	PlayerSpawn    Spawn
	PrincessSpawns []Spawn
	Name           string
	Width          int
	Height         int
	TileWidth      int
	TileHeight     int

	tmx  *tiled.Map
	fsys fs.FS
}

// LoadLevel parses a TMX level from fsys. The background is not rendered;
// call RenderBackground once a graphics context is available.
func LoadLevel(fsys fs.FS, levelPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load level %s: %w", levelPath, err)
	}

	level := &Level{
		Name:       levelPath,
		Width:      levelMap.Width * levelMap.TileWidth,
		Height:     levelMap.Height * levelMap.TileHeight,
		TileWidth:  levelMap.TileWidth,
		TileHeight: levelMap.TileHeight,
		tmx:        levelMap,
		fsys:       fsys,
	}

	foundPlayer := false
	for _, og := range levelMap.ObjectGroups {
		if og.Name != config.Level.SpawnLayer {
			continue
		}
		for _, o := range og.Objects {
			spawn := Spawn{X: o.X, Y: o.Y, Flip: o.Properties.GetBool("flip")}
			switch o.Name {
			case "player":
				if foundPlayer {
					log.Printf("Warning: %s: extra player spawn at (%.0f, %.0f) ignored", levelPath, o.X, o.Y)
					continue
				}
				level.PlayerSpawn = spawn
				foundPlayer = true
			case "princess":
				level.PrincessSpawns = append(level.PrincessSpawns, spawn)
			default:
				log.Printf("Warning: %s: unknown spawn %q", levelPath, o.Name)
			}
		}
	}
	if !foundPlayer {
		return nil, fmt.Errorf("level %s: no player spawn in %q", levelPath, config.Level.SpawnLayer)
	}
	sort.Slice(level.PrincessSpawns, func(i, j int) bool {
		return level.PrincessSpawns[i].X < level.PrincessSpawns[j].X
	})

	tileW := float64(levelMap.TileWidth)
	tileH := float64(levelMap.TileHeight)
	for _, layer := range levelMap.Layers {
		if layer.Name != config.Level.TileLayer {
			continue
		}
		for y := 0; y < levelMap.Height; y++ {
			for x := 0; x < levelMap.Width; x++ {
				tile := layer.Tiles[y*levelMap.Width+x]
				if tile.IsNil() {
					continue
				}

				kind := TilePlatform
				if tilesetTile, err := tile.Tileset.GetTilesetTile(tile.ID); err == nil {
					if tilesetTile.Properties.GetString("kind") == "die" {
						kind = TileDie
					}
				}

				level.Tiles = append(level.Tiles, Tile{
					X:      float64(x) * tileW,
					Y:      float64(y) * tileH,
					Width:  tileW,
					Height: tileH,
					Kind:   kind,
				})
			}
		}
		break
	}

	return level, nil
}

// RenderBackground draws every tile layer of the level into Background.
func (l *Level) RenderBackground() error {
	if l.tmx == nil {
		return fmt.Errorf("level %s: not loaded", l.Name)
	}

	renderer, err := render.NewRendererWithFileSystem(l.tmx, l.fsys)
	if err != nil {
		return fmt.Errorf("level %s: create renderer: %w", l.Name, err)
	}

	background := ebiten.NewImage(l.Width, l.Height)
	background.Fill(config.Level.BackgroundColor)
	for i, layer := range l.tmx.Layers {
		if err := renderer.RenderLayer(i); err != nil {
			log.Printf("Warning: Failed to render layer %s: %v", layer.Name, err)
			continue
		}
		layerImage := ebiten.NewImageFromImage(renderer.Result)
		op := &ebiten.DrawImageOptions{}
		if layer.Opacity > 0 {
			op.ColorScale.ScaleAlpha(float32(layer.Opacity))
		}
		background.DrawImage(layerImage, op)
		layerImage.Deallocate()
		renderer.Clear()
	}

	if l.Background != nil {
		l.Background.Deallocate()
	}
	l.Background = background
	return nil
}

// LevelPaths lists the TMX files under dir in fsys.
func LevelPaths(fsys fs.FS, dir string) ([]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read levels: %w", err)
	}
	var paths []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			paths = append(paths, path.Join(dir, entry.Name()))
		}
	}
	if len(paths) == 0 {
		return nil, fmt.Errorf("no level files in %s", dir)
	}
	return paths, nil
}
