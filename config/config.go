package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the scene uses.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// LevelConfig contains level loading and drawing values
type LevelConfig struct {
	TileWidth       int
	TileHeight      int
	Default         string // path inside the level filesystem
	TileLayer       string // tile layer holding platforms and die blocks
	SpawnLayer      string // object group holding player and princess spawns
	BackgroundColor color.RGBA
}

// PlayerConfig contains player sprite and animation values
type PlayerConfig struct {
	// Dimensions
	Width  int
	Height int

	// Animation
	AnimationDelay           float64 // seconds per walk frame
	SuperSpeedAnimationDelay float64 // seconds per walk frame while running

	// State selection
	MoveThreshold float64 // speed below which the player counts as standing
	RunThreshold  float64 // horizontal speed above which the player runs

	// Demo patrol, all durations in seconds
	PatrolDistance float32
	WalkDuration   float32
	RunDuration    float32
	RestDuration   float32
	HopHeight      float32
	HopDuration    float32 // each way
	HopRest        float32
}

// RunRate is the playback rate that turns the normal walk delay into the
// running one.
func (p PlayerConfig) RunRate() float64 {
	if p.SuperSpeedAnimationDelay <= 0 {
		return 1
	}
	return p.AnimationDelay / p.SuperSpeedAnimationDelay
}

// PrincessConfig contains the animated princess block values
type PrincessConfig struct {
	Width         int
	Height        int
	HoverDistance float64 // pixels
	HoverDuration float32 // seconds per half cycle
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // 1.0 snaps to the target every tick
}

// UIConfig contains debug overlay values
type UIConfig struct {
	DebugFontSize  float64
	DebugTextColor color.RGBA
	DebugBoxColor  color.RGBA
	DebugMargin    int
}

// VictoryConfig contains the princess rescue screen values
type VictoryConfig struct {
	Message         string
	RecordFormat    string // rescues, deaths, fastest rescue in seconds
	TitleY          int
	TextColor       color.RGBA
	BackgroundColor color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled   bool   // draw the animation overlay
	WatchPath string // animation definition file to hot reload, empty disables
}

// Global configuration instances
var C *Config
var Level LevelConfig
var Player PlayerConfig
var Princess PrincessConfig
var Camera CameraConfig
var UI UIConfig
var Victory VictoryConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Grey         = color.RGBA{R: 136, G: 136, B: 136, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 640,
		Title:  "Mario game",
	}

	Level = LevelConfig{
		TileWidth:       32,
		TileHeight:      32,
		Default:         "levels/1.tmx",
		TileLayer:       "platforms",
		SpawnLayer:      "spawns",
		BackgroundColor: Black,
	}

	Player = PlayerConfig{
		Width:                    22,
		Height:                   32,
		AnimationDelay:           0.1,
		SuperSpeedAnimationDelay: 0.05,
		MoveThreshold:            0.01,
		RunThreshold:             2.0,
		PatrolDistance:           160,
		WalkDuration:             2.0,
		RunDuration:              1.0,
		RestDuration:             0.8,
		HopHeight:                48,
		HopDuration:              0.35,
		HopRest:                  1.1,
	}

	Princess = PrincessConfig{
		Width:         32,
		Height:        32,
		HoverDistance: 4,
		HoverDuration: 1.2,
	}

	Camera = CameraConfig{
		FollowSmoothing: 1.0,
	}

	UI = UIConfig{
		DebugFontSize:  12,
		DebugTextColor: White,
		DebugBoxColor:  BlackOverlay,
		DebugMargin:    8,
	}

	Victory = VictoryConfig{
		Message:         "Thank you! You rescued the princess.",
		RecordFormat:    "Rescues: %d  Deaths: %d  Fastest: %.1fs",
		TitleY:          200,
		TextColor:       White,
		BackgroundColor: Black,
	}

	Debug = DebugConfig{}
}
