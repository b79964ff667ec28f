package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

// Config holds the logical screen size.
type Config struct {
	Width  int
	Height int
	Title  string
}

// WorldConfig contains the broad phase and entity defaults
type WorldConfig struct {
	CellWidth  int // broad-phase cell size in pixels
	CellHeight int

	// Player hitbox
	EntityWidth  int
	EntityHeight int

	// Movement
	MoveSpeed int // pixels per tick along one axis

	ExitEvent string // trigger event that advances to the next level
}

// LightingConfig contains point light defaults
type LightingConfig struct {
	PlayerRadius int  // radius of the light carried by the player, 0 disables it
	Margin       int  // extra pixels queried around a light's reach
	ShowRays     bool // draw the segments each light extracted
}

// PathConfig contains scripted mover defaults
type PathConfig struct {
	LegSeconds float32 // time to travel one waypoint leg
	TPS        float32 // ticks per second fed to the tweens
}

// PathsConfig locates the level files
type PathsConfig struct {
	Assets string
	Levels string
	Level  string // level stem to start on, empty means the first one
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // start with the collision overlay on
}

// ColorConfig contains overlay colors not derived from a shape
type ColorConfig struct {
	Background color.RGBA
	Segment    color.RGBA
	Light      color.RGBA
	Player     color.RGBA
	Trigger    color.RGBA
}

var C *Config
var World WorldConfig
var Lighting LightingConfig
var Path PathConfig
var Paths PathsConfig
var Debug DebugConfig
var Colors ColorConfig

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "tilebound",
	}

	World = WorldConfig{
		CellWidth:    16,
		CellHeight:   16,
		EntityWidth:  12,
		EntityHeight: 14,
		MoveSpeed:    2,
		ExitEvent:    "level_exit",
	}

	Lighting = LightingConfig{
		PlayerRadius: 96,
		Margin:       16,
		ShowRays:     true,
	}

	Path = PathConfig{
		LegSeconds: 2,
		TPS:        60,
	}

	// Defaults, can be overridden by CLI flags
	Paths = PathsConfig{
		Assets: "assets",
		Levels: "levels",
	}
	Debug = DebugConfig{
		Overlay: false,
	}

	Colors = ColorConfig{
		Background: color.RGBA{R: 16, G: 16, B: 24, A: 255},
		Segment:    color.RGBA{R: 255, G: 220, B: 80, A: 255},
		Light:      color.RGBA{R: 255, G: 255, B: 160, A: 255},
		Player:     color.RGBA{R: 0, G: 100, B: 255, A: 255},
		Trigger:    color.RGBA{R: 255, G: 0, B: 255, A: 120},
	}
}
