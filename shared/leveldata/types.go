// Package leveldata parses TMX levels into the collision and occlusion
// inputs of a world. It has no dependencies on ebitengine, donburi, or
// resolv: pure data only.
package leveldata

import (
	"github.com/automoto/tilebound/shared/geom"
	"github.com/automoto/tilebound/shared/shape"
)

// Level holds everything a world needs from one TMX file.
type Level struct {
	Name       string
	MapWidth   int // pixels
	MapHeight  int
	TileWidth  int
	TileHeight int

	// Tiles owns one prototype per (tileset, tile coordinate). Every
	// placement points into it.
	Tiles       *shape.TileIndex
	Layers      []LayerData
	Triggers    []TriggerSpawn
	Occluders   []OccluderSpawn
	Lights      []LightSpawn
	Movers      []MoverSpawn
	SpawnPoints []SpawnPoint
}

// LayerData is one collision layer of placed tiles.
type LayerData struct {
	Name       string
	Placements []shape.PlacedTile
}

// TriggerSpawn is a trigger area bound to a scene event.
type TriggerSpawn struct {
	Event string
	Rect  geom.Rect
}

// OccluderSpawn is a static light occluder. Rects are relative to At.
type OccluderSpawn struct {
	RulesName string
	Rules     shape.Rules
	At        geom.Point
	Rects     []geom.Rect
}

// LightSpawn is a point light.
type LightSpawn struct {
	At     geom.Point
	Radius int
}

// MoverSpawn is a scripted body that shuttles between Rect's origin and
// that origin offset by Travel.
type MoverSpawn struct {
	Rect   geom.Rect
	Travel geom.Point
	Layer  string
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y  int
	Index int
	Layer string
}
