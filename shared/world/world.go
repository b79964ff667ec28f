// Package world places the shapes of a loaded level into per-layer
// collision grids and answers the queries the movement, trigger and
// lighting systems make each tick.
package world

import (
	"github.com/automoto/tilebound/shared/geom"
	"github.com/automoto/tilebound/shared/leveldata"
	"github.com/automoto/tilebound/shared/shape"
)

// MainLayer names the layer created for levels without collision layers.
const MainLayer = "main"

// World is a loaded level ready for simulation.
type World struct {
	Name          string
	Width, Height int
	Tiles         *shape.TileIndex
	Layers        []*Layer
	Lights        []leveldata.LightSpawn
	Movers        []leveldata.MoverSpawn
	SpawnPoints   []leveldata.SpawnPoint
}

// New builds a World from lvl with broad-phase cells of cellW x cellH.
// Triggers and occluders from object groups are placed on the first
// layer.
func New(lvl *leveldata.Level, cellW, cellH int) *World {
	w := &World{
		Name:        lvl.Name,
		Width:       lvl.MapWidth,
		Height:      lvl.MapHeight,
		Tiles:       lvl.Tiles,
		Lights:      lvl.Lights,
		Movers:      lvl.Movers,
		SpawnPoints: lvl.SpawnPoints,
	}
	if w.Tiles == nil {
		w.Tiles = shape.NewTileIndex()
	}

	for _, data := range lvl.Layers {
		l := NewLayer(data.Name, w.Width, w.Height, cellW, cellH)
		for _, p := range data.Placements {
			l.AddTile(p)
		}
		w.Layers = append(w.Layers, l)
	}
	if len(w.Layers) == 0 {
		w.Layers = append(w.Layers, NewLayer(MainLayer, w.Width, w.Height, cellW, cellH))
	}

	first := w.Layers[0]
	for _, t := range lvl.Triggers {
		first.AddTrigger(shape.NewTriggerShape(t.Event, geom.Point{X: t.Rect.X, Y: t.Rect.Y},
			geom.Rect{W: t.Rect.W, H: t.Rect.H}))
	}
	for _, o := range lvl.Occluders {
		first.AddOccluder(shape.NewLightShape(o.Rules, o.At, o.Rects...))
	}
	return w
}

// Layer returns the layer named name, or the first layer when no layer
// matches.
func (w *World) Layer(name string) *Layer {
	for _, l := range w.Layers {
		if l.Name == name {
			return l
		}
	}
	return w.Layers[0]
}

// SpawnAt returns the spawn point for index, falling back to the first
// spawn and then to the map origin.
func (w *World) SpawnAt(index int) leveldata.SpawnPoint {
	for _, sp := range w.SpawnPoints {
		if sp.Index == index {
			return sp
		}
	}
	if len(w.SpawnPoints) > 0 {
		return w.SpawnPoints[0]
	}
	return leveldata.SpawnPoint{}
}
