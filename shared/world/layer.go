package world

import (
	"sort"

	"github.com/automoto/tilebound/shared/collision"
	"github.com/automoto/tilebound/shared/geom"
	"github.com/automoto/tilebound/shared/occlusion"
	"github.com/automoto/tilebound/shared/shape"
)

// Layer is one collision layer. An entity only collides with the tiles
// and entities of its own layer.
type Layer struct {
	Name string

	grid      *collision.Grid
	tiles     []shape.PlacedTile
	entities  []*shape.EntityShape
	triggers  []*shape.TriggerShape
	occluders []*shape.LightShape

	// insertion order, so grid results come back deterministic
	order map[shape.Shape]int
	next  int
}

func NewLayer(name string, width, height, cellW, cellH int) *Layer {
	return &Layer{
		Name:  name,
		grid:  collision.NewGrid(width, height, cellW, cellH),
		order: make(map[shape.Shape]int),
	}
}

func (l *Layer) add(s shape.Shape) {
	l.order[s] = l.next
	l.next++
	l.grid.Add(s)
}

func (l *Layer) AddTile(p shape.PlacedTile) {
	if p.Proto == nil {
		return
	}
	l.tiles = append(l.tiles, p)
	l.add(p)
}

func (l *Layer) AddEntity(e *shape.EntityShape) {
	if e == nil {
		return
	}
	if _, ok := l.order[e]; ok {
		return
	}
	l.entities = append(l.entities, e)
	l.add(e)
}

func (l *Layer) RemoveEntity(e *shape.EntityShape) {
	if _, ok := l.order[e]; !ok {
		return
	}
	for i, other := range l.entities {
		if other == e {
			l.entities = append(l.entities[:i], l.entities[i+1:]...)
			break
		}
	}
	delete(l.order, e)
	l.grid.Remove(e)
}

func (l *Layer) AddTrigger(t *shape.TriggerShape) {
	l.triggers = append(l.triggers, t)
	l.add(t)
}

func (l *Layer) AddOccluder(o *shape.LightShape) {
	l.occluders = append(l.occluders, o)
	l.add(o)
}

func (l *Layer) Tiles() []shape.PlacedTile          { return l.tiles }
func (l *Layer) Entities() []*shape.EntityShape     { return l.entities }
func (l *Layer) AllTriggers() []*shape.TriggerShape { return l.triggers }
func (l *Layer) AllOccluders() []*shape.LightShape  { return l.occluders }

// Blocked reports whether e would collide with a tile or another entity
// of this layer when anchored at candidate.
func (l *Layer) Blocked(e *shape.EntityShape, candidate geom.Point) bool {
	probe := e.At(candidate)
	bounds, ok := probe.Geometry().Bounds()
	if !ok {
		return false
	}
	for _, s := range l.grid.Near(bounds, shape.RoleTile, shape.RoleEntity) {
		if other, ok := s.(*shape.EntityShape); ok && other == e {
			continue
		}
		if collision.Test(probe, s) {
			return true
		}
	}
	return false
}

// Sync refreshes the broad phase after e moved.
func (l *Layer) Sync(e *shape.EntityShape) {
	if _, ok := l.order[e]; !ok {
		return
	}
	l.grid.Sync(e)
}

// Triggers returns the triggers e currently overlaps, in insertion order.
func (l *Layer) Triggers(e *shape.EntityShape) []*shape.TriggerShape {
	hits := l.sorted(l.grid.Colliding(e, shape.RoleTrigger))
	found := make([]*shape.TriggerShape, 0, len(hits))
	for _, s := range hits {
		if t, ok := s.(*shape.TriggerShape); ok {
			found = append(found, t)
		}
	}
	return found
}

// Occluders returns the occluders whose bounds overlap around, in
// insertion order.
func (l *Layer) Occluders(around geom.Rect) []*shape.LightShape {
	near := l.sorted(l.grid.Near(around, shape.RoleLight))
	found := make([]*shape.LightShape, 0, len(near))
	for _, s := range near {
		if o, ok := s.(*shape.LightShape); ok && collision.TestRect(o, around) {
			found = append(found, o)
		}
	}
	return found
}

// LightSegments returns the occluding segments for a light at p, using
// only the occluders within reach pixels of it.
func (l *Layer) LightSegments(p geom.Point, reach int) []geom.Segment {
	around := geom.Rect{X: p.X - reach, Y: p.Y - reach, W: 2 * reach, H: 2 * reach}
	return occlusion.Segments(p, l.Occluders(around))
}

func (l *Layer) sorted(shapes []shape.Shape) []shape.Shape {
	sort.Slice(shapes, func(i, j int) bool {
		return l.order[shapes[i]] < l.order[shapes[j]]
	})
	return shapes
}

// DebugDraw collects the draw commands of every shape in the layer.
func (l *Layer) DebugDraw() []shape.DrawCommand {
	var cmds []shape.DrawCommand
	for _, t := range l.tiles {
		cmds = append(cmds, t.DebugDraw()...)
	}
	for _, t := range l.triggers {
		cmds = append(cmds, t.DebugDraw()...)
	}
	for _, o := range l.occluders {
		cmds = append(cmds, o.DebugDraw()...)
	}
	for _, e := range l.entities {
		cmds = append(cmds, e.DebugDraw()...)
	}
	return cmds
}
