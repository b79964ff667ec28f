package collision

import (
	"github.com/automoto/tilebound/shared/geom"
	"github.com/automoto/tilebound/shared/shape"
	"github.com/solarlune/resolv"
)

// Resolv tags, one per shape role.
const (
	tagSolid    = "solid"
	tagEntity   = "entity"
	tagTrigger  = "trigger"
	tagOccluder = "occluder"
	tagProbe    = "probe"
)

func roleTag(r shape.Role) string {
	switch r {
	case shape.RoleTile:
		return tagSolid
	case shape.RoleEntity:
		return tagEntity
	case shape.RoleTrigger:
		return tagTrigger
	case shape.RoleLight:
		return tagOccluder
	}
	return tagProbe
}

// Grid is a uniform-cell broad phase over a resolv.Space. Each shape is
// stored as one resolv object covering its bounding box; Near only narrows
// the candidate list, callers still run Test on the results.
type Grid struct {
	space   *resolv.Space
	objects map[shape.Shape]*resolv.Object
	probe   *resolv.Object
}

// NewGrid covers a width x height world with cells of cellW x cellH.
func NewGrid(width, height, cellW, cellH int) *Grid {
	return &Grid{
		space:   resolv.NewSpace(width, height, cellW, cellH),
		objects: make(map[shape.Shape]*resolv.Object),
		probe:   resolv.NewObject(0, 0, 1, 1, tagProbe),
	}
}

// Len returns the number of indexed shapes.
func (g *Grid) Len() int {
	return len(g.objects)
}

// Add indexes s. Shapes with no area are not indexed.
func (g *Grid) Add(s shape.Shape) {
	if _, ok := g.objects[s]; ok {
		g.Sync(s)
		return
	}
	bounds, ok := s.Geometry().Bounds()
	if !ok {
		return
	}
	obj := resolv.NewObject(
		float64(bounds.X), float64(bounds.Y),
		float64(bounds.W), float64(bounds.H),
		roleTag(s.Role()),
	)
	obj.Data = s
	g.space.Add(obj)
	g.objects[s] = obj
}

// Remove drops s from the index.
func (g *Grid) Remove(s shape.Shape) {
	obj, ok := g.objects[s]
	if !ok {
		return
	}
	g.space.Remove(obj)
	delete(g.objects, s)
}

// Sync refreshes the cells of s after its anchor moved.
func (g *Grid) Sync(s shape.Shape) {
	obj, ok := g.objects[s]
	if !ok {
		g.Add(s)
		return
	}
	bounds, ok := s.Geometry().Bounds()
	if !ok {
		g.Remove(s)
		return
	}
	obj.X, obj.Y = float64(bounds.X), float64(bounds.Y)
	obj.W, obj.H = float64(bounds.W), float64(bounds.H)
	obj.Update()
}

// Near returns the indexed shapes with one of the given roles whose cells
// overlap bounds. With no roles every indexed shape is a candidate.
func (g *Grid) Near(bounds geom.Rect, roles ...shape.Role) []shape.Shape {
	if bounds.Empty() {
		return nil
	}
	tags := make([]string, 0, 4)
	if len(roles) == 0 {
		tags = append(tags, tagSolid, tagEntity, tagTrigger, tagOccluder)
	}
	for _, r := range roles {
		tags = append(tags, roleTag(r))
	}

	g.probe.X, g.probe.Y = float64(bounds.X), float64(bounds.Y)
	g.probe.W, g.probe.H = float64(bounds.W), float64(bounds.H)
	g.space.Add(g.probe)
	defer g.space.Remove(g.probe)

	check := g.probe.Check(0, 0, tags...)
	if check == nil {
		return nil
	}
	found := make([]shape.Shape, 0, len(check.Objects))
	for _, obj := range check.Objects {
		if s, ok := obj.Data.(shape.Shape); ok {
			found = append(found, s)
		}
	}
	return found
}

// Colliding returns the indexed shapes with the given roles that collide
// with s.
func (g *Grid) Colliding(s shape.Shape, roles ...shape.Role) []shape.Shape {
	bounds, ok := s.Geometry().Bounds()
	if !ok {
		return nil
	}
	return All(s, g.Near(bounds, roles...))
}
