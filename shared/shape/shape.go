// Package shape defines the collision roles built on a geom.Set: tile,
// entity, trigger and light-occluder shapes.
package shape

import (
	"image/color"

	"github.com/automoto/tilebound/shared/geom"
	"golang.org/x/image/colornames"
)

// Role names what a shape is used for.
type Role int

const (
	RoleTile Role = iota
	RoleEntity
	RoleTrigger
	RoleLight
)

var roleNames = [...]string{"tile", "entity", "trigger", "light"}

func (r Role) String() string {
	if r < RoleTile || r > RoleLight {
		return "unknown"
	}
	return roleNames[r]
}

// Shape is implemented only by the role types in this package.
type Shape interface {
	Role() Role
	Geometry() geom.Set
	CollidesWith(other Shape) bool
	DebugDraw() []DrawCommand

	sealed()
}

// DrawCommand asks a renderer to outline one absolute rectangle.
type DrawCommand struct {
	Rect  geom.Rect
	Color color.RGBA
}

// NeutralColor is used for every shape without a movement class.
var NeutralColor = colornames.Lightgray

func drawSet(s geom.Set, c color.RGBA) []DrawCommand {
	rects := s.AbsoluteRects()
	cmds := make([]DrawCommand, 0, len(rects))
	for _, r := range rects {
		cmds = append(cmds, DrawCommand{Rect: r, Color: c})
	}
	return cmds
}

// blocks applies the capability rules of a against b. Geometry is checked
// separately.
func blocks(a, b Shape) bool {
	switch s := a.(type) {
	case *EntityShape:
		if s.NoClip {
			return false
		}
	case *TileShape:
		if e, ok := b.(*EntityShape); ok {
			return s.Blocks(e)
		}
	case PlacedTile:
		if e, ok := b.(*EntityShape); ok {
			return s.Proto.Blocks(e)
		}
	}
	return true
}

func collide(a, b Shape) bool {
	if a == nil || b == nil {
		return false
	}
	if !blocks(a, b) || !blocks(b, a) {
		return false
	}
	return a.Geometry().Intersects(b.Geometry())
}

// TriggerShape is bound to one scene event and sits at a fixed location.
type TriggerShape struct {
	Event string
	geom  geom.Set
}

func NewTriggerShape(event string, at geom.Point, rects ...geom.Rect) *TriggerShape {
	return &TriggerShape{Event: event, geom: geom.NewSet(at, rects...)}
}

func (t *TriggerShape) Role() Role                    { return RoleTrigger }
func (t *TriggerShape) Geometry() geom.Set            { return t.geom }
func (t *TriggerShape) CollidesWith(other Shape) bool { return collide(t, other) }
func (t *TriggerShape) DebugDraw() []DrawCommand      { return drawSet(t.geom, NeutralColor) }
func (t *TriggerShape) sealed()                       {}
