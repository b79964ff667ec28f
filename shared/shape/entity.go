package shape

import "github.com/automoto/tilebound/shared/geom"

// EntityShape is the hitbox of one entity. Its anchor tracks the entity's
// world position and is only changed through MoveTo.
type EntityShape struct {
	// NoClip disables collision against every other shape.
	NoClip bool
	// Traverses lists the tile classes the entity may stand in.
	Traverses ClassMask

	geom geom.Set
}

// NewEntityShape returns a land-walking entity shape.
func NewEntityShape(at geom.Point, rects ...geom.Rect) *EntityShape {
	return &EntityShape{
		Traverses: MaskOf(Land),
		geom:      geom.NewSet(at, rects...),
	}
}

func (e *EntityShape) Anchor() geom.Point { return e.geom.Anchor }

// MoveTo commits a new anchor.
func (e *EntityShape) MoveTo(p geom.Point) { e.geom.MoveTo(p) }

func (e *EntityShape) Role() Role                    { return RoleEntity }
func (e *EntityShape) Geometry() geom.Set            { return e.geom }
func (e *EntityShape) CollidesWith(other Shape) bool { return collide(e, other) }
func (e *EntityShape) DebugDraw() []DrawCommand      { return drawSet(e.geom, NeutralColor) }
func (e *EntityShape) sealed()                       {}

// At returns a detached copy of e anchored at p, used to test a candidate
// position without committing it.
func (e *EntityShape) At(p geom.Point) *EntityShape {
	c := *e
	c.geom = e.geom.At(p)
	return &c
}
