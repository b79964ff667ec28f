// Package occlusion extracts the rectangle edges of light-occluder shapes
// that block a point light. The output feeds a shadow renderer; it is not a
// visibility polygon.
package occlusion

import (
	"github.com/automoto/tilebound/shared/geom"
	"github.com/automoto/tilebound/shared/shape"
)

// Region is where a light sits relative to one rectangle.
type Region int

const (
	Inside Region = iota
	Above
	RightOf
	Below
	LeftOf
	AboveLeft
	AboveRight
	BelowLeft
	BelowRight
)

var regionNames = [...]string{
	"inside", "above", "right", "below", "left",
	"above-left", "above-right", "below-left", "below-right",
}

func (r Region) String() string {
	if r < Inside || r > BelowRight {
		return "unknown"
	}
	return regionNames[r]
}

// Diagonal reports whether the region is one of the four corner quadrants.
func (r Region) Diagonal() bool {
	return r >= AboveLeft
}

// Facing returns the edges of the rectangle that face a light in region r.
func (r Region) Facing() []shape.Edge {
	switch r {
	case Above:
		return []shape.Edge{shape.EdgeTop}
	case RightOf:
		return []shape.Edge{shape.EdgeRight}
	case Below:
		return []shape.Edge{shape.EdgeBottom}
	case LeftOf:
		return []shape.Edge{shape.EdgeLeft}
	case AboveLeft:
		return []shape.Edge{shape.EdgeTop, shape.EdgeLeft}
	case AboveRight:
		return []shape.Edge{shape.EdgeTop, shape.EdgeRight}
	case BelowLeft:
		return []shape.Edge{shape.EdgeBottom, shape.EdgeLeft}
	case BelowRight:
		return []shape.Edge{shape.EdgeBottom, shape.EdgeRight}
	}
	return nil
}

// Classify places p relative to r. The spans are closed on both ends, so a
// light on an edge or exactly on a corner counts as Inside, and a light on
// the extension of an edge counts as aligned with the facing side.
func Classify(p geom.Point, r geom.Rect) Region {
	inX := p.X >= r.X && p.X <= r.Right()
	inY := p.Y >= r.Y && p.Y <= r.Bottom()
	above, left := p.Y < r.Y, p.X < r.X

	switch {
	case inX && inY:
		return Inside
	case inX && above:
		return Above
	case inX:
		return Below
	case inY && left:
		return LeftOf
	case inY:
		return RightOf
	case above && left:
		return AboveLeft
	case above:
		return AboveRight
	case left:
		return BelowLeft
	}
	return BelowRight
}

// Occluding returns, per edge, whether that edge of r blocks a light at p
// under rules.
func Occluding(p geom.Point, r geom.Rect, rules shape.Rules) [4]bool {
	var out [4]bool
	region := Classify(p, r)
	facing := region.Facing()

	switch {
	case region == Inside:
		m := rules[0].Merge(rules[1]).Merge(rules[2]).Merge(rules[3])
		for _, e := range shape.Edges {
			out[e] = !m.Out[e]
		}

	case region.Diagonal():
		f1, f2 := facing[0], facing[1]
		m := rules[f1].Merge(rules[f2])
		admitted := m.In[f1] || m.In[f2]
		for _, e := range shape.Edges {
			if e == f1 || e == f2 {
				out[e] = !admitted
				continue
			}
			out[e] = !m.In[e]
		}

	default:
		entry := facing[0]
		rs := rules[entry]
		for _, e := range shape.Edges {
			if e == entry {
				out[e] = !rs.In[e]
				continue
			}
			out[e] = !rs.Out[e]
		}
	}
	return out
}

// EdgeSegment returns edge e of r, wound clockwise.
func EdgeSegment(r geom.Rect, e shape.Edge) geom.Segment {
	tl, tr, br, bl := r.Corners()
	switch e {
	case shape.EdgeTop:
		return geom.Segment{A: tl, B: tr}
	case shape.EdgeRight:
		return geom.Segment{A: tr, B: br}
	case shape.EdgeBottom:
		return geom.Segment{A: br, B: bl}
	}
	return geom.Segment{A: bl, B: tl}
}

// Segments returns every rectangle edge of shapes that blocks a light at
// source, shape by shape and rectangle by rectangle, edges clockwise from
// the top. Overlapping edges of neighbouring rectangles are not merged.
func Segments(source geom.Point, shapes []*shape.LightShape) []geom.Segment {
	var segs []geom.Segment
	for _, s := range shapes {
		segs = appendShape(segs, source, s)
	}
	return segs
}

// ShapeSegments is Segments for a single shape.
func ShapeSegments(source geom.Point, s *shape.LightShape) []geom.Segment {
	return appendShape(nil, source, s)
}

func appendShape(segs []geom.Segment, source geom.Point, s *shape.LightShape) []geom.Segment {
	if s == nil {
		return segs
	}
	for _, r := range s.Geometry().AbsoluteRects() {
		if r.Empty() {
			continue
		}
		blocked := Occluding(source, r, s.Rules)
		for _, e := range shape.Edges {
			if blocked[e] {
				segs = append(segs, EdgeSegment(r, e))
			}
		}
	}
	return segs
}
