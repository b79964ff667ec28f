// Package collision answers overlap queries between bounded shapes and
// keeps a broad-phase grid of the shapes in one layer.
package collision

import (
	"github.com/automoto/tilebound/shared/geom"
	"github.com/automoto/tilebound/shared/shape"
)

// Test reports whether a and b collide. A shape never collides with itself.
func Test(a, b shape.Shape) bool {
	if a == nil || b == nil || a == b {
		return false
	}
	return a.CollidesWith(b)
}

// TestRect reports whether the geometry of s overlaps r. Capability flags
// do not apply to raw rectangles.
func TestRect(s shape.Shape, r geom.Rect) bool {
	if s == nil {
		return false
	}
	return s.Geometry().IntersectsRect(r)
}

// First returns the first shape in others that collides with s.
func First(s shape.Shape, others []shape.Shape) (shape.Shape, bool) {
	for _, o := range others {
		if Test(s, o) {
			return o, true
		}
	}
	return nil, false
}

// All returns every shape in others that collides with s, in order.
func All(s shape.Shape, others []shape.Shape) []shape.Shape {
	var hits []shape.Shape
	for _, o := range others {
		if Test(s, o) {
			hits = append(hits, o)
		}
	}
	return hits
}
