package geom

// Set is an anchored collection of rectangles. Each stored rectangle is an
// offset from Anchor; the absolute rectangle is the offset translated by
// the anchor. Membership and intersection use union semantics across the
// set.
//
// The rectangle slice is never modified after NewSet, so copies of a Set
// (including ones returned by At and Translate) share it safely.
type Set struct {
	Anchor Point
	rects  []Rect
}

// NewSet returns a set anchored at anchor holding a private copy of rects.
func NewSet(anchor Point, rects ...Rect) Set {
	owned := make([]Rect, len(rects))
	copy(owned, rects)
	return Set{Anchor: anchor, rects: owned}
}

// Len returns the number of stored rectangles.
func (s Set) Len() int {
	return len(s.rects)
}

// Empty reports whether the set can never contain or intersect anything.
func (s Set) Empty() bool {
	for _, r := range s.rects {
		if !r.Empty() {
			return false
		}
	}
	return true
}

// Offsets returns a copy of the stored, anchor-relative rectangles.
func (s Set) Offsets() []Rect {
	out := make([]Rect, len(s.rects))
	copy(out, s.rects)
	return out
}

// AbsoluteRects returns every rectangle translated by the anchor. The
// result is computed on each call since the anchor moves every tick.
func (s Set) AbsoluteRects() []Rect {
	out := make([]Rect, len(s.rects))
	for i, r := range s.rects {
		out[i] = r.Translate(s.Anchor)
	}
	return out
}

// At returns the same rectangles anchored at anchor.
func (s Set) At(anchor Point) Set {
	return Set{Anchor: anchor, rects: s.rects}
}

// Translate returns the set with its anchor moved by v.
func (s Set) Translate(v Point) Set {
	return s.At(s.Anchor.Add(v))
}

// MoveTo replaces the anchor in place.
func (s *Set) MoveTo(anchor Point) {
	s.Anchor = anchor
}

// ContainsPoint reports whether p lies inside any absolute rectangle.
func (s Set) ContainsPoint(p Point) bool {
	for _, r := range s.rects {
		if r.Translate(s.Anchor).Contains(p) {
			return true
		}
	}
	return false
}

// Intersects reports whether any rectangle of s overlaps any rectangle of
// other. It returns on the first hit.
func (s Set) Intersects(other Set) bool {
	for _, a := range s.rects {
		abs := a.Translate(s.Anchor)
		if abs.Empty() {
			continue
		}
		for _, b := range other.rects {
			if abs.Intersects(b.Translate(other.Anchor)) {
				return true
			}
		}
	}
	return false
}

// IntersectsRect reports whether any rectangle of s overlaps r.
func (s Set) IntersectsRect(r Rect) bool {
	for _, a := range s.rects {
		if a.Translate(s.Anchor).Intersects(r) {
			return true
		}
	}
	return false
}

// Bounds returns the absolute bounding box of all non-empty rectangles.
// ok is false when the set is empty.
func (s Set) Bounds() (bounds Rect, ok bool) {
	for _, r := range s.rects {
		if r.Empty() {
			continue
		}
		bounds = bounds.Union(r.Translate(s.Anchor))
		ok = true
	}
	return bounds, ok
}
