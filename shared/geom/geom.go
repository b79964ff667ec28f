// Package geom holds the integer geometry shared by collision, movement and
// occlusion. It has no dependencies on ebitengine, donburi, or resolv.
package geom

// Point is an integer world position or displacement.
type Point struct {
	X, Y int
}

// Add returns p shifted by v.
func (p Point) Add(v Point) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector from v to p.
func (p Point) Sub(v Point) Point {
	return Point{X: p.X - v.X, Y: p.Y - v.Y}
}

// Scale multiplies both components by n.
func (p Point) Scale(n int) Point {
	return Point{X: p.X * n, Y: p.Y * n}
}

// Rect is an axis-aligned rectangle covering the half-open area
// [X, X+W) x [Y, Y+H). Rectangles with a non-positive side are empty.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether r covers no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Translate returns r moved by v.
func (r Rect) Translate(v Point) Rect {
	return Rect{X: r.X + v.X, Y: r.Y + v.Y, W: r.W, H: r.H}
}

// Intersects reports whether r and o share any area. Rectangles that only
// touch along an edge or corner do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() &&
		o.X < r.Right() &&
		r.Y < o.Bottom() &&
		o.Y < r.Bottom()
}

// Contains reports whether p lies inside r. The top and left edges are
// inside, the bottom and right edges are not, so Contains(p) agrees with
// Intersects(Rect{p.X, p.Y, 1, 1}).
func (r Rect) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Union returns the smallest rectangle covering both r and o. Empty inputs
// are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x0, y0 := min(r.X, o.X), min(r.Y, o.Y)
	x1, y1 := max(r.Right(), o.Right()), max(r.Bottom(), o.Bottom())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Corners returns the top-left, top-right, bottom-right and bottom-left
// corners of r.
func (r Rect) Corners() (tl, tr, br, bl Point) {
	return Point{r.X, r.Y},
		Point{r.Right(), r.Y},
		Point{r.Right(), r.Bottom()},
		Point{r.X, r.Bottom()}
}

// Segment is a line between two absolute points.
type Segment struct {
	A, B Point
}
