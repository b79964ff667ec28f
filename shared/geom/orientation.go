package geom

// Orientation is one of the four axis directions. Up is towards smaller Y.
type Orientation int

const (
	Up Orientation = iota
	Right
	Down
	Left
)

var orientationNames = [...]string{"up", "right", "down", "left"}

func (o Orientation) String() string {
	if o < Up || o > Left {
		return "unknown"
	}
	return orientationNames[o]
}

// Vector returns the unit displacement for o.
func (o Orientation) Vector() Point {
	switch o {
	case Up:
		return Point{0, -1}
	case Right:
		return Point{1, 0}
	case Down:
		return Point{0, 1}
	case Left:
		return Point{-1, 0}
	}
	return Point{}
}

// Opposite returns the direction facing away from o.
func (o Orientation) Opposite() Orientation {
	return (o + 2) % 4
}

// Horizontal reports whether o moves along the X axis.
func (o Orientation) Horizontal() bool {
	return o == Left || o == Right
}
