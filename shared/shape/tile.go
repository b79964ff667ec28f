package shape

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/automoto/tilebound/shared/geom"
	"golang.org/x/image/colornames"
)

// MovementClass is the passability category of a tile.
type MovementClass int

const (
	Impassable MovementClass = iota
	Land
	Water
)

var classNames = [...]string{"impassable", "land", "water"}

func (c MovementClass) String() string {
	if c < Impassable || c > Water {
		return "unknown"
	}
	return classNames[c]
}

// Color returns the debug color for tiles of class c.
func (c MovementClass) Color() color.RGBA {
	switch c {
	case Impassable:
		return colornames.Crimson
	case Land:
		return colornames.Forestgreen
	case Water:
		return colornames.Dodgerblue
	}
	return NeutralColor
}

// ParseMovementClass reads the names used in map properties.
func ParseMovementClass(s string) (MovementClass, error) {
	for i, name := range classNames {
		if strings.EqualFold(s, name) {
			return MovementClass(i), nil
		}
	}
	return Impassable, fmt.Errorf("unknown movement class %q", s)
}

// ClassMask is a set of movement classes.
type ClassMask uint8

// MaskOf builds a mask from the given classes.
func MaskOf(classes ...MovementClass) ClassMask {
	var m ClassMask
	for _, c := range classes {
		m |= 1 << c
	}
	return m
}

// Has reports whether c is in the mask.
func (m ClassMask) Has(c MovementClass) bool {
	return m&(1<<c) != 0
}

// TileKey identifies a tile appearance: the tileset and the tile's
// coordinate inside it.
type TileKey struct {
	Tileset string
	Coord   geom.Point
}

// TileShape is the collision prototype shared by every tile instance with
// the same TileKey. Its geometry is anchored at the tile origin and nothing
// on it changes after construction.
type TileShape struct {
	Key             TileKey
	Class           MovementClass
	AffectsEntities bool
	geom            geom.Set
}

// Blocks reports whether the tile stops e, ignoring geometry.
func (t *TileShape) Blocks(e *EntityShape) bool {
	if !t.AffectsEntities || e.NoClip {
		return false
	}
	if t.Class == Impassable {
		return true
	}
	return !e.Traverses.Has(t.Class)
}

func (t *TileShape) Role() Role                    { return RoleTile }
func (t *TileShape) Geometry() geom.Set            { return t.geom }
func (t *TileShape) CollidesWith(other Shape) bool { return collide(t, other) }
func (t *TileShape) DebugDraw() []DrawCommand      { return drawSet(t.geom, t.Class.Color()) }
func (t *TileShape) sealed()                       {}

// Place returns an instance handle for the prototype at the given world
// position. The prototype is referenced, not copied.
func (t *TileShape) Place(at geom.Point) PlacedTile {
	return PlacedTile{Proto: t, At: at}
}

// PlacedTile is one tile instance in a layer.
type PlacedTile struct {
	Proto *TileShape
	At    geom.Point
}

func (p PlacedTile) Role() Role { return RoleTile }

func (p PlacedTile) Geometry() geom.Set {
	return p.Proto.geom.At(p.Proto.geom.Anchor.Add(p.At))
}

func (p PlacedTile) CollidesWith(other Shape) bool { return collide(p, other) }
func (p PlacedTile) DebugDraw() []DrawCommand      { return drawSet(p.Geometry(), p.Proto.Class.Color()) }
func (p PlacedTile) sealed()                       {}

// TileIndex owns every tile prototype of a loaded world, keyed by TileKey.
type TileIndex struct {
	shapes map[TileKey]*TileShape
}

func NewTileIndex() *TileIndex {
	return &TileIndex{shapes: make(map[TileKey]*TileShape)}
}

// Define registers the prototype for key. A key that is already defined
// keeps its first definition and that shape is returned.
func (idx *TileIndex) Define(key TileKey, class MovementClass, affectsEntities bool, rects ...geom.Rect) *TileShape {
	if t, ok := idx.shapes[key]; ok {
		return t
	}
	t := &TileShape{
		Key:             key,
		Class:           class,
		AffectsEntities: affectsEntities,
		geom:            geom.NewSet(geom.Point{}, rects...),
	}
	idx.shapes[key] = t
	return t
}

// Lookup returns the prototype for key.
func (idx *TileIndex) Lookup(key TileKey) (*TileShape, bool) {
	t, ok := idx.shapes[key]
	return t, ok
}

// Len returns the number of distinct prototypes.
func (idx *TileIndex) Len() int {
	return len(idx.shapes)
}
