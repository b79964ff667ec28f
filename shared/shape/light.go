package shape

import (
	"fmt"
	"strings"

	"github.com/automoto/tilebound/shared/geom"
)

// Edge is one side of a rectangle, in clockwise order from the top.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

var edgeNames = [...]string{"top", "right", "bottom", "left"}

func (e Edge) String() string {
	if e < EdgeTop || e > EdgeLeft {
		return "unknown"
	}
	return edgeNames[e]
}

// ParseEdge reads top, right, bottom or left.
func ParseEdge(s string) (Edge, error) {
	for i, name := range edgeNames {
		if strings.EqualFold(s, name) {
			return Edge(i), nil
		}
	}
	return EdgeTop, fmt.Errorf("unknown edge %q", s)
}

// Edges lists every edge in emission order.
var Edges = [4]Edge{EdgeTop, EdgeRight, EdgeBottom, EdgeLeft}

// RuleSet says, per edge, whether light may pass into the shape (In) and
// out of it (Out) through that edge.
type RuleSet struct {
	In  [4]bool
	Out [4]bool
}

// Merge returns the edge-wise OR of r and o.
func (r RuleSet) Merge(o RuleSet) RuleSet {
	var m RuleSet
	for i := range m.In {
		m.In[i] = r.In[i] || o.In[i]
		m.Out[i] = r.Out[i] || o.Out[i]
	}
	return m
}

// OpenRuleSet lets light in and out through every edge.
func OpenRuleSet() RuleSet {
	return RuleSet{In: [4]bool{true, true, true, true}, Out: [4]bool{true, true, true, true}}
}

// Rules holds one rule-set per direction light can arrive from, indexed by
// the edge facing that direction: light from above uses Rules[EdgeTop].
type Rules [4]RuleSet

// OpaqueRules blocks light on every edge. It is the zero value.
func OpaqueRules() Rules { return Rules{} }

// TransparentRules lets light through every edge from every direction.
func TransparentRules() Rules {
	open := OpenRuleSet()
	return Rules{open, open, open, open}
}

// Above, RightOf, Below and LeftOf name the four rule-sets.
func (r *Rules) Above() *RuleSet   { return &r[EdgeTop] }
func (r *Rules) RightOf() *RuleSet { return &r[EdgeRight] }
func (r *Rules) Below() *RuleSet   { return &r[EdgeBottom] }
func (r *Rules) LeftOf() *RuleSet  { return &r[EdgeLeft] }

// LightShape is the geometry of a static occluder plus its light rules.
type LightShape struct {
	Rules Rules
	geom  geom.Set
}

func NewLightShape(rules Rules, at geom.Point, rects ...geom.Rect) *LightShape {
	return &LightShape{Rules: rules, geom: geom.NewSet(at, rects...)}
}

func (l *LightShape) Role() Role                    { return RoleLight }
func (l *LightShape) Geometry() geom.Set            { return l.geom }
func (l *LightShape) CollidesWith(other Shape) bool { return collide(l, other) }
func (l *LightShape) DebugDraw() []DrawCommand      { return drawSet(l.geom, NeutralColor) }
func (l *LightShape) sealed()                       {}
