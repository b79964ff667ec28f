package components

import (
	"github.com/automoto/tilebound/shared/geom"
	"github.com/yohamta/donburi"
)

// LightData is a point light and the occluding segments last extracted
// for it. Dirty forces a recompute on the next lighting pass.
type LightData struct {
	At       geom.Point
	Radius   int
	Follow   bool // track the owning entity's body center
	Segments []geom.Segment
	Dirty    bool
}

var Light = donburi.NewComponentType[LightData]()
