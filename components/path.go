package components

import (
	"github.com/automoto/tilebound/shared/geom"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// PathData drives a scripted mover around a loop of waypoints. Progress
// along the current leg is tweened from 0 to 1.
type PathData struct {
	Waypoints []geom.Point
	Leg       int
	Tween     *gween.Tween
}

var Path = donburi.NewComponentType[PathData]()
