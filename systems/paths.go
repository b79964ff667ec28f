package systems

import (
	"math"

	"github.com/automoto/tilebound/components"
	cfg "github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/shared/geom"
	"github.com/automoto/tilebound/shared/movement"
	"github.com/automoto/tilebound/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePaths advances scripted movers along their waypoints. Their
// moves are forced and skip collision checks.
func UpdatePaths(ecs *ecs.ECS) {
	w, ok := getWorld(ecs)
	if !ok {
		return
	}
	dt := 1 / cfg.Path.TPS
	tags.Mover.Each(ecs.World, func(e *donburi.Entry) {
		path := components.Path.Get(e)
		n := len(path.Waypoints)
		if n < 2 || path.Tween == nil {
			return
		}
		progress, finished := path.Tween.Update(dt)
		from := path.Waypoints[path.Leg%n]
		to := path.Waypoints[(path.Leg+1)%n]
		target := Lerp(from, to, float64(progress))

		body := components.Body.Get(e)
		layer := layerOf(w, e)
		delta := target.Sub(body.Shape.Anchor())
		if delta.X != 0 {
			dir := geom.Right
			if delta.X < 0 {
				dir = geom.Left
			}
			movement.AttemptMove(layer, body.Shape, dir, abs(delta.X), true)
		}
		if delta.Y != 0 {
			dir := geom.Down
			if delta.Y < 0 {
				dir = geom.Up
			}
			movement.AttemptMove(layer, body.Shape, dir, abs(delta.Y), true)
		}

		if finished {
			path.Leg = (path.Leg + 1) % n
			path.Tween.Reset()
		}
	})
}

// Lerp returns the point t of the way from a to b, rounded to the grid.
func Lerp(a, b geom.Point, t float64) geom.Point {
	return geom.Point{
		X: a.X + int(math.Round(float64(b.X-a.X)*t)),
		Y: a.Y + int(math.Round(float64(b.Y-a.Y)*t)),
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
