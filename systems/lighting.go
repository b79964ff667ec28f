package systems

import (
	"github.com/automoto/tilebound/components"
	cfg "github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/shared/geom"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLighting recomputes the occluding segments of every light that
// moved or was marked dirty.
func UpdateLighting(ecs *ecs.ECS) {
	w, ok := getWorld(ecs)
	if !ok {
		return
	}
	components.Light.Each(ecs.World, func(e *donburi.Entry) {
		light := components.Light.Get(e)
		layer := w.Layers[0]
		if e.HasComponent(components.Body) {
			layer = layerOf(w, e)
			if light.Follow {
				center := bodyCenter(components.Body.Get(e))
				if center != light.At {
					light.At = center
					light.Dirty = true
				}
			}
		}
		if !light.Dirty {
			return
		}
		light.Segments = layer.LightSegments(light.At, light.Radius+cfg.Lighting.Margin)
		light.Dirty = false
	})
}

func bodyCenter(body *components.BodyData) geom.Point {
	anchor := body.Shape.Anchor()
	bounds, ok := body.Shape.Geometry().Bounds()
	if !ok {
		return anchor
	}
	return geom.Point{X: bounds.X + bounds.W/2, Y: bounds.Y + bounds.H/2}
}
