package systems

import (
	"github.com/automoto/tilebound/components"
	"github.com/automoto/tilebound/shared/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMovement applies each entity's intent against its active layer.
func UpdateMovement(ecs *ecs.ECS) {
	w, ok := getWorld(ecs)
	if !ok {
		return
	}
	components.Intent.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Body) {
			return
		}
		intent := components.Intent.Get(e)
		if intent.Idle() {
			return
		}
		body := components.Body.Get(e)
		intent.Apply(w.Layer(body.Layer), body.Shape)
	})
}

func getWorld(ecs *ecs.ECS) (*components.WorldData, bool) {
	entry, ok := components.World.First(ecs.World)
	if !ok {
		return nil, false
	}
	data := components.World.Get(entry)
	if data.World == nil {
		return nil, false
	}
	return data, true
}

// layerOf returns the active layer of an entity with a body.
func layerOf(w *components.WorldData, e *donburi.Entry) *world.Layer {
	return w.Layer(components.Body.Get(e).Layer)
}
