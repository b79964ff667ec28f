package systems

import (
	"github.com/automoto/tilebound/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTriggers publishes a TriggerEvent each time a body enters or
// leaves a trigger, then dispatches the queued events.
func UpdateTriggers(ecs *ecs.ECS) {
	w, ok := getWorld(ecs)
	if !ok {
		return
	}
	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		current := layerOf(w, e).Triggers(body.Shape)
		entered, exited := w.Tracker.Update(body.Shape, current)
		for _, t := range entered {
			components.TriggerEvent.Publish(ecs.World, components.TriggerEventData{Entity: e, Trigger: t, Entered: true})
		}
		for _, t := range exited {
			components.TriggerEvent.Publish(ecs.World, components.TriggerEventData{Entity: e, Trigger: t})
		}
	})
	components.TriggerEvent.ProcessEvents(ecs.World)
}
