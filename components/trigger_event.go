package components

import (
	"github.com/automoto/tilebound/shared/shape"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type TriggerEventData struct {
	Entity  *donburi.Entry
	Trigger *shape.TriggerShape
	Entered bool // false when the entity left the trigger
}

var TriggerEvent = events.NewEventType[TriggerEventData]()
