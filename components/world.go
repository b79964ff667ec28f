package components

import (
	"github.com/automoto/tilebound/shared/world"
	"github.com/yohamta/donburi"
)

// WorldData holds the loaded level and the per-entity trigger state.
type WorldData struct {
	*world.World
	Tracker *world.TriggerTracker
}

var World = donburi.NewComponentType[WorldData]()
