package components

import (
	cfg "github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/shared/movement"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed is computed on demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

func (in *InputData) Pressed(a cfg.ActionID) bool {
	return in.Current[a]
}

func (in *InputData) JustPressed(a cfg.ActionID) bool {
	return in.Current[a] && !in.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()

// Intent is the movement requested for an entity this tick.
var Intent = donburi.NewComponentType[movement.Intent]()
