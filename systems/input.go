package systems

import (
	"github.com/automoto/tilebound/archetypes"
	"github.com/automoto/tilebound/components"
	cfg "github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/shared/movement"
	"github.com/automoto/tilebound/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateInput polls the keyboard and updates the InputData component.
// Must run BEFORE UpdatePlayerIntent in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// UpdatePlayerIntent turns held directions into a movement intent and
// handles the noclip and layer toggles.
func UpdatePlayerIntent(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	components.Intent.SetValue(playerEntry, IntentFromInput(input, cfg.World.MoveSpeed))

	body := components.Body.Get(playerEntry)
	if input.JustPressed(cfg.ActionNoClip) {
		body.Shape.NoClip = !body.Shape.NoClip
	}
	if input.JustPressed(cfg.ActionNextLayer) {
		switchToNextLayer(ecs, playerEntry)
	}
}

// IntentFromInput maps the held move actions to an intent of amount
// units. Opposite directions cancel out.
func IntentFromInput(input *components.InputData, amount int) movement.Intent {
	intent := movement.Intent{Amount: amount}
	if input.Pressed(cfg.ActionMoveLeft) {
		intent.X--
	}
	if input.Pressed(cfg.ActionMoveRight) {
		intent.X++
	}
	if input.Pressed(cfg.ActionMoveUp) {
		intent.Y--
	}
	if input.Pressed(cfg.ActionMoveDown) {
		intent.Y++
	}
	return intent
}

func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = archetypes.Input.Spawn(ecs)
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// switchToNextLayer moves the entity onto the following layer if its
// hitbox is free there.
func switchToNextLayer(ecs *ecs.ECS, entry *donburi.Entry) {
	w, ok := getWorld(ecs)
	if !ok || len(w.Layers) < 2 {
		return
	}
	body := components.Body.Get(entry)
	current := w.Layer(body.Layer)
	next := w.Layers[0]
	for i, l := range w.Layers {
		if l == current {
			next = w.Layers[(i+1)%len(w.Layers)]
			break
		}
	}
	if next.Blocked(body.Shape, body.Shape.Anchor()) {
		return
	}

	current.RemoveEntity(body.Shape)
	w.Tracker.Forget(body.Shape)
	next.AddEntity(body.Shape)
	body.Layer = next.Name

	if entry.HasComponent(components.Light) {
		components.Light.Get(entry).Dirty = true
	}
}
