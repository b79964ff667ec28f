package systems

import (
	"github.com/automoto/tilebound/archetypes"
	"github.com/automoto/tilebound/components"
	cfg "github.com/automoto/tilebound/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings flips the overlay toggles and persists them.
func UpdateSettings(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	settings := GetOrCreateSettings(ecs)

	changed := false
	if input.JustPressed(cfg.ActionToggleOverlay) {
		settings.Overlay = !settings.Overlay
		changed = true
	}
	if input.JustPressed(cfg.ActionToggleRays) {
		settings.ShowRays = !settings.ShowRays
		changed = true
	}
	if changed {
		SaveCurrentSettings(settings)
	}
}

func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = archetypes.Settings.Spawn(ecs)
		components.Settings.SetValue(entry, components.SettingsData{
			Overlay:  cfg.Debug.Overlay,
			ShowRays: cfg.Lighting.ShowRays,
		})
	}
	return components.Settings.Get(entry)
}
