package factory

import (
	"github.com/automoto/tilebound/archetypes"
	"github.com/automoto/tilebound/components"
	cfg "github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/shared/leveldata"
	"github.com/automoto/tilebound/shared/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateWorld places lvl into per-layer grids and spawns its static
// lights and scripted movers.
func CreateWorld(ecs *ecs.ECS, lvl *leveldata.Level) *donburi.Entry {
	w := world.New(lvl, cfg.World.CellWidth, cfg.World.CellHeight)
	entry := archetypes.World.Spawn(ecs)
	components.World.SetValue(entry, components.WorldData{
		World:   w,
		Tracker: world.NewTriggerTracker(),
	})

	for _, l := range w.Lights {
		CreateLight(ecs, l)
	}
	for _, m := range w.Movers {
		CreateMover(ecs, w, m)
	}
	return entry
}

func CreateLight(ecs *ecs.ECS, spawn leveldata.LightSpawn) *donburi.Entry {
	light := archetypes.Light.Spawn(ecs)
	components.Light.SetValue(light, components.LightData{
		At:     spawn.At,
		Radius: spawn.Radius,
		Dirty:  true,
	})
	return light
}

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}
