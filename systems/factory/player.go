package factory

import (
	"github.com/automoto/tilebound/archetypes"
	"github.com/automoto/tilebound/components"
	cfg "github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/shared/geom"
	"github.com/automoto/tilebound/shared/leveldata"
	"github.com/automoto/tilebound/shared/movement"
	"github.com/automoto/tilebound/shared/shape"
	"github.com/automoto/tilebound/shared/world"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the controllable entity at spawn. When the
// lighting config gives the player a radius it also carries a light.
func CreatePlayer(ecs *ecs.ECS, w *world.World, spawn leveldata.SpawnPoint) *donburi.Entry {
	body := shape.NewEntityShape(
		geom.Point{X: spawn.X, Y: spawn.Y},
		geom.Rect{W: cfg.World.EntityWidth, H: cfg.World.EntityHeight},
	)
	layer := w.Layer(spawn.Layer)
	layer.AddEntity(body)

	player := archetypes.Player.Spawn(ecs)
	components.Body.SetValue(player, components.BodyData{Shape: body, Layer: layer.Name})
	components.Intent.SetValue(player, movement.Intent{})

	if cfg.Lighting.PlayerRadius > 0 {
		player.AddComponent(components.Light)
		components.Light.SetValue(player, components.LightData{
			Radius: cfg.Lighting.PlayerRadius,
			Follow: true,
			Dirty:  true,
		})
	}
	return player
}
