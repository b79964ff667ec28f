package factory

import (
	"github.com/automoto/tilebound/archetypes"
	"github.com/automoto/tilebound/components"
	cfg "github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/shared/geom"
	"github.com/automoto/tilebound/shared/leveldata"
	"github.com/automoto/tilebound/shared/shape"
	"github.com/automoto/tilebound/shared/world"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateMover spawns a body that shuttles back and forth along
// spawn.Travel. Its moves are forced, so it passes through tiles.
func CreateMover(ecs *ecs.ECS, w *world.World, spawn leveldata.MoverSpawn) *donburi.Entry {
	origin := geom.Point{X: spawn.Rect.X, Y: spawn.Rect.Y}
	body := shape.NewEntityShape(origin, geom.Rect{W: spawn.Rect.W, H: spawn.Rect.H})
	layer := w.Layer(spawn.Layer)
	layer.AddEntity(body)

	mover := archetypes.Mover.Spawn(ecs)
	components.Body.SetValue(mover, components.BodyData{Shape: body, Layer: layer.Name})
	components.Path.SetValue(mover, components.PathData{
		Waypoints: []geom.Point{origin, origin.Add(spawn.Travel)},
		Tween:     NewLegTween(),
	})
	return mover
}

// NewLegTween tweens leg progress from 0 to 1.
func NewLegTween() *gween.Tween {
	return gween.New(0, 1, cfg.Path.LegSeconds, ease.InOutQuad)
}
