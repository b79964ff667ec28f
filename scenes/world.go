package scenes

import (
	"log"
	"sync"

	"github.com/automoto/tilebound/components"
	cfg "github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/shared/leveldata"
	"github.com/automoto/tilebound/systems"
	"github.com/automoto/tilebound/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Levels is the set of loaded levels in play order.
type Levels struct {
	ByName map[string]*leveldata.Level
	Names  []string
}

// WorldScene runs one level.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	levels       *Levels
	index        int
	exitReached  bool
	once         sync.Once
}

// NewWorldScene creates a scene for the level at index in levels.
func NewWorldScene(sc SceneChanger, levels *Levels, index int) *WorldScene {
	if index < 0 || index >= len(levels.Names) {
		index = 0
	}
	return &WorldScene{sceneChanger: sc, levels: levels, index: index}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if ws.exitReached {
		next := (ws.index + 1) % len(ws.levels.Names)
		ws.sceneChanger.ChangeScene(NewWorldScene(ws.sceneChanger, ws.levels, next))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	if ws.ecs == nil {
		screen.Fill(cfg.Colors.Background)
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePlayerIntent)
	ecs.AddSystem(systems.UpdatePaths)
	ecs.AddSystem(systems.UpdateMovement)
	ecs.AddSystem(systems.UpdateTriggers)
	ecs.AddSystem(systems.UpdateLighting)
	ecs.AddSystem(systems.UpdateCamera)

	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ws.ecs = ecs

	lvl := ws.levels.ByName[ws.levels.Names[ws.index]]
	worldEntry := factory.CreateWorld(ws.ecs, lvl)
	w := components.World.Get(worldEntry)
	factory.CreateCamera(ws.ecs)
	factory.CreatePlayer(ws.ecs, w.World, w.SpawnAt(0))

	components.TriggerEvent.Subscribe(ws.ecs.World, ws.onTrigger)
	log.Printf("Loaded level %q: %d layers, %d tile prototypes", lvl.Name, len(w.Layers), w.Tiles.Len())
}

func (ws *WorldScene) onTrigger(_ donburi.World, ev components.TriggerEventData) {
	if !ev.Entered {
		return
	}
	log.Printf("Trigger %q entered", ev.Trigger.Event)
	if ev.Trigger.Event == cfg.World.ExitEvent && len(ws.levels.Names) > 1 {
		ws.exitReached = true
	}
}
