package systems

import (
	"github.com/automoto/tilebound/components"
	cfg "github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every shape on the player's layer and, when enabled,
// the segments each light extracted.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Overlay && !settings.ShowRays {
		return
	}
	w, ok := getWorld(ecs)
	if !ok {
		return
	}
	layer := w.Layers[0]
	if playerEntry, ok := tags.Player.First(ecs.World); ok {
		layer = layerOf(w, playerEntry)
	}
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	camX, camY := cameraOffset(ecs, width, height)

	if settings.Overlay {
		for _, cmd := range layer.DebugDraw() {
			strokeRect(screen, cmd.Rect, cmd.Color, camX, camY)
		}
		for _, t := range layer.AllTriggers() {
			for _, r := range t.Geometry().AbsoluteRects() {
				strokeRect(screen, r, cfg.Colors.Trigger, camX, camY)
			}
		}
	}

	if !settings.ShowRays {
		return
	}
	components.Light.Each(ecs.World, func(e *donburi.Entry) {
		light := components.Light.Get(e)
		lx := float32(float64(light.At.X) + camX)
		ly := float32(float64(light.At.Y) + camY)
		vector.FillRect(screen, lx-2, ly-2, 4, 4, cfg.Colors.Light, false)
		for _, s := range light.Segments {
			vector.StrokeLine(screen,
				float32(float64(s.A.X)+camX), float32(float64(s.A.Y)+camY),
				float32(float64(s.B.X)+camX), float32(float64(s.B.Y)+camY),
				1, cfg.Colors.Segment, false)
		}
	})
}
