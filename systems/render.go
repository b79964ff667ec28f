package systems

import (
	"image/color"

	"github.com/automoto/tilebound/components"
	cfg "github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/shared/geom"
	"github.com/automoto/tilebound/shared/shape"
	"github.com/automoto/tilebound/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawWorld fills the tiles of the player's layer with their movement
// class color, then the bodies on it.
func DrawWorld(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

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
	view := geom.Rect{X: int(-camX), Y: int(-camY), W: width, H: height}

	for _, t := range layer.Tiles() {
		for _, cmd := range t.DebugDraw() {
			fillCommand(screen, cmd, view, camX, camY)
		}
	}

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		if components.Body.Get(e).Layer != layer.Name {
			return
		}
		c := shape.NeutralColor
		if e.HasComponent(tags.Player) {
			c = cfg.Colors.Player
		}
		for _, cmd := range components.Body.Get(e).Shape.DebugDraw() {
			cmd.Color = c
			fillCommand(screen, cmd, view, camX, camY)
		}
	})
}

func fillCommand(screen *ebiten.Image, cmd shape.DrawCommand, view geom.Rect, camX, camY float64) {
	if !cmd.Rect.Intersects(view) {
		return
	}
	x := float32(float64(cmd.Rect.X) + camX)
	y := float32(float64(cmd.Rect.Y) + camY)
	vector.FillRect(screen, x, y, float32(cmd.Rect.W), float32(cmd.Rect.H), cmd.Color, false)
}

func strokeRect(screen *ebiten.Image, r geom.Rect, c color.Color, camX, camY float64) {
	x := float32(float64(r.X) + camX)
	y := float32(float64(r.Y) + camY)
	w, h := float32(r.W), float32(r.H)
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}
