package systems

import (
	"github.com/automoto/tilebound/components"
	"github.com/automoto/tilebound/config"
	"github.com/automoto/tilebound/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera centers on the player, clamped so the level fills the
// screen when it is large enough.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	w, ok := getWorld(e)
	if !ok {
		return
	}
	center := bodyCenter(components.Body.Get(playerEntry))

	camera.Position.X = clampAxis(float64(center.X), float64(config.C.Width), float64(w.Width))
	camera.Position.Y = clampAxis(float64(center.Y), float64(config.C.Height), float64(w.Height))
}

func clampAxis(target, screen, level float64) float64 {
	if level <= screen {
		return level / 2
	}
	lo, hi := screen/2, level-screen/2
	if target < lo {
		return lo
	}
	if target > hi {
		return hi
	}
	return target
}

// cameraOffset returns the translation from world to screen space.
func cameraOffset(e *ecs.ECS, width, height int) (float64, float64) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0
	}
	camera := components.Camera.Get(cameraEntry)
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y
}
