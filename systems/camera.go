package systems

import (
	"github.com/spectralgames/chromashift/components"
	cfg "github.com/spectralgames/chromashift/config"
	"github.com/spectralgames/chromashift/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera keeps the player within the configured margin of every
// viewport edge: a hard clamp by the exact overshoot, truncated to whole
// units, never smoothed. Changed gates downstream viewport consumers.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	obj := components.Object.Get(playerEntry)

	camera.ViewLeft, camera.ViewBottom, camera.Changed = gamemath.ScrollView(
		camera.ViewLeft, camera.ViewBottom,
		float64(cfg.C.Width), float64(cfg.C.Height),
		cfg.Camera.Margin,
		obj.X, obj.Y, obj.W, obj.H,
	)
}
