package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spectralgames/chromashift/components"
	"github.com/spectralgames/chromashift/tags"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every collision object when the F1 overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(ecs)
	if !settings.Debug {
		return
	}

	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		sx, sy := screenPos(camera, obj.X, obj.Y, obj.H)

		c := color.RGBA{0, 255, 255, 255} // Cyan default
		switch {
		case obj.HasTags(tags.ResolvHazard):
			c = color.RGBA{255, 0, 0, 255}
		case obj.HasTags(tags.ResolvSolid):
			c = color.RGBA{100, 100, 100, 255}
		case obj.HasTags(tags.ResolvPlayer):
			c = color.RGBA{0, 0, 255, 255}
		case obj.HasTags(tags.ResolvCheckpoint):
			c = color.RGBA{255, 0, 255, 255}
		case obj.HasTags(tags.ResolvEnd):
			c = color.RGBA{255, 255, 0, 255}
		}

		vector.StrokeRect(screen, float32(sx), float32(sy), float32(obj.W), float32(obj.H), 1, c, false)
	}
}
