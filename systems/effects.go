package systems

import (
	"github.com/spectralgames/chromashift/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const effectStep = 1.0 / 60.0

// UpdateEffects advances particle positions and fade tweens, and despawns
// finished emitters.
func UpdateEffects(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.Effect.Each(ecs.World, func(e *donburi.Entry) {
		ef := components.Effect.Get(e)
		ef.X += ef.VX
		ef.Y += ef.VY
		ef.VX *= 0.94
		ef.VY *= 0.94

		alpha, finished := ef.Fade.Update(effectStep)
		ef.Alpha = alpha
		if finished {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		e.Remove()
	}
}
