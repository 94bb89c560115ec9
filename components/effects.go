package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// EffectData is one transient particle: dash trail fragments and death
// explosion debris. Fade drives alpha from 1 to 0 over the particle's life;
// the effects system despawns the entity when the tween finishes.
type EffectData struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Color  color.RGBA
	Fade   *gween.Tween
	Alpha  float32
}

var Effect = donburi.NewComponentType[EffectData]()
