package factory

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/spectralgames/chromashift/archetypes"
	"github.com/spectralgames/chromashift/components"
	cfg "github.com/spectralgames/chromashift/config"
	"github.com/spectralgames/chromashift/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

var rng = rand.New(rand.NewSource(1))

// SpawnDashTrail emits a line of particles between the pre- and post-dash
// positions plus a small plume at the destination, tinted around the
// player's color.
func SpawnDashTrail(e *ecs.ECS, x0, y0, x1, y1 float64, base color.RGBA) {
	n := cfg.Dash.TrailParticles
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		spawnParticle(e,
			x0+(x1-x0)*t, y0+(y1-y0)*t,
			(rng.Float64()-0.5)*0.6, (rng.Float64()-0.5)*0.6,
			2+rng.Float64()*2,
			base, float32(cfg.Dash.TrailLife))
	}
	for i := 0; i < cfg.Dash.PlumeParticles; i++ {
		a := rng.Float64() * 2 * math.Pi
		spawnParticle(e,
			x1, y1,
			math.Cos(a)*1.2, math.Sin(a)*1.2,
			1+rng.Float64()*2,
			base, float32(cfg.Dash.TrailLife))
	}
}

// SpawnExplosion emits radial debris at a death position.
func SpawnExplosion(e *ecs.ECS, x, y float64, base color.RGBA) {
	n := cfg.Death.ExplosionParticles
	for i := 0; i < n; i++ {
		a := (float64(i) + rng.Float64()) / float64(n) * 2 * math.Pi
		speed := cfg.Death.ExplosionSpeed * (0.4 + 0.6*rng.Float64())
		spawnParticle(e,
			x, y,
			math.Cos(a)*speed, math.Sin(a)*speed,
			2+rng.Float64()*3,
			base, float32(cfg.Death.ExplosionLife))
	}
}

func spawnParticle(e *ecs.ECS, x, y, vx, vy, size float64, base color.RGBA, life float32) {
	entry := archetypes.Effect.Spawn(e)
	components.Effect.SetValue(entry, components.EffectData{
		X: x, Y: y,
		VX: vx, VY: vy,
		Size:  size,
		Color: gamemath.JitterColor(base, cfg.Death.ColorJitter, rng),
		Fade:  gween.New(1, 0, life, ease.OutQuad),
		Alpha: 1,
	})
}
