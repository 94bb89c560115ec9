package systems

import (
	"github.com/spectralgames/chromashift/components"
	cfg "github.com/spectralgames/chromashift/config"
	"github.com/spectralgames/chromashift/gamemath"
	"github.com/spectralgames/chromashift/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates the player: horizontal smoothing toward intent,
// gravity, the decaying held-jump force, and movement resolved against
// solid geometry. World Y grows upward, so falling is negative SpeedY and
// the ground probe looks below.
func UpdatePhysics(e *ecs.ECS) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		physics := components.Physics.Get(entry)
		obj := components.Object.Get(entry)

		physics.SpeedX = gamemath.ClampSpeed(
			gamemath.Smooth(player.IntentX, physics.SpeedX, player.Control),
			physics.MaxSpeed,
		)

		physics.SpeedY -= physics.Gravity
		if physics.SpeedY < -cfg.Player.MaxFallSpeed {
			physics.SpeedY = -cfg.Player.MaxFallSpeed
		}

		// Variable jump height: the held force keeps contributing while it
		// decays, until release or the cutoff.
		if player.IsJumping && player.JumpForce > cfg.Player.JumpForceCutoff {
			physics.SpeedY += player.JumpForce * cfg.Player.JumpHeldGain
			player.JumpForce *= cfg.Player.JumpForceDecay
		}

		moveHorizontal(physics, obj.Object)
		moveVertical(physics, obj.Object)
	})
}

func moveHorizontal(physics *components.PhysicsData, obj *resolv.Object) {
	dx := physics.SpeedX
	if dx == 0 {
		return
	}
	if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
		if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
			dx = check.ContactWithObject(solids[0]).X()
			physics.SpeedX = 0
		}
	}
	obj.X += dx
}

func moveVertical(physics *components.PhysicsData, obj *resolv.Object) {
	physics.OnGround = nil
	dy := physics.SpeedY

	// Probe one extra unit downward so resting contact registers.
	checkDy := dy
	if dy <= 0 {
		checkDy--
	}

	check := obj.Check(0, checkDy, tags.ResolvSolid)
	if check == nil {
		obj.Y += dy
		return
	}
	solids := check.ObjectsByTags(tags.ResolvSolid)
	if len(solids) == 0 {
		obj.Y += dy
		return
	}

	contact := check.ContactWithObject(solids[0]).Y()
	if dy <= 0 {
		// Landing
		obj.Y += contact
		physics.OnGround = solids[0]
		physics.SpeedY = 0
	} else {
		// Ceiling
		obj.Y += contact
		physics.SpeedY = 0
	}
}
