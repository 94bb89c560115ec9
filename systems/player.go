package systems

import (
	"github.com/spectralgames/chromashift/components"
	cfg "github.com/spectralgames/chromashift/config"
	"github.com/spectralgames/chromashift/gamemath"
	"github.com/spectralgames/chromashift/leveldata"
	"github.com/spectralgames/chromashift/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGrounding selects the control profile from last frame's grounded
// state and refills the ability budgets. Runs before any ability input is
// processed, so a grounded player always acts with full budgets.
func UpdateGrounding(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	if physics.OnGround != nil {
		player.Control = cfg.Player.GroundControl
		player.JumpCount = 0
		player.DashCount = 0
	} else {
		player.Control = cfg.Player.AirControl
	}
}

// UpdatePlayer translates action states into color switches, movement
// intent, and the jump and dash rules.
func UpdatePlayer(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	input := getOrCreateInput(e)
	player := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	handleColorInput(input, player)
	handleMovementInput(input, player)
	handleJumpInput(input, player, physics)
	handleDashInput(e, input, player, physics, obj)
}

// handleColorInput applies the direct color keys and the cycle key.
// Switching is instantaneous and always allowed.
func handleColorInput(input *components.InputData, player *components.PlayerData) {
	for action, color := range cfg.KeyColor {
		if GetAction(input, action).JustPressed {
			player.SetColor(color)
		}
	}
	if GetAction(input, cfg.ActionColorCycle).JustPressed {
		player.CycleColor()
	}
}

// handleMovementInput sets the horizontal intent, last write wins.
func handleMovementInput(input *components.InputData, player *components.PlayerData) {
	left := GetAction(input, cfg.ActionMoveLeft).Pressed
	right := GetAction(input, cfg.ActionMoveRight).Pressed

	player.IntentX = 0
	if left {
		player.IntentX = -cfg.Player.MoveSpeed
		player.Facing = cfg.DirectionLeft
	}
	if right {
		player.IntentX = cfg.Player.MoveSpeed
		player.Facing = cfg.DirectionRight
	}
}

// handleJumpInput runs the jump rule: every press counts against the
// budget; inside the budget it zeroes vertical velocity and applies the
// base force plus a bonus proportional to horizontal speed.
func handleJumpInput(input *components.InputData, player *components.PlayerData, physics *components.PhysicsData) {
	jump := GetAction(input, cfg.ActionJump)

	if jump.JustPressed {
		player.JumpCount++
		if player.JumpCount <= cfg.Player.MaxJumpCount {
			force := gamemath.JumpForce(cfg.Player.JumpForce, cfg.Player.JumpVelocityBonus, physics.SpeedX)
			physics.SpeedY = force
			player.JumpForce = force
			player.IsJumping = true
		}
	}
	if jump.JustReleased {
		player.IsJumping = false
	}
}

// handleDashInput runs the dash rule. The sweep-trace runs first: any
// obstruction cancels the dash outright, with no movement and no budget
// spent. Airborne dashes then consume the limited budget; grounded dashes
// are free.
func handleDashInput(e *ecs.ECS, input *components.InputData, player *components.PlayerData, physics *components.PhysicsData, obj *components.ObjectData) {
	if !GetAction(input, cfg.ActionDash).JustPressed {
		return
	}

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	lvl := components.Level.Get(levelEntry).Current

	dx := player.Facing * cfg.Dash.Distance
	if DashBlocked(lvl, obj.X, obj.Y, obj.W, obj.H, dx) {
		return
	}

	if physics.OnGround == nil {
		if player.DashCount >= cfg.Dash.MaxDashCount {
			return
		}
		player.DashCount++
	}

	fromX, fromY := obj.X+obj.W/2, obj.Y+obj.H/2
	obj.X += dx
	obj.Update()
	factory.SpawnDashTrail(e, fromX, fromY, obj.X+obj.W/2, obj.Y+obj.H/2, cfg.Skin[player.Color])
}

// DashBlocked sweep-traces the player box over the full dash displacement
// and reports whether any level geometry obstructs it.
func DashBlocked(lvl *leveldata.Level, x, y, w, h, dx float64) bool {
	if lvl == nil {
		return false
	}
	sweepX := x
	if dx < 0 {
		sweepX = x + dx
	}
	sweepW := w + dx
	if dx < 0 {
		sweepW = w - dx
	}
	for _, tile := range lvl.Geometry {
		if gamemath.Overlaps(sweepX, y, sweepW, h, tile.X, tile.Y, tile.Size, tile.Size) {
			return true
		}
	}
	return false
}
