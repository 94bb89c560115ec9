package systems

import (
	"testing"

	cfg "github.com/spectralgames/chromashift/config"
	"github.com/spectralgames/chromashift/leveldata"
	"github.com/spectralgames/chromashift/systems/factory"
	"github.com/spectralgames/chromashift/tiles"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// dashWorld builds a session with the player standing at (0, 16) over a
// ground row, with open air to dash through.
func dashWorld(t *testing.T, extra ...*leveldata.PlacedTile) *ecs.ECS {
	t.Helper()
	e := newTestECS()
	factory.CreatePlayer(e, 0, 0)

	placed := []*leveldata.PlacedTile{
		placedTile(tiles.KindStart, tiles.ColorNone, 0, 16),
		placedTile(tiles.KindBlock, tiles.ColorNone, 0, 0),
		placedTile(tiles.KindBlock, tiles.ColorNone, 16, 0),
		placedTile(tiles.KindBlock, tiles.ColorNone, 32, 0),
		placedTile(tiles.KindBlock, tiles.ColorNone, 48, 0),
	}
	placed = append(placed, extra...)
	installTestLevel(e, buildLevel(8*leveldata.TileSize, 8*leveldata.TileSize, placed...))
	return e
}

func TestGrounding_RefillsBudgetsAndControl(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 0, 0)
	player, physics, _ := playerParts(e)

	player.JumpCount = 2
	player.DashCount = 1
	physics.OnGround = resolv.NewObject(0, 0, 1, 1)

	UpdateGrounding(e)
	if player.JumpCount != 0 || player.DashCount != 0 {
		t.Errorf("grounded budgets = (%d, %d), want (0, 0)", player.JumpCount, player.DashCount)
	}
	if player.Control != cfg.Player.GroundControl {
		t.Errorf("grounded control = %v, want %v", player.Control, cfg.Player.GroundControl)
	}

	player.JumpCount = 1
	physics.OnGround = nil
	UpdateGrounding(e)
	if player.JumpCount != 1 {
		t.Error("airborne grounding refilled the jump budget")
	}
	if player.Control != cfg.Player.AirControl {
		t.Errorf("airborne control = %v, want %v", player.Control, cfg.Player.AirControl)
	}
}

func TestJump_BudgetOfTwo(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 0, 0)
	player, physics, _ := playerParts(e)

	// First jump from the ground.
	pressOnce(e, cfg.ActionJump)
	UpdatePlayer(e)
	if player.JumpCount != 1 {
		t.Fatalf("JumpCount = %d after first press, want 1", player.JumpCount)
	}
	if physics.SpeedY != cfg.Player.JumpForce {
		t.Errorf("SpeedY = %v, want base force %v", physics.SpeedY, cfg.Player.JumpForce)
	}
	if !player.IsJumping {
		t.Error("IsJumping not set on a successful jump")
	}

	// Release, then the air jump.
	settleInput(e)
	UpdatePlayer(e)
	if player.IsJumping {
		t.Error("IsJumping survived the release")
	}
	physics.SpeedY = -3
	pressOnce(e, cfg.ActionJump)
	UpdatePlayer(e)
	if player.JumpCount != 2 {
		t.Fatalf("JumpCount = %d after second press, want 2", player.JumpCount)
	}
	if physics.SpeedY != cfg.Player.JumpForce {
		t.Errorf("air jump did not reset SpeedY: %v", physics.SpeedY)
	}

	// Third press burns a count but gives no lift.
	settleInput(e)
	physics.SpeedY = -2
	pressOnce(e, cfg.ActionJump)
	UpdatePlayer(e)
	if player.JumpCount != 3 {
		t.Errorf("JumpCount = %d after third press, want 3", player.JumpCount)
	}
	if physics.SpeedY != -2 {
		t.Errorf("over-budget jump changed SpeedY to %v", physics.SpeedY)
	}
}

func TestJump_ForceScalesWithHorizontalSpeed(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 0, 0)
	_, physics, _ := playerParts(e)

	physics.SpeedX = 4
	pressOnce(e, cfg.ActionJump)
	UpdatePlayer(e)

	want := cfg.Player.JumpForce + 4*cfg.Player.JumpVelocityBonus
	if physics.SpeedY != want {
		t.Errorf("SpeedY = %v at SpeedX 4, want %v", physics.SpeedY, want)
	}
}

func TestDash_GroundedIsFree(t *testing.T) {
	e := dashWorld(t)
	player, physics, obj := playerParts(e)
	physics.OnGround = resolv.NewObject(0, 0, 1, 1)

	for i := 0; i < 3; i++ {
		pressOnce(e, cfg.ActionDash)
		UpdatePlayer(e)
		settleInput(e)
	}

	if want := 3 * cfg.Dash.Distance; obj.X != want {
		t.Errorf("player X = %v after three grounded dashes, want %v", obj.X, want)
	}
	if player.DashCount != 0 {
		t.Errorf("grounded dashes consumed budget: DashCount = %d", player.DashCount)
	}
}

func TestDash_AirborneBudgetOfOne(t *testing.T) {
	e := dashWorld(t)
	player, physics, obj := playerParts(e)
	physics.OnGround = nil

	pressOnce(e, cfg.ActionDash)
	UpdatePlayer(e)
	if obj.X != cfg.Dash.Distance {
		t.Fatalf("player X = %v after air dash, want %v", obj.X, cfg.Dash.Distance)
	}
	if player.DashCount != 1 {
		t.Fatalf("DashCount = %d, want 1", player.DashCount)
	}

	settleInput(e)
	pressOnce(e, cfg.ActionDash)
	UpdatePlayer(e)
	if obj.X != cfg.Dash.Distance {
		t.Errorf("second air dash moved the player to %v", obj.X)
	}
}

func TestDash_ObstructionCancelsWithoutCost(t *testing.T) {
	wall := placedTile(tiles.KindBlock, tiles.ColorNone, 32, 16)
	e := dashWorld(t, wall)
	player, physics, obj := playerParts(e)
	physics.OnGround = nil

	pressOnce(e, cfg.ActionDash)
	UpdatePlayer(e)

	if obj.X != 0 || obj.Y != 16 {
		t.Errorf("blocked dash moved the player to (%v, %v)", obj.X, obj.Y)
	}
	if player.DashCount != 0 {
		t.Errorf("blocked dash consumed budget: DashCount = %d", player.DashCount)
	}
	if n := countEffects(e); n != 0 {
		t.Errorf("blocked dash emitted %d particles", n)
	}
}

func TestDash_FacingSetsDirection(t *testing.T) {
	e := dashWorld(t)
	player, physics, obj := playerParts(e)
	physics.OnGround = resolv.NewObject(0, 0, 1, 1)
	movePlayer(e, 64, 16)
	player.Facing = cfg.DirectionLeft

	pressOnce(e, cfg.ActionDash)
	UpdatePlayer(e)
	if want := 64 - cfg.Dash.Distance; obj.X != want {
		t.Errorf("player X = %v after leftward dash, want %v", obj.X, want)
	}
}

func TestDashBlocked(t *testing.T) {
	lvl := buildLevel(160, 64,
		placedTile(tiles.KindBlock, tiles.ColorNone, 32, 16),
	)
	tests := []struct {
		name string
		x    float64
		dx   float64
		want bool
	}{
		{"wall inside rightward sweep", 0, 48, true},
		{"wall inside leftward sweep", 60, -48, true},
		{"wall beyond reach", -120, 48, false},
		{"wall behind", 64, 48, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DashBlocked(lvl, tt.x, 16, 12, 14, tt.dx)
			if got != tt.want {
				t.Errorf("DashBlocked(x=%v, dx=%v) = %v, want %v", tt.x, tt.dx, got, tt.want)
			}
		})
	}
}

func TestColorInput(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 0, 0)
	player, _, _ := playerParts(e)

	pressOnce(e, cfg.ActionColorRed)
	UpdatePlayer(e)
	if player.Color != tiles.ColorRed {
		t.Errorf("color = %s after red key, want red", player.Color)
	}

	settleInput(e)
	pressOnce(e, cfg.ActionColorCycle)
	UpdatePlayer(e)
	if player.Color != tiles.ColorGreen {
		t.Errorf("color = %s after cycle from red, want green", player.Color)
	}
}
