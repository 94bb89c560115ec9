package systems

import (
	"testing"

	cfg "github.com/spectralgames/chromashift/config"
	"github.com/spectralgames/chromashift/leveldata"
	"github.com/spectralgames/chromashift/systems/factory"
	"github.com/spectralgames/chromashift/tiles"
)

func TestPhysics_FallAndLand(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 0, 0)
	installTestLevel(e, buildLevel(8*leveldata.TileSize, 8*leveldata.TileSize,
		placedTile(tiles.KindStart, tiles.ColorNone, 0, 64),
		placedTile(tiles.KindBlock, tiles.ColorNone, 0, 0),
	))
	_, physics, obj := playerParts(e)

	for i := 0; i < 60; i++ {
		UpdatePhysics(e)
	}

	if physics.OnGround == nil {
		t.Fatal("player never landed")
	}
	if obj.Y != 16 {
		t.Errorf("player rests at Y=%v, want flush on the block top at 16", obj.Y)
	}
	if physics.SpeedY != 0 {
		t.Errorf("resting SpeedY = %v, want 0", physics.SpeedY)
	}
}

func TestPhysics_FallSpeedIsCapped(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 0, 0)
	installTestLevel(e, buildLevel(8*leveldata.TileSize, 64*leveldata.TileSize,
		placedTile(tiles.KindStart, tiles.ColorNone, 0, 1000),
	))
	_, physics, _ := playerParts(e)

	for i := 0; i < 120; i++ {
		UpdatePhysics(e)
		if physics.SpeedY < -cfg.Player.MaxFallSpeed {
			t.Fatalf("frame %d: SpeedY = %v exceeds the fall cap", i, physics.SpeedY)
		}
	}
	if physics.SpeedY != -cfg.Player.MaxFallSpeed {
		t.Errorf("terminal SpeedY = %v, want %v", physics.SpeedY, -cfg.Player.MaxFallSpeed)
	}
}

func TestPhysics_WallStopsHorizontalMotion(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 0, 0)
	installTestLevel(e, buildLevel(8*leveldata.TileSize, 8*leveldata.TileSize,
		placedTile(tiles.KindStart, tiles.ColorNone, 0, 16),
		placedTile(tiles.KindBlock, tiles.ColorNone, 0, 0),
		placedTile(tiles.KindBlock, tiles.ColorNone, 16, 0),
		placedTile(tiles.KindBlock, tiles.ColorNone, 32, 16),
	))
	player, physics, obj := playerParts(e)
	player.Control = cfg.Player.GroundControl
	player.IntentX = cfg.Player.MoveSpeed

	for i := 0; i < 60; i++ {
		UpdatePhysics(e)
	}

	if want := 32 - cfg.Player.Width; obj.X != want {
		t.Errorf("player X = %v, want flush against the wall at %v", obj.X, want)
	}
	if physics.SpeedX != 0 {
		t.Errorf("SpeedX = %v against the wall, want 0", physics.SpeedX)
	}
}

func TestPhysics_CeilingStopsRise(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 0, 0)
	installTestLevel(e, buildLevel(8*leveldata.TileSize, 8*leveldata.TileSize,
		placedTile(tiles.KindStart, tiles.ColorNone, 2, 16),
		placedTile(tiles.KindBlock, tiles.ColorNone, 0, 0),
		placedTile(tiles.KindBlock, tiles.ColorNone, 0, 48),
	))
	_, physics, obj := playerParts(e)
	physics.SpeedY = 8

	maxTop := obj.Y + obj.H
	for i := 0; i < 40; i++ {
		UpdatePhysics(e)
		if top := obj.Y + obj.H; top > maxTop {
			maxTop = top
		}
	}
	if maxTop > 48 {
		t.Errorf("player head reached %v, ceiling bottom is 48", maxTop)
	}
	if maxTop != 48 {
		t.Errorf("player head peaked at %v, want flush contact at 48", maxTop)
	}
}

func TestPhysics_SpeedObeysCap(t *testing.T) {
	e := newTestECS()
	factory.CreatePlayer(e, 0, 0)
	installTestLevel(e, buildLevel(32*leveldata.TileSize, 8*leveldata.TileSize,
		placedTile(tiles.KindStart, tiles.ColorNone, 0, 64),
	))
	player, physics, _ := playerParts(e)
	player.Control = cfg.Player.GroundControl
	player.IntentX = 100 // far past any sane intent

	for i := 0; i < 60; i++ {
		UpdatePhysics(e)
		if physics.SpeedX > physics.MaxSpeed {
			t.Fatalf("frame %d: SpeedX = %v exceeds cap %v", i, physics.SpeedX, physics.MaxSpeed)
		}
	}
}
