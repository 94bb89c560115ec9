package systems

import (
	"github.com/spectralgames/chromashift/archetypes"
	"github.com/spectralgames/chromashift/components"
	cfg "github.com/spectralgames/chromashift/config"
	"github.com/spectralgames/chromashift/leveldata"
	"github.com/spectralgames/chromashift/systems/factory"
	"github.com/spectralgames/chromashift/tiles"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestECS() *ecs.ECS {
	return ecs.NewECS(donburi.NewWorld())
}

// placedTile hand-builds one decoded tile for fixture levels.
func placedTile(kind tiles.Kind, c tiles.Color, x, y float64) *leveldata.PlacedTile {
	return &leveldata.PlacedTile{
		Descriptor: tiles.Descriptor{Name: kind.String(), Kind: kind, Color: c},
		X:          x,
		Y:          y,
		Size:       leveldata.TileSize,
	}
}

// buildLevel assembles a Level from hand-placed tiles, categorizing them the
// way the decoder does. Tiles keep their argument order, so checkpoint
// indexes follow it.
func buildLevel(width, height int, placed ...*leveldata.PlacedTile) *leveldata.Level {
	lvl := &leveldata.Level{
		Width:  width,
		Height: height,
		Colored: map[tiles.Color][]*leveldata.PlacedTile{
			tiles.ColorWhite: nil,
			tiles.ColorRed:   nil,
			tiles.ColorGreen: nil,
			tiles.ColorBlue:  nil,
		},
	}
	for _, tile := range placed {
		lvl.Tiles = append(lvl.Tiles, tile)
		switch tile.Kind {
		case tiles.KindBlock, tiles.KindDanger:
			lvl.Geometry = append(lvl.Geometry, tile)
		default:
			lvl.Decor = append(lvl.Decor, tile)
		}
		if tile.Color != tiles.ColorNone {
			lvl.Colored[tile.Color] = append(lvl.Colored[tile.Color], tile)
		}
		switch tile.Kind {
		case tiles.KindDanger:
			lvl.Hazards = append(lvl.Hazards, tile)
		case tiles.KindSave:
			lvl.Checkpoints = append(lvl.Checkpoints, tile)
		case tiles.KindStart:
			lvl.Start = tile
		case tiles.KindEnd:
			lvl.End = tile
		}
	}
	return lvl
}

// installTestLevel installs a fixture level as the session's current one,
// creating the level singleton when missing. The player, if spawned, is
// repositioned at the level start.
func installTestLevel(e *ecs.ECS, lvl *leveldata.Level) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		entry = archetypes.Level.Spawn(e)
		components.Level.Set(entry, &components.LevelData{
			ActiveCheckpoint: components.NoCheckpoint,
		})
	}
	factory.InstallLevel(e, lvl, 0)
	return components.Level.Get(entry)
}

// pressOnce arranges the input buffers so the action reads as just pressed.
func pressOnce(e *ecs.ECS, action cfg.ActionID) {
	in := getOrCreateInput(e)
	in.Previous[action] = false
	in.Current[action] = true
}

// settleInput advances the buffers one frame with nothing held, turning any
// pressed action into a release.
func settleInput(e *ecs.ECS) {
	in := getOrCreateInput(e)
	in.Previous = in.Current
	in.Current = [cfg.ActionCount]bool{}
}

// movePlayer teleports the player's collision object.
func movePlayer(e *ecs.ECS, x, y float64) {
	entry, _ := components.Player.First(e.World)
	obj := components.Object.Get(entry)
	obj.X = x
	obj.Y = y
	obj.Update()
}

func playerParts(e *ecs.ECS) (*components.PlayerData, *components.PhysicsData, *components.ObjectData) {
	entry, _ := components.Player.First(e.World)
	return components.Player.Get(entry), components.Physics.Get(entry), components.Object.Get(entry)
}

func countEffects(e *ecs.ECS) int {
	n := 0
	components.Effect.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
