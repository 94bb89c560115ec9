package systems

import (
	"github.com/spectralgames/chromashift/components"
	cfg "github.com/spectralgames/chromashift/config"
	"github.com/spectralgames/chromashift/systems/factory"
	"github.com/spectralgames/chromashift/tags"
	"github.com/spectralgames/chromashift/tiles"
	"github.com/yohamta/donburi/ecs"
)

// mismatchColors are the colors checked against the player's own. White is
// absent: white geometry is the neutral, always-safe traversal color.
var mismatchColors = [3]tiles.Color{tiles.ColorRed, tiles.ColorGreen, tiles.ColorBlue}

// UpdateDeath resolves lethal contact: hazards, and colored geometry whose
// color differs from the player's. Either one hard-teleports the player to
// the active respawn reference. No lives, no delay, no game-over state.
func UpdateDeath(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)

	lethal := contact(obj.Object, tags.ResolvHazard) != nil
	if !lethal {
		for _, c := range mismatchColors {
			if c == player.Color {
				continue
			}
			if contact(obj.Object, factory.ResolvColorTag(c)) != nil {
				lethal = true
				break
			}
		}
	}
	if !lethal {
		return
	}

	factory.SpawnExplosion(e, obj.X+obj.W/2, obj.Y+obj.H/2, cfg.Skin[player.Color])

	level := components.Level.Get(levelEntry)
	respawn := level.RespawnTile()
	physics := components.Physics.Get(playerEntry)
	obj.X = respawn.X
	obj.Y = respawn.Y
	physics.SpeedX = 0
	physics.SpeedY = 0
	obj.Update()
}
