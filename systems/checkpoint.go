package systems

import (
	"github.com/spectralgames/chromashift/components"
	"github.com/spectralgames/chromashift/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCheckpoints claims any save tile the player touches as the respawn
// reference. When several intersect in one frame, the first in decode order
// wins (lowest index), so the outcome never depends on collection
// iteration order.
func UpdateCheckpoints(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	obj := components.Object.Get(playerEntry)

	check := contact(obj.Object, tags.ResolvCheckpoint)
	if check == nil {
		return
	}

	claimed := components.NoCheckpoint
	for _, cp := range check.ObjectsByTags(tags.ResolvCheckpoint) {
		entry, ok := cp.Data.(*donburi.Entry)
		if !ok {
			continue
		}
		idx := components.Tile.Get(entry).CheckpointIndex
		if claimed == components.NoCheckpoint || idx < claimed {
			claimed = idx
		}
	}
	if claimed != components.NoCheckpoint {
		level.ActiveCheckpoint = claimed
	}
}
