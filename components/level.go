package components

import (
	"io/fs"

	"github.com/spectralgames/chromashift/leveldata"
	"github.com/spectralgames/chromashift/tiles"
	"github.com/yohamta/donburi"
)

// NoCheckpoint means the player respawns at the level start.
const NoCheckpoint = -1

// LevelData is the session singleton: the decoded level, its index, and the
// active respawn reference. ActiveCheckpoint indexes into
// Current.Checkpoints and is reset to NoCheckpoint on every level change so
// it can never dangle into a discarded level.
type LevelData struct {
	Source  fs.FS // level images, decoded again on progression
	Catalog *tiles.Catalog

	Index   int
	Current *leveldata.Level

	ActiveCheckpoint int

	// Set while a failed transition's end-tile contact persists, so the
	// failure is logged once per contact instead of every frame.
	TransitionBlocked bool
}

var Level = donburi.NewComponentType[LevelData]()

// RespawnTile returns the placed tile the player respawns at: the active
// checkpoint if one has been claimed, the level start otherwise.
func (l *LevelData) RespawnTile() *leveldata.PlacedTile {
	if l.ActiveCheckpoint != NoCheckpoint && l.ActiveCheckpoint < len(l.Current.Checkpoints) {
		return l.Current.Checkpoints[l.ActiveCheckpoint]
	}
	return l.Current.Start
}
