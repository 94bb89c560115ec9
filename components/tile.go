package components

import (
	"github.com/spectralgames/chromashift/leveldata"
	"github.com/yohamta/donburi"
)

// TileData links a tile entity back to its placed tile in the decoded level.
// CheckpointIndex is the tile's position in Level.Checkpoints, or
// NoCheckpoint for anything that is not a save tile.
type TileData struct {
	Placed          *leveldata.PlacedTile
	CheckpointIndex int
}

var Tile = donburi.NewComponentType[TileData]()
