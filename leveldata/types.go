// Package leveldata decodes pixel-encoded level images into typed world
// geometry. It has no dependencies on ebitengine, donburi, or resolv, so it
// stays usable from tools and tests.
// World coordinates grow upward: a tile's Y is its bottom edge and
// the bottommost block row of the image sits at Y = 0.
package leveldata

import (
	"github.com/spectralgames/chromashift/tiles"
)

// TileSize is the world-unit edge length of one decoded block.
const TileSize = 16

// BlockPixels is the pixel edge length of one block in a level image.
const BlockPixels = 3

// PlacedTile is one catalog tile positioned in a level. X is the left edge
// and Y the bottom edge of its bounding box; Size is always TileSize.
type PlacedTile struct {
	tiles.Descriptor
	X, Y float64
	Size float64
}

// Level is the decoded result of one level image. The categorized slices
// share PlacedTile pointers: a colored danger tile appears in Geometry,
// Hazards, and Colored at once. A Level is built wholesale by Decode and
// never mutated afterwards.
type Level struct {
	Width  int // world units
	Height int // world units

	Tiles       []*PlacedTile // every placed tile, in decode order
	Geometry    []*PlacedTile // blocks and dangers (collide)
	Decor       []*PlacedTile // markers and checkpoints (no collision)
	Hazards     []*PlacedTile
	Checkpoints []*PlacedTile // decode order; checkpoint handles index into this
	Colored     map[tiles.Color][]*PlacedTile

	Start *PlacedTile
	End   *PlacedTile
}
