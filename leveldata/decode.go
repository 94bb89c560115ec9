package leveldata

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io/fs"

	"github.com/spectralgames/chromashift/tiles"
)

var (
	// ErrLevelNotFound means there is no image for the requested index.
	// Callers treat this as "no more content", not a fault.
	ErrLevelNotFound = errors.New("level not found")

	// ErrLevelInvalid means the image exists but does not decode to a
	// playable level (bad dimensions, undecodable data, or missing/duplicate
	// start and end markers).
	ErrLevelInvalid = errors.New("level invalid")
)

// levelPath returns the image path for a level index inside the level FS.
func levelPath(index int) string {
	return fmt.Sprintf("levels/level_%d.png", index)
}

// Decode reads levels/level_<index>.png from fsys and decodes it against the
// catalog. It takes an fs.FS so callers can pass an embed.FS, os.DirFS, or a
// test fixture. Decoding is all-or-nothing: on error no partial Level is
// returned.
func Decode(fsys fs.FS, catalog *tiles.Catalog, index int) (*Level, error) {
	f, err := fsys.Open(levelPath(index))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("level %d: %w", index, ErrLevelNotFound)
		}
		return nil, fmt.Errorf("level %d: %w: %v", index, ErrLevelInvalid, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w: %v", index, ErrLevelInvalid, err)
	}

	lvl, err := decodeImage(img, catalog)
	if err != nil {
		return nil, fmt.Errorf("level %d: %w", index, err)
	}
	return lvl, nil
}

// decodeImage walks the image in 3x3-pixel blocks, top block row first, and
// places one tile per catalog hit. Image rows are scanned top-down while
// world Y grows upward, so the vertical order is inverted: the bottom block
// row of the image maps to world Y = 0.
func decodeImage(img image.Image, catalog *tiles.Catalog) (*Level, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 || w%BlockPixels != 0 || h%BlockPixels != 0 {
		return nil, fmt.Errorf("%w: image is %dx%d, want positive multiples of %d", ErrLevelInvalid, w, h, BlockPixels)
	}

	cols := w / BlockPixels
	rows := h / BlockPixels
	lvl := &Level{
		Width:  cols * TileSize,
		Height: rows * TileSize,
		Colored: map[tiles.Color][]*PlacedTile{
			tiles.ColorWhite: nil,
			tiles.ColorRed:   nil,
			tiles.ColorGreen: nil,
			tiles.ColorBlue:  nil,
		},
	}

	var sig [tiles.SignatureLen]byte
	for row := 0; row < rows; row++ {
		worldY := float64((rows - 1 - row) * TileSize)
		for col := 0; col < cols; col++ {
			n := 0
			for py := 0; py < BlockPixels; py++ {
				for px := 0; px < BlockPixels; px++ {
					x := b.Min.X + col*BlockPixels + px
					y := b.Min.Y + row*BlockPixels + py
					sig[n] = colorCode(img.At(x, y).RGBA())
					n++
				}
			}

			desc, ok := catalog.Lookup(string(sig[:]))
			if !ok {
				continue // empty space
			}

			tile := &PlacedTile{
				Descriptor: desc,
				X:          float64(col * TileSize),
				Y:          worldY,
				Size:       TileSize,
			}
			if err := lvl.place(tile); err != nil {
				return nil, err
			}
		}
	}

	if lvl.Start == nil {
		return nil, fmt.Errorf("%w: no start marker", ErrLevelInvalid)
	}
	if lvl.End == nil {
		return nil, fmt.Errorf("%w: no end marker", ErrLevelInvalid)
	}
	return lvl, nil
}

// place appends the tile to every collection its kind and color belong to.
func (lvl *Level) place(tile *PlacedTile) error {
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
		if lvl.Start != nil {
			return fmt.Errorf("%w: more than one start marker", ErrLevelInvalid)
		}
		lvl.Start = tile
	case tiles.KindEnd:
		if lvl.End != nil {
			return fmt.Errorf("%w: more than one end marker", ErrLevelInvalid)
		}
		lvl.End = tile
	}
	return nil
}

// colorCode maps one pixel to its signature code. The palette is exact: any
// RGBA value outside it reads as empty.
func colorCode(r, g, b, a uint32) byte {
	if a == 0 {
		return 'E'
	}
	c := [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
	switch c {
	case [4]uint8{255, 255, 255, 255}:
		return 'W'
	case [4]uint8{255, 0, 0, 255}:
		return 'R'
	case [4]uint8{0, 255, 0, 255}:
		return 'G'
	case [4]uint8{0, 0, 255, 255}:
		return 'B'
	case [4]uint8{0, 255, 255, 255}:
		return 'L'
	case [4]uint8{255, 0, 255, 255}:
		return 'P'
	case [4]uint8{0, 0, 0, 255}:
		return 'D'
	}
	return 'E'
}
