package assets

import (
	"bytes"
	"embed"
	"fmt"
	"image"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/spectralgames/chromashift/tiles"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// diskLevelDir shadows the embedded levels when present, so levels can be
// edited and hot-reloaded without rebuilding.
const diskLevelDir = "assets"

// SpriteCell is the pixel edge length of one cell in the tile sheet.
const SpriteCell = 16

// Levels returns the level image filesystem: the on-disk assets/levels copy
// when one exists, falling back to the embedded one per file.
func Levels() fs.FS {
	if _, err := os.Stat(diskLevelDir + "/levels"); err == nil {
		return overlayFS{disk: os.DirFS(diskLevelDir), embedded: levelFS}
	}
	return levelFS
}

// LevelDirOnDisk reports the watchable on-disk level directory, if any.
func LevelDirOnDisk() (string, bool) {
	dir := diskLevelDir + "/levels"
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return dir, true
	}
	return "", false
}

type overlayFS struct {
	disk     fs.FS
	embedded fs.FS
}

func (o overlayFS) Open(name string) (fs.File, error) {
	if f, err := o.disk.Open(name); err == nil {
		return f, nil
	}
	return o.embedded.Open(name)
}

var (
	tileSheet *ebiten.Image
	cellCache = map[tiles.Sprite]*ebiten.Image{}
)

// TileSheet returns the shared tile/skin sprite sheet.
func TileSheet() *ebiten.Image {
	if tileSheet == nil {
		data, err := imageFS.ReadFile("images/tiles.png")
		if err != nil {
			panic(fmt.Sprintf("read tile sheet: %v", err))
		}
		img, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
		if err != nil {
			panic(fmt.Sprintf("decode tile sheet: %v", err))
		}
		tileSheet = img
	}
	return tileSheet
}

// SpriteImage returns the cached cell of the tile sheet a sprite addresses.
func SpriteImage(s tiles.Sprite) *ebiten.Image {
	if img, ok := cellCache[s]; ok {
		return img
	}
	rect := image.Rect(s.Col*SpriteCell, s.Row*SpriteCell, (s.Col+1)*SpriteCell, (s.Row+1)*SpriteCell)
	img := TileSheet().SubImage(rect).(*ebiten.Image)
	cellCache[s] = img
	return img
}
