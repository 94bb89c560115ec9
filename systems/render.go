package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spectralgames/chromashift/assets"
	"github.com/spectralgames/chromashift/components"
	cfg "github.com/spectralgames/chromashift/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var drawOp = &ebiten.DrawImageOptions{}

// screenPos converts a world box's bottom-left corner to its top-left
// screen position. World Y grows upward; screen Y grows downward.
func screenPos(camera *components.CameraData, wx, wy, h float64) (float64, float64) {
	sx := wx - camera.ViewLeft
	sy := float64(cfg.C.Height) - (wy - camera.ViewBottom) - h
	return sx, sy
}

// DrawBackground clears to the shade keyed to the player's current color.
func DrawBackground(ecs *ecs.ECS, screen *ebiten.Image) {
	bg := color.RGBA{R: 16, G: 16, B: 20, A: 255}
	if playerEntry, ok := components.Player.First(ecs.World); ok {
		player := components.Player.Get(playerEntry)
		if c, ok := cfg.Background[player.Color]; ok {
			bg = c
		}
	}
	screen.Fill(bg)
}

// DrawLevel renders every placed tile's sprite cell at its world box.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	level := components.Level.Get(levelEntry)
	if level.Current == nil {
		return
	}

	w, h := float64(cfg.C.Width), float64(cfg.C.Height)
	for _, tile := range level.Current.Tiles {
		sx, sy := screenPos(camera, tile.X, tile.Y, tile.Size)
		if sx+tile.Size < 0 || sx > w || sy+tile.Size < 0 || sy > h {
			continue
		}
		drawOp.GeoM.Reset()
		drawOp.ColorScale.Reset()
		drawOp.GeoM.Translate(sx, sy)
		screen.DrawImage(assets.SpriteImage(tile.Sprite), drawOp)
	}
}

// DrawEffects renders particles with tween-driven alpha.
func DrawEffects(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	components.Effect.Each(e.World, func(entry *donburi.Entry) {
		ef := components.Effect.Get(entry)
		sx, sy := screenPos(camera, ef.X, ef.Y, ef.Size)
		c := color.RGBA{
			R: uint8(float32(ef.Color.R) * ef.Alpha),
			G: uint8(float32(ef.Color.G) * ef.Alpha),
			B: uint8(float32(ef.Color.B) * ef.Alpha),
			A: uint8(255 * ef.Alpha),
		}
		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(ef.Size), c, false)
	})
}

// DrawPlayer renders the skin sprite for the current color, flipped by
// facing, feet aligned with the collision box.
func DrawPlayer(e *ecs.ECS, screen *ebiten.Image) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	player := components.Player.Get(playerEntry)
	obj := components.Object.Get(playerEntry)
	level := components.Level.Get(levelEntry)

	skin, ok := level.Catalog.Skin(player.Color)
	if !ok {
		return
	}
	img := assets.SpriteImage(skin.Sprite)
	spriteW := float64(img.Bounds().Dx())
	spriteH := float64(img.Bounds().Dy())

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	if player.Facing < 0 {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(spriteW, 0)
	}

	// Bottom-center of the sprite on the bottom-center of the box.
	sx, sy := screenPos(camera, obj.X+obj.W/2-spriteW/2, obj.Y, spriteH)
	drawOp.GeoM.Translate(sx, sy)
	screen.DrawImage(img, drawOp)
}
