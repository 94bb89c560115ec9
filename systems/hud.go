package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spectralgames/chromashift/components"
	cfg "github.com/spectralgames/chromashift/config"
	"github.com/spectralgames/chromashift/fonts"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 12
	hudSwatchSize = 16
)

// DrawHUD renders the level number and the active color indicator in the
// top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	player := components.Player.Get(playerEntry)

	face := fonts.HUD.Get()
	label := fmt.Sprintf("LEVEL %d", level.Index+1)
	text.Draw(screen, label, face, hudMargin, hudMargin+16, color.White)

	// Active color swatch with the color's name beside it
	swatchY := hudMargin + 26
	vector.DrawFilledRect(screen,
		hudMargin, float32(swatchY),
		hudSwatchSize, hudSwatchSize,
		cfg.Skin[player.Color], false)
	text.Draw(screen, player.Color.String(), fonts.HUDSmall.Get(),
		hudMargin+hudSwatchSize+6, swatchY+13, color.White)
}
