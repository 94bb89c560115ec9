package components

import (
	cfg "github.com/spectralgames/chromashift/config"
	"github.com/spectralgames/chromashift/tiles"
	"github.com/yohamta/donburi"
)

// PlayerData is the player's ability and intent state. Position and velocity
// live on the paired Object and Physics components.
type PlayerData struct {
	Color   tiles.Color
	Facing  float64 // -1 left, 1 right
	IntentX float64 // requested horizontal speed, last write wins

	JumpCount int
	DashCount int
	IsJumping bool
	JumpForce float64 // decaying held-jump force

	Control float64 // active control responsiveness, ground or air
}

var Player = donburi.NewComponentType[PlayerData]()

// SetColor applies a direct color selection. Anything outside the four
// player colors is rejected.
func (p *PlayerData) SetColor(c tiles.Color) bool {
	switch c {
	case tiles.ColorWhite, tiles.ColorRed, tiles.ColorGreen, tiles.ColorBlue:
		p.Color = c
		return true
	}
	return false
}

// CycleColor advances the color through the fixed order, wrapping around.
func (p *PlayerData) CycleColor() {
	for i, c := range cfg.ColorOrder {
		if c == p.Color {
			p.Color = cfg.ColorOrder[(i+1)%len(cfg.ColorOrder)]
			return
		}
	}
	p.Color = cfg.ColorOrder[0]
}
