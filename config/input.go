package config

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spectralgames/chromashift/tiles"
)

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionJump
	ActionDash
	ActionColorWhite
	ActionColorRed
	ActionColorGreen
	ActionColorBlue
	ActionColorCycle
	ActionToggleCRT
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the key and button bindings for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

// KeyColor maps the direct color-select actions to their color. Lookup data,
// not branching logic; the cycle key advances ColorOrder instead.
var KeyColor = map[ActionID]tiles.Color{
	ActionColorWhite: tiles.ColorWhite,
	ActionColorRed:   tiles.ColorRed,
	ActionColorGreen: tiles.ColorGreen,
	ActionColorBlue:  tiles.ColorBlue,
}

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace, ebiten.KeyW, ebiten.KeyUp},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionDash: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyX},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionColorWhite: {
				Keys: []ebiten.Key{ebiten.Key1},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionColorRed: {
				Keys: []ebiten.Key{ebiten.Key2},
			},
			ActionColorGreen: {
				Keys: []ebiten.Key{ebiten.Key3},
			},
			ActionColorBlue: {
				Keys: []ebiten.Key{ebiten.Key4},
			},
			ActionColorCycle: {
				Keys: []ebiten.Key{ebiten.KeyC, ebiten.KeyTab},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionToggleCRT: {
				Keys: []ebiten.Key{ebiten.KeyF2},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF1},
			},
		},
	}
}
