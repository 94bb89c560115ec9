package config

import (
	"image/color"

	"github.com/spectralgames/chromashift/tiles"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer the game uses.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	GroundControl float64 // horizontal responsiveness while grounded
	AirControl    float64 // horizontal responsiveness while airborne
	MaxSpeed      float64
	MoveSpeed     float64 // horizontal intent magnitude for held keys

	// Jump
	JumpForce         float64 // base upward force
	JumpVelocityBonus float64 // extra force per unit of |SpeedX|
	JumpForceDecay    float64 // per-frame multiplier on the held-jump force
	JumpForceCutoff   float64 // held force below this stops contributing
	JumpHeldGain      float64 // fraction of the held force added per frame
	MaxJumpCount      int     // air jump budget

	// Physics
	Gravity      float64
	MaxFallSpeed float64

	// Dimensions (world units)
	Width  float64
	Height float64
}

// DashConfig contains dash ability configuration
type DashConfig struct {
	Distance     float64 // teleport distance per activation
	MaxDashCount int     // airborne dash budget

	// Trail effect
	TrailParticles int
	TrailLife      float64 // seconds
	PlumeParticles int
}

// DeathConfig contains respawn explosion configuration
type DeathConfig struct {
	ExplosionParticles int
	ExplosionSpeed     float64
	ExplosionLife      float64 // seconds
	ColorJitter        float64 // HSV jitter scale for debris
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Margin float64 // distance from each viewport edge the player may reach
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Dash DashConfig
var Death DeathConfig
var Camera CameraConfig

// Skin maps the player color to the tint of effects spawned for it.
var Skin = map[tiles.Color]color.RGBA{
	tiles.ColorWhite: {R: 240, G: 240, B: 240, A: 255},
	tiles.ColorRed:   {R: 235, G: 60, B: 60, A: 255},
	tiles.ColorGreen: {R: 60, G: 220, B: 90, A: 255},
	tiles.ColorBlue:  {R: 70, G: 110, B: 245, A: 255},
}

// Background maps the player color to the screen clear color: a dim shade of
// the active color so the world readably contrasts with it.
var Background = map[tiles.Color]color.RGBA{
	tiles.ColorWhite: {R: 24, G: 24, B: 28, A: 255},
	tiles.ColorRed:   {R: 34, G: 16, B: 18, A: 255},
	tiles.ColorGreen: {R: 14, G: 30, B: 20, A: 255},
	tiles.ColorBlue:  {R: 14, G: 18, B: 38, A: 255},
}

// ColorOrder is the cycle sequence for the color-cycle key.
var ColorOrder = [4]tiles.Color{
	tiles.ColorWhite,
	tiles.ColorRed,
	tiles.ColorGreen,
	tiles.ColorBlue,
}

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  1024,
		Height: 768,
		Title:  "Chromashift",
	}

	Player = PlayerConfig{
		GroundControl: 0.35,
		AirControl:    0.12,
		MaxSpeed:      6.0,
		MoveSpeed:     5.0,

		JumpForce:         5.5,
		JumpVelocityBonus: 0.35,
		JumpForceDecay:    0.8,
		JumpForceCutoff:   0.5,
		JumpHeldGain:      0.15,
		MaxJumpCount:      2,

		Gravity:      0.5,
		MaxFallSpeed: 11.0,

		Width:  12,
		Height: 14,
	}

	Dash = DashConfig{
		Distance:     48,
		MaxDashCount: 1,

		TrailParticles: 14,
		TrailLife:      0.35,
		PlumeParticles: 6,
	}

	Death = DeathConfig{
		ExplosionParticles: 24,
		ExplosionSpeed:     3.0,
		ExplosionLife:      0.6,
		ColorJitter:        0.25,
	}

	Camera = CameraConfig{
		Margin: 220,
	}
}
