package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Tile   = donburi.NewTag().SetName("Tile")
	Effect = donburi.NewTag().SetName("Effect")
)

// Resolv tags for physics collision and contact probes
const (
	ResolvSolid      = "solid"
	ResolvPlayer     = "player"
	ResolvHazard     = "hazard"
	ResolvCheckpoint = "checkpoint"
	ResolvEnd        = "end"

	// Color tags carried by colored geometry, probed for the mismatch rule
	ResolvColorWhite = "color_white"
	ResolvColorRed   = "color_red"
	ResolvColorGreen = "color_green"
	ResolvColorBlue  = "color_blue"
)
