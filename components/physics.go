package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// PhysicsData carries velocity and integration state. World Y grows upward,
// so gravity subtracts from SpeedY and OnGround means solid contact below.
type PhysicsData struct {
	SpeedX   float64
	SpeedY   float64
	Gravity  float64
	MaxSpeed float64
	OnGround *resolv.Object
}

var Physics = donburi.NewComponentType[PhysicsData]()
