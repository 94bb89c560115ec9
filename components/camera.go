package components

import "github.com/yohamta/donburi"

// CameraData is the viewport rectangle's bottom-left corner in world units.
// Values are whole numbers after every shift so rendering stays pixel-exact.
type CameraData struct {
	ViewLeft   float64
	ViewBottom float64
	Changed    bool // at least one edge moved this frame
}

var Camera = donburi.NewComponentType[CameraData]()
