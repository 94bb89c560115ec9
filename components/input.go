package components

import (
	cfg "github.com/spectralgames/chromashift/config"
	"github.com/yohamta/donburi"
)

// ActionState is the temporal state of one action.
type ActionState struct {
	Pressed      bool // currently held
	JustPressed  bool // pressed this frame
	JustReleased bool // released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions. JustPressed/JustReleased are derived by comparing the frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

var Input = donburi.NewComponentType[InputData]()
