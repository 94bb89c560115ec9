package components

import "github.com/yohamta/donburi"

// SettingsData holds the runtime toggles: the CRT post pass and the debug
// collision overlay.
type SettingsData struct {
	CRT   bool
	Debug bool
}

var Settings = donburi.NewComponentType[SettingsData]()
