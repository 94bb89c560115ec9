package systems

import (
	"testing"

	"github.com/spectralgames/chromashift/components"
	cfg "github.com/spectralgames/chromashift/config"
)

func TestGetAction_EdgeDetection(t *testing.T) {
	tests := []struct {
		name       string
		prev, curr bool
		want       components.ActionState
	}{
		{"idle", false, false, components.ActionState{}},
		{"just pressed", false, true, components.ActionState{Pressed: true, JustPressed: true}},
		{"held", true, true, components.ActionState{Pressed: true}},
		{"just released", true, false, components.ActionState{JustReleased: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in components.InputData
			in.Previous[cfg.ActionJump] = tt.prev
			in.Current[cfg.ActionJump] = tt.curr
			if got := GetAction(&in, cfg.ActionJump); got != tt.want {
				t.Errorf("GetAction = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSettingsDefaults(t *testing.T) {
	e := newTestECS()
	settings := GetOrCreateSettings(e)
	if !settings.CRT {
		t.Error("CRT filter should default on")
	}
	if settings.Debug {
		t.Error("debug overlay should default off")
	}

	// The singleton is stable across lookups.
	settings.Debug = true
	if again := GetOrCreateSettings(e); !again.Debug {
		t.Error("settings lookup returned a fresh value instead of the singleton")
	}
}
