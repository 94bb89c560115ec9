package systems

import (
	"errors"
	"log"

	"github.com/spectralgames/chromashift/components"
	"github.com/spectralgames/chromashift/leveldata"
	"github.com/spectralgames/chromashift/systems/factory"
	"github.com/spectralgames/chromashift/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateProgression advances to the next level when the player reaches the
// end marker. Running out of levels is not a fault: the game keeps running
// on the final level. An invalid next level aborts the transition and keeps
// the current level intact.
func UpdateProgression(e *ecs.ECS) {
	playerEntry, ok := components.Player.First(e.World)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	obj := components.Object.Get(playerEntry)

	if contact(obj.Object, tags.ResolvEnd) == nil {
		level.TransitionBlocked = false
		return
	}
	if level.TransitionBlocked {
		return
	}

	next := level.Index + 1
	lvl, err := leveldata.Decode(level.Source, level.Catalog, next)
	switch {
	case err == nil:
		log.Printf("level %d complete, entering level %d", level.Index, next)
		factory.InstallLevel(e, lvl, next)
	case errors.Is(err, leveldata.ErrLevelNotFound):
		log.Printf("no level beyond %d, staying put", level.Index)
		level.TransitionBlocked = true
	default:
		log.Printf("cannot enter level %d: %v", next, err)
		level.TransitionBlocked = true
	}
}
