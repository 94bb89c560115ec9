package systems

import (
	"log"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spectralgames/chromashift/assets"
	"github.com/spectralgames/chromashift/components"
	"github.com/spectralgames/chromashift/leveldata"
	"github.com/spectralgames/chromashift/systems/factory"
	"github.com/yohamta/donburi/ecs"
)

var (
	levelWatcher *fsnotify.Watcher
	levelEvents  chan string
)

// StartLevelWatch watches the on-disk level directory, when one shadows
// the embedded assets, and queues reloads. A no-op otherwise.
func StartLevelWatch() {
	dir, ok := assets.LevelDirOnDisk()
	if !ok {
		return
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Printf("level watch unavailable: %v", err)
		return
	}
	if err := w.Add(dir); err != nil {
		log.Printf("level watch unavailable: %v", err)
		w.Close()
		return
	}

	levelWatcher = w
	levelEvents = make(chan string, 16)
	go func() {
		for event := range w.Events {
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if strings.ToLower(filepath.Ext(event.Name)) != ".png" {
				continue
			}
			select {
			case levelEvents <- event.Name:
			default:
			}
		}
	}()
	log.Printf("watching %s for level edits", dir)
}

// UpdateLevelWatch drains queued edits and hot-reloads the current level.
// The watcher goroutine owns no game state; everything happens here, inside
// the frame.
func UpdateLevelWatch(e *ecs.ECS) {
	if levelEvents == nil {
		return
	}

	changed := false
	for {
		select {
		case <-levelEvents:
			changed = true
			continue
		default:
		}
		break
	}
	if !changed {
		return
	}

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)
	lvl, err := leveldata.Decode(level.Source, level.Catalog, level.Index)
	if err != nil {
		log.Printf("reload level %d: %v", level.Index, err)
		return
	}
	log.Printf("reloaded level %d", level.Index)
	factory.InstallLevel(e, lvl, level.Index)
}
