package factory

import (
	"io/fs"

	"github.com/spectralgames/chromashift/archetypes"
	"github.com/spectralgames/chromashift/components"
	"github.com/spectralgames/chromashift/leveldata"
	"github.com/spectralgames/chromashift/tags"
	"github.com/spectralgames/chromashift/tiles"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var resolvColorTags = map[tiles.Color]string{
	tiles.ColorWhite: tags.ResolvColorWhite,
	tiles.ColorRed:   tags.ResolvColorRed,
	tiles.ColorGreen: tags.ResolvColorGreen,
	tiles.ColorBlue:  tags.ResolvColorBlue,
}

// ResolvColorTag returns the contact-probe tag for a tile color.
func ResolvColorTag(c tiles.Color) string {
	return resolvColorTags[c]
}

// CreateLevel decodes the level at index from fsys and installs it as the
// session's current level. The level entity is created on first use.
func CreateLevel(e *ecs.ECS, fsys fs.FS, catalog *tiles.Catalog, index int) (*donburi.Entry, error) {
	lvl, err := leveldata.Decode(fsys, catalog, index)
	if err != nil {
		return nil, err
	}

	entry, ok := components.Level.First(e.World)
	if !ok {
		entry = archetypes.Level.Spawn(e)
	}
	components.Level.Set(entry, &components.LevelData{
		Source:           fsys,
		Catalog:          catalog,
		ActiveCheckpoint: components.NoCheckpoint,
	})

	InstallLevel(e, lvl, index)
	return entry, nil
}

// InstallLevel replaces the current level wholesale: tile entities and the
// collision space are torn down and rebuilt, the checkpoint handle resets,
// and the player is repositioned at the new start marker. The previous
// level's placed-tile references all die here, so nothing can dangle.
func InstallLevel(e *ecs.ECS, lvl *leveldata.Level, index int) {
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry)

	clearTiles(e)
	space := resetSpace(e, lvl)

	level.Index = index
	level.Current = lvl
	level.ActiveCheckpoint = components.NoCheckpoint

	checkpointIndex := 0
	for _, tile := range lvl.Tiles {
		objTags := tileTags(tile)
		if len(objTags) == 0 {
			continue
		}

		entry := archetypes.Tile.Spawn(e)
		obj := resolv.NewObject(tile.X, tile.Y, tile.Size, tile.Size, objTags...)
		obj.SetShape(resolv.NewRectangle(0, 0, tile.Size, tile.Size))
		obj.Data = entry
		components.Object.SetValue(entry, components.ObjectData{Object: obj})

		idx := components.NoCheckpoint
		if tile.Kind == tiles.KindSave {
			idx = checkpointIndex
			checkpointIndex++
		}
		components.Tile.SetValue(entry, components.TileData{
			Placed:          tile,
			CheckpointIndex: idx,
		})

		space.Add(obj)
	}

	if playerEntry, ok := components.Player.First(e.World); ok {
		obj := components.Object.Get(playerEntry)
		physics := components.Physics.Get(playerEntry)
		obj.X = lvl.Start.X
		obj.Y = lvl.Start.Y
		physics.SpeedX = 0
		physics.SpeedY = 0
		physics.OnGround = nil
		space.Add(obj.Object)
		obj.Update()
	}
}

// tileTags returns the resolv tags a placed tile's object carries, or nil
// for tiles that need no collision object at all.
func tileTags(tile *leveldata.PlacedTile) []string {
	var objTags []string
	switch tile.Kind {
	case tiles.KindBlock:
		objTags = append(objTags, tags.ResolvSolid)
	case tiles.KindDanger:
		objTags = append(objTags, tags.ResolvSolid, tags.ResolvHazard)
	case tiles.KindSave:
		objTags = append(objTags, tags.ResolvCheckpoint)
	case tiles.KindEnd:
		objTags = append(objTags, tags.ResolvEnd)
	default:
		return nil
	}
	if tile.Color != tiles.ColorNone {
		objTags = append(objTags, resolvColorTags[tile.Color])
	}
	return objTags
}

func clearTiles(e *ecs.ECS) {
	var toRemove []*donburi.Entry
	tags.Tile.Each(e.World, func(entry *donburi.Entry) {
		toRemove = append(toRemove, entry)
	})
	for _, entry := range toRemove {
		obj := components.Object.Get(entry)
		if obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
		entry.Remove()
	}
}

// resetSpace rebuilds the collision space for a level's dimensions. The old
// space entity is dropped with the tiles it contained.
func resetSpace(e *ecs.ECS, lvl *leveldata.Level) *resolv.Space {
	if old, ok := components.Space.First(e.World); ok {
		old.Remove()
	}
	entry := CreateSpace(e, lvl.Width, lvl.Height, leveldata.TileSize, leveldata.TileSize)
	return components.Space.Get(entry)
}
