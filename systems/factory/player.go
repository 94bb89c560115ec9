package factory

import (
	"github.com/spectralgames/chromashift/archetypes"
	"github.com/spectralgames/chromashift/components"
	cfg "github.com/spectralgames/chromashift/config"
	"github.com/spectralgames/chromashift/tags"
	"github.com/spectralgames/chromashift/tiles"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player at (x, y), the bottom-left corner of its
// box in world units. The object is not added to a space here; level
// installation owns space membership.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := resolv.NewObject(x, y, cfg.Player.Width, cfg.Player.Height)
	obj.AddTags(tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, cfg.Player.Width, cfg.Player.Height))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.Player.SetValue(player, components.PlayerData{
		Color:   tiles.ColorWhite,
		Facing:  cfg.DirectionRight,
		Control: cfg.Player.GroundControl,
	})
	components.Physics.SetValue(player, components.PhysicsData{
		Gravity:  cfg.Player.Gravity,
		MaxSpeed: cfg.Player.MaxSpeed,
	})

	return player
}
