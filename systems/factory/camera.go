package factory

import (
	"github.com/spectralgames/chromashift/archetypes"
	"github.com/spectralgames/chromashift/components"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}
