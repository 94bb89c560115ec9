package scenes

import (
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spectralgames/chromashift/assets"
	"github.com/spectralgames/chromashift/components"
	cfg "github.com/spectralgames/chromashift/config"
	"github.com/spectralgames/chromashift/systems"
	"github.com/spectralgames/chromashift/systems/factory"
	"github.com/spectralgames/chromashift/tiles"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene owns the game session: the ECS world, the decoded level,
// and the player. One update pass per frame, in a fixed system order.
type PlatformerScene struct {
	ecs   *ecs.ECS
	world *ebiten.Image
	frame int
	once  sync.Once
}

func NewPlatformerScene() *PlatformerScene {
	return &PlatformerScene{}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.frame++
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	if ps.ecs == nil {
		return
	}

	// Render the world offscreen, then run it through the CRT pass unless
	// it has been toggled off.
	ps.ecs.Draw(ps.world)

	settings := systems.GetOrCreateSettings(ps.ecs)
	if settings.CRT && assets.CRTShader != nil {
		op := &ebiten.DrawRectShaderOptions{}
		op.Images[0] = ps.world
		op.Uniforms = map[string]any{
			"Time": float32(ps.frame) / 60,
		}
		screen.DrawRectShader(cfg.C.Width, cfg.C.Height, assets.CRTShader, op)
	} else {
		screen.DrawImage(ps.world, nil)
	}
}

func (ps *PlatformerScene) configure() {
	if err := assets.LoadShaders(); err != nil {
		log.Fatalf("load shaders: %v", err)
	}

	catalog, err := tiles.Load()
	if err != nil {
		log.Fatalf("load tile catalog: %v", err)
	}

	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateGrounding)
	e.AddSystem(systems.UpdateProgression)
	e.AddSystem(systems.UpdateCheckpoints)
	e.AddSystem(systems.UpdateDeath)
	e.AddSystem(systems.UpdatePlayer)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateObjects)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateLevelWatch)

	e.AddRenderer(cfg.Default, systems.DrawBackground)
	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawEffects)
	e.AddRenderer(cfg.Default, systems.DrawPlayer)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)

	ps.ecs = e
	ps.world = ebiten.NewImage(cfg.C.Width, cfg.C.Height)

	factory.CreateCamera(e)
	factory.CreatePlayer(e, 0, 0)

	// The level factory positions the player at the start marker.
	if _, err := factory.CreateLevel(e, assets.Levels(), catalog, 0); err != nil {
		log.Fatalf("load first level: %v", err)
	}

	ps.snapCamera()
	systems.StartLevelWatch()
}

// snapCamera centers the viewport on the player so the first frame does not
// pan in from the world origin.
func (ps *PlatformerScene) snapCamera() {
	cameraEntry, ok := components.Camera.First(ps.ecs.World)
	if !ok {
		return
	}
	playerEntry, ok := components.Player.First(ps.ecs.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	obj := components.Object.Get(playerEntry)
	camera.ViewLeft = float64(int(obj.X - float64(cfg.C.Width)/2))
	camera.ViewBottom = float64(int(obj.Y - float64(cfg.C.Height)/2))
}
