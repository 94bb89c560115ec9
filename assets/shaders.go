package assets

import (
	"embed"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// CRTShader is the scanline/noise/vignette post pass over the world.
	CRTShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	var err error

	crtSrc, err := shaderFS.ReadFile("shaders/crt.kage")
	if err != nil {
		return err
	}
	CRTShader, err = ebiten.NewShader(crtSrc)
	if err != nil {
		return err
	}

	return nil
}
