package assets

import (
	"embed"
	"fmt"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

// Shader file names
const (
	TileShader = "tile.kage"
)

// ShaderSource returns the Kage source of an embedded shader
func ShaderSource(name string) ([]byte, error) {
	src, err := shaderFS.ReadFile("shaders/" + name)
	if err != nil {
		return nil, fmt.Errorf("read shader %s: %w", name, err)
	}
	return src, nil
}
