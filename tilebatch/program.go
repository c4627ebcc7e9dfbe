// Package tilebatch draws the visible part of an isometric level as textured
// quads. It culls the map to the cells around the camera focus, projects
// each cell and accumulates quads into fixed-capacity buffers that are
// handed to a Program in a single draw call when full and at frame end.
package tilebatch

import (
	"github.com/automoto/wideworld/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Program is the GPU side of the renderer. Vertices and texture coordinates
// are parallel arrays with two floats per vertex; only the
// first vertexCount vertices are valid.
type Program interface {
	SetViewProjection(m gamemath.Mat3)
	Draw(vertices, texCoords []float32, vertexCount int)
}

// View is the camera state the renderer reads.
type View interface {
	Coord() dmath.Vec2
	Zoom() float64
	Width() float64
	Height() float64
	ViewProj() gamemath.Mat3
}
