// Package gpu implements the tile renderer's Program on ebitengine. Kage has
// no vertex stage, so the view-projection matrix is applied on the CPU and
// the fragment shader only samples the atlas.
package gpu

import (
	"errors"
	"fmt"

	"github.com/automoto/wideworld/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	dmath "github.com/yohamta/donburi/features/math"
)

// maxChunkVertices keeps indices within uint16 and whole quads per call.
const maxChunkVertices = 65532

// Program draws quad batches onto a target image with a Kage shader.
type Program struct {
	shader   *ebiten.Shader
	atlas    *ebiten.Image
	target   *ebiten.Image
	viewProj gamemath.Mat3

	vertices []ebiten.Vertex
	indices  []uint16
	atlasW   float32
	atlasH   float32
}

// NewProgram compiles the Kage source and binds the atlas as the first
// source image.
func NewProgram(src []byte, atlas *ebiten.Image) (*Program, error) {
	if atlas == nil {
		return nil, errors.New("tile program: nil atlas")
	}
	shader, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("compile tile shader: %w", err)
	}

	b := atlas.Bounds()
	p := &Program{
		shader:   shader,
		atlas:    atlas,
		viewProj: gamemath.Identity(),
		atlasW:   float32(b.Dx()),
		atlasH:   float32(b.Dy()),
		vertices: make([]ebiten.Vertex, 0, maxChunkVertices),
		indices:  make([]uint16, maxChunkVertices),
	}
	for i := range p.indices {
		p.indices[i] = uint16(i)
	}
	return p, nil
}

// SetTarget sets the image the next draws go to, usually the screen.
func (p *Program) SetTarget(dst *ebiten.Image) {
	p.target = dst
}

// SetViewProjection sets the world to clip-space transform.
func (p *Program) SetViewProjection(m gamemath.Mat3) {
	p.viewProj = m
}

// Draw transforms the batch to target pixels and issues one draw call per
// chunk of maxChunkVertices.
func (p *Program) Draw(vertices, texCoords []float32, vertexCount int) {
	if p.target == nil || vertexCount == 0 {
		return
	}
	b := p.target.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())

	op := &ebiten.DrawTrianglesShaderOptions{}
	op.Images[0] = p.atlas

	for start := 0; start < vertexCount; start += maxChunkVertices {
		end := min(start+maxChunkVertices, vertexCount)

		p.vertices = p.vertices[:0]
		for i := start; i < end; i++ {
			clip := p.viewProj.TransformVec2(dmath.Vec2{
				X: float64(vertices[i*2]),
				Y: float64(vertices[i*2+1]),
			})
			p.vertices = append(p.vertices, ebiten.Vertex{
				DstX:   float32(float64(b.Min.X) + (clip.X+1)/2*w),
				DstY:   float32(float64(b.Min.Y) + (1-clip.Y)/2*h),
				SrcX:   texCoords[i*2] * p.atlasW,
				SrcY:   texCoords[i*2+1] * p.atlasH,
				ColorR: 1,
				ColorG: 1,
				ColorB: 1,
				ColorA: 1,
			})
		}

		p.target.DrawTrianglesShader(p.vertices, p.indices[:end-start], p.shader, op)
	}
}
