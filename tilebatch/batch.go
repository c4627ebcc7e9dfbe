package tilebatch

import "github.com/automoto/wideworld/shared/leveldata"

const (
	// VerticesPerQuad is two triangles without an index buffer.
	VerticesPerQuad = 6
	// MaxBatchQuads is the default batch capacity.
	MaxBatchQuads = 256 * 256
)

// Quad corners in (u, v) and the order they are emitted as two triangles.
var (
	quadCorners = [4][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}}
	quadOrder   = [VerticesPerQuad]int{0, 1, 3, 3, 1, 2}
)

// Batch accumulates sprite quads and hands them to a Program. The buffers
// are allocated once. Adding the quad that fills the batch flushes it, so no
// quad is ever dropped.
type Batch struct {
	program   Program
	capacity  int
	vertices  []float32
	texCoords []float32
	count     int
	draws     int
}

// NewBatch allocates a batch for capacity quads. A non-positive capacity
// falls back to MaxBatchQuads.
func NewBatch(capacity int, program Program) *Batch {
	if capacity <= 0 {
		capacity = MaxBatchQuads
	}
	n := capacity * VerticesPerQuad * 2
	return &Batch{
		program:   program,
		capacity:  capacity,
		vertices:  make([]float32, n),
		texCoords: make([]float32, n),
	}
}

// Add enqueues one sprite. (x, y) is the isometric position of the cell,
// l the cell size, w the sprite height scale and h the height step that
// lifts the sprite by half a cell per step.
func (b *Batch) Add(x, y, l, w, h float64, tile byte) {
	base := b.count * VerticesPerQuad * 2

	px, py := float32(x), float32(y)
	fl, fw := float32(l), float32(w)
	lift := float32(h) * fl / 2

	col := float32(int(tile) % leveldata.AtlasCols)
	row := float32(int(tile) / leveldata.AtlasCols)
	const du, dv = 1.0 / leveldata.AtlasCols, 1.0 / leveldata.AtlasRows

	for i, corner := range quadOrder {
		u, v := quadCorners[corner][0], quadCorners[corner][1]
		o := base + i*2
		b.vertices[o] = px + 2*fl*u
		b.vertices[o+1] = py + 2*fw*v - lift
		b.texCoords[o] = u*du + col*du
		b.texCoords[o+1] = v*dv + row*dv
	}

	b.count++
	if b.count >= b.capacity {
		b.Flush()
	}
}

// Flush draws everything enqueued in one call and empties the batch. An
// empty batch issues no draw.
func (b *Batch) Flush() {
	if b.count == 0 {
		return
	}
	if b.program != nil {
		b.program.Draw(b.vertices, b.texCoords, b.count*VerticesPerQuad)
	}
	b.draws++
	b.count = 0
}

// Count returns the number of quads waiting for the next flush.
func (b *Batch) Count() int { return b.count }

// Capacity returns the number of quads a single flush can hold.
func (b *Batch) Capacity() int { return b.capacity }

// Draws returns the number of non-empty flushes since the last ResetDraws.
func (b *Batch) Draws() int { return b.draws }

// ResetDraws zeroes the draw counter.
func (b *Batch) ResetDraws() { b.draws = 0 }
