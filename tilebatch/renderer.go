package tilebatch

import (
	"github.com/automoto/wideworld/shared/gamemath"
	"github.com/automoto/wideworld/shared/leveldata"
	log "github.com/sirupsen/logrus"
)

// Options configure a Renderer.
type Options struct {
	CellSize     float64
	SpriteAspect float64
	BufferCells  int
	// BatchQuads is the batch capacity; zero means MaxBatchQuads.
	BatchQuads int
}

// Stats describe the last rendered frame.
type Stats struct {
	Range     CellRange
	Quads     int
	DrawCalls int
}

// Renderer owns the quad batch and draws a level through a Program.
type Renderer struct {
	program Program
	batch   *Batch
	opts    Options
	stats   Stats
	skipped *leveldata.Level
}

// NewRenderer creates a renderer. A nil program turns Render into a no-op,
// which is how a failed GPU setup degrades.
func NewRenderer(program Program, opts Options) *Renderer {
	if opts.SpriteAspect == 0 {
		opts.SpriteAspect = 1
	}
	return &Renderer{
		program: program,
		batch:   NewBatch(opts.BatchQuads, program),
		opts:    opts,
	}
}

// Stats returns counters of the last Render call.
func (r *Renderer) Stats() Stats { return r.stats }

// Render draws the cells of level that the view can see. Base tiles are
// always drawn; overlays sit one height step above their base.
func (r *Renderer) Render(level *leveldata.Level, view View) {
	r.stats = Stats{}
	if r.program == nil || level == nil {
		return
	}
	if err := level.Validate(); err != nil {
		if r.skipped != level {
			log.WithError(err).Warn("tilebatch: skipping malformed level")
			r.skipped = level
		}
		return
	}

	r.program.SetViewProjection(view.ViewProj())
	r.batch.ResetDraws()

	cells := VisibleRange(view, level.Rows, level.Cols, CullOptions{
		CellSize:     r.opts.CellSize,
		SpriteAspect: r.opts.SpriteAspect,
		BufferCells:  r.opts.BufferCells,
	})

	l := r.opts.CellSize
	w := r.opts.CellSize * r.opts.SpriteAspect
	quads := 0

	for row := cells.RowMin; row < cells.RowEnd; row++ {
		for col := cells.ColMin; col < cells.ColEnd; col++ {
			p := gamemath.CellToIso(row, col, l)
			i := level.Index(row, col)
			h := float64(level.Heights[i])

			r.batch.Add(p.X, p.Y, l, w, h, level.Tiles1[i])
			quads++

			if overlay := level.Tiles2[i]; overlay != leveldata.TileEmpty {
				r.batch.Add(p.X, p.Y, l, w, h+1, overlay)
				quads++
			}
		}
	}
	r.batch.Flush()

	r.stats = Stats{Range: cells, Quads: quads, DrawCalls: r.batch.Draws()}
}
