package tilebatch

import (
	"math"

	"github.com/automoto/wideworld/shared/gamemath"
)

// CullOptions describe the cell geometry used to size the visible range.
type CullOptions struct {
	CellSize     float64
	SpriteAspect float64
	// BufferCells widens the range so sprites that straddle the edge of the
	// viewport are still drawn.
	BufferCells int
}

// CellRange is a half-open block of cells: rows [RowMin, RowEnd) and
// columns [ColMin, ColEnd).
type CellRange struct {
	RowMin, RowEnd int
	ColMin, ColEnd int
}

// Empty reports whether the range holds no cells.
func (r CellRange) Empty() bool {
	return r.RowEnd <= r.RowMin || r.ColEnd <= r.ColMin
}

// Cells returns the number of cells in the range.
func (r CellRange) Cells() int {
	if r.Empty() {
		return 0
	}
	return (r.RowEnd - r.RowMin) * (r.ColEnd - r.ColMin)
}

const maxRadius = 1 << 20

// Radius returns how many cells around the focus cell can be on screen. The
// viewport diagonal covers every rotation of the diamond grid.
func Radius(view View, opts CullOptions) int {
	hyp := math.Hypot(view.Width(), view.Height())
	cell := opts.CellSize * opts.SpriteAspect
	if cell <= 0 || view.Zoom() <= 0 {
		return 0
	}
	r := math.Ceil(hyp / view.Zoom() / cell * 0.5)
	if r > maxRadius || math.IsNaN(r) {
		r = maxRadius
	}
	return int(r) + opts.BufferCells
}

// VisibleRange returns the cells around the camera focus that can be on
// screen, clamped to the level.
func VisibleRange(view View, rows, cols int, opts CullOptions) CellRange {
	radius := Radius(view, opts)
	g := gamemath.To2D(view.Coord())

	targetCol := int(math.Floor(g.X / opts.CellSize))
	targetRow := int(math.Floor(g.Y / opts.CellSize))

	return CellRange{
		RowMin: gamemath.ClampInt(targetRow-radius, 0, rows),
		RowEnd: gamemath.ClampInt(targetRow+radius+1, 0, rows),
		ColMin: gamemath.ClampInt(targetCol-radius, 0, cols),
		ColEnd: gamemath.ClampInt(targetCol+radius+1, 0, cols),
	}
}
