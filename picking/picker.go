// Package picking resolves screen taps to map cells. Every cell is an object
// in a resolv space laid out in grid coordinates; a one-pixel probe is moved
// to the grid position under the pointer and checked against it.
package picking

import (
	"github.com/automoto/wideworld/shared/gamemath"
	"github.com/automoto/wideworld/shared/leveldata"
	"github.com/automoto/wideworld/tags"
	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// Cell addresses one map cell.
type Cell struct {
	Row, Col int
}

// Picker finds the cell whose top face is drawn under a world point.
type Picker struct {
	space     *resolv.Space
	probe     *resolv.Object
	level     *leveldata.Level
	cellSize  float64
	maxHeight int
}

// New indexes level for picking. cellSize must match the renderer's.
func New(level *leveldata.Level, cellSize float64) *Picker {
	cs := int(cellSize)
	p := &Picker{
		space:    resolv.NewSpace(level.Cols*cs, level.Rows*cs, cs, cs),
		probe:    resolv.NewObject(0, 0, 1, 1, tags.ResolvProbe),
		level:    level,
		cellSize: cellSize,
	}

	for row := 0; row < level.Rows; row++ {
		for col := 0; col < level.Cols; col++ {
			obj := resolv.NewObject(float64(col)*cellSize, float64(row)*cellSize, cellSize, cellSize, tags.ResolvTile)
			obj.Data = Cell{Row: row, Col: col}
			p.space.Add(obj)
		}
	}
	p.space.Add(p.probe)

	for _, h := range level.Heights {
		if int(h) > p.maxHeight {
			p.maxHeight = int(h)
		}
	}
	return p
}

// Level returns the level the picker was built for.
func (p *Picker) Level() *leveldata.Level { return p.level }

// Pick returns the cell whose top face covers the isometric world point.
// Raised cells are tried at every height; when several faces overlap the
// one drawn last, nearest the viewer, wins.
func (p *Picker) Pick(world dmath.Vec2) (Cell, bool) {
	var best Cell
	found := false

	for h := 0; h <= p.maxHeight; h++ {
		lift := float64(h) * p.cellSize / 2
		// Sprites are drawn one cell to the right of their iso anchor.
		c, ok := p.locate(dmath.Vec2{X: world.X - p.cellSize, Y: world.Y + lift})
		if !ok || int(p.level.Heights[p.level.Index(c.Row, c.Col)]) != h {
			continue
		}
		if !found || c.Row+c.Col > best.Row+best.Col {
			best, found = c, true
		}
	}
	return best, found
}

// locate maps an isometric point on the ground plane to its cell.
func (p *Picker) locate(iso dmath.Vec2) (Cell, bool) {
	g := gamemath.To2D(iso)
	if g.X < 0 || g.Y < 0 {
		return Cell{}, false
	}

	p.probe.X, p.probe.Y = g.X, g.Y
	p.probe.Update()

	check := p.probe.Check(0, 0, tags.ResolvTile)
	if check == nil {
		return Cell{}, false
	}
	for _, obj := range check.Objects {
		if c, ok := obj.Data.(Cell); ok {
			return c, true
		}
	}
	return Cell{}, false
}

// TopFace returns the world-space corners of the cell's top face in the
// order top, right, bottom, left.
func TopFace(c Cell, height byte, cellSize float64) [4]dmath.Vec2 {
	p := gamemath.CellToIso(c.Row, c.Col, cellSize)
	x := p.X + cellSize
	y := p.Y - float64(height)*cellSize/2
	return [4]dmath.Vec2{
		{X: x, Y: y},
		{X: x + cellSize, Y: y + cellSize/2},
		{X: x, Y: y + cellSize},
		{X: x - cellSize, Y: y + cellSize/2},
	}
}
