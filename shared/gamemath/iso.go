// Package gamemath holds the pure math shared by the camera, the tile
// renderer and the picker. It has no dependency on ebitengine.
package gamemath

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// ToIso converts orthogonal grid coordinates to isometric world coordinates.
// A grid square becomes a 2:1 diamond.
func ToIso(p dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{
		X: p.X - p.Y,
		Y: (p.X + p.Y) / 2,
	}
}

// To2D is the exact inverse of ToIso.
func To2D(p dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{
		X: (2*p.Y + p.X) / 2,
		Y: (2*p.Y - p.X) / 2,
	}
}

// CellToIso returns the isometric position of the top vertex of the cell at
// (row, col) for the given cell size in pixels.
func CellToIso(row, col int, cellSize float64) dmath.Vec2 {
	return ToIso(dmath.Vec2{X: float64(col) * cellSize, Y: float64(row) * cellSize})
}
