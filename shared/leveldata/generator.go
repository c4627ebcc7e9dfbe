package leveldata

import (
	"fmt"
	"math"
	"math/rand"
)

// Generate builds a deterministic stand-in level for a seed: an elevation
// field banded into heights 1..MaxHeight, base tiles by height and sparse
// vegetation overlays. Equal arguments always produce equal levels.
func Generate(rows, cols int, seed uint64) *Level {
	lvl := NewLevel(fmt.Sprintf("seed-%d", seed), rows, cols)
	lvl.Seed = seed

	base := int64(seed)
	elevation := newSimplexNoise(base)
	moisture := newSimplexNoise(base + 1)
	rng := rand.New(rand.NewSource(base + 100))

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			i := lvl.Index(row, col)
			x, y := float64(col), float64(row)

			elev := math.Pow(elevation.fractal(x, y, 0.04, 3), 1.2)
			moist := moisture.fractal(x, y, 0.06, 2)

			h := heightBand(elev)
			lvl.Heights[i] = h
			lvl.Tiles1[i] = baseTile(h, moist)
			lvl.Tiles2[i] = overlayTile(lvl.Tiles1[i], moist, rng.Float64())
		}
	}
	return lvl
}

func heightBand(v float64) byte {
	v = math.Round(v*8) / 8
	switch {
	case v < 0.25:
		return 1
	case v < 0.5:
		return 2
	case v < 0.75:
		return 3
	}
	return MaxHeight
}

func baseTile(height byte, moist float64) byte {
	switch height {
	case 1:
		return TileWater
	case 2:
		if moist < 0.4 {
			return TileSand
		}
		return TileGrass
	case 3:
		if moist < 0.35 {
			return TileDirt
		}
		return TileGrass
	}
	if moist > 0.6 {
		return TileSnow
	}
	return TileRock
}

func overlayTile(base byte, moist, roll float64) byte {
	switch base {
	case TileGrass:
		switch {
		case moist > 0.6 && roll < 0.5:
			return TilePine
		case moist > 0.5 && roll < 0.3:
			return TileTree
		case roll < 0.05:
			return TileFlower
		case roll < 0.08:
			return TileBush
		}
	case TileDirt, TileRock:
		if roll < 0.06 {
			return TileBoulder
		}
	}
	return TileEmpty
}
