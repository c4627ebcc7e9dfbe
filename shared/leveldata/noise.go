package leveldata

import (
	"math"
	"math/rand"
)

// simplexNoise generates 2D simplex noise with a seed-shuffled permutation
// table.
type simplexNoise struct {
	perm [512]int
}

func newSimplexNoise(seed int64) *simplexNoise {
	sn := &simplexNoise{}
	r := rand.New(rand.NewSource(seed))

	p := make([]int, 256)
	for i := range p {
		p[i] = i
	}
	r.Shuffle(len(p), func(i, j int) { p[i], p[j] = p[j], p[i] })

	for i := range sn.perm {
		sn.perm[i] = p[i&255]
	}
	return sn
}

func grad2(hash int, x, y float64) float64 {
	h := hash & 7
	u, v := x, y
	if h >= 4 {
		u, v = y, x
	}
	if h&1 != 0 {
		u = -u
	}
	if h&2 != 0 {
		v = -v
	}
	return u + v
}

const (
	skew2   = 0.3660254037844386  // (sqrt(3) - 1) / 2
	unskew2 = 0.21132486540518713 // (3 - sqrt(3)) / 6
)

// noise2D returns simplex noise in [-1, 1].
func (sn *simplexNoise) noise2D(x, y float64) float64 {
	s := (x + y) * skew2
	i := math.Floor(x + s)
	j := math.Floor(y + s)

	t := (i + j) * unskew2
	x0 := x - (i - t)
	y0 := y - (j - t)

	i1, j1 := 0, 1
	if x0 > y0 {
		i1, j1 = 1, 0
	}

	x1 := x0 - float64(i1) + unskew2
	y1 := y0 - float64(j1) + unskew2
	x2 := x0 - 1 + 2*unskew2
	y2 := y0 - 1 + 2*unskew2

	ii := int(i) & 255
	jj := int(j) & 255

	corner := func(hash int, x, y float64) float64 {
		t := 0.5 - x*x - y*y
		if t <= 0 {
			return 0
		}
		t *= t
		return t * t * grad2(hash, x, y)
	}

	n := corner(sn.perm[ii+sn.perm[jj]], x0, y0) +
		corner(sn.perm[ii+i1+sn.perm[jj+j1]], x1, y1) +
		corner(sn.perm[ii+1+sn.perm[jj+1]], x2, y2)
	return 70 * n
}

// fractal sums octaves of noise and normalizes the result to [0, 1].
func (sn *simplexNoise) fractal(x, y, freq float64, octaves int) float64 {
	var total, maxAmp float64
	amp := 1.0
	for i := 0; i < octaves; i++ {
		total += sn.noise2D(x*freq, y*freq) * amp
		maxAmp += amp
		freq *= 2
		amp *= 0.5
	}
	return (total/maxAmp + 1) / 2
}
