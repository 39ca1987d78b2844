package sparips

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Deterministic point-cloud samplers for demos, tests and benchmarks.
// They generate the kinds of clouds sparse filtrations are typically
// exercised on; image-patch extraction is deliberately not provided.

// SampleNoisyCircle samples n points from a circle of the given radius with
// Gaussian noise of standard deviation noise added to each coordinate.
// Deterministic for a fixed seed.
func SampleNoisyCircle(n int, radius, noise float64, seed uint64) [][]float64 {
	src := rand.NewPCG(seed, seed)
	angle := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: src}
	gauss := distuv.Normal{Mu: 0, Sigma: noise, Src: src}

	points := make([][]float64, n)
	for i := range points {
		t := angle.Rand()
		x := radius * math.Cos(t)
		y := radius * math.Sin(t)
		if noise > 0 {
			x += gauss.Rand()
			y += gauss.Rand()
		}
		points[i] = []float64{x, y}
	}
	return points
}

// SampleUniformBox samples n points uniformly from the dims-dimensional cube
// [0, side]^dims. Deterministic for a fixed seed.
func SampleUniformBox(n, dims int, side float64, seed uint64) [][]float64 {
	u := distuv.Uniform{Min: 0, Max: side, Src: rand.NewPCG(seed, seed)}

	points := make([][]float64, n)
	for i := range points {
		p := make([]float64, dims)
		for d := range p {
			p[d] = u.Rand()
		}
		points[i] = p
	}
	return points
}

// SampleTorus samples n points from a torus embedded in R³ with the given
// major radius R and minor radius r. Deterministic for a fixed seed.
func SampleTorus(n int, R, r float64, seed uint64) [][]float64 {
	angle := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: rand.NewPCG(seed, seed)}

	points := make([][]float64, n)
	for i := range points {
		u := angle.Rand()
		v := angle.Rand()
		points[i] = []float64{
			(R + r*math.Cos(v)) * math.Cos(u),
			(R + r*math.Cos(v)) * math.Sin(u),
			r * math.Sin(v),
		}
	}
	return points
}
