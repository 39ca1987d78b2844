package sparips

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// circleDistances builds the dense matrix (and radii with the seed's entry
// set to +Inf, as the pipeline does) for a fixed noisy circle.
func circleDistances(t *testing.T, n int) (dist, buildLambdas []float64) {
	t.Helper()
	points := SampleNoisyCircle(n, 1.0, 0.05, 11)
	flat := flattenPoints(points)
	dist = ComputePairwiseDistances(flat, n, 2, EuclideanMetric{})
	_, lambdas := GreedyPermutation(dist, n, 0)
	lambdas[0] = math.Inf(1)
	return dist, lambdas
}

func TestBuildSparseFiltration_TinyEpsilonKeepsEverything(t *testing.T) {
	// Evenly spaced circle: the smallest insertion radius is the point
	// spacing 2·sin(π/n), so every search bound dwarfs the diameter at
	// eps=1e-4 and the complete edge set must survive unwarped.
	n := 40
	flat := make([]float64, 2*n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		flat[2*i] = math.Cos(theta)
		flat[2*i+1] = math.Sin(theta)
	}
	dist := ComputePairwiseDistances(flat, n, 2, EuclideanMetric{})
	_, lambdas := GreedyPermutation(dist, n, 0)
	lambdas[0] = math.Inf(1)
	original := make([]float64, len(dist))
	copy(original, dist)

	sdm := BuildSparseFiltration(lambdas, 1e-4, dist, n)

	require.Equal(t, n*(n-1)/2, sdm.NumEdges(),
		"a near-exact approximation must keep the complete edge set")
	for _, e := range sdm.Edges {
		assert.InDelta(t, original[e.I*n+e.J], e.Weight, 1e-9,
			"weights must be unwarped at tiny epsilon")
	}
}

func TestBuildSparseFiltration_SparsifiesAtLargeEpsilon(t *testing.T) {
	n := 40
	dist, lambdas := circleDistances(t, n)
	sdm := BuildSparseFiltration(lambdas, 1.0, dist, n)

	assert.Greater(t, sdm.NumEdges(), 0)
	assert.Less(t, sdm.NumEdges(), n*(n-1)/2,
		"a loose approximation must drop edges")
}

func TestBuildSparseFiltration_EdgeCountMonotoneInEpsilon(t *testing.T) {
	n := 40
	prev := math.MaxInt
	for _, eps := range []float64{0.01, 0.05, 0.1, 0.2, 0.4, 0.7, 1.0, 2.0} {
		dist, lambdas := circleDistances(t, n)
		sdm := BuildSparseFiltration(lambdas, eps, dist, n)
		assert.LessOrEqual(t, sdm.NumEdges(), prev,
			"edge count must not grow as epsilon loosens (eps=%v)", eps)
		prev = sdm.NumEdges()
	}
}

func TestBuildSparseFiltration_WeightBlowUpBounded(t *testing.T) {
	n := 40
	for _, eps := range []float64{0.1, 0.5, 1.0, 3.0} {
		dist, lambdas := circleDistances(t, n)
		original := make([]float64, len(dist))
		copy(original, dist)

		sdm := BuildSparseFiltration(lambdas, eps, dist, n)
		for _, e := range sdm.Edges {
			d := original[e.I*n+e.J]
			assert.LessOrEqual(t, e.Weight, 2*d+1e-12,
				"warped weight 2·(d − minlam·E0) can never exceed 2·d (eps=%v)", eps)
			assert.GreaterOrEqual(t, e.Weight, 0.0)
		}
	}
}

func TestBuildSparseFiltration_Deterministic(t *testing.T) {
	n := 40
	distA, lambdasA := circleDistances(t, n)
	distB, lambdasB := circleDistances(t, n)

	a := BuildSparseFiltration(lambdasA, 0.4, distA, n)
	b := BuildSparseFiltration(lambdasB, 0.4, distB, n)

	assert.Equal(t, a.Edges, b.Edges,
		"independent runs on copies of the same input must agree exactly")
}

func TestBuildSparseFiltration_ConsumesMatrix(t *testing.T) {
	n := 40
	dist, lambdas := circleDistances(t, n)
	original := make([]float64, len(dist))
	copy(original, dist)

	BuildSparseFiltration(lambdas, 1.0, dist, n)

	mutated := false
	for i := range dist {
		if dist[i] != original[i] {
			mutated = true
			break
		}
	}
	assert.True(t, mutated, "the builder prunes the matrix in place; callers lose it")
}

func TestBuildSparseFiltration_ZeroRadiiIsolateEverything(t *testing.T) {
	// All radii 0 with distinct points: every search bound is 0, so every
	// positive distance is pruned and the structure induces n isolated
	// components at all scales. Degenerate but valid.
	data := []float64{0, 0, 3, 0, 0, 4}
	dist := ComputePairwiseDistances(data, 3, 2, EuclideanMetric{})

	sdm := BuildSparseFiltration([]float64{0, 0, 0}, 0.5, dist, 3)

	assert.Equal(t, 0, sdm.NumEdges())
	assert.Equal(t, 3, sdm.N)
}

func TestBuildSparseFiltration_InputInfAndNaNAreNoEdges(t *testing.T) {
	inf := math.Inf(1)
	nan := math.NaN()
	dist := []float64{
		0, 1, inf,
		1, 0, nan,
		inf, nan, 0,
	}
	lambdas := []float64{inf, 1, 1}

	sdm := BuildSparseFiltration(lambdas, 0.5, dist, 3)

	require.Equal(t, 1, sdm.NumEdges(), "only the finite pair may survive")
	assert.Equal(t, 0, sdm.Edges[0].I)
	assert.Equal(t, 1, sdm.Edges[0].J)
}

func TestBuildSparseFiltration_Trivial(t *testing.T) {
	assert.Equal(t, 0, BuildSparseFiltration(nil, 0.5, nil, 0).NumEdges())
	assert.Equal(t, 0, BuildSparseFiltration([]float64{0}, 0.5, []float64{0}, 1).NumEdges())
}
