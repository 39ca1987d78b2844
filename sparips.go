package sparips

import (
	"fmt"
	"math"
	"runtime"
)

// Config controls sparse filtration construction.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Epsilon is the approximation parameter. The persistence diagram of the
	// sparse structure approximates the diagram of the full matrix to a
	// multiplicative factor of (1+Epsilon); larger values keep fewer edges.
	// Must be > 0. Default: 0.1.
	Epsilon float64

	// Seed is the index of the first point in the greedy permutation.
	// The construction is valid for any choice; 0 matches the reference
	// behavior. Must be in [0, n). Default: 0.
	Seed int

	// Metric is the distance function used to build the pairwise matrix when
	// starting from a point cloud. Built-in: EuclideanMetric, ManhattanMetric,
	// ChebyshevMetric, MinkowskiMetric. Use DistanceFunc to wrap a custom
	// function. Ignored by SparsifyPrecomputed. Default: EuclideanMetric.
	Metric DistanceMetric

	// Workers controls the number of goroutines used for the pairwise
	// distance computation. The sampler and the builder themselves are
	// sequential. 0 means use runtime.NumCPU(). Default: 0 (auto).
	Workers int
}

// Result contains the output of sparse filtration construction.
type Result struct {
	// Perm is the greedy permutation: the order in which points were selected
	// by furthest-point sampling, starting with the seed.
	Perm []int

	// Lambdas holds each point's insertion radius, indexed by original point
	// index. The seed's radius is the 0 sentinel (conceptually infinite).
	Lambdas []float64

	// Sparse is the reweighted sparse distance structure. Feed it to a
	// persistence engine in distance-matrix mode to obtain diagrams within a
	// (1+Epsilon) factor of the full computation.
	Sparse *SparseDistanceMatrix
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Epsilon: 0.1,
		Metric:  EuclideanMetric{},
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// validateConfig checks cfg against n, the number of points.
func validateConfig(cfg *Config, n int) error {
	if cfg.Epsilon <= 0 || math.IsNaN(cfg.Epsilon) {
		return fmt.Errorf("sparips: Epsilon must be > 0, got %v", cfg.Epsilon)
	}
	if cfg.Seed < 0 || (n > 0 && cfg.Seed >= n) {
		return fmt.Errorf("sparips: Seed must be in [0, %d), got %d", n, cfg.Seed)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("sparips: Workers must be >= 0, got %d", cfg.Workers)
	}
	return nil
}

func emptyResult(n int) *Result {
	return &Result{
		Perm:    []int{},
		Lambdas: make([]float64, n),
		Sparse:  &SparseDistanceMatrix{N: n},
	}
}

// Sparsify runs the full pipeline on a point cloud: pairwise distances →
// greedy permutation → sparse filtration. Each element of data is a point;
// all points must have the same dimensionality. data is not modified.
func Sparsify(data [][]float64, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	n := len(data)
	if err := validateConfig(&cfg, n); err != nil {
		return nil, err
	}
	if n == 0 {
		return emptyResult(0), nil
	}

	dims := len(data[0])
	for i, row := range data {
		if len(row) != dims {
			return nil, fmt.Errorf("sparips: point %d has %d dimensions, expected %d", i, len(row), dims)
		}
	}

	flatData := make([]float64, n*dims)
	for i, row := range data {
		copy(flatData[i*dims:], row)
	}

	distMatrix := ComputePairwiseDistancesParallel(flatData, n, dims, cfg.Metric, cfg.Workers)
	return sparsify(distMatrix, n, cfg), nil
}

// SparsifyPrecomputed runs the pipeline on a precomputed distance matrix.
// distMatrix is a flat []float64 of length n*n in row-major order; it is
// validated (see ValidateDistanceMatrix) and then copied, so the caller's
// matrix is left untouched. The Config.Metric field is ignored.
func SparsifyPrecomputed(distMatrix []float64, n int, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg, n); err != nil {
		return nil, err
	}
	if err := ValidateDistanceMatrix(distMatrix, n); err != nil {
		return nil, err
	}
	if n == 0 {
		return emptyResult(0), nil
	}

	scratch := make([]float64, len(distMatrix))
	copy(scratch, distMatrix)
	return sparsify(scratch, n, cfg), nil
}

// sparsify owns distMatrix from here on; the builder mutates it in place.
func sparsify(distMatrix []float64, n int, cfg Config) *Result {
	perm, lambdas := GreedyPermutation(distMatrix, n, cfg.Seed)

	if n == 1 {
		return &Result{Perm: perm, Lambdas: lambdas, Sparse: &SparseDistanceMatrix{N: 1}}
	}

	// The seed's radius is reported as the 0 sentinel but is conceptually
	// infinite: its ball never stops growing. The builder needs the infinite
	// form, otherwise the seed is cut from the filtration at radius 0.
	buildLambdas := make([]float64, n)
	copy(buildLambdas, lambdas)
	buildLambdas[cfg.Seed] = math.Inf(1)

	sparse := BuildSparseFiltration(buildLambdas, cfg.Epsilon, distMatrix, n)
	return &Result{Perm: perm, Lambdas: lambdas, Sparse: sparse}
}
