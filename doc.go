// Package sparips builds approximate sparse Vietoris–Rips filtrations.
//
// Computing persistent homology from a full pairwise distance matrix costs
// time and memory in the number of edges, N(N-1)/2. This package implements
// the standard sparsification preprocessing: a furthest-point-sampling greedy
// permutation assigns every point an insertion radius, and those radii drive
// a pruning and reweighting pass that keeps only a small edge subset whose
// induced filtration approximates the full one to a multiplicative (1+ε)
// factor on every birth and death time.
//
// Basic usage:
//
//	cfg := sparips.DefaultConfig()
//	cfg.Epsilon = 0.4
//	result, err := sparips.Sparsify(points, cfg)
//	// result.Lambdas[i] is point i's insertion radius
//	// result.Sparse holds the retained (i, j, weight) edges
//
// For precomputed distance matrices (flat row-major []float64):
//
//	result, err := sparips.SparsifyPrecomputed(distMatrix, n, cfg)
//
// The sparse structure is then handed to a persistence engine in
// distance-matrix mode; the engine and the diagram comparer are modeled as
// injected capabilities (see PersistenceEngine and DiagramComparer), not
// implemented here.
//
// Epsilon trades fidelity for edge count: as ε → 0 the full edge set
// survives with unchanged weights, while large ε retains a number of edges
// independent of N (it depends only on ε and the metric's doubling
// dimension). The lower-level stages GreedyPermutation and
// BuildSparseFiltration are exported for callers that manage their own
// matrices; note that BuildSparseFiltration consumes its input matrix.
package sparips
