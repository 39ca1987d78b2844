package sparips

// This file defines the boundary to the external persistence-homology
// collaborators. The package deliberately ships no engine: computing
// diagrams (and comparing them) is injected by the caller, which keeps the
// geometric preprocessing independently testable.

// PersistencePair is one feature of a persistence diagram. Death is
// math.Inf(1) for essential features that never die.
type PersistencePair struct {
	Birth float64
	Death float64
}

// Diagram is the persistence diagram of a single homological dimension.
type Diagram []PersistencePair

// PersistenceOptions configures a persistence computation.
type PersistenceOptions struct {
	// MaxDim is the maximum homological dimension to compute (0 = components,
	// 1 = loops, 2 = voids, ...).
	MaxDim int

	// CoeffField is the prime p of the Z/pZ coefficient field. 0 lets the
	// engine pick its default (typically 2).
	CoeffField int
}

// PersistenceResult holds the diagrams returned by an engine.
type PersistenceResult struct {
	// Diagrams[d] is the diagram of homological dimension d, for d in
	// [0, MaxDim].
	Diagrams []Diagram

	// NumEdges is the number of edges the engine actually used. For a sparse
	// input this is at most SparseDistanceMatrix.NumEdges().
	NumEdges int
}

// PersistenceEngine computes Vietoris–Rips persistence diagrams. Implemented
// by callers wrapping an external homology library.
type PersistenceEngine interface {
	// PersistenceFromPoints computes diagrams for a point cloud under the
	// given metric.
	PersistenceFromPoints(points [][]float64, metric DistanceMetric, opts PersistenceOptions) (*PersistenceResult, error)

	// PersistenceFromDistances computes diagrams from a sparse distance
	// structure ("distance matrix mode"); absent pairs are never joined.
	PersistenceFromDistances(sdm *SparseDistanceMatrix, opts PersistenceOptions) (*PersistenceResult, error)
}

// PersistenceFunc adapts a plain distance-structure function into a
// PersistenceEngine. The point-cloud entry point builds the complete
// pairwise structure and delegates to the same function.
type PersistenceFunc func(sdm *SparseDistanceMatrix, opts PersistenceOptions) (*PersistenceResult, error)

func (f PersistenceFunc) PersistenceFromDistances(sdm *SparseDistanceMatrix, opts PersistenceOptions) (*PersistenceResult, error) {
	return f(sdm, opts)
}

func (f PersistenceFunc) PersistenceFromPoints(points [][]float64, metric DistanceMetric, opts PersistenceOptions) (*PersistenceResult, error) {
	n := len(points)
	sdm := &SparseDistanceMatrix{N: n}
	if n == 0 {
		return f(sdm, opts)
	}

	dims := len(points[0])
	flat := make([]float64, n*dims)
	for i, p := range points {
		copy(flat[i*dims:], p)
	}
	dist := ComputePairwiseDistances(flat, n, dims, metric)

	sdm.Edges = make([]SparseEdge, 0, n*(n-1)/2)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			sdm.Edges = append(sdm.Edges, SparseEdge{I: i, J: j, Weight: dist[i*n+j]})
		}
	}
	return f(sdm, opts)
}

// MatchedPair records one assignment of an optimal-transport matching between
// two diagrams. An index of -1 means the feature was matched to the diagonal.
type MatchedPair struct {
	A int
	B int
}

// DiagramComparer computes an optimal-transport (Wasserstein-style) distance
// between two diagrams of the same homological dimension, optionally
// reporting the matching used.
type DiagramComparer interface {
	Compare(a, b Diagram) (float64, []MatchedPair, error)
}
