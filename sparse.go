package sparips

import "math"

// SparseEdge is one retained pair of a sparse distance structure.
// I < J always holds; Weight is the reweighted (possibly warped) length.
type SparseEdge struct {
	I      int
	J      int
	Weight float64
}

// SparseDistanceMatrix is a sparse symmetric distance structure over n points.
// Only the surviving upper-triangle edges are stored; every absent
// off-diagonal pair is implicitly at infinite distance (no edge) and the
// diagonal is implicitly zero.
type SparseDistanceMatrix struct {
	N     int
	Edges []SparseEdge
}

// NumEdges returns the number of retained edges.
func (s *SparseDistanceMatrix) NumEdges() int { return len(s.Edges) }

// FullEdgeCount returns the edge count of the complete graph on N points.
func (s *SparseDistanceMatrix) FullEdgeCount() int { return s.N * (s.N - 1) / 2 }

// Sparsity returns the fraction of complete-graph edges retained, in [0, 1].
// Returns 0 when N < 2.
func (s *SparseDistanceMatrix) Sparsity() float64 {
	full := s.FullEdgeCount()
	if full == 0 {
		return 0
	}
	return float64(len(s.Edges)) / float64(full)
}

// At returns the stored weight for the unordered pair {i, j} and whether the
// pair was retained. At(i, i) returns (0, true). O(edges) scan.
func (s *SparseDistanceMatrix) At(i, j int) (float64, bool) {
	if i == j {
		return 0, true
	}
	if i > j {
		i, j = j, i
	}
	for _, e := range s.Edges {
		if e.I == i && e.J == j {
			return e.Weight, true
		}
	}
	return math.Inf(1), false
}

// ForEachEdge calls fn for every retained edge in storage order.
func (s *SparseDistanceMatrix) ForEachEdge(fn func(e SparseEdge)) {
	for _, e := range s.Edges {
		fn(e)
	}
}

// Dense materializes the structure as a flat n×n row-major matrix with the
// stored weight mirrored across the diagonal, 0 on the diagonal and +Inf for
// every absent pair. O(n²) memory.
func (s *SparseDistanceMatrix) Dense() []float64 {
	n := s.N
	result := make([]float64, n*n)
	inf := math.Inf(1)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				result[i*n+j] = inf
			}
		}
	}
	for _, e := range s.Edges {
		result[e.I*n+e.J] = e.Weight
		result[e.J*n+e.I] = e.Weight
	}
	return result
}
