package sparips

import (
	"log"
	"math"
)

// BuildSparseFiltration constructs a sparse, reweighted distance structure
// whose induced Rips filtration is a (1+eps) multiplicative approximation of
// the filtration induced by the full matrix. lambdas are the insertion radii
// from GreedyPermutation, indexed by point index; eps > 0 is the
// approximation parameter (larger eps keeps fewer edges).
//
// distMatrix is consumed: the builder takes ownership and overwrites pruned
// entries with +Inf in place. Callers that need the matrix afterwards must
// pass a copy. Caller-supplied +Inf or NaN entries are treated as absent
// edges, same as internally pruned ones.
//
// The permutation seed's radius sentinel (0) must be replaced with
// math.Inf(1) by the caller before building, otherwise every pair involving
// the seed is cut at radius 0 and the seed ends up isolated. Sparsify and
// SparsifyPrecomputed do this automatically.
//
// Construction, per retained pair {i, j} with i < j and d = distMatrix[i][j]:
//
//  1. Row pruning: d is discarded when it exceeds the lower-index search
//     bound ((eps²+3eps+2)/eps)·lambdas[i].
//  2. Cutoff: with minlam/maxlam the smaller/larger endpoint radius,
//     d is discarded when it exceeds
//     min((E0+E1)·minlam, E0·(minlam+maxlam)),
//     where E0 = (1+eps)/eps and E1 = (1+eps)²/eps.
//  3. Warp: if d > 2·minlam·E0 the retained weight becomes
//     2·(d − minlam·E0); otherwise the original distance is kept.
//
// O(n²) time; the output edge count depends only on eps and the metric's
// doubling dimension, not on n.
func BuildSparseFiltration(lambdas []float64, eps float64, distMatrix []float64, n int) *SparseDistanceMatrix {
	sdm := &SparseDistanceMatrix{N: n}
	if n <= 1 {
		return sdm
	}

	e0 := (1 + eps) / eps
	e1 := (1 + eps) * (1 + eps) / eps
	nbf := (eps*eps + 3*eps + 2) / eps
	inf := math.Inf(1)

	// Step 1: per-row search-neighborhood pruning, in place.
	for i := 0; i < n; i++ {
		bound := nbf * lambdas[i]
		row := distMatrix[i*n : (i+1)*n]
		for j := range row {
			if row[j] > bound {
				row[j] = inf
			}
		}
	}

	// Steps 2-3: cutoff and warp over the surviving upper triangle.
	for i := 0; i < n; i++ {
		li := lambdas[i]
		for j := i + 1; j < n; j++ {
			d := distMatrix[i*n+j]
			if math.IsInf(d, 1) || math.IsNaN(d) {
				continue
			}

			minlam, maxlam := li, lambdas[j]
			if minlam > maxlam {
				minlam, maxlam = maxlam, minlam
			}

			cutoff := math.Min((e0+e1)*minlam, e0*(minlam+maxlam))
			if d > cutoff {
				continue
			}

			// Past 2·minlam·E0 the growth balls stop expanding as cones
			// and the edge length is warped to the cylindrical regime.
			if d > 2*minlam*e0 {
				d = 2 * (d - minlam*e0)
			}

			sdm.Edges = append(sdm.Edges, SparseEdge{I: i, J: j, Weight: d})
		}
	}

	if len(sdm.Edges) == 0 {
		log.Printf("sparips: sparse filtration for n=%d points retained no edges (all points isolated at every scale)", n)
	}

	return sdm
}
