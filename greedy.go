package sparips

import "gonum.org/v1/gonum/floats"

// GreedyPermutation performs furthest-point sampling on a dense pairwise
// distance matrix. distMatrix is flat []float64, n×n row-major; it is not
// modified. seed is the index of the first point in the permutation.
//
// Returns the selection order perm (perm[0] == seed) and the insertion radii
// lambdas, indexed by original point index: lambdas[p] is the distance from p
// to the nearest previously-selected point at the moment p was added. The
// seed's radius is reported as 0, a sentinel for "undefined"; every other
// radius is non-increasing along the selection order.
//
// Selection ties are broken by lowest index. If the point cloud contains
// duplicates the running distances can reach zero everywhere, in which case
// the argmax keeps re-selecting index 0 and the remaining radii stay 0; the
// resulting radii still satisfy the contract above.
//
// O(n²) time, O(n) auxiliary space.
func GreedyPermutation(distMatrix []float64, n, seed int) (perm []int, lambdas []float64) {
	if n <= 0 {
		return nil, nil
	}

	perm = make([]int, 1, n)
	perm[0] = seed
	lambdas = make([]float64, n)

	// ds[k] is the distance from k to the closest selected point so far.
	ds := make([]float64, n)
	copy(ds, distMatrix[seed*n:(seed+1)*n])

	for i := 1; i < n; i++ {
		idx := floats.MaxIdx(ds)
		perm = append(perm, idx)
		lambdas[idx] = ds[idx]
		for k := 0; k < n; k++ {
			if d := distMatrix[idx*n+k]; d < ds[k] {
				ds[k] = d
			}
		}
	}

	return perm, lambdas
}
