package sparips

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ValidateDistanceMatrix checks that distMatrix is a well-formed flat n×n
// distance matrix: correct length, zero diagonal, symmetric, no negative
// entries. +Inf and NaN off-diagonal entries are allowed and mean "no edge";
// mirrored entries must agree (equal, or both +Inf, or both NaN).
func ValidateDistanceMatrix(distMatrix []float64, n int) error {
	if n < 0 {
		return fmt.Errorf("sparips: n must be >= 0, got %d", n)
	}
	if len(distMatrix) != n*n {
		return fmt.Errorf("sparips: distMatrix length %d does not match n*n = %d (n=%d)", len(distMatrix), n*n, n)
	}

	for i := 0; i < n; i++ {
		if d := distMatrix[i*n+i]; d != 0 {
			return fmt.Errorf("sparips: distMatrix diagonal entry [%d][%d] = %v, must be 0", i, i, d)
		}
		for j := i + 1; j < n; j++ {
			d, m := distMatrix[i*n+j], distMatrix[j*n+i]
			if d < 0 || m < 0 {
				return fmt.Errorf("sparips: negative distance %v at [%d][%d]", math.Min(d, m), i, j)
			}
			if d != m && !(math.IsNaN(d) && math.IsNaN(m)) {
				return fmt.Errorf("sparips: distMatrix not symmetric at [%d][%d]: %v vs %v", i, j, d, m)
			}
		}
	}

	return nil
}

// FlattenMatrix converts a square gonum matrix into the flat row-major form
// the rest of the package consumes, validating it on the way.
func FlattenMatrix(m mat.Matrix) ([]float64, int, error) {
	r, c := m.Dims()
	if r != c {
		return nil, 0, fmt.Errorf("sparips: distance matrix must be square, got %dx%d", r, c)
	}

	flat := make([]float64, r*r)
	for i := 0; i < r; i++ {
		for j := 0; j < r; j++ {
			flat[i*r+j] = m.At(i, j)
		}
	}

	if err := ValidateDistanceMatrix(flat, r); err != nil {
		return nil, 0, err
	}
	return flat, r, nil
}
