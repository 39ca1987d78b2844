package sparips

import "math"

// DistanceMetric computes the distance between two points of equal dimension.
type DistanceMetric interface {
	Distance(a, b []float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
type DistanceFunc func(a, b []float64) float64

func (f DistanceFunc) Distance(a, b []float64) float64 { return f(a, b) }

// EuclideanMetric computes the Euclidean (L2) distance.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

// ChebyshevMetric computes the Chebyshev (L-infinity) distance.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(a, b []float64) float64 {
	var maxVal float64
	for i := range a {
		if v := math.Abs(a[i] - b[i]); v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// MinkowskiMetric computes the Minkowski distance parameterized by P.
// P must be >= 1. Panics if P < 1.
type MinkowskiMetric struct {
	P float64
}

func (m MinkowskiMetric) Distance(a, b []float64) float64 {
	if m.P < 1 {
		panic("MinkowskiMetric: P must be >= 1")
	}
	var sum float64
	for i := range a {
		sum += math.Pow(math.Abs(a[i]-b[i]), m.P)
	}
	return math.Pow(sum, 1.0/m.P)
}

// ComputePairwiseDistances computes the full n*n distance matrix.
// data is flat row-major with n rows and dims columns.
// Returns flat []float64 of length n*n.
func ComputePairwiseDistances(data []float64, n, dims int, metric DistanceMetric) []float64 {
	result := make([]float64, n*n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := metric.Distance(data[i*dims:(i+1)*dims], data[j*dims:(j+1)*dims])
			result[i*n+j] = d
			result[j*n+i] = d
		}
	}

	return result
}
