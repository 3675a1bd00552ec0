package motion

import (
	"fmt"
	"math"

	"github.com/katalvlaran/brownian/matrix"
)

// Summarize returns the count, mean and population standard deviation
// (divide by N) of xs. An empty input yields the zero Summary.
// Complexity: O(len(xs)).
func Summarize(xs []float64) Summary {
	if len(xs) == 0 {
		return Summary{}
	}
	var mean, sq float64
	for _, v := range xs {
		mean += v
	}
	mean /= float64(len(xs))
	for _, v := range xs {
		sq += (v - mean) * (v - mean)
	}

	return Summary{N: len(xs), Mean: mean, Std: math.Sqrt(sq / float64(len(xs)))}
}

// String renders the summary for logs.
func (s Summary) String() string {
	return fmt.Sprintf("n=%d mean=%.6g std=%.6g", s.N, s.Mean, s.Std)
}

// IncrementSummary pools every increment of every path. For a well-formed
// set the mean tends to 0 and the std to √Dt() as the sample grows.
func (ps PathSet) IncrementSummary() (Summary, error) {
	inc, err := ps.Increments()
	if err != nil {
		return Summary{}, err
	}

	return Summarize(inc.Values()), nil
}

// MeanSquaredDisplacement returns, per time sample, the mean of the squared
// displacement over all paths. For Brownian paths E[W(t)²] = t, so the
// result tracks Time as PathCount grows.
func (ps PathSet) MeanSquaredDisplacement() ([]float64, error) {
	return matrix.RowMeanSquares(ps.Displacement)
}

// IncrementSummary pools the x and y increments of the trajectory; the std
// tends to sigma·√stepSize.
func (t Trajectory2D) IncrementSummary() Summary {
	dx, dy := t.Increments()

	return Summarize(append(dx, dy...))
}
