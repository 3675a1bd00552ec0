package motion

import (
	"fmt"
	"math"

	"github.com/katalvlaran/brownian/matrix"
	"github.com/katalvlaran/brownian/rng"
)

const opPaths = "Paths"

// Paths generates pathCount independent Brownian displacement paths sampled
// at sampleCount uniformly spaced points over [0, totalTime].
//
// Algorithm:
//  1. Validate sampleCount >= 2, pathCount >= 1, totalTime > 0 (in that order).
//  2. Time = linspace(0, totalTime, sampleCount), last point pinned to totalTime.
//  3. dt = Time[1] - Time[0]; draw a (sampleCount-1)×pathCount matrix of
//     standard normals, row-major, and scale it by √dt.
//  4. Prepend a zero row and take the cumulative sum down each column.
//
// Errors: *ParamError (matches ErrInvalidParameter). Dimensions whose
// product overflows int fail with matrix.ErrInvalidDimensions. No partial
// output.
// Complexity: O(sampleCount·pathCount) time and memory.
func Paths(sampleCount, pathCount int, totalTime float64, opts ...Option) (PathSet, error) {
	return PathsWith(PathParams{SampleCount: sampleCount, PathCount: pathCount, TotalTime: totalTime}, opts...)
}

// PathsWith is Paths taking a parameter struct.
func PathsWith(p PathParams, opts ...Option) (PathSet, error) {
	// Stage 1 (Validate).
	if err := p.Validate(); err != nil {
		return PathSet{}, err
	}

	// Stage 2 (Prepare): time axis and sample spacing.
	cfg := resolveOptions(opts)
	times := linspace(p.TotalTime, p.SampleCount)
	dt := times[1] - times[0]

	// Stage 3 (Draw): standard normals scaled to ΔW ~ N(0, dt).
	z, err := rng.NormalMatrix(cfg.src, p.SampleCount-1, p.PathCount, 1)
	if err != nil {
		return PathSet{}, fmt.Errorf("%s: %w", opPaths, err)
	}
	inc, err := matrix.Scale(z, math.Sqrt(dt))
	if err != nil {
		return PathSet{}, fmt.Errorf("%s: %w", opPaths, err)
	}

	// Stage 4 (Accumulate): zero origin row, then running sums per path.
	withOrigin, err := matrix.PrependZeroRow(inc)
	if err != nil {
		return PathSet{}, fmt.Errorf("%s: %w", opPaths, err)
	}
	disp, err := matrix.CumSumCols(withOrigin)
	if err != nil {
		return PathSet{}, fmt.Errorf("%s: %w", opPaths, err)
	}

	return PathSet{Time: times, Displacement: disp}, nil
}

// linspace returns n >= 2 evenly spaced points from 0 to stop inclusive.
func linspace(stop float64, n int) []float64 {
	out := make([]float64, n)
	step := stop / float64(n-1)
	var i int
	for i = 0; i < n-1; i++ {
		out[i] = float64(i) * step
	}
	out[n-1] = stop

	return out
}

// Len returns the number of time samples.
func (ps PathSet) Len() int { return len(ps.Time) }

// PathCount returns the number of paths (0 for the zero value).
func (ps PathSet) PathCount() int {
	if ps.Displacement == nil {
		return 0
	}

	return ps.Displacement.Cols()
}

// Dt returns the uniform sample spacing (0 if fewer than two samples).
func (ps PathSet) Dt() float64 {
	if len(ps.Time) < 2 {
		return 0
	}

	return ps.Time[1] - ps.Time[0]
}

// Path returns a copy of path j (one value per time sample).
func (ps PathSet) Path(j int) ([]float64, error) {
	if ps.Displacement == nil {
		return nil, fmt.Errorf("Path(%d): %w", j, matrix.ErrNilMatrix)
	}

	return ps.Displacement.Col(j)
}

// Increments returns the (Len()-1)×PathCount() matrix of per-interval
// displacements.
func (ps PathSet) Increments() (*matrix.Dense, error) {
	return matrix.DiffRows(ps.Displacement)
}
