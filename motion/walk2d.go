package motion

import (
	"fmt"
	"math"

	"github.com/katalvlaran/brownian/rng"
)

const opWalk2D = "Walk2D"

// Walk2D generates the (x, y) positions of one particle over stepCount
// positions separated by a time step stepSize.
//
// Algorithm:
//  1. Validate stepCount >= 1, stepSize > 0, sigma > 0 (in that order).
//  2. Draw stepCount-1 x-increments, then stepCount-1 y-increments, from
//     N(0, (sigma·√stepSize)²).
//  3. X[0] = Y[0] = 0 and pos[i] = pos[i-1] + inc[i-1].
//
// stepCount == 1 returns the single origin point without drawing.
//
// Errors: *ParamError (matches ErrInvalidParameter); no partial output.
// Complexity: O(stepCount) time and memory.
func Walk2D(stepCount int, stepSize, sigma float64, opts ...Option) (Trajectory2D, error) {
	return Walk2DWith(Walk2DParams{StepCount: stepCount, StepSize: stepSize, Sigma: sigma}, opts...)
}

// Walk2DWith is Walk2D taking a parameter struct.
func Walk2DWith(p Walk2DParams, opts ...Option) (Trajectory2D, error) {
	// Stage 1 (Validate): all-or-nothing, before any allocation or draw.
	if err := p.Validate(); err != nil {
		return Trajectory2D{}, err
	}

	// Stage 2 (Prepare): resolve the source and the per-step deviation.
	cfg := resolveOptions(opts)
	sigmaEff := p.Sigma * math.Sqrt(p.StepSize)
	n := p.StepCount - 1

	// Stage 3 (Draw): x first, then y.
	dx, err := rng.Normal(cfg.src, n, sigmaEff)
	if err != nil {
		return Trajectory2D{}, fmt.Errorf("%s: %w", opWalk2D, err)
	}
	dy, err := rng.Normal(cfg.src, n, sigmaEff)
	if err != nil {
		return Trajectory2D{}, fmt.Errorf("%s: %w", opWalk2D, err)
	}

	// Stage 4 (Accumulate): prefix sums prepended with the origin.
	return Trajectory2D{
		X: prefixSum(dx),
		Y: prefixSum(dy),
	}, nil
}

// prefixSum returns [0, inc[0], inc[0]+inc[1], ...] (length len(inc)+1).
func prefixSum(inc []float64) []float64 {
	out := make([]float64, len(inc)+1)
	var i int
	for i = 1; i < len(out); i++ {
		out[i] = out[i-1] + inc[i-1]
	}

	return out
}

// Len returns the number of recorded positions.
func (t Trajectory2D) Len() int { return len(t.X) }

// Increments returns the per-step displacements along each axis
// (length Len()-1; empty for a single-point trajectory).
func (t Trajectory2D) Increments() (dx, dy []float64) {
	return diff(t.X), diff(t.Y)
}

// diff returns successive differences of xs.
func diff(xs []float64) []float64 {
	if len(xs) < 2 {
		return []float64{}
	}
	out := make([]float64, len(xs)-1)
	for i := range out {
		out[i] = xs[i+1] - xs[i]
	}

	return out
}
