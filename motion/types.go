package motion

import (
	"github.com/katalvlaran/brownian/matrix"
)

// Walk2DParams groups the inputs of Walk2D.
type Walk2DParams struct {
	StepCount int     // number of recorded positions, >= 1
	StepSize  float64 // time interval per step, > 0
	Sigma     float64 // diffusion standard deviation, > 0
}

// PathParams groups the inputs of Paths.
type PathParams struct {
	SampleCount int     // number of time samples, >= 2
	PathCount   int     // number of independent paths, >= 1
	TotalTime   float64 // time horizon T, > 0
}

// Trajectory2D is one particle's position sequence. X and Y have equal
// length and start at the origin.
type Trajectory2D struct {
	X []float64
	Y []float64
}

// PathSet is the output of Paths: a uniform time axis and a
// sample × path displacement matrix whose row 0 is all zeros.
type PathSet struct {
	Time         []float64
	Displacement *matrix.Dense
}

// Summary is the sample mean and population standard deviation of N values.
type Summary struct {
	N    int
	Mean float64
	Std  float64
}
