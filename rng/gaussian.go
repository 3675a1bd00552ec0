package rng

import (
	"fmt"
	"math"

	"github.com/katalvlaran/brownian/matrix"
)

// validateDraw checks the shared preconditions of Normal and NormalMatrix.
func validateDraw(src Source, sigma float64) error {
	if src == nil {
		return ErrNilSource
	}
	if sigma < 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return ErrBadSigma
	}

	return nil
}

// Normal returns count independent draws from N(0, sigma²), computed as
// sigma·Z with Z taken from src in order.
//
// count == 0 returns an empty, non-nil slice and consumes nothing from src.
//
// Errors: ErrNilSource, ErrNegativeCount, ErrBadSigma.
// Complexity: O(count) time and memory.
func Normal(src Source, count int, sigma float64) ([]float64, error) {
	if err := validateDraw(src, sigma); err != nil {
		return nil, fmt.Errorf("Normal: %w", err)
	}
	if count < 0 {
		return nil, fmt.Errorf("Normal(%d): %w", count, ErrNegativeCount)
	}

	out := make([]float64, count)
	for i := range out {
		out[i] = sigma * src.NormFloat64()
	}

	return out, nil
}

// NormalMatrix returns a rows×cols matrix of independent N(0, sigma²) draws,
// filled row-major (row 0 left to right, then row 1, ...).
//
// Errors: ErrNilSource, ErrBadSigma, ErrNegativeCount for negative
// dimensions, and matrix.ErrInvalidDimensions when either dimension is 0
// (a Dense cannot be empty).
// Complexity: O(rows*cols).
func NormalMatrix(src Source, rows, cols int, sigma float64) (*matrix.Dense, error) {
	if err := validateDraw(src, sigma); err != nil {
		return nil, fmt.Errorf("NormalMatrix: %w", err)
	}
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NormalMatrix(%d,%d): %w", rows, cols, ErrNegativeCount)
	}
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("NormalMatrix: %w", err)
	}

	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			// Set cannot fail: indices are in range by construction.
			_ = m.Set(i, j, sigma*src.NormFloat64())
		}
	}

	return m, nil
}
