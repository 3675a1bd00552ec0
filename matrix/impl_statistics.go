// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Per-column and per-row summaries used to check the statistical shape of
//     generated paths (column = path, row = sample point).
//
// Exposed API:
//   - ColumnMeans(X)    -> []float64 (len=c)
//   - ColumnStds(X)     -> []float64 (len=c), population form (divide by r)
//   - RowMeanSquares(X) -> []float64 (len=r), mean of X[i,j]² over j
//
// Determinism:
//   - Fixed i→j traversal; no randomness.

package matrix

import "math"

const (
	opColumnMeans    = "ColumnMeans"
	opColumnStds     = "ColumnStds"
	opRowMeanSquares = "RowMeanSquares"
)

// ColumnMeans returns Σ_i X[i,j] / r for every column j.
// Complexity: O(r*c) time, O(c) space.
func ColumnMeans(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}
	d, err := toDense(X)
	if err != nil {
		return nil, matrixErrorf(opColumnMeans, err)
	}

	return columnMeans(d), nil
}

// columnMeans is the Dense kernel behind ColumnMeans.
func columnMeans(d *Dense) []float64 {
	means := make([]float64, d.c)
	var i, j, base int
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			means[j] += d.data[base+j]
		}
	}
	invR := 1.0 / float64(d.r)
	for j = 0; j < d.c; j++ {
		means[j] *= invR
	}

	return means
}

// ColumnStds returns the population standard deviation of every column:
// sqrt(Σ_i (X[i,j]-mean_j)² / r).
// Complexity: O(r*c) time, O(c) space.
func ColumnStds(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opColumnStds, err)
	}
	d, err := toDense(X)
	if err != nil {
		return nil, matrixErrorf(opColumnStds, err)
	}

	means := columnMeans(d)
	stds := make([]float64, d.c)
	var i, j, base int
	var dv float64
	for i = 0; i < d.r; i++ {
		base = i * d.c
		for j = 0; j < d.c; j++ {
			dv = d.data[base+j] - means[j]
			stds[j] += dv * dv
		}
	}
	invR := 1.0 / float64(d.r)
	for j = 0; j < d.c; j++ {
		stds[j] = math.Sqrt(stds[j] * invR)
	}

	return stds, nil
}

// RowMeanSquares returns Σ_j X[i,j]² / c for every row i.
// Complexity: O(r*c) time, O(r) space.
func RowMeanSquares(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowMeanSquares, err)
	}
	d, err := toDense(X)
	if err != nil {
		return nil, matrixErrorf(opRowMeanSquares, err)
	}

	out := make([]float64, d.r)
	invC := 1.0 / float64(d.c)
	var i, j, base int
	var s float64
	for i = 0; i < d.r; i++ {
		s = 0
		base = i * d.c
		for j = 0; j < d.c; j++ {
			s += d.data[base+j] * d.data[base+j]
		}
		out[i] = s * invC
	}

	return out, nil
}
