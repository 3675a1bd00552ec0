// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/brownian/matrix"
	"github.com/stretchr/testify/require"
)

// hide wraps any Matrix to mask its concrete type, forcing the At fallback
// paths in kernels that special-case *Dense.
type hide struct{ matrix.Matrix }

// mustFromRows builds a Dense from rectangular rows or fails the test.
func mustFromRows(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	require.NotEmpty(t, rows)
	d, err := matrix.NewDense(len(rows), len(rows[0]))
	require.NoError(t, err)
	for i, row := range rows {
		require.Len(t, row, len(rows[0]), "ragged row %d", i)
		for j, v := range row {
			require.NoError(t, d.Set(i, j, v))
		}
	}

	return d
}

// rowsOf returns every row of d as [][]float64 for compact equality checks.
func rowsOf(t testing.TB, d *matrix.Dense) [][]float64 {
	t.Helper()
	out := make([][]float64, d.Rows())
	for i := range out {
		r, err := d.Row(i)
		require.NoError(t, err)
		out[i] = r
	}

	return out
}
