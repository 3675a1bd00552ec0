// Package matrix provides the small dense linear-algebra surface used by the
// Brownian generators.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with bounds-checked At/Set, Row/Col
//     copies and deep Clone.
//   - Column kernels: PrependZeroRow, CumSumCols, DiffRows, Scale.
//   - Summaries: ColumnMeans, ColumnStds, RowMeanSquares.
//
// A displacement matrix is laid out sample × path: row i is time sample i,
// column j is path j. CumSumCols turns an increment matrix into paths and
// DiffRows recovers the increments.
//
// All kernels return fresh matrices and report misuse through the sentinels
// in errors.go; nothing panics on user input.
package matrix
