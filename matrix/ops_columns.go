// SPDX-License-Identifier: MIT
// Package: matrix
//
// ops_columns.go: column-oriented kernels used to turn increment matrices
// into trajectories and back.
//
// Exposed API:
//   - PrependZeroRow(X) -> (r+1)×c with row 0 all zeros
//   - CumSumCols(X)     -> running sum down each column
//   - DiffRows(X)       -> (r-1)×c successive differences (inverse of CumSumCols)
//   - Scale(X, alpha)   -> alpha·X
//
// Determinism & Performance:
//   - Fixed i→j traversal; every kernel returns a fresh *Dense and never
//     mutates its operand.
//   - Dense operands are read from the flat buffer; others go through At.

package matrix

// Operation name constants for unified error wrapping.
const (
	opPrependZeroRow = "PrependZeroRow"
	opCumSumCols     = "CumSumCols"
	opDiffRows       = "DiffRows"
	opScale          = "Scale"
)

// PrependZeroRow returns a new (r+1)×c matrix whose row 0 is all zeros and
// whose rows 1..r are a copy of X.
// Complexity: O(r*c).
func PrependZeroRow(X Matrix) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opPrependZeroRow, err)
	}
	src, err := toDense(X)
	if err != nil {
		return nil, matrixErrorf(opPrependZeroRow, err)
	}
	out, err := NewDense(src.r+1, src.c)
	if err != nil {
		return nil, matrixErrorf(opPrependZeroRow, err)
	}
	copy(out.data[src.c:], src.data)

	return out, nil
}

// CumSumCols returns the cumulative sum down each column:
// out[i,j] = Σ_{k≤i} X[k,j].
// Stage 1 (Validate): X non-nil.
// Stage 2 (Execute): copy, then add row i-1 into row i for i = 1..r-1.
// Complexity: O(r*c).
func CumSumCols(X Matrix) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opCumSumCols, err)
	}
	src, err := toDense(X)
	if err != nil {
		return nil, matrixErrorf(opCumSumCols, err)
	}
	out := src.cloneDense()

	var i, j, base int
	for i = 1; i < out.r; i++ {
		base = i * out.c
		for j = 0; j < out.c; j++ {
			out.data[base+j] += out.data[base-out.c+j]
		}
	}

	return out, nil
}

// DiffRows returns successive row differences: out[i,j] = X[i+1,j] - X[i,j].
// Requires at least two rows (ErrDimensionMismatch otherwise).
// Complexity: O(r*c).
func DiffRows(X Matrix) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opDiffRows, err)
	}
	if err := ValidateMinRows(X, 2); err != nil {
		return nil, matrixErrorf(opDiffRows, err)
	}
	src, err := toDense(X)
	if err != nil {
		return nil, matrixErrorf(opDiffRows, err)
	}
	out, err := NewDense(src.r-1, src.c)
	if err != nil {
		return nil, matrixErrorf(opDiffRows, err)
	}

	var i, j, base int
	for i = 0; i < out.r; i++ {
		base = i * src.c
		for j = 0; j < src.c; j++ {
			out.data[base+j] = src.data[base+src.c+j] - src.data[base+j]
		}
	}

	return out, nil
}

// Scale returns alpha·X.
// Complexity: O(r*c).
func Scale(X Matrix, alpha float64) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	src, err := toDense(X)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	out := src.cloneDense()
	for k := range out.data {
		out.data[k] *= alpha
	}

	return out, nil
}
