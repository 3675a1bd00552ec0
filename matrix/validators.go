// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Single source of truth for the nil/shape checks used by the kernels.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.

package matrix

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense hidden in the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateMinRows ensures m has at least n rows. Assumes m is not nil.
// Complexity: O(1).
func ValidateMinRows(m Matrix, n int) error {
	if m.Rows() < n {
		return ErrDimensionMismatch
	}

	return nil
}

// toDense returns m as a *Dense, copying through At for other implementations.
// The returned value may alias m when m is already a *Dense; callers that
// mutate must clone first.
func toDense(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d, nil
	}
	r, c := m.Rows(), m.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var i, j int
	var v float64
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*c+j] = v
		}
	}

	return out, nil
}
