// SPDX-License-Identifier: MIT

// Package matrix - export to gonum dense storage.
//
// External solvers in this ecosystem speak gonum's mat.Matrix. Dense is the
// hand-off point: duplicates are summed into their cell, explicit zeros
// vanish, and the result is independent of the sparse source.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Dense materializes m as a gonum *mat.Dense with duplicates summed.
//
// Errors:
//   - ErrNilMatrix for a nil receiver.
//   - ErrInvalidDimensions for zero-sized shapes (gonum forbids them).
//
// Complexity:
//   - Time O(r*c + nnz), Space O(r*c).
func (m *Sparse) Dense() (*mat.Dense, error) {
	if m == nil {
		return nil, fmt.Errorf("Sparse.Dense: %w", ErrNilMatrix)
	}
	if m.r == 0 || m.c == 0 {
		return nil, fmt.Errorf("Sparse.Dense(%dx%d): %w", m.r, m.c, ErrInvalidDimensions)
	}
	d := mat.NewDense(m.r, m.c, nil)
	for _, e := range m.entries {
		d.Set(e.Row, e.Col, d.At(e.Row, e.Col)+e.Value)
	}

	return d, nil
}

// ColSums returns the per-column sum of m as a gonum vector.
// Complexity: O(nnz + c).
func (m *Sparse) ColSums() *mat.VecDense {
	sums := make([]float64, m.c)
	for _, e := range m.entries {
		sums[e.Col] += e.Value
	}
	if m.c == 0 {
		return &mat.VecDense{}
	}

	return mat.NewVecDense(m.c, sums)
}
