// SPDX-License-Identifier: MIT

// Package datapackage - assembly of resources into sparse matrices.
//
// Flip semantics: a true flag negates the stored value. Technosphere inputs
// are stored as positive amounts with flip=true; outputs carry flip=false.

package datapackage

import (
	"fmt"

	"github.com/katalvlaran/pathways/matrix"
)

// MergePolicy decides how an Array sample combines with an assembled matrix.
type MergePolicy int

const (
	// MergeReplace overwrites every contribution at an overlay coordinate.
	MergeReplace MergePolicy = iota

	// MergeAdd stacks the overlay value on top of existing contributions.
	MergeAdd
)

// String returns the policy name used in flags and logs.
func (p MergePolicy) String() string {
	if p == MergeAdd {
		return "add"
	}

	return "replace"
}

// ParseMergePolicy maps "replace"/"add" to a MergePolicy.
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch s {
	case "replace", "":
		return MergeReplace, nil
	case "add":
		return MergeAdd, nil
	}

	return 0, fmt.Errorf("datapackage: unknown merge policy %q", s)
}

// signed applies the flip convention.
func signed(v float64, flip []bool, i int) float64 {
	if flip != nil && flip[i] {
		return -v
	}

	return v
}

// Assemble builds a rows×cols sparse matrix from a Vector. Duplicate
// coordinates stay stacked in the result; reads sum them.
//
// Errors:
//   - matrix.ErrLengthMismatch, matrix.ErrOutOfRange, matrix.ErrNaNInf.
//
// Complexity:
//   - Time O(N), Space O(N).
func Assemble(v Vector, rows, cols int, opts ...matrix.Option) (*matrix.Sparse, error) {
	if err := v.validate(); err != nil {
		return nil, fmt.Errorf("Assemble: %w", err)
	}
	m, err := matrix.NewSparse(rows, cols, opts...)
	if err != nil {
		return nil, fmt.Errorf("Assemble(%s): %w", v.Matrix, err)
	}
	for i, idx := range v.Indices {
		if err = m.Append(idx.Row, idx.Col, signed(v.Data[i], v.Flip, i)); err != nil {
			return nil, fmt.Errorf("Assemble(%s): entry %d: %w", v.Matrix, i, err)
		}
	}

	return m, nil
}

// ApplyArray merges sample column `sample` of a into m in place.
// An empty array is a no-op for every sample index.
//
// Errors:
//   - ErrSampleOutOfRange, matrix.ErrNilMatrix, and Set/Append errors.
//
// Complexity:
//   - MergeReplace O(N·nnz); MergeAdd O(N).
func ApplyArray(m *matrix.Sparse, a Array, sample int, policy MergePolicy) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("ApplyArray: %w", err)
	}
	if err := a.validate(); err != nil {
		return fmt.Errorf("ApplyArray: %w", err)
	}
	if a.Len() == 0 {
		return nil
	}
	if sample < 0 || sample >= a.Samples() {
		return fmt.Errorf("ApplyArray(%s): sample %d of %d: %w", a.Matrix, sample, a.Samples(), ErrSampleOutOfRange)
	}
	for i, idx := range a.Indices {
		v := signed(a.Data[i][sample], a.Flip, i)
		var err error
		if policy == MergeAdd {
			err = m.Append(idx.Row, idx.Col, v)
		} else {
			err = m.Set(idx.Row, idx.Col, v)
		}
		if err != nil {
			return fmt.Errorf("ApplyArray(%s): entry %d: %w", a.Matrix, i, err)
		}
	}

	return nil
}
