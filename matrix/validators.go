// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep builders minimal by delegating shape/nil/length checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    still branch with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Sparse stored in the interface is also rejected.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if s, ok := m.(*Sparse); ok && s == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex checks that idx lies inside a rows×cols shape.
// Complexity: O(1).
func ValidateIndex(idx Index, rows, cols int) error {
	if idx.Row < 0 || idx.Row >= rows || idx.Col < 0 || idx.Col >= cols {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d,%d)", idx.Row, idx.Col), ErrOutOfRange)
	}

	return nil
}

// ValidateLengths checks that every parallel array length equals n.
// Lengths of absent arrays must be passed as n by the caller (or omitted).
// Complexity: O(len(lengths)).
func ValidateLengths(n int, lengths ...int) error {
	for i, l := range lengths {
		if l != n {
			return validatorErrorf(fmt.Sprintf("ValidateLengths: array %d has %d, want %d", i, l, n), ErrLengthMismatch)
		}
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf.
// Complexity: O(1).
func ValidateFinite(v float64) error {
	if isNonFinite(v) {
		return validatorErrorf("ValidateFinite", ErrNaNInf)
	}

	return nil
}
