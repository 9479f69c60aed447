// SPDX-License-Identifier: MIT

// Package datapackage - matrix specification builders.
//
// Purpose:
//   - Turn record bundles into named Vector resources (technosphere, biosphere).
//   - Turn a share-redistribution overlay into an Array resource.
//
// Behavior highlights:
//   - No aggregation of duplicate (row, col) pairs.
//   - Resources alias the input slices; treat both as read-only afterwards.

package datapackage

import (
	"fmt"

	"github.com/katalvlaran/pathways/matrix"
	"github.com/katalvlaran/pathways/records"
)

// Build converts a bundle into the matrix specification for its kind.
//
// Implementation:
//   - Stage 1: validate kind and parallel lengths (technosphere requires Sign).
//   - Stage 2: reject sign flags on biosphere bundles.
//   - Stage 3: name the resource after the kind.
//
// Errors:
//   - records.ErrUnknownKind, matrix.ErrLengthMismatch, ErrUnexpectedSign.
//
// Complexity:
//   - Time O(1), Space O(1); resources alias the bundle arrays.
func Build(kind records.Kind, b records.Bundle) (Vector, error) {
	if err := kind.Validate(); err != nil {
		return Vector{}, fmt.Errorf("Build: %w", err)
	}
	if kind == records.Biosphere && b.Sign != nil {
		return Vector{}, fmt.Errorf("Build(%s): %w", kind, ErrUnexpectedSign)
	}
	b.Kind = kind
	if err := b.Validate(); err != nil {
		return Vector{}, fmt.Errorf("Build(%s): %w", kind, err)
	}

	return Vector{
		Matrix:        kind.MatrixName(),
		Indices:       b.Indices,
		Data:          b.Data,
		Flip:          b.Sign,
		Distributions: b.Distributions,
	}, nil
}

// NewLCAPackage builds a Package holding the technosphere and biosphere
// vectors, in that order.
func NewLCAPackage(a, b records.Bundle) (*Package, error) {
	p := New()
	for _, in := range []struct {
		kind   records.Kind
		bundle records.Bundle
	}{
		{records.Technosphere, a},
		{records.Biosphere, b},
	} {
		v, err := Build(in.kind, in.bundle)
		if err != nil {
			return nil, fmt.Errorf("NewLCAPackage: %w", err)
		}
		if err = p.AddVector(v); err != nil {
			return nil, fmt.Errorf("NewLCAPackage: %w", err)
		}
	}

	return p, nil
}

// NewOverlayPackage wraps overlay arrays (one row per coordinate, one column
// per sample) as a technosphere Array resource. Zero rows yield a package
// with one empty array, never an error.
func NewOverlayPackage(data [][]float64, indices []matrix.Index, sign []bool) (*Package, error) {
	p := New()
	err := p.AddArray(Array{
		Matrix:  records.TechnosphereMatrixName,
		Indices: indices,
		Data:    data,
		Flip:    sign,
	})
	if err != nil {
		return nil, fmt.Errorf("NewOverlayPackage: %w", err)
	}

	return p, nil
}
