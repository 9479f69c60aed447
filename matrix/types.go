// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by record readers, builders and filters.
// This file contains ONLY domain-facing types (indices, entries) and the public
// Matrix interface. Errors and options live in dedicated files (errors.go,
// options.go) per the global conventions.
package matrix

// Index is an ordered (row, col) coordinate pair.
// For the technosphere, Row is the producing activity and Col is the consumed
// product; for the biosphere, Row is the flow and Col is the activity.
// Index is comparable and therefore usable directly as a map key.
type Index struct {
	Row int // matrix row
	Col int // matrix column
}

// Entry is one stored coordinate triple of a Sparse matrix.
// Several entries may share the same Index; their values are summed on read.
type Entry struct {
	Index         // (row, col)
	Value float64 // stored contribution
}

// Matrix represents a two-dimensional mutable array of float64 values.
//
// Complexity notes: Rows/Cols are O(1); At/Set depend on the storage
// (O(nnz) for Sparse); Clone is O(storage).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	Rows() int

	// Cols returns the number of columns in the matrix.
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	Clone() Matrix
}
