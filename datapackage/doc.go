// Package datapackage builds the declarative matrix specifications handed to
// an external sampler/solver.
//
// A Package is an ordered collection of named resources:
//
//   - Vector: one value per (row, col) coordinate, with optional flip flags and
//     uncertainty metadata. The static technosphere and biosphere matrices.
//   - Array: one row per coordinate and one column per stochastic sample. The
//     share-redistribution overlay.
//
// Builders never aggregate duplicate coordinates: repeated (row, col) pairs
// stay separate stacked contributions. Assemble and ApplyArray turn resources
// into a matrix.Sparse for callers that need one; a flipped entry is negated
// there and nowhere else.
//
// Persistence is not handled here; resources are plain Go values.
package datapackage
