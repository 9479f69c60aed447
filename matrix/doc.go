// Package matrix offers the sparse coordinate storage shared by the
// technosphere, biosphere and characterization builders.
//
// The matrix package provides:
//
//   - Index, the (row, col) pair every exchange and overlay entry is keyed by.
//   - Sparse, a coordinate-list (COO) matrix that keeps duplicate (row, col)
//     contributions stacked until they are read or compacted.
//   - Sentinel errors, functional options for the numeric policy, and the
//     validators used by every package that hands matrices around.
//   - Dense export through gonum's mat.Dense for external solvers.
//
// Sparse matrices are cheap to build from flat exchange tables (O(N) appends)
// and cheap to filter (O(nnz) scans). Point reads are O(nnz); callers that
// need many random reads should export once with Dense.
//
// See the examples in this package for usage patterns.
package matrix
