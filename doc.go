// Package pathways assembles the sparse matrices of a life-cycle impact
// model and adjusts them to prospective scenario years.
//
// What is in the box?
//
//	• records/     — index tables and exchange tables → parallel-array Bundles
//	• datapackage/ — named matrix resources, flip semantics, overlay merge
//	• lcia/        — characterization matrix (methods × biosphere flows)
//	• sampler/     — constrained correlated sampling of normalized shares
//	• shares/      — scenario-driven share redistribution → technosphere overlay
//	• doublecount/ — removal of double-counted inputs of marked activities
//	• matrix/      — the COO sparse matrix shared by all of the above
//
// The cmd/pathways binary chains them: load an export directory, redistribute
// shares for a year, merge the overlay, strip double counting, characterize.
//
// Typical library flow:
//
//	a, _ := records.LoadMatrixArrays(ctx, dir, records.Technosphere)
//	overlay, _ := shares.Adjust(a, tree, samples, 2035)
//	pkg, _ := overlay.Package()
//	A, _ := datapackage.Assemble(vector, n, n)
//	_ = datapackage.ApplyArray(A, pkg.Arrays("technosphere_matrix")[0], 0, datapackage.MergeReplace)
//	A, _ = doublecount.Remove(A, marked)
//
// Solving the system and persisting datapackages are left to the caller;
// matrix.Sparse exports to gonum's mat.Dense for that hand-off.
package pathways
