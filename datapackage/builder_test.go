// Package datapackage_test validates matrix specification building and assembly.
package datapackage_test

import (
	"testing"

	"github.com/katalvlaran/pathways/datapackage"
	"github.com/katalvlaran/pathways/matrix"
	"github.com/katalvlaran/pathways/records"
	"github.com/stretchr/testify/require"
)

// technosphere returns a small bundle with a duplicate coordinate.
func technosphere() records.Bundle {
	return records.NewBundle(records.Technosphere, []records.Exchange{
		{Row: 0, Col: 0, Value: 1},
		{Row: 1, Col: 0, Value: 0.5, Flip: true},
		{Row: 1, Col: 0, Value: 0.25, Flip: true}, // stacked duplicate
		{Row: 1, Col: 1, Value: 1},
	})
}

func biosphere() records.Bundle {
	return records.NewBundle(records.Biosphere, []records.Exchange{
		{Row: 0, Col: 1, Value: 2},
	})
}

// TestBuildKeepsDuplicates checks that no aggregation happens in the builder.
func TestBuildKeepsDuplicates(t *testing.T) {
	v, err := datapackage.Build(records.Technosphere, technosphere())
	require.NoError(t, err)
	require.Equal(t, records.TechnosphereMatrixName, v.Matrix)
	require.Equal(t, 4, v.Len())
	require.Len(t, v.Flip, 4)
	require.Len(t, v.Distributions, 4)
}

// TestBuildValidation covers kind, sign and length errors.
func TestBuildValidation(t *testing.T) {
	b := biosphere()
	b.Sign = []bool{true}
	_, err := datapackage.Build(records.Biosphere, b)
	require.ErrorIs(t, err, datapackage.ErrUnexpectedSign)

	a := technosphere()
	a.Sign = a.Sign[:2]
	_, err = datapackage.Build(records.Technosphere, a)
	require.ErrorIs(t, err, matrix.ErrLengthMismatch)

	_, err = datapackage.Build(records.Kind("Z"), technosphere())
	require.ErrorIs(t, err, records.ErrUnknownKind)
}

// TestNewLCAPackage checks both resources are present and named.
func TestNewLCAPackage(t *testing.T) {
	p, err := datapackage.NewLCAPackage(technosphere(), biosphere())
	require.NoError(t, err)
	require.Len(t, p.Vectors(), 2)

	bv, err := p.Vector(records.BiosphereMatrixName)
	require.NoError(t, err)
	require.Nil(t, bv.Flip)

	_, err = p.Vector("characterization_matrix")
	require.ErrorIs(t, err, datapackage.ErrUnknownResource)
}

// TestAssembleFlipsAndSums verifies flip negation and summed duplicates.
func TestAssembleFlipsAndSums(t *testing.T) {
	v, err := datapackage.Build(records.Technosphere, technosphere())
	require.NoError(t, err)

	m, err := datapackage.Assemble(v, 2, 2)
	require.NoError(t, err)
	require.Equal(t, 4, m.NNZ())

	got, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, -0.75, got)

	_, err = datapackage.Assemble(v, 1, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestOverlayPackageAndApply covers the overlay merge policies.
func TestOverlayPackageAndApply(t *testing.T) {
	v, err := datapackage.Build(records.Technosphere, technosphere())
	require.NoError(t, err)

	p, err := datapackage.NewOverlayPackage(
		[][]float64{{0.3, 0.4}},
		[]matrix.Index{{Row: 1, Col: 0}},
		[]bool{true},
	)
	require.NoError(t, err)
	arrays := p.Arrays(records.TechnosphereMatrixName)
	require.Len(t, arrays, 1)
	require.Equal(t, 2, arrays[0].Samples())

	replaced, err := datapackage.Assemble(v, 2, 2)
	require.NoError(t, err)
	require.NoError(t, datapackage.ApplyArray(replaced, arrays[0], 1, datapackage.MergeReplace))
	got, err := replaced.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, -0.4, got)

	added, err := datapackage.Assemble(v, 2, 2)
	require.NoError(t, err)
	require.NoError(t, datapackage.ApplyArray(added, arrays[0], 0, datapackage.MergeAdd))
	got, err = added.At(1, 0)
	require.NoError(t, err)
	require.InDelta(t, -1.05, got, 1e-12)

	require.ErrorIs(t, datapackage.ApplyArray(added, arrays[0], 2, datapackage.MergeAdd), datapackage.ErrSampleOutOfRange)
}

// TestEmptyOverlay ensures zero rows is a valid, inert overlay.
func TestEmptyOverlay(t *testing.T) {
	p, err := datapackage.NewOverlayPackage(nil, nil, nil)
	require.NoError(t, err)
	arrays := p.Arrays(records.TechnosphereMatrixName)
	require.Len(t, arrays, 1)
	require.Zero(t, arrays[0].Len())

	m, err := matrix.NewSparse(1, 1)
	require.NoError(t, err)
	require.NoError(t, datapackage.ApplyArray(m, arrays[0], 0, datapackage.MergeReplace))
	require.Zero(t, m.NNZ())
}

// TestRaggedOverlayRejected checks the rectangular sample block invariant.
func TestRaggedOverlayRejected(t *testing.T) {
	_, err := datapackage.NewOverlayPackage(
		[][]float64{{1, 2}, {3}},
		[]matrix.Index{{Row: 0, Col: 0}, {Row: 0, Col: 1}},
		[]bool{false, false},
	)
	require.ErrorIs(t, err, matrix.ErrLengthMismatch)
}

// TestParseMergePolicy round-trips the flag values.
func TestParseMergePolicy(t *testing.T) {
	p, err := datapackage.ParseMergePolicy("add")
	require.NoError(t, err)
	require.Equal(t, datapackage.MergeAdd, p)
	require.Equal(t, "replace", datapackage.MergeReplace.String())

	_, err = datapackage.ParseMergePolicy("multiply")
	require.Error(t, err)
}
