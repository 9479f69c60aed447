// Package records_test validates table parsing and the Bundle invariants.
package records_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/pathways/matrix"
	"github.com/katalvlaran/pathways/records"
	"github.com/stretchr/testify/require"
)

const technosphereCSV = `consumer;producer;value;type;loc;scale;shape;minimum;maximum;negative;sign
10;5;60;0;60;;;;;0;1
10;6;40;4;40;;;30;50;0;1
5;5;1;0;1;;;;;0;0
`

const biosphereCSV = `activity;flow;value;type;loc;scale;shape;minimum;maximum;negative
5;0;0.25;2;-1.4;0.1;;;;False
6;1;3e-2;0;0.03;;;;;True
`

// TestReadIndices checks the documented example row and duplicate overwrite.
func TestReadIndices(t *testing.T) {
	in := "name;product;location;unit;index\n" +
		"wind;electricity;DE;kWh;42\n" +
		"solar;electricity;DE;kWh;7\n" +
		"solar;electricity;DE;kWh;8\n" // duplicate key overwrites

	m, err := records.ReadIndices(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, m, 2)
	require.Equal(t, 42, m[records.Key{"wind", "electricity", "DE", "kWh"}])
	require.Equal(t, 8, m[records.Key{"solar", "electricity", "DE", "kWh"}])
}

// TestReadIndicesNoHeader covers WithHeader(false).
func TestReadIndicesNoHeader(t *testing.T) {
	m, err := records.ReadIndices(strings.NewReader("a;b;c;d;3\n"), records.WithHeader(false))
	require.NoError(t, err)
	require.Equal(t, 3, m[records.Key{"a", "b", "c", "d"}])
}

// TestReadIndicesMalformed covers wrong column counts and non-integer indices.
func TestReadIndicesMalformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"too few columns", "h\nwind;electricity;DE;42\n"},
		{"too many columns", "h\nwind;electricity;DE;kWh;42;x\n"},
		{"non-integer index", "h\nwind;electricity;DE;kWh;forty\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := records.ReadIndices(strings.NewReader(tc.in))
			require.ErrorIs(t, err, records.ErrMalformedRow)
		})
	}
}

// TestReadExchangesTechnosphere checks the (producer, consumer) swap, flags and uncertainty.
func TestReadExchangesTechnosphere(t *testing.T) {
	b, err := records.ReadExchanges(strings.NewReader(technosphereCSV), records.Technosphere)
	require.NoError(t, err)
	require.NoError(t, b.Validate())

	require.Equal(t, 3, b.Len())
	require.Len(t, b.Indices, 3)
	require.Len(t, b.Sign, 3)
	require.Len(t, b.Distributions, 3)

	require.Equal(t, matrix.Index{Row: 5, Col: 10}, b.Indices[0])
	require.Equal(t, matrix.Index{Row: 6, Col: 10}, b.Indices[1])
	require.Equal(t, []float64{60, 40, 1}, b.Data)
	require.Equal(t, []bool{true, true, false}, b.Sign)

	u := b.Distributions[1]
	require.Equal(t, 4, u.Type)
	require.Equal(t, 40.0, u.Loc)
	require.Equal(t, 30.0, u.Minimum)
	require.Equal(t, 50.0, u.Maximum)
	require.False(t, u.Negative)

	e := b.Exchange(1)
	require.Equal(t, 6, e.Row)
	require.Equal(t, 10, e.Col)
	require.True(t, e.Flip)
}

// TestReadExchangesBiosphere checks the biosphere layout omits Sign.
func TestReadExchangesBiosphere(t *testing.T) {
	b, err := records.ReadExchanges(strings.NewReader(biosphereCSV), records.Biosphere)
	require.NoError(t, err)
	require.NoError(t, b.Validate())

	require.Nil(t, b.Sign)
	require.Equal(t, 2, b.Len())
	require.Equal(t, matrix.Index{Row: 0, Col: 5}, b.Indices[0])
	require.Equal(t, 0.03, b.Data[1])
	require.True(t, b.Distributions[1].Negative)
	require.False(t, b.Exchange(0).Flip)
}

// TestReadExchangesMalformed ensures no partial-row recovery.
func TestReadExchangesMalformed(t *testing.T) {
	tests := []struct {
		name string
		kind records.Kind
		in   string
	}{
		{"technosphere missing sign", records.Technosphere, "h\n10;5;60;0;60;;;;;0\n"},
		{"biosphere with sign", records.Biosphere, "h\n10;5;60;0;60;;;;;0;1\n"},
		{"non-numeric value", records.Technosphere, "h\n10;5;abc;0;60;;;;;0;1\n"},
		{"negative index", records.Technosphere, "h\n-1;5;1;0;1;;;;;0;1\n"},
		{"bad flag", records.Technosphere, "h\n10;5;1;0;1;;;;;maybe;1\n"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := records.ReadExchanges(strings.NewReader(tc.in), tc.kind)
			require.ErrorIs(t, err, records.ErrMalformedRow)
		})
	}

	_, err := records.ReadExchanges(strings.NewReader(""), records.Kind("C"))
	require.ErrorIs(t, err, records.ErrUnknownKind)
}

// TestBundleValidate covers the parallel-array invariant.
func TestBundleValidate(t *testing.T) {
	b := records.Bundle{
		Kind:          records.Technosphere,
		Data:          []float64{1, 2},
		Indices:       []matrix.Index{{Row: 0, Col: 0}, {Row: 1, Col: 1}},
		Sign:          []bool{true},
		Distributions: make([]records.Uncertainty, 2),
	}
	require.ErrorIs(t, b.Validate(), matrix.ErrLengthMismatch)

	b.Sign = append(b.Sign, false)
	require.NoError(t, b.Validate())

	b.Kind = records.Biosphere
	require.ErrorIs(t, b.Validate(), matrix.ErrLengthMismatch)
}

// TestBundleLookupLastWins documents duplicate (row, col) handling.
func TestBundleLookupLastWins(t *testing.T) {
	b := records.NewBundle(records.Technosphere, []records.Exchange{
		{Row: 1, Col: 2, Value: 1},
		{Row: 1, Col: 2, Value: 2},
	})
	require.Equal(t, 1, b.Lookup()[matrix.Index{Row: 1, Col: 2}])
}

// TestLoadDirectory exercises the afs loaders on a local export directory.
func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write(records.MatrixFile(records.Technosphere), technosphereCSV)
	write(records.MatrixFile(records.Biosphere), biosphereCSV)
	write(records.IndexFile(records.Technosphere), "h\nwind;electricity;DE;kWh;5\n")
	write(records.IndexFile(records.Biosphere), "h\nCO2;air;urban;kg;0\n")

	ctx := context.Background()
	a, err := records.LoadMatrixArrays(ctx, dir, records.Technosphere)
	require.NoError(t, err)
	require.Equal(t, 3, a.Len())

	b, err := records.LoadMatrixArrays(ctx, dir, records.Biosphere)
	require.NoError(t, err)
	require.Nil(t, b.Sign)

	activities, flows, err := records.LoadIndexMaps(ctx, dir)
	require.NoError(t, err)
	require.Equal(t, 5, activities[records.Key{"wind", "electricity", "DE", "kWh"}])
	require.Equal(t, 0, flows[records.Key{"CO2", "air", "urban", "kg"}])

	_, err = records.LoadMatrixArrays(ctx, filepath.Join(dir, "missing"), records.Technosphere)
	require.Error(t, err)
}

// TestKeyBasis checks the unit is dropped for factor lookups.
func TestKeyBasis(t *testing.T) {
	k := records.Key{"CO2", "air", "urban", "kg"}
	require.Equal(t, records.FlowKey{"CO2", "air", "urban"}, k.Basis())
	require.Equal(t, "technosphere_matrix", records.Technosphere.MatrixName())
	require.Equal(t, "biosphere_matrix", records.Biosphere.MatrixName())
}
