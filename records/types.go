// SPDX-License-Identifier: MIT

// Package records: domain types for parsed index and exchange tables.
package records

import (
	"fmt"

	"github.com/katalvlaran/pathways/matrix"
)

// Kind names the matrix an exchange table feeds.
type Kind string

const (
	// Technosphere is the inter-process flow matrix ("A").
	Technosphere Kind = "A"

	// Biosphere is the environmental exchange matrix ("B").
	Biosphere Kind = "B"
)

// Matrix names handed to the datapackage sink.
const (
	TechnosphereMatrixName = "technosphere_matrix"
	BiosphereMatrixName    = "biosphere_matrix"
)

// Column counts of exchange tables (consumer, producer, value, 6 uncertainty
// columns, negative flag and, for the technosphere, the sign flag).
const (
	technosphereColumns = 11
	biosphereColumns    = 10
	indexColumns        = 5
)

// Validate reports ErrUnknownKind for anything but Technosphere and Biosphere.
func (k Kind) Validate() error {
	switch k {
	case Technosphere, Biosphere:
		return nil
	}

	return fmt.Errorf("kind %q: %w", string(k), ErrUnknownKind)
}

// MatrixName returns the datapackage matrix name for k.
func (k Kind) MatrixName() string {
	if k == Biosphere {
		return BiosphereMatrixName
	}

	return TechnosphereMatrixName
}

// columns returns the exchange-table column count for k.
func (k Kind) columns() int {
	if k == Biosphere {
		return biosphereColumns
	}

	return technosphereColumns
}

// Key is the 4-tuple of descriptive strings identifying an activity or flow,
// e.g. (name, product, location, unit) or (name, category, compartment, unit).
type Key [4]string

// FlowKey is the basis key characterization factors are looked up by:
// the first three components of a Key.
type FlowKey [3]string

// Basis drops the fourth component (typically the unit).
func (k Key) Basis() FlowKey {
	return FlowKey{k[0], k[1], k[2]}
}

// IndexMap maps descriptive keys to matrix indices. Built once, read-only after.
type IndexMap map[Key]int

// Uncertainty describes the distribution attached to one exchange, in the
// column order of the exchange tables.
type Uncertainty struct {
	Type     int     // distribution id (0 = undefined, 4 = uniform, ...)
	Loc      float64 // location parameter
	Scale    float64 // scale parameter
	Shape    float64 // shape parameter
	Minimum  float64 // lower bound
	Maximum  float64 // upper bound
	Negative bool    // sampled values are negated
}

// Exchange is one parsed row of an exchange table.
type Exchange struct {
	Row         int  // producing activity (file column 1)
	Col         int  // consuming product or activity (file column 0)
	Value       float64
	Flip        bool // sign flag; always false for the biosphere
	Uncertainty Uncertainty
}

// Bundle is a structure-of-arrays view over N exchanges.
// Invariant: every present array has length N and index i refers to the same
// exchange everywhere. Sign is nil for the biosphere.
type Bundle struct {
	Kind          Kind
	Data          []float64
	Indices       []matrix.Index
	Sign          []bool
	Distributions []Uncertainty
}

// NewBundle lays out exchanges as parallel arrays in input order.
// Complexity: O(N).
func NewBundle(kind Kind, exchanges []Exchange) Bundle {
	n := len(exchanges)
	b := Bundle{
		Kind:          kind,
		Data:          make([]float64, n),
		Indices:       make([]matrix.Index, n),
		Distributions: make([]Uncertainty, n),
	}
	if kind != Biosphere {
		b.Sign = make([]bool, n)
	}
	for i, e := range exchanges {
		b.Data[i] = e.Value
		b.Indices[i] = matrix.Index{Row: e.Row, Col: e.Col}
		b.Distributions[i] = e.Uncertainty
		if b.Sign != nil {
			b.Sign[i] = e.Flip
		}
	}

	return b
}

// Len returns N, the number of exchanges.
func (b Bundle) Len() int { return len(b.Data) }

// Validate enforces the parallel-array invariant.
// Technosphere bundles must carry Sign; biosphere bundles must not.
func (b Bundle) Validate() error {
	if err := b.Kind.Validate(); err != nil {
		return err
	}
	n := len(b.Data)
	if err := matrix.ValidateLengths(n, len(b.Indices), len(b.Distributions)); err != nil {
		return fmt.Errorf("bundle %s: %w", b.Kind, err)
	}
	switch {
	case b.Kind == Technosphere && len(b.Sign) != n:
		return fmt.Errorf("bundle %s: sign has %d, want %d: %w", b.Kind, len(b.Sign), n, matrix.ErrLengthMismatch)
	case b.Kind == Biosphere && b.Sign != nil:
		return fmt.Errorf("bundle %s: biosphere carries no sign: %w", b.Kind, matrix.ErrLengthMismatch)
	}

	return nil
}

// Exchange reassembles row i as an Exchange record.
func (b Bundle) Exchange(i int) Exchange {
	e := Exchange{
		Row:         b.Indices[i].Row,
		Col:         b.Indices[i].Col,
		Value:       b.Data[i],
		Uncertainty: b.Distributions[i],
	}
	if b.Sign != nil {
		e.Flip = b.Sign[i]
	}

	return e
}

// Lookup maps every (row, col) to its position in the bundle. When a pair
// occurs more than once, the last occurrence wins.
// Complexity: O(N).
func (b Bundle) Lookup() map[matrix.Index]int {
	out := make(map[matrix.Index]int, len(b.Indices))
	for i, idx := range b.Indices {
		out[idx] = i
	}

	return out
}
