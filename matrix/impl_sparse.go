// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (coordinate list) & safe accessors.
//
// Purpose:
//   - Keep every (row, col, value) contribution exactly as appended, so that
//     builders never aggregate duplicates on their own.
//   - Guarantee safety at the public surface: At/Set/Append return errors
//     instead of panicking.
//   - Keep algorithmic determinism (entries keep insertion order; SumDuplicates
//     sorts by (row, col)).
//
// Complexity quicksheet:
//   - NewSparse: O(1); Append: O(1) amortized; At/Set: O(nnz);
//     ZeroWhere/EliminateZeros: O(nnz); SumDuplicates: O(nnz log nnz);
//     Clone: O(nnz).

package matrix

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt     = "At"
	ctxSet    = "Set"
	ctxAppend = "Append"
)

// sparseErrorf wraps an error with a uniform Sparse context and callsite indices.
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}

// Sparse is a coordinate-list matrix.
//   - r,c hold dimensions (rows, cols).
//   - entries hold stored contributions in insertion order; duplicates allowed.
//   - validateNaNInf enables NaN/Inf rejection in Set/Append.
type Sparse struct {
	r, c           int
	entries        []Entry
	eps            float64
	validateNaNInf bool
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Sparse)(nil)
	_ fmt.Stringer = (*Sparse)(nil)
)

// NewSparse creates an empty rows×cols sparse matrix.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: resolve the numeric policy from options.
//
// Behavior highlights:
//   - Zero-sized shapes are legal; a characterization matrix for an empty
//     method list is 0×flows.
//
// Complexity:
//   - Time O(len(opts)), Space O(1).
func NewSparse(rows, cols int, opts ...Option) (*Sparse, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	return &Sparse{
		r:              rows,
		c:              cols,
		eps:            o.eps,
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// FromEntries builds a rows×cols matrix holding entries in the given order.
// Every entry is validated exactly as Append would.
// Complexity: O(len(entries)).
func FromEntries(rows, cols int, entries []Entry, opts ...Option) (*Sparse, error) {
	m, err := NewSparse(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	m.entries = make([]Entry, 0, len(entries))
	for _, e := range entries {
		if err = m.Append(e.Row, e.Col, e.Value); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Sparse) Rows() int { return m.r }

// Cols returns the column count.
func (m *Sparse) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Sparse) Shape() (rows, cols int) { return m.r, m.c }

// NNZ returns the number of stored entries, including explicit zeros and
// duplicates that have not been summed yet.
func (m *Sparse) NNZ() int { return len(m.entries) }

// check validates bounds and the numeric policy for a write.
func (m *Sparse) check(method string, row, col int, v float64) error {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return sparseErrorf(method, row, col, ErrOutOfRange)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return sparseErrorf(method, row, col, ErrNaNInf)
	}

	return nil
}

// Append stacks a contribution v at (row, col) without touching existing
// entries at the same coordinates. Reads sum all contributions.
//
// Errors:
//   - ErrOutOfRange on invalid indices, ErrNaNInf under the finite policy.
//
// Complexity:
//   - Time O(1) amortized.
func (m *Sparse) Append(row, col int, v float64) error {
	if err := m.check(ctxAppend, row, col, v); err != nil {
		return err
	}
	m.entries = append(m.entries, Entry{Index: Index{Row: row, Col: col}, Value: v})

	return nil
}

// At returns the sum of all contributions stored at (row, col).
// Absent coordinates read as zero.
//
// Complexity:
//   - Time O(nnz), Space O(1).
func (m *Sparse) At(row, col int) (float64, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, sparseErrorf(ctxAt, row, col, ErrOutOfRange)
	}
	var sum float64
	for _, e := range m.entries {
		if e.Row == row && e.Col == col {
			sum += e.Value
		}
	}

	return sum, nil
}

// Set replaces every contribution at (row, col) with the single value v.
// The surviving entry keeps the position of the first replaced one, or is
// appended when (row, col) was absent.
//
// Complexity:
//   - Time O(nnz), Space O(1).
func (m *Sparse) Set(row, col int, v float64) error {
	if err := m.check(ctxSet, row, col, v); err != nil {
		return err
	}
	found := false
	w := 0
	for _, e := range m.entries {
		if e.Row == row && e.Col == col {
			if found {
				continue // drop later duplicates
			}
			found = true
			e.Value = v
		}
		m.entries[w] = e
		w++
	}
	m.entries = m.entries[:w]
	if !found {
		m.entries = append(m.entries, Entry{Index: Index{Row: row, Col: col}, Value: v})
	}

	return nil
}

// Entries returns a copy of the stored entries in storage order.
// Complexity: O(nnz).
func (m *Sparse) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)

	return out
}

// Do calls f for every stored entry in storage order until f returns false.
func (m *Sparse) Do(f func(e Entry) bool) {
	for _, e := range m.entries {
		if !f(e) {
			return
		}
	}
}

// ZeroWhere sets the value of every stored entry whose index satisfies pred
// to an explicit zero and returns how many entries were zeroed. Storage
// shape is unchanged; call EliminateZeros to compact.
// Complexity: O(nnz).
func (m *Sparse) ZeroWhere(pred func(idx Index) bool) int {
	n := 0
	for i := range m.entries {
		if pred(m.entries[i].Index) {
			m.entries[i].Value = 0
			n++
		}
	}

	return n
}

// EliminateZeros drops stored entries whose value is exactly zero and
// returns how many were removed. Relative order of survivors is kept.
// Complexity: O(nnz).
func (m *Sparse) EliminateZeros() int {
	w := 0
	for _, e := range m.entries {
		if e.Value == 0 {
			continue
		}
		m.entries[w] = e
		w++
	}
	removed := len(m.entries) - w
	m.entries = m.entries[:w]

	return removed
}

// SumDuplicates collapses contributions sharing an index into one entry and
// sorts entries by (row, col). Zero sums are kept as explicit zeros.
// Complexity: O(nnz log nnz).
func (m *Sparse) SumDuplicates() {
	if len(m.entries) == 0 {
		return
	}
	sort.SliceStable(m.entries, func(a, b int) bool {
		if m.entries[a].Row != m.entries[b].Row {
			return m.entries[a].Row < m.entries[b].Row
		}
		return m.entries[a].Col < m.entries[b].Col
	})
	w := 0
	for i := 1; i < len(m.entries); i++ {
		if m.entries[i].Index == m.entries[w].Index {
			m.entries[w].Value += m.entries[i].Value
			continue
		}
		w++
		m.entries[w] = m.entries[i]
	}
	m.entries = m.entries[:w+1]
}

// Clone returns a deep copy with the same numeric policy.
// Complexity: O(nnz).
func (m *Sparse) Clone() Matrix {
	return m.CloneSparse()
}

// CloneSparse is Clone without the interface conversion.
func (m *Sparse) CloneSparse() *Sparse {
	out := &Sparse{
		r:              m.r,
		c:              m.c,
		eps:            m.eps,
		validateNaNInf: m.validateNaNInf,
		entries:        make([]Entry, len(m.entries)),
	}
	copy(out.entries, m.entries)

	return out
}

// EqualApprox reports whether m and other have the same shape and, after
// summing duplicates, every coordinate differs by at most m's epsilon.
// Neither operand is modified.
// Complexity: O(nnz log nnz).
func (m *Sparse) EqualApprox(other *Sparse) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.r != other.r || m.c != other.c {
		return false
	}
	sums := make(map[Index]float64, len(m.entries))
	for _, e := range m.entries {
		sums[e.Index] += e.Value
	}
	for _, e := range other.entries {
		sums[e.Index] -= e.Value
	}
	for _, d := range sums {
		if math.Abs(d) > m.eps {
			return false
		}
	}

	return true
}

// String renders the stored entries one per line as "(row,col)=value",
// preceded by the shape. Intended for debugging and golden tests.
func (m *Sparse) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Sparse %dx%d nnz=%d\n", m.r, m.c, len(m.entries))
	for _, e := range m.entries {
		fmt.Fprintf(&sb, "(%d,%d)=%g\n", e.Row, e.Col, e.Value)
	}

	return sb.String()
}
