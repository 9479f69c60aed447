// SPDX-License-Identifier: MIT

// Package lcia - characterization matrix assembly.

package lcia

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/katalvlaran/pathways/matrix"
	"github.com/katalvlaran/pathways/records"
)

// Option customizes Build.
type Option func(*config)

type config struct {
	audit   *slog.Logger
	columns int // <0 means len(flows)
}

// WithAudit logs the matrix shape and every written (method, flow, index,
// value) sorted by (method, flow). Panics on nil.
func WithAudit(l *slog.Logger) Option {
	if l == nil {
		panic("lcia: WithAudit(nil)")
	}
	return func(c *config) { c.audit = l }
}

// WithColumns fixes the column count instead of len(flows). Useful when the
// flow map is a subset of the biosphere. Panics if n < 0.
func WithColumns(n int) Option {
	if n < 0 {
		panic("lcia: WithColumns(n<0)")
	}
	return func(c *config) { c.columns = n }
}

// flowRef is one flow of the index map, ordered by column.
type flowRef struct {
	key   records.Key
	basis records.FlowKey
	col   int
}

// auditLine is one written factor kept for the sorted audit log.
type auditLine struct {
	method string
	flow   records.FlowKey
	col    int
	value  float64
}

// Build assembles the len(methods) × flows characterization matrix.
//
// Implementation:
//   - Stage 1: order flows by column and precompute their basis keys.
//   - Stage 2: per method, resolve its factor table once and probe it with
//     every flow basis (hash join).
//   - Stage 3: write factors row by row in ascending column order.
//   - Stage 4: optionally emit the sorted audit log.
//
// Behavior highlights:
//   - A flow absent from a method table stays an implicit zero.
//   - The same factor in two methods lands in both rows independently.
//
// Errors:
//   - ErrNilLookup, ErrUnknownMethod (from the lookup), matrix.ErrOutOfRange
//     for a flow index outside the column range.
//
// Complexity:
//   - Time O(F log F + M·F), Space O(F + nnz).
func Build(flows records.IndexMap, methods []string, lookup FactorLookup, opts ...Option) (*matrix.Sparse, error) {
	if lookup == nil {
		return nil, fmt.Errorf("Build: %w", ErrNilLookup)
	}
	cfg := config{columns: -1}
	for _, opt := range opts {
		opt(&cfg)
	}
	cols := cfg.columns
	if cols < 0 {
		cols = len(flows)
	}

	refs := make([]flowRef, 0, len(flows))
	for k, col := range flows {
		refs = append(refs, flowRef{key: k, basis: k.Basis(), col: col})
	}
	sort.Slice(refs, func(a, b int) bool {
		if refs[a].col != refs[b].col {
			return refs[a].col < refs[b].col
		}
		return keyLess(refs[a].key[:], refs[b].key[:])
	})

	m, err := matrix.NewSparse(len(methods), cols)
	if err != nil {
		return nil, fmt.Errorf("Build: %w", err)
	}
	if cfg.audit != nil {
		cfg.audit.Info("LCIA matrix shape", slog.Int("rows", len(methods)), slog.Int("cols", cols))
	}

	var lines []auditLine
	for row, method := range methods {
		table, err := lookup.Factors(method)
		if err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
		for i := 0; i < len(refs); {
			// keys sharing a column: the last one with a factor wins
			var (
				ref *flowRef
				v   float64
			)
			j := i
			for ; j < len(refs) && refs[j].col == refs[i].col; j++ {
				if f, ok := table[refs[j].basis]; ok {
					ref, v = &refs[j], f
				}
			}
			i = j
			if ref == nil {
				continue
			}
			if err = m.Append(row, ref.col, v); err != nil {
				return nil, fmt.Errorf("Build(%s, %v): %w", method, ref.key, err)
			}
			if cfg.audit != nil {
				lines = append(lines, auditLine{method: method, flow: ref.basis, col: ref.col, value: v})
			}
		}
	}

	if cfg.audit != nil {
		sort.SliceStable(lines, func(a, b int) bool {
			if lines[a].method != lines[b].method {
				return lines[a].method < lines[b].method
			}
			return keyLess(lines[a].flow[:], lines[b].flow[:])
		})
		for _, l := range lines {
			cfg.audit.Info("LCIA factor",
				slog.String("method", l.method),
				slog.String("flow", strings.Join(l.flow[:], ", ")),
				slog.Int("index", l.col),
				slog.Float64("value", l.value))
		}
	}

	return m, nil
}

// keyLess orders string tuples lexicographically.
func keyLess(a, b []string) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}
