// SPDX-License-Identifier: MIT

// Package doublecount - marked activities and their removal.

package doublecount

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/pathways/matrix"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// Variable is one marked scenario variable.
type Variable struct {
	Idx int `yaml:"idx"`
}

// Marked is region → variable → Variable.
type Marked map[string]map[string]Variable

// Indices returns the distinct marked indices, first seen in sorted
// (region, variable) order.
func Indices(marked Marked) []int {
	regions := make([]string, 0, len(marked))
	for r := range marked {
		regions = append(regions, r)
	}
	sort.Strings(regions)

	var out []int
	seen := make(map[int]struct{})
	for _, r := range regions {
		vars := make([]string, 0, len(marked[r]))
		for v := range marked[r] {
			vars = append(vars, v)
		}
		sort.Strings(vars)
		for _, v := range vars {
			idx := marked[r][v].Idx
			if _, dup := seen[idx]; dup {
				continue
			}
			seen[idx] = struct{}{}
			out = append(out, idx)
		}
	}

	return out
}

// Remove returns a copy of a with every off-diagonal entry in a marked row
// removed.
//
// Implementation:
//   - Stage 1: clone a; collect the marked set.
//   - Stage 2: zero entries with row in the set and col != row.
//   - Stage 3: eliminate stored zeros, including ones already present in a.
//
// Behavior highlights:
//   - Shape is preserved and a is never modified.
//   - Idempotent: Remove(Remove(a)) equals Remove(a).
//   - Marked indices outside the row range simply match nothing.
//
// Errors:
//   - matrix.ErrNilMatrix if a is nil.
//
// Complexity:
//   - Time O(nnz + k), Space O(nnz + k) for k marked indices.
func Remove(a *matrix.Sparse, marked Marked) (*matrix.Sparse, error) {
	if err := matrix.ValidateNotNil(a); err != nil {
		return nil, fmt.Errorf("Remove: %w", err)
	}
	set := make(map[int]struct{})
	for _, idx := range Indices(marked) {
		set[idx] = struct{}{}
	}

	out := a.CloneSparse()
	out.ZeroWhere(func(at matrix.Index) bool {
		if at.Row == at.Col {
			return false
		}
		_, ok := set[at.Row]
		return ok
	})
	out.EliminateZeros()

	return out, nil
}

// ParseMarked decodes a YAML marked-activities document.
func ParseMarked(data []byte) (Marked, error) {
	var m Marked
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("ParseMarked: %v: %w", err, ErrMalformedMarked)
	}
	for region, vars := range m {
		for name, v := range vars {
			if v.Idx < 0 {
				return nil, fmt.Errorf("ParseMarked(%s, %s): idx %d: %w", region, name, v.Idx, ErrMalformedMarked)
			}
		}
	}
	if m == nil {
		m = Marked{}
	}

	return m, nil
}

// LoadMarked downloads location through afs and decodes it with ParseMarked.
func LoadMarked(ctx context.Context, location string) (Marked, error) {
	data, err := afs.New().DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("LoadMarked(%s): %w", location, err)
	}

	return ParseMarked(data)
}
