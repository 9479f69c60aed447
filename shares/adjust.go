// SPDX-License-Identifier: MIT

// Package shares - share redistribution over technosphere exchanges.

package shares

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/katalvlaran/pathways/datapackage"
	"github.com/katalvlaran/pathways/matrix"
	"github.com/katalvlaran/pathways/records"
	"github.com/katalvlaran/pathways/sampler"
)

// Overlay is the redistribution result: one row per rewritten (row, col)
// coordinate, one column per sample. Sign is the flip flag of the base
// exchange, or true for an exchange the base did not have.
type Overlay struct {
	Data    [][]float64
	Indices []matrix.Index
	Sign    []bool
}

// Len returns the number of rewritten coordinates.
func (o Overlay) Len() int { return len(o.Data) }

// Package wraps the overlay as a technosphere array resource.
func (o Overlay) Package() (*datapackage.Package, error) {
	return datapackage.NewOverlayPackage(o.Data, o.Indices, o.Sign)
}

// member is one technology of a group with its resolved share inputs.
type member struct {
	name string
	tech Technology
}

// Adjust computes the share overlay for year over the base technosphere.
//
// Implementation:
//   - Stage 1: index base coordinates and the distinct columns of every row;
//     collect the explicit set (every declared Idx).
//   - Stage 2: walk groups in sorted (category, region) order. Resolve the
//     group shares: scenario values at BaseYear, one sampler draw otherwise.
//   - Stage 3: for every column fed by a group row and not in the explicit
//     set, total the base output of the group rows and emit total × share
//     for each technology with an Idx.
//
// Behavior highlights:
//   - At BaseYear each row has one column and the sampler is never called.
//   - Otherwise each row has sampleCount identical columns.
//   - A technology without a year entry gets share 0 at BaseYear.
//
// Errors:
//   - ErrUnsupportedDistribution, ErrMissingYear, ErrInvalidSampleCount,
//     or a base bundle validation error. No partial overlay is returned.
//
// Complexity:
//   - Time O(N + G·P·T) for N base exchanges, G groups, P product columns
//     per group and T technologies per group; Space O(N + output).
func Adjust(base records.Bundle, tree Tree, sampleCount, year int, opts ...Option) (Overlay, error) {
	if err := base.Validate(); err != nil {
		return Overlay{}, fmt.Errorf("Adjust: %w", err)
	}
	if base.Kind != records.Technosphere {
		return Overlay{}, fmt.Errorf("Adjust: base is %s: %w", base.Kind, records.ErrUnknownKind)
	}
	if year != BaseYear && sampleCount < 1 {
		return Overlay{}, fmt.Errorf("Adjust(%d): %w", sampleCount, ErrInvalidSampleCount)
	}
	cfg := newConfig(opts...)

	lookup := base.Lookup()
	rowCols := make(map[int][]int)
	for idx := range lookup {
		rowCols[idx.Row] = append(rowCols[idx.Row], idx.Col)
	}
	explicit := tree.Explicit()

	var out Overlay
	for _, category := range sortedKeys(tree) {
		regions := tree[category]
		for _, region := range sortedKeys(regions) {
			group := members(regions[region])

			shares, err := groupShares(group, year, cfg.sample)
			if err != nil {
				return Overlay{}, fmt.Errorf("Adjust(%s, %s): %w", category, region, err)
			}
			cfg.logger.Debug("tech group shares",
				slog.String("category", category),
				slog.String("region", region),
				slog.Any("shares", shares))

			var techRows []int
			seen := make(map[int]struct{})
			for _, m := range group {
				if m.tech.Idx != nil {
					techRows = append(techRows, *m.tech.Idx)
				}
			}
			var products []int
			for _, r := range techRows {
				for _, c := range rowCols[r] {
					if _, dup := seen[c]; !dup {
						seen[c] = struct{}{}
						products = append(products, c)
					}
				}
			}
			sort.Ints(products)

			for _, col := range products {
				if _, skip := explicit[col]; skip {
					continue
				}
				var total float64
				for _, r := range techRows {
					if pos, ok := lookup[matrix.Index{Row: r, Col: col}]; ok {
						total += base.Data[pos]
					}
				}
				for _, m := range group {
					share, ok := shares[m.name]
					if !ok || m.tech.Idx == nil {
						continue
					}
					at := matrix.Index{Row: *m.tech.Idx, Col: col}
					sign := true
					if pos, found := lookup[at]; found {
						sign = base.Sign[pos]
					}
					out.Data = append(out.Data, amounts(total*share, year, sampleCount))
					out.Indices = append(out.Indices, at)
					out.Sign = append(out.Sign, sign)
				}
			}
		}
	}

	return out, nil
}

// groupShares resolves the share of every group member for year.
func groupShares(group []member, year int, sample SampleFunc) (map[string]float64, error) {
	shares := make(map[string]float64, len(group))
	if year == BaseYear {
		for _, m := range group {
			shares[m.name] = m.tech.Years[BaseYear].Value
		}
		return shares, nil
	}
	if len(group) == 0 {
		return shares, nil
	}

	ranges := make(map[string]sampler.Range, len(group))
	for _, m := range group {
		bounds, ok := m.tech.Years[BoundsYear]
		if !ok {
			return nil, fmt.Errorf("%s: year %d: %w", m.name, BoundsYear, ErrMissingYear)
		}
		if bounds.Distribution != DistributionUniform {
			return nil, fmt.Errorf("%s: %q: %w", m.name, bounds.Distribution, ErrUnsupportedDistribution)
		}
		target, ok := m.tech.Years[year]
		if !ok {
			return nil, fmt.Errorf("%s: year %d: %w", m.name, year, ErrMissingYear)
		}
		ranges[m.name] = sampler.Range{Min: bounds.Min, Max: target.Max}
		shares[m.name] = m.tech.Years[BaseYear].Value
	}
	drawn, _ := sample(ranges, shares)

	return drawn, nil
}

// amounts is the overlay row for one coordinate.
func amounts(v float64, year, sampleCount int) []float64 {
	if year == BaseYear {
		return []float64{v}
	}
	row := make([]float64, sampleCount)
	for i := range row {
		row[i] = v
	}

	return row
}

// members lists a group's technologies by name.
func members(techs map[string]Technology) []member {
	out := make([]member, 0, len(techs))
	for _, name := range sortedKeys(techs) {
		out = append(out, member{name: name, tech: techs[name]})
	}

	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
