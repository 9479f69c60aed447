// SPDX-License-Identifier: MIT

// Package sampler - constrained correlated uniform sampling.

package sampler

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"
)

// Range is an inclusive [Min, Max] bound on one normalized share.
type Range struct {
	Min float64
	Max float64
}

// Contains reports Min <= v <= Max. NaN is never contained.
func (r Range) Contains(v float64) bool {
	return r.Min <= v && v <= r.Max
}

// Sampler holds one random stream across many Sample calls, so consecutive
// groups drawn under one seed get independent shares.
type Sampler struct {
	cfg config
}

// New returns a Sampler configured by opts.
func New(opts ...Option) *Sampler {
	return &Sampler{cfg: newConfig(opts...)}
}

// Sample returns normalized shares for every name in ranges and true, or
// defaults unchanged and false when no draw was accepted.
//
// Implementation:
//   - Stage 1: sort names for reproducible draw order.
//   - Stage 2: per iteration draw distuv.Uniform{Min, Max} per name,
//     divide by the total, accept if every share is inside its Range.
//   - Stage 3: on exhaustion log a warning and return defaults.
//
// Behavior highlights:
//   - A zero total yields NaN shares, which are rejected like any other miss.
//   - Empty ranges are accepted on the first iteration (empty result).
//
// Complexity:
//   - Time O(iterations · n), Space O(n).
func (s *Sampler) Sample(ranges map[string]Range, defaults map[string]float64) (map[string]float64, bool) {
	names := make([]string, 0, len(ranges))
	for name := range ranges {
		names = append(names, name)
	}
	sort.Strings(names)

	draws := make([]float64, len(names))
	for it := 0; it < s.cfg.iterations; it++ {
		var total float64
		for i, name := range names {
			r := ranges[name]
			draws[i] = distuv.Uniform{Min: r.Min, Max: r.Max, Src: s.cfg.src}.Rand()
			total += draws[i]
		}
		ok := true
		for i, name := range names {
			draws[i] /= total
			if !ranges[name].Contains(draws[i]) {
				ok = false
			}
		}
		if !ok {
			continue
		}
		shares := make(map[string]float64, len(names))
		for i, name := range names {
			shares[name] = draws[i]
		}

		return shares, true
	}

	s.cfg.logger.Warn("failed to find a valid distribution",
		slog.Int("iterations", s.cfg.iterations),
		slog.Any("ranges", ranges))

	return defaults, false
}

// Sample is a one-shot helper: New(opts...).Sample(ranges, defaults).
func Sample(ranges map[string]Range, defaults map[string]float64, opts ...Option) (map[string]float64, bool) {
	return New(opts...).Sample(ranges, defaults)
}
