// SPDX-License-Identifier: MIT
// Package: sampler
//
// options.go — functional options.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Determinism is explicit: seeding is done via WithSeed or WithSource.

package sampler

import (
	"io"
	"log/slog"
	"math/rand/v2"
)

// DefaultIterations bounds the rejection loop.
const DefaultIterations = 1000

// seedStream is the second PCG word derived from a user seed.
const seedStream = 0x9e3779b97f4a7c15

// Option customizes a Sampler.
type Option func(*config)

type config struct {
	iterations int
	src        rand.Source
	logger     *slog.Logger
}

// WithIterations sets the maximum number of draws. Panics if n < 1.
func WithIterations(n int) Option {
	if n < 1 {
		panic("sampler: WithIterations(n<1)")
	}
	return func(c *config) { c.iterations = n }
}

// WithSeed uses a PCG source seeded from seed (reproducible draws).
func WithSeed(seed uint64) Option {
	return func(c *config) { c.src = rand.NewPCG(seed, seed^seedStream) }
}

// WithSource uses src for every draw. Panics on nil.
func WithSource(src rand.Source) Option {
	if src == nil {
		panic("sampler: WithSource(nil)")
	}
	return func(c *config) { c.src = src }
}

// WithLogger receives the non-convergence warning. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("sampler: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

// newConfig applies options over defaults (last wins). Without a seed the
// source is seeded from the runtime generator.
func newConfig(opts ...Option) config {
	c := config{iterations: DefaultIterations}
	for _, opt := range opts {
		opt(&c)
	}
	if c.src == nil {
		c.src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return c
}
