// SPDX-License-Identifier: MIT
// Package: shares
//
// options.go — functional options for Adjust.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Without WithSampler a fresh sampler.Sampler is built per Adjust call
//     from the options given through WithSamplerOptions.

package shares

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/pathways/sampler"
)

// BaseYear is the year whose shares are taken verbatim from the scenario.
const BaseYear = 2020

// BoundsYear is the year whose minimum bounds every future-year draw.
const BoundsYear = 2050

// SampleFunc draws one set of normalized shares for a technology group.
// It has the shape of (*sampler.Sampler).Sample.
type SampleFunc func(ranges map[string]sampler.Range, defaults map[string]float64) (map[string]float64, bool)

// Option customizes Adjust.
type Option func(*config)

type config struct {
	sample      SampleFunc
	samplerOpts []sampler.Option
	logger      *slog.Logger
}

// WithSampler replaces the share sampler. Panics on nil.
func WithSampler(fn SampleFunc) Option {
	if fn == nil {
		panic("shares: WithSampler(nil)")
	}
	return func(c *config) { c.sample = fn }
}

// WithSamplerOptions configures the default sampler (seed, iterations, ...).
// Ignored when WithSampler is also given.
func WithSamplerOptions(opts ...sampler.Option) Option {
	return func(c *config) { c.samplerOpts = append(c.samplerOpts, opts...) }
}

// WithLogger receives per-group share reports at debug level. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("shares: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}

func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if c.sample == nil {
		so := append([]sampler.Option{sampler.WithLogger(c.logger)}, c.samplerOpts...)
		c.sample = sampler.New(so...).Sample
	}

	return c
}
