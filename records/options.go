// SPDX-License-Identifier: MIT
// Package: records
//
// options.go — functional options for readers and loaders.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Readers themselves never panic.

package records

import "github.com/viant/afs"

// DefaultDelimiter separates columns in every table of an export.
const DefaultDelimiter = ';'

// Option customizes a reader or loader.
type Option func(*config)

type config struct {
	delimiter rune
	header    bool
	fs        afs.Service
}

// WithDelimiter overrides the column separator.
// Panics on '\r', '\n', '"' and the Unicode replacement character.
func WithDelimiter(r rune) Option {
	if r == '\r' || r == '\n' || r == '"' || r == 0xFFFD {
		panic("records: WithDelimiter: invalid delimiter")
	}
	return func(c *config) { c.delimiter = r }
}

// WithHeader controls whether the first row is skipped (default true).
func WithHeader(present bool) Option {
	return func(c *config) { c.header = present }
}

// WithFileSystem sets the afs service used by the Load* functions.
// Panics on nil.
func WithFileSystem(fs afs.Service) Option {
	if fs == nil {
		panic("records: WithFileSystem(nil)")
	}
	return func(c *config) { c.fs = fs }
}

// newConfig applies options over deterministic defaults (last wins).
func newConfig(opts ...Option) config {
	c := config{delimiter: DefaultDelimiter, header: true}
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

// service returns the configured afs service or a default one.
func (c config) service() afs.Service {
	if c.fs == nil {
		return afs.New()
	}

	return c.fs
}
