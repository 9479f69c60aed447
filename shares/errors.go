// SPDX-License-Identifier: MIT
// Package: shares
//
// errors.go — sentinel errors for the shares package.
//
// Every error returned by Adjust is fatal for the whole pass: no partial
// overlay is returned alongside it.

package shares

import "errors"

// ErrUnsupportedDistribution indicates a bounds-year distribution other than
// "uniform". It is a configuration error, never skipped.
var ErrUnsupportedDistribution = errors.New("shares: unsupported distribution")

// ErrMissingYear indicates a technology lacks the bounds-year or target-year
// entry a future-year run needs.
var ErrMissingYear = errors.New("shares: missing year entry")

// ErrInvalidSampleCount indicates sampleCount < 1 for a future-year run.
var ErrInvalidSampleCount = errors.New("shares: sample count must be >= 1")

// ErrMalformedTree indicates a scenario document that cannot be decoded.
var ErrMalformedTree = errors.New("shares: malformed scenario tree")
