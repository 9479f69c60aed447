// SPDX-License-Identifier: MIT
// Package: lcia
//
// errors.go — sentinel errors for the lcia package.

package lcia

import "errors"

// ErrUnknownMethod indicates a method name the lookup has no table for.
var ErrUnknownMethod = errors.New("lcia: unknown method")

// ErrNilLookup indicates Build was called without a FactorLookup.
var ErrNilLookup = errors.New("lcia: nil factor lookup")

// ErrMalformedTable indicates a factor document that cannot be decoded.
var ErrMalformedTable = errors.New("lcia: malformed factor table")
