// SPDX-License-Identifier: MIT
// Package: datapackage
//
// errors.go — sentinel errors. Length problems reuse matrix.ErrLengthMismatch
// so callers can match one sentinel regardless of the layer that detected it.

package datapackage

import "errors"

// ErrUnexpectedSign indicates a biosphere bundle that carries sign flags.
var ErrUnexpectedSign = errors.New("datapackage: biosphere resources carry no sign")

// ErrUnknownResource indicates a lookup for a matrix name not in the package.
var ErrUnknownResource = errors.New("datapackage: unknown resource")

// ErrSampleOutOfRange indicates a sample column outside an Array's width.
var ErrSampleOutOfRange = errors.New("datapackage: sample index out of range")
