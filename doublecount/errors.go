// SPDX-License-Identifier: MIT
// Package: doublecount
//
// errors.go — sentinel errors for the doublecount package.

package doublecount

import "errors"

// ErrMalformedMarked indicates a marked-activities document that cannot be
// decoded or carries a negative index.
var ErrMalformedMarked = errors.New("doublecount: malformed marked activities")
