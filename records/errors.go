// SPDX-License-Identifier: MIT
// Package: records
//
// errors.go — sentinel errors for the records package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Readers wrap sentinels with the table name and line number via %w.
//   • Readers never panic on input data; option constructors may panic on
//     programmer error (e.g. WithDelimiter('\n')).

package records

import (
	"errors"
	"fmt"
)

// ErrMalformedRow indicates a row with the wrong column count or a value that
// cannot be parsed as the type its column requires. Fatal for the whole read.
var ErrMalformedRow = errors.New("records: malformed row")

// ErrUnknownKind indicates a matrix kind other than Technosphere or Biosphere.
var ErrUnknownKind = errors.New("records: unknown matrix kind")

// rowErrorf wraps ErrMalformedRow with the source line and a short reason.
func rowErrorf(line int, format string, args ...interface{}) error {
	return fmt.Errorf("line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrMalformedRow)
}
