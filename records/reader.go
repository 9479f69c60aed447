// SPDX-License-Identifier: MIT

// Package records - delimited table readers.
//
// Purpose:
//   - Turn index tables into IndexMap and exchange tables into Bundle.
//   - Fail fast: the first malformed row aborts the read.
//
// Complexity quicksheet:
//   - ReadIndices: O(rows); ReadExchanges: O(rows) plus one Bundle layout.

package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// newCSVReader configures encoding/csv for the export dialect. Column counts
// are checked by the callers so the error names the offending line.
func newCSVReader(r io.Reader, c config) *csv.Reader {
	cr := csv.NewReader(r)
	cr.Comma = c.delimiter
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true

	return cr
}

// eachRow streams data rows (header skipped when configured) to fn with the
// 1-based source line number.
func eachRow(r io.Reader, c config, fn func(line int, row []string) error) error {
	cr := newCSVReader(r, c)
	first := true
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%v: %w", err, ErrMalformedRow) // csv.ParseError carries the line
		}
		line, _ := cr.FieldPos(0)
		if first {
			first = false
			if c.header {
				continue
			}
		}
		if err = fn(line, row); err != nil {
			return err
		}
	}
}

// ReadIndices parses an index table: four string key columns followed by an
// integer index. Duplicate keys silently overwrite earlier entries.
//
// Errors:
//   - ErrMalformedRow for a column count other than five or a non-integer index.
//
// Complexity:
//   - Time O(rows), Space O(distinct keys).
func ReadIndices(r io.Reader, opts ...Option) (IndexMap, error) {
	c := newConfig(opts...)
	out := make(IndexMap)
	err := eachRow(r, c, func(line int, row []string) error {
		if len(row) != indexColumns {
			return rowErrorf(line, "index table has %d columns, want %d", len(row), indexColumns)
		}
		idx, err := strconv.Atoi(strings.TrimSpace(row[4]))
		if err != nil {
			return rowErrorf(line, "index %q", row[4])
		}
		out[Key{row[0], row[1], row[2], row[3]}] = idx

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ReadIndices: %w", err)
	}

	return out, nil
}

// ReadExchanges parses an exchange table of the given kind into a Bundle.
//
// Implementation:
//   - Stage 1: check the column count (11 technosphere, 10 biosphere).
//   - Stage 2: parse numeric columns; indices are truncated toward zero.
//   - Stage 3: swap the first two columns into (Row=producer, Col=consumer).
//   - Stage 4: lay out the exchanges as parallel arrays.
//
// Errors:
//   - ErrUnknownKind for an invalid kind.
//   - ErrMalformedRow for any row that fails Stage 1 or 2.
//
// Complexity:
//   - Time O(rows), Space O(rows).
func ReadExchanges(r io.Reader, kind Kind, opts ...Option) (Bundle, error) {
	if err := kind.Validate(); err != nil {
		return Bundle{}, fmt.Errorf("ReadExchanges: %w", err)
	}
	c := newConfig(opts...)
	want := kind.columns()
	var exchanges []Exchange
	err := eachRow(r, c, func(line int, row []string) error {
		if len(row) != want {
			return rowErrorf(line, "%s table has %d columns, want %d", kind, len(row), want)
		}
		e, err := parseExchange(row, kind)
		if err != nil {
			return rowErrorf(line, "%v", err)
		}
		exchanges = append(exchanges, e)

		return nil
	})
	if err != nil {
		return Bundle{}, fmt.Errorf("ReadExchanges(%s): %w", kind, err)
	}

	return NewBundle(kind, exchanges), nil
}

// parseExchange converts one row with a verified column count.
func parseExchange(row []string, kind Kind) (Exchange, error) {
	var (
		nums [9]float64
		err  error
	)
	for i := range nums {
		if nums[i], err = parseFloat(row[i]); err != nil {
			return Exchange{}, fmt.Errorf("column %d: %w", i, err)
		}
	}
	consumer, err := parseIndex(nums[0])
	if err != nil {
		return Exchange{}, fmt.Errorf("column 0: %w", err)
	}
	producer, err := parseIndex(nums[1])
	if err != nil {
		return Exchange{}, fmt.Errorf("column 1: %w", err)
	}
	negative, err := parseFlag(row[9])
	if err != nil {
		return Exchange{}, fmt.Errorf("column 9: %w", err)
	}
	e := Exchange{
		Row:   producer,
		Col:   consumer,
		Value: nums[2],
		Uncertainty: Uncertainty{
			Type:     int(nums[3]),
			Loc:      nums[4],
			Scale:    nums[5],
			Shape:    nums[6],
			Minimum:  nums[7],
			Maximum:  nums[8],
			Negative: negative,
		},
	}
	if kind == Technosphere {
		if e.Flip, err = parseFlag(row[10]); err != nil {
			return Exchange{}, fmt.Errorf("column 10: %w", err)
		}
	}

	return e, nil
}

// parseFloat accepts decimal and scientific notation; empty cells read as NaN
// the way numeric table loaders treat missing uncertainty parameters.
func parseFloat(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN(), nil
	}

	return strconv.ParseFloat(s, 64)
}

// parseIndex truncates a parsed index value and rejects negatives and NaN.
func parseIndex(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0, fmt.Errorf("invalid index %v", v)
	}

	return int(v), nil
}

// parseFlag accepts numeric flags (non-zero is true) and boolean literals.
func parseFlag(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v != 0, nil
	}

	return strconv.ParseBool(s)
}
