// SPDX-License-Identifier: MIT

// Package datapackage - resources and the Package container.

package datapackage

import (
	"fmt"

	"github.com/katalvlaran/pathways/matrix"
	"github.com/katalvlaran/pathways/records"
)

// Vector is a static matrix specification: one value per coordinate.
// Flip and Distributions are optional (nil) but, when present, parallel to Data.
type Vector struct {
	Matrix        string
	Indices       []matrix.Index
	Data          []float64
	Flip          []bool
	Distributions []records.Uncertainty
}

// Len returns the number of coordinates.
func (v Vector) Len() int { return len(v.Data) }

// validate enforces the parallel-array invariant.
func (v Vector) validate() error {
	lengths := []int{len(v.Indices)}
	if v.Flip != nil {
		lengths = append(lengths, len(v.Flip))
	}
	if v.Distributions != nil {
		lengths = append(lengths, len(v.Distributions))
	}
	if err := matrix.ValidateLengths(len(v.Data), lengths...); err != nil {
		return fmt.Errorf("vector %s: %w", v.Matrix, err)
	}

	return nil
}

// Array is a stochastic matrix specification: Data[i] holds every sample
// for Indices[i]. All rows share the same width.
type Array struct {
	Matrix  string
	Indices []matrix.Index
	Data    [][]float64
	Flip    []bool
}

// Len returns the number of coordinates.
func (a Array) Len() int { return len(a.Data) }

// Samples returns the width shared by all rows (0 for an empty array).
func (a Array) Samples() int {
	if len(a.Data) == 0 {
		return 0
	}

	return len(a.Data[0])
}

// validate enforces parallel arrays and a rectangular sample block.
func (a Array) validate() error {
	lengths := []int{len(a.Indices)}
	if a.Flip != nil {
		lengths = append(lengths, len(a.Flip))
	}
	if err := matrix.ValidateLengths(len(a.Data), lengths...); err != nil {
		return fmt.Errorf("array %s: %w", a.Matrix, err)
	}
	w := a.Samples()
	for i, row := range a.Data {
		if len(row) != w {
			return fmt.Errorf("array %s: row %d has %d samples, want %d: %w", a.Matrix, i, len(row), w, matrix.ErrLengthMismatch)
		}
	}

	return nil
}

// Package is an ordered collection of resources.
type Package struct {
	vectors []Vector
	arrays  []Array
}

// New returns an empty Package.
func New() *Package { return &Package{} }

// AddVector validates and appends a static resource.
func (p *Package) AddVector(v Vector) error {
	if err := v.validate(); err != nil {
		return fmt.Errorf("AddVector: %w", err)
	}
	p.vectors = append(p.vectors, v)

	return nil
}

// AddArray validates and appends a stochastic resource. Zero rows is valid.
func (p *Package) AddArray(a Array) error {
	if err := a.validate(); err != nil {
		return fmt.Errorf("AddArray: %w", err)
	}
	p.arrays = append(p.arrays, a)

	return nil
}

// Vector returns the first static resource named name.
func (p *Package) Vector(name string) (Vector, error) {
	for _, v := range p.vectors {
		if v.Matrix == name {
			return v, nil
		}
	}

	return Vector{}, fmt.Errorf("Vector(%s): %w", name, ErrUnknownResource)
}

// Vectors returns all static resources in insertion order.
func (p *Package) Vectors() []Vector { return append([]Vector(nil), p.vectors...) }

// Arrays returns the stochastic resources named name in insertion order.
func (p *Package) Arrays(name string) []Array {
	var out []Array
	for _, a := range p.arrays {
		if a.Matrix == name {
			out = append(out, a)
		}
	}

	return out
}
