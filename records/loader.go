// SPDX-License-Identifier: MIT

// Package records - afs-backed loaders for export directories.
//
// An export directory holds:
//
//	A_matrix.csv        technosphere exchanges
//	B_matrix.csv        biosphere exchanges
//	A_matrix_index.csv  activity/product keys -> index
//	B_matrix_index.csv  flow keys -> index

package records

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"path"
	"strings"
)

// Conventional file names inside an export directory.
const (
	matrixFileSuffix = "_matrix.csv"
	indexFileSuffix  = "_matrix_index.csv"
)

// MatrixFile returns the exchange-table file name for kind ("A_matrix.csv").
func MatrixFile(kind Kind) string { return string(kind) + matrixFileSuffix }

// IndexFile returns the index-table file name for kind ("A_matrix_index.csv").
func IndexFile(kind Kind) string { return string(kind) + indexFileSuffix }

// joinURL appends name to a directory location that may be a plain path or
// a scheme URL (file://, mem://, s3://, ...).
func joinURL(dir, name string) string {
	if u, err := url.Parse(dir); err == nil && u.Scheme != "" && len(u.Scheme) > 1 {
		return strings.TrimRight(dir, "/") + "/" + name
	}

	return path.Join(dir, name)
}

// LoadIndices downloads location and parses it with ReadIndices.
func LoadIndices(ctx context.Context, location string, opts ...Option) (IndexMap, error) {
	c := newConfig(opts...)
	data, err := c.service().DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("LoadIndices(%s): %w", location, err)
	}
	m, err := ReadIndices(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, fmt.Errorf("LoadIndices(%s): %w", location, err)
	}

	return m, nil
}

// LoadExchanges downloads location and parses it with ReadExchanges.
func LoadExchanges(ctx context.Context, location string, kind Kind, opts ...Option) (Bundle, error) {
	c := newConfig(opts...)
	data, err := c.service().DownloadWithURL(ctx, location)
	if err != nil {
		return Bundle{}, fmt.Errorf("LoadExchanges(%s): %w", location, err)
	}
	b, err := ReadExchanges(bytes.NewReader(data), kind, opts...)
	if err != nil {
		return Bundle{}, fmt.Errorf("LoadExchanges(%s): %w", location, err)
	}

	return b, nil
}

// LoadMatrixArrays reads "<kind>_matrix.csv" from dir.
// The returned Bundle carries Sign only for the technosphere.
func LoadMatrixArrays(ctx context.Context, dir string, kind Kind, opts ...Option) (Bundle, error) {
	if err := kind.Validate(); err != nil {
		return Bundle{}, fmt.Errorf("LoadMatrixArrays: %w", err)
	}

	return LoadExchanges(ctx, joinURL(dir, MatrixFile(kind)), kind, opts...)
}

// LoadIndexMaps reads the technosphere and biosphere index tables from dir.
func LoadIndexMaps(ctx context.Context, dir string, opts ...Option) (activities, flows IndexMap, err error) {
	if activities, err = LoadIndices(ctx, joinURL(dir, IndexFile(Technosphere)), opts...); err != nil {
		return nil, nil, err
	}
	if flows, err = LoadIndices(ctx, joinURL(dir, IndexFile(Biosphere)), opts...); err != nil {
		return nil, nil, err
	}

	return activities, flows, nil
}
