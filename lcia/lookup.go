// SPDX-License-Identifier: MIT

// Package lcia - factor lookups.

package lcia

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/pathways/records"
	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// FactorLookup resolves a method name to its characterization factors keyed
// by flow basis. Implementations must be safe for concurrent reads.
type FactorLookup interface {
	Factors(method string) (map[records.FlowKey]float64, error)
}

// StaticLookup is an in-memory FactorLookup.
type StaticLookup map[string]map[records.FlowKey]float64

var _ FactorLookup = StaticLookup(nil)

// Factors returns the table for method or ErrUnknownMethod.
func (s StaticLookup) Factors(method string) (map[records.FlowKey]float64, error) {
	t, ok := s[method]
	if !ok {
		return nil, fmt.Errorf("Factors(%s): %w", method, ErrUnknownMethod)
	}

	return t, nil
}

// Methods returns the method names held by s, sorted.
func (s StaticLookup) Methods() []string {
	out := make([]string, 0, len(s))
	for m := range s {
		out = append(out, m)
	}
	sort.Strings(out)

	return out
}

// factorDoc is one factor entry of the YAML document.
type factorDoc struct {
	Name        string  `yaml:"name"`
	Category    string  `yaml:"category"`
	Compartment string  `yaml:"compartment"`
	Factor      float64 `yaml:"factor"`
}

// ParseYAML decodes a document of the form
//
//	"IPCC 2021 - GWP100":
//	  - {name: Carbon dioxide, category: air, compartment: urban, factor: 1}
//
// Later duplicates of a flow basis overwrite earlier ones.
func ParseYAML(data []byte) (StaticLookup, error) {
	var doc map[string][]factorDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("ParseYAML: %v: %w", err, ErrMalformedTable)
	}
	out := make(StaticLookup, len(doc))
	for method, entries := range doc {
		t := make(map[records.FlowKey]float64, len(entries))
		for _, e := range entries {
			t[records.FlowKey{e.Name, e.Category, e.Compartment}] = e.Factor
		}
		out[method] = t
	}

	return out, nil
}

// LoadYAML downloads location through afs and decodes it with ParseYAML.
func LoadYAML(ctx context.Context, location string) (StaticLookup, error) {
	data, err := afs.New().DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("LoadYAML(%s): %w", location, err)
	}

	return ParseYAML(data)
}
