// SPDX-License-Identifier: MIT

// Package shares - scenario share tree and its YAML form.

package shares

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"
)

// DistributionUniform is the only supported bounds distribution.
const DistributionUniform = "uniform"

// YearShare holds the share parameters of one technology for one year.
// Value is deterministic (base year); Min/Max/Distribution describe an
// uncertain future share.
type YearShare struct {
	Value        float64 `yaml:"value"`
	Min          float64 `yaml:"min"`
	Max          float64 `yaml:"max"`
	Distribution string  `yaml:"distribution"`
}

// Technology is one competitor inside a (category, region) group.
// A nil Idx means no technosphere row exists for it yet.
type Technology struct {
	Idx   *int
	Years map[int]YearShare
}

// Tree is category → region → technology.
type Tree map[string]map[string]map[string]Technology

// Explicit returns every Idx declared anywhere in the tree. Product columns
// in this set are never rewritten by Adjust.
func (t Tree) Explicit() map[int]struct{} {
	out := make(map[int]struct{})
	for _, regions := range t {
		for _, techs := range regions {
			for _, tech := range techs {
				if tech.Idx != nil {
					out[*tech.Idx] = struct{}{}
				}
			}
		}
	}

	return out
}

// UnmarshalYAML decodes a technology mapping: the "idx" key plus integer
// year keys.
func (t *Technology) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: technology must be a mapping: %w", node.Line, ErrMalformedTree)
	}
	t.Years = make(map[int]YearShare)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Value == "idx" {
			var idx *int
			if err := v.Decode(&idx); err != nil {
				return fmt.Errorf("line %d: idx: %v: %w", v.Line, err, ErrMalformedTree)
			}
			t.Idx = idx
			continue
		}
		year, err := strconv.Atoi(k.Value)
		if err != nil {
			return fmt.Errorf("line %d: unexpected key %q: %w", k.Line, k.Value, ErrMalformedTree)
		}
		var ys YearShare
		if err = v.Decode(&ys); err != nil {
			return fmt.Errorf("line %d: year %d: %v: %w", v.Line, year, err, ErrMalformedTree)
		}
		t.Years[year] = ys
	}

	return nil
}

// MarshalYAML renders the technology with "idx" first and years ascending.
func (t Technology) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	if t.Idx != nil {
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: "idx"},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(*t.Idx)})
	}
	years := make([]int, 0, len(t.Years))
	for y := range t.Years {
		years = append(years, y)
	}
	sort.Ints(years)
	for _, y := range years {
		var v yaml.Node
		if err := v.Encode(t.Years[y]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.Itoa(y)}, &v)
	}

	return node, nil
}

// ParseTree decodes a YAML scenario document.
func ParseTree(data []byte) (Tree, error) {
	var t Tree
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("ParseTree: %w", wrapMalformed(err))
	}
	if t == nil {
		t = Tree{}
	}

	return t, nil
}

// LoadTree downloads location through afs and decodes it with ParseTree.
func LoadTree(ctx context.Context, location string) (Tree, error) {
	data, err := afs.New().DownloadWithURL(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("LoadTree(%s): %w", location, err)
	}

	return ParseTree(data)
}

// wrapMalformed tags yaml syntax errors with ErrMalformedTree while keeping
// errors that already carry it.
func wrapMalformed(err error) error {
	if errors.Is(err, ErrMalformedTree) {
		return err
	}

	return fmt.Errorf("%v: %w", err, ErrMalformedTree)
}
