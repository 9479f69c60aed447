package main

import (
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/pathways/sampler"
	"github.com/spf13/cobra"
)

var sampleFlags struct {
	ranges     []string
	defaults   []string
	iterations int
	seed       uint64
}

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Draw one set of normalized shares within per-technology bounds",
	Example: `  pathways sample --range wind=0.3:0.7 --range coal=0.1:0.5 \
    --default wind=0.6 --default coal=0.4 --seed 7`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ranges, err := parseRanges(sampleFlags.ranges)
		if err != nil {
			return err
		}
		defaults, err := parseDefaults(sampleFlags.defaults)
		if err != nil {
			return err
		}

		opts := []sampler.Option{
			sampler.WithIterations(sampleFlags.iterations),
			sampler.WithLogger(logger),
		}
		if sampleFlags.seed != 0 {
			opts = append(opts, sampler.WithSeed(sampleFlags.seed))
		}
		shares, ok := sampler.Sample(ranges, defaults, opts...)
		logger.Info("sampled shares", slog.Bool("accepted", ok), slog.Any("shares", shares))

		names := make([]string, 0, len(shares))
		for name := range shares {
			names = append(names, name)
		}
		sort.Strings(names)
		w := cmd.OutOrStdout()
		for _, name := range names {
			fmt.Fprintf(w, "%s\t%.6f\n", name, shares[name])
		}
		if !ok {
			fmt.Fprintln(w, "# no valid draw, defaults returned")
		}

		return nil
	},
}

func init() {
	f := sampleCmd.Flags()
	f.StringArrayVar(&sampleFlags.ranges, "range", nil, "name=min:max bound on a normalized share (repeatable)")
	f.StringArrayVar(&sampleFlags.defaults, "default", nil, "name=value fallback share (repeatable)")
	f.IntVar(&sampleFlags.iterations, "iterations", sampler.DefaultIterations, "Maximum draws before falling back to defaults")
	f.Uint64Var(&sampleFlags.seed, "seed", 0, "Sampler seed (0 draws a random seed)")
	rootCmd.AddCommand(sampleCmd)
}

// parseRanges reads "name=min:max" pairs.
func parseRanges(in []string) (map[string]sampler.Range, error) {
	out := make(map[string]sampler.Range, len(in))
	for _, s := range in {
		name, bounds, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("range %q: want name=min:max", s)
		}
		lo, hi, ok := strings.Cut(bounds, ":")
		if !ok {
			return nil, fmt.Errorf("range %q: want name=min:max", s)
		}
		minV, err := strconv.ParseFloat(lo, 64)
		if err != nil {
			return nil, fmt.Errorf("range %q: %w", s, err)
		}
		maxV, err := strconv.ParseFloat(hi, 64)
		if err != nil {
			return nil, fmt.Errorf("range %q: %w", s, err)
		}
		out[name] = sampler.Range{Min: minV, Max: maxV}
	}

	return out, nil
}

// parseDefaults reads "name=value" pairs.
func parseDefaults(in []string) (map[string]float64, error) {
	out := make(map[string]float64, len(in))
	for _, s := range in {
		name, v, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("default %q: want name=value", s)
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("default %q: %w", s, err)
		}
		out[name] = f
	}

	return out, nil
}
