package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/pathways/datapackage"
	"github.com/katalvlaran/pathways/doublecount"
	"github.com/katalvlaran/pathways/internal/config"
	"github.com/katalvlaran/pathways/lcia"
	"github.com/katalvlaran/pathways/matrix"
	"github.com/katalvlaran/pathways/records"
	"github.com/katalvlaran/pathways/sampler"
	"github.com/katalvlaran/pathways/shares"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

var assembleFlags struct {
	year     int
	samples  int
	sample   int
	seed     uint64
	scenario string
	marked   string
	methods  string
	names    []string
	merge    string
	audit    bool
}

var assembleCmd = &cobra.Command{
	Use:   "assemble",
	Short: "Build the technosphere, biosphere and characterization matrices for a year",
	RunE: func(cmd *cobra.Command, args []string) error {
		f := cmd.Flags()
		if f.Changed("year") {
			cfg.Scenario.Year = assembleFlags.year
		}
		if f.Changed("samples") {
			cfg.Scenario.Samples = assembleFlags.samples
		}
		if f.Changed("seed") {
			cfg.Scenario.Seed = assembleFlags.seed
		}
		if f.Changed("scenario") {
			cfg.Scenario.Path = assembleFlags.scenario
		}
		if f.Changed("merge") {
			cfg.Scenario.Merge = assembleFlags.merge
		}
		if f.Changed("marked") {
			cfg.Data.Marked = assembleFlags.marked
		}
		if f.Changed("methods") {
			cfg.Methods.Path = assembleFlags.methods
		}
		if f.Changed("method") {
			cfg.Methods.Names = assembleFlags.names
		}
		if f.Changed("audit") {
			cfg.Methods.Audit = assembleFlags.audit
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		res, err := runAssemble(cmd.Context(), cfg, assembleFlags.sample, logger)
		if err != nil {
			logger.Error("assemble failed", slog.Any("error", err))
			return err
		}

		return res.summarize(cmd.OutOrStdout())
	},
}

func init() {
	f := assembleCmd.Flags()
	f.IntVar(&assembleFlags.year, "year", shares.BaseYear, "Scenario year")
	f.IntVar(&assembleFlags.samples, "samples", 1, "Stochastic columns per overlay row (future years)")
	f.IntVar(&assembleFlags.sample, "sample", 0, "Overlay column merged into the technosphere")
	f.Uint64Var(&assembleFlags.seed, "seed", 0, "Sampler seed (0 draws a random seed)")
	f.StringVar(&assembleFlags.scenario, "scenario", "", "Scenario share tree (YAML)")
	f.StringVar(&assembleFlags.marked, "marked", "", "Marked activities for double-counting removal (YAML)")
	f.StringVar(&assembleFlags.methods, "methods", "", "Characterization factor tables (YAML)")
	f.StringSliceVar(&assembleFlags.names, "method", nil, "Methods to characterize (default: all in --methods)")
	f.StringVar(&assembleFlags.merge, "merge", datapackage.MergeReplace.String(), "Overlay merge policy: replace or add")
	f.BoolVar(&assembleFlags.audit, "audit", false, "Log every characterization factor written")
	rootCmd.AddCommand(assembleCmd)
}

// assembly is the outcome of one run.
type assembly struct {
	technosphere     *matrix.Sparse
	biosphere        *matrix.Sparse
	characterization *matrix.Sparse
	methods          []string
	overlay          int
}

// dim is the matrix extent implied by an index map: max index + 1.
func dim(m records.IndexMap) int {
	n := 0
	for _, i := range m {
		if i+1 > n {
			n = i + 1
		}
	}

	return n
}

// runAssemble loads cfg.Data.Dir and applies, in order: share redistribution,
// double-counting removal and characterization.
func runAssemble(ctx context.Context, cfg *config.Config, sample int, logger *slog.Logger) (*assembly, error) {
	dir := cfg.Data.Dir
	logger.Info("loading export", slog.String("dir", dir), slog.Int("year", cfg.Scenario.Year))

	activities, flows, err := records.LoadIndexMaps(ctx, dir)
	if err != nil {
		return nil, err
	}
	a, err := records.LoadMatrixArrays(ctx, dir, records.Technosphere)
	if err != nil {
		return nil, err
	}
	b, err := records.LoadMatrixArrays(ctx, dir, records.Biosphere)
	if err != nil {
		return nil, err
	}
	pkg, err := datapackage.NewLCAPackage(a, b)
	if err != nil {
		return nil, err
	}

	nAct, nFlow := dim(activities), dim(flows)
	out := &assembly{}

	av, err := pkg.Vector(records.TechnosphereMatrixName)
	if err != nil {
		return nil, err
	}
	if out.technosphere, err = datapackage.Assemble(av, nAct, nAct); err != nil {
		return nil, err
	}
	bv, err := pkg.Vector(records.BiosphereMatrixName)
	if err != nil {
		return nil, err
	}
	if out.biosphere, err = datapackage.Assemble(bv, nFlow, nAct); err != nil {
		return nil, err
	}

	if cfg.Scenario.Path != "" {
		if err = applyScenario(ctx, cfg, a, sample, out, logger); err != nil {
			return nil, err
		}
	}

	if cfg.Data.Marked != "" {
		marked, err := doublecount.LoadMarked(ctx, cfg.Data.Marked)
		if err != nil {
			return nil, err
		}
		before := out.technosphere.NNZ()
		if out.technosphere, err = doublecount.Remove(out.technosphere, marked); err != nil {
			return nil, err
		}
		logger.Info("double counting removed",
			slog.Any("activities", doublecount.Indices(marked)),
			slog.Int("dropped", before-out.technosphere.NNZ()))
	}

	if cfg.Methods.Path != "" {
		table, err := lcia.LoadYAML(ctx, cfg.Methods.Path)
		if err != nil {
			return nil, err
		}
		out.methods = cfg.Methods.Names
		if len(out.methods) == 0 {
			out.methods = table.Methods()
		}
		opts := []lcia.Option{lcia.WithColumns(nFlow)}
		if cfg.Methods.Audit {
			opts = append(opts, lcia.WithAudit(logger))
		}
		if out.characterization, err = lcia.Build(flows, out.methods, table, opts...); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// applyScenario computes the share overlay and merges one sample column into
// the technosphere.
func applyScenario(ctx context.Context, cfg *config.Config, base records.Bundle, sample int, out *assembly, logger *slog.Logger) error {
	tree, err := shares.LoadTree(ctx, cfg.Scenario.Path)
	if err != nil {
		return err
	}
	policy, err := cfg.MergePolicy()
	if err != nil {
		return err
	}

	var sopts []sampler.Option
	if cfg.Scenario.Seed != 0 {
		sopts = append(sopts, sampler.WithSeed(cfg.Scenario.Seed))
	}
	overlay, err := shares.Adjust(base, tree, cfg.Scenario.Samples, cfg.Scenario.Year,
		shares.WithLogger(logger), shares.WithSamplerOptions(sopts...))
	if err != nil {
		return err
	}
	out.overlay = overlay.Len()

	op, err := overlay.Package()
	if err != nil {
		return err
	}
	for _, arr := range op.Arrays(records.TechnosphereMatrixName) {
		if err = datapackage.ApplyArray(out.technosphere, arr, sample, policy); err != nil {
			return err
		}
	}
	logger.Info("scenario applied",
		slog.String("scenario", cfg.Scenario.Path),
		slog.Int("overlay", out.overlay),
		slog.String("merge", policy.String()))

	return nil
}

// summarize prints shapes, production totals and direct impacts per method.
func (r *assembly) summarize(w io.Writer) error {
	for _, m := range []struct {
		name string
		m    *matrix.Sparse
	}{
		{"technosphere", r.technosphere},
		{"biosphere", r.biosphere},
		{"characterization", r.characterization},
	} {
		if m.m == nil {
			continue
		}
		rows, cols := m.m.Shape()
		fmt.Fprintf(w, "%-16s %dx%d nnz=%d\n", m.name, rows, cols, m.m.NNZ())
	}
	fmt.Fprintf(w, "overlay          %d exchanges\n", r.overlay)
	if r.technosphere.Cols() > 0 {
		fmt.Fprintf(w, "net production   %.6g\n", mat.Sum(r.technosphere.ColSums()))
	}

	impacts, err := r.directImpacts()
	if err != nil || impacts == nil {
		return err
	}
	for i, name := range r.methods {
		fmt.Fprintf(w, "impact %-9s %.6g\n", name, mat.Sum(impacts.RowView(i)))
	}

	return nil
}

// directImpacts is characterization × biosphere (methods × activities), or
// nil when either side is missing or empty.
func (r *assembly) directImpacts() (*mat.Dense, error) {
	if r.characterization == nil || r.characterization.Rows() == 0 || r.biosphere.Rows() == 0 || r.biosphere.Cols() == 0 {
		return nil, nil
	}
	c, err := r.characterization.Dense()
	if err != nil {
		return nil, err
	}
	b, err := r.biosphere.Dense()
	if err != nil {
		return nil, err
	}
	var out mat.Dense
	out.Mul(c, b)

	return &out, nil
}
