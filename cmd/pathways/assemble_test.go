package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/pathways/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeExport lays out a three-activity export plus scenario, marked and
// method files, and returns a config pointing at them.
func writeExport(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"A_matrix_index.csv": "name;product;location;unit;index\n" +
			"wind;electricity;DE;kWh;0\n" +
			"coal;electricity;DE;kWh;1\n" +
			"market;electricity;DE;kWh;2\n",
		"B_matrix_index.csv": "name;category;compartment;unit;index\n" +
			"Carbon dioxide;air;urban;kg;0\n",
		"A_matrix.csv": "consumer;producer;value;type;loc;scale;shape;minimum;maximum;negative;sign\n" +
			"0;0;1;0;1;;;;;0;0\n" +
			"1;1;1;0;1;;;;;0;0\n" +
			"2;2;1;0;1;;;;;0;0\n" +
			"2;0;70;0;70;;;;;0;1\n" +
			"2;1;30;0;30;;;;;0;1\n",
		"B_matrix.csv": "activity;flow;value;type;loc;scale;shape;minimum;maximum;negative\n" +
			"0;0;0.1;0;0.1;;;;;0\n" +
			"1;0;1;0;1;;;;;0\n",
		"scenario.yaml": "electricity:\n  DE:\n" +
			"    wind: {idx: 0, 2020: {value: 0.6}}\n" +
			"    coal: {idx: 1, 2020: {value: 0.4}}\n",
		"marked.yaml":  "DE:\n  coal: {idx: 1}\n",
		"methods.yaml": "gwp:\n  - {name: Carbon dioxide, category: air, compartment: urban, factor: 1}\n",
	}
	for name, body := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}

	cfg := config.Defaults()
	cfg.Data.Dir = dir
	cfg.Data.Marked = filepath.Join(dir, "marked.yaml")
	cfg.Scenario.Path = filepath.Join(dir, "scenario.yaml")
	cfg.Methods.Path = filepath.Join(dir, "methods.yaml")
	return cfg
}

func discard() *slog.Logger { return slog.New(slog.NewTextHandler(io.Discard, nil)) }

func TestRunAssemble(t *testing.T) {
	cfg := writeExport(t)
	res, err := runAssemble(context.Background(), cfg, 0, discard())
	require.NoError(t, err)

	at := func(r, c int) float64 {
		v, err := res.technosphere.At(r, c)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, 2, res.overlay)
	assert.InDelta(t, -60, at(0, 2), 1e-9) // 100 x 0.6, flipped
	assert.Zero(t, at(1, 2))               // marked row, off-diagonal
	assert.Equal(t, 1.0, at(1, 1))
	assert.Equal(t, 4, res.technosphere.NNZ())

	rows, cols := res.biosphere.Shape()
	assert.Equal(t, 1, rows)
	assert.Equal(t, 3, cols)
	assert.Equal(t, []string{"gwp"}, res.methods)

	var out bytes.Buffer
	require.NoError(t, res.summarize(&out))
	assert.Contains(t, out.String(), "technosphere     3x3 nnz=4")
	assert.Contains(t, out.String(), "net production   -57")
	assert.Contains(t, out.String(), "impact gwp")
	assert.Contains(t, out.String(), "1.1")
}

func TestRunAssembleWithoutScenario(t *testing.T) {
	cfg := writeExport(t)
	cfg.Scenario.Path = ""
	cfg.Data.Marked = ""
	cfg.Methods.Path = ""

	res, err := runAssemble(context.Background(), cfg, 0, discard())
	require.NoError(t, err)
	v, err := res.technosphere.At(0, 2)
	require.NoError(t, err)
	assert.Equal(t, -70.0, v)
	assert.Nil(t, res.characterization)

	impacts, err := res.directImpacts()
	require.NoError(t, err)
	assert.Nil(t, impacts)
}

func TestRunAssembleMissingDir(t *testing.T) {
	cfg := config.Defaults()
	cfg.Data.Dir = filepath.Join(t.TempDir(), "absent")
	_, err := runAssemble(context.Background(), cfg, 0, discard())
	require.Error(t, err)
}

func TestOpenLogAppends(t *testing.T) {
	cfg := config.Defaults()
	cfg.Log.File = filepath.Join(t.TempDir(), "pathways.log")

	for _, run := range []string{"run-1", "run-2"} {
		l, closeFn, err := openLog(cfg, run, false)
		require.NoError(t, err)
		l.Info("hello")
		require.NoError(t, closeFn())
	}

	data, err := os.ReadFile(cfg.Log.File)
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(string(data), "msg=hello"))
	assert.Contains(t, string(data), "run=run-1")
	assert.Contains(t, string(data), "run=run-2")

	cfg.Log.Level = "loud"
	_, _, err = openLog(cfg, "x", false)
	require.Error(t, err)
}

func TestParseRangesAndDefaults(t *testing.T) {
	r, err := parseRanges([]string{"wind=0.3:0.7"})
	require.NoError(t, err)
	assert.Equal(t, 0.3, r["wind"].Min)
	assert.Equal(t, 0.7, r["wind"].Max)

	for _, bad := range []string{"wind", "wind=0.3", "wind=a:1", "wind=0:b"} {
		_, err = parseRanges([]string{bad})
		assert.Error(t, err, bad)
	}

	d, err := parseDefaults([]string{"wind=0.6"})
	require.NoError(t, err)
	assert.Equal(t, 0.6, d["wind"])
	_, err = parseDefaults([]string{"wind"})
	assert.Error(t, err)
}

func TestSampleCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{
		"--config", filepath.Join(t.TempDir(), "absent.yaml"),
		"--log-file", "",
		"sample", "--range", "a=0:1", "--range", "b=0:1", "--seed", "3",
	})
	require.NoError(t, Execute())
	assert.Contains(t, out.String(), "a\t")
	assert.Contains(t, out.String(), "b\t")
}
