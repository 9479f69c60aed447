// Package config holds the user-facing configuration of the pathways CLI.
//
// Precedence, lowest first: Defaults, the YAML file, PATHWAYS_* environment
// variables (a .env file is loaded by the CLI before Load), command flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/katalvlaran/pathways/datapackage"
	"github.com/katalvlaran/pathways/shares"
	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all user-facing configuration for pathways.
type Config struct {
	Data     DataConfig     `yaml:"data"`
	Scenario ScenarioConfig `yaml:"scenario"`
	Methods  MethodsConfig  `yaml:"methods"`
	Log      LogConfig      `yaml:"log"`
}

// DataConfig locates the export directory and the marked activities.
type DataConfig struct {
	Dir    string `yaml:"dir"`
	Marked string `yaml:"marked"`
}

// ScenarioConfig drives share redistribution.
type ScenarioConfig struct {
	Path    string `yaml:"path"`
	Year    int    `yaml:"year"`
	Samples int    `yaml:"samples"`
	Seed    uint64 `yaml:"seed"`
	Merge   string `yaml:"merge"`
}

// MethodsConfig selects the impact assessment methods.
type MethodsConfig struct {
	Path  string   `yaml:"path"`
	Names []string `yaml:"names"`
	Audit bool     `yaml:"audit"`
}

// LogConfig controls the diagnostic log file.
type LogConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"`
}

// Defaults returns a Config populated with built-in default values.
func Defaults() *Config {
	return &Config{
		Data:     DataConfig{Dir: "data"},
		Scenario: ScenarioConfig{Year: shares.BaseYear, Samples: 1, Merge: datapackage.MergeReplace.String()},
		Log:      LogConfig{File: "pathways.log", Level: "debug"},
	}
}

// Load reads a YAML config file over Defaults and applies the environment.
// If the file does not exist, defaults are used without error.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, err
	default:
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if err = cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyEnv overrides fields from PATHWAYS_* variables resolved by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"PATHWAYS_DATA_DIR":  &c.Data.Dir,
		"PATHWAYS_MARKED":    &c.Data.Marked,
		"PATHWAYS_SCENARIO":  &c.Scenario.Path,
		"PATHWAYS_MERGE":     &c.Scenario.Merge,
		"PATHWAYS_METHODS":   &c.Methods.Path,
		"PATHWAYS_LOG_FILE":  &c.Log.File,
		"PATHWAYS_LOG_LEVEL": &c.Log.Level,
	}
	for name, dst := range strs {
		if v, ok := lookup(name); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"PATHWAYS_YEAR":    &c.Scenario.Year,
		"PATHWAYS_SAMPLES": &c.Scenario.Samples,
	}
	for name, dst := range ints {
		v, ok := lookup(name)
		if !ok {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s=%q: %w", name, v, ErrInvalid)
		}
		*dst = n
	}
	if v, ok := lookup("PATHWAYS_SEED"); ok {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("PATHWAYS_SEED=%q: %w", v, ErrInvalid)
		}
		c.Scenario.Seed = n
	}

	return nil
}

// Validate checks cross-field constraints.
func (c *Config) Validate() error {
	if c.Data.Dir == "" {
		return fmt.Errorf("data.dir is empty: %w", ErrInvalid)
	}
	if c.Scenario.Samples < 1 {
		return fmt.Errorf("scenario.samples=%d: %w", c.Scenario.Samples, ErrInvalid)
	}
	if _, err := c.MergePolicy(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}

	return nil
}

// MergePolicy parses Scenario.Merge.
func (c *Config) MergePolicy() (datapackage.MergePolicy, error) {
	p, err := datapackage.ParseMergePolicy(c.Scenario.Merge)
	if err != nil {
		return 0, fmt.Errorf("scenario.merge: %v: %w", err, ErrInvalid)
	}

	return p, nil
}

// LogLevel parses Log.Level ("debug", "info", "warn", "error").
func (c *Config) LogLevel() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %v: %w", err, ErrInvalid)
	}

	return l, nil
}
