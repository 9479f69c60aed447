package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/katalvlaran/pathways/internal/config"
	"github.com/spf13/cobra"
)

var (
	configPath string
	dataDir    string
	logFile    string
	verbose    bool
	cfg        *config.Config
	logger     *slog.Logger
	closeLog   func() error
)

var rootCmd = &cobra.Command{
	Use:           "pathways",
	Short:         "Assemble LCA matrices and redistribute technology shares for scenario years",
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if cmd.Flags().Changed("data-dir") {
			cfg.Data.Dir = dataDir
		}
		if cmd.Flags().Changed("log-file") {
			cfg.Log.File = logFile
		}

		logger, closeLog, err = openLog(cfg, uuid.New().String(), verbose)
		if err != nil {
			return fmt.Errorf("opening log: %w", err)
		}

		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if closeLog != nil {
			return closeLog()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "pathways.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "data", "Export directory holding the A/B matrix and index tables")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "pathways.log", "Append-mode diagnostic log (empty disables)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Mirror the log to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// openLog returns a text logger appending to cfg.Log.File, tagged with the
// run id. The returned closer releases the file.
func openLog(cfg *config.Config, runID string, mirror bool) (*slog.Logger, func() error, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, nil, err
	}

	var (
		w       io.Writer = io.Discard
		closeFn           = func() error { return nil }
	)
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w, closeFn = f, f.Close
	}
	if mirror {
		w = io.MultiWriter(w, os.Stderr)
	}

	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(h).With(slog.String("run", runID)), closeFn, nil
}
