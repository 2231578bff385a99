// Package cli implements the nxcube command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/nxcube/internal/config"
	"github.com/SeamusWaldron/nxcube/internal/logging"
	"github.com/SeamusWaldron/nxcube/internal/render"
	"github.com/SeamusWaldron/nxcube/internal/storage"
)

const version = "0.2.0"

// skipConfigAnnotation marks commands that must run without a loadable
// config file.
const skipConfigAnnotation = "nxcube/skip-config"

var (
	// Global flags
	configPath string
	dbPath     string
	logFile    string
	verbose    bool
	noColor    bool

	// Set up by the root command before any subcommand runs.
	cfg     *config.Config
	cfgUsed string
	logger  *logging.Logger
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "nxcube",
	Short: "NxN cube solver",
	Long: `nxcube - scramble, solve and replay 2x2, 3x3 and 4x4 cubes.

Solutions come from a layer-by-layer reduction solver that annotates each
phase and sub-step. Arrangements can be given as scramble notation, as a
facelet string, or tracked live from a GoCube over Bluetooth.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if cmd.Annotations[skipConfigAnnotation] != "" {
			cfg = config.Default()
		} else if cfg, cfgUsed, err = config.Load(config.LoadOptions{File: configPath}); err != nil {
			return err
		}
		if logFile != "" {
			cfg.Log.File = logFile
		}

		logger, err = logging.New(os.Stderr, logging.Options{
			Level:      cfg.Log.Level,
			Format:     cfg.Log.Format,
			File:       cfg.Log.File,
			MaxSizeMB:  cfg.Log.MaxSizeMB,
			MaxBackups: cfg.Log.MaxBackups,
			MaxAgeDays: cfg.Log.MaxAgeDays,
			Verbose:    verbose,
		})
		return err
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if logger != nil {
			return logger.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, render.ErrorStyle.Render("Error: "+err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/nxcube/config.toml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "History database path (default: $XDG_DATA_HOME/nxcube/history.db)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write logs to this rotating file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// useColor reports whether stdout gets styled output.
func useColor() bool {
	return !noColor && os.Getenv("NO_COLOR") == "" && render.IsTerminal(os.Stdout)
}

// openDB opens the history database from the flag, the config or the
// default location, in that order.
func openDB() (*storage.DB, error) {
	path := dbPath
	if path == "" && cfg != nil {
		path = cfg.Storage.DBPath
	}
	if path == "" {
		var err error
		if path, err = storage.DefaultDBPath(); err != nil {
			return nil, err
		}
	}

	db, err := storage.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	logger.Debug("opened history", "path", db.Path())
	return db, nil
}
