// Package cmd wires the embedtone CLI surface.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/zjrosen/embedtone/internal/config"
	"github.com/zjrosen/embedtone/internal/log"
)

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "embedtone",
	Short: "Generate the embedded tone header and cmake manifest",
	Long: `embedtone scans a directory of audio assets and generates the C header
and cmake file list the firmware build uses to embed them as binary
sections addressable by symbol, index, or embed:// URL.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose (debug) output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default .embedtone/config.yaml)")
}

// Execute runs the CLI. Errors have already been printed by cobra when this
// returns non-nil.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig applies the shared flag handling every subcommand needs:
// load the config file, then let --verbose override the configured level.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}
	if verbose {
		log.SetLevel(log.LevelDebug)
	} else {
		log.SetLevel(log.ParseLevel(cfg.LogLevel))
	}
	return cfg, nil
}
