package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/embedtone/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize an embedtone config file in the current directory",
	Long:  `Creates a .embedtone/config.yaml file in the current directory with default settings.`,
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	path := configPath
	if path == "" {
		path = config.DefaultPath
	}

	if err := config.WriteDefault(path); err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}
