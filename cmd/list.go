package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zjrosen/embedtone/internal/log"
	"github.com/zjrosen/embedtone/internal/tone"
	"github.com/zjrosen/embedtone/internal/ui/browser"
)

var (
	listPath        string
	listInteractive bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the tones a generation run would produce",
	Long: `Scans the given directory and prints the index, symbol, size, and URL
of every tone without writing any files. With --interactive, opens a
navigable browser instead.`,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listPath, "path", "p", "", "base folder containing audio files (required)")
	listCmd.Flags().BoolVarP(&listInteractive, "interactive", "i", false, "browse tones interactively")
	_ = listCmd.MarkFlagRequired("path")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	diag := logDiag{cat: log.CatScan, runID: uuid.NewString()}
	files, err := tone.Scan(listPath, cfg.Extensions, diag)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", tone.ErrNoAudioFiles, listPath)
	}
	entries := tone.BuildEntries(files)

	if listInteractive {
		_, err := tea.NewProgram(browser.New(entries), tea.WithAltScreen()).Run()
		if err != nil {
			return fmt.Errorf("running browser: %w", err)
		}
		return nil
	}

	fmt.Fprint(cmd.OutOrStdout(), browser.Table(entries))
	return nil
}
