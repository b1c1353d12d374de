package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/zjrosen/embedtone/internal/config"
	"github.com/zjrosen/embedtone/internal/gen"
	"github.com/zjrosen/embedtone/internal/log"
	"github.com/zjrosen/embedtone/internal/tone"
	"github.com/zjrosen/embedtone/internal/watcher"
)

var (
	generatePath  string
	generateWatch bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Scan a directory and write the header and manifest into it",
	Long: `Scans the given directory for supported audio files and writes
esp_embed_tone.h and esp_embed_tone.cmake into it. With --watch, stays
resident and regenerates whenever the directory contents change.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&generatePath, "path", "p", "", "base folder containing audio files (required)")
	generateCmd.Flags().BoolVar(&generateWatch, "watch", false, "regenerate on directory changes")
	_ = generateCmd.MarkFlagRequired("path")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if err := generateOnce(generatePath, cfg); err != nil {
		return err
	}

	if !generateWatch {
		return nil
	}
	return watchLoop(generatePath, cfg)
}

// generateOnce runs the full pipeline: scan, synthesize header, synthesize
// manifest, write header, write manifest. Fail-fast: the first fatal stage
// error aborts the run; the manifest is not attempted after a failed header
// write.
func generateOnce(dir string, cfg config.Config) error {
	runID := uuid.NewString()
	scanDiag := logDiag{cat: log.CatScan, runID: runID}
	genDiag := logDiag{cat: log.CatGen, runID: runID}

	files, err := tone.Scan(dir, cfg.Extensions, scanDiag)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%w in %s", tone.ErrNoAudioFiles, dir)
	}

	entries := tone.BuildEntries(files)
	header := gen.Header(entries)
	manifest := gen.Manifest(entries)

	if err := gen.WriteFile(filepath.Join(dir, gen.HeaderFileName), header, true, genDiag); err != nil {
		return err
	}
	if err := gen.WriteFile(filepath.Join(dir, gen.ManifestFileName), manifest, false, genDiag); err != nil {
		return err
	}

	genDiag.Info("generation complete", "tones", len(entries))
	return nil
}

// watchLoop regenerates on every debounced directory change until
// interrupted. Generation failures inside the loop are logged but do not
// stop watching; an empty directory during development is transient.
func watchLoop(dir string, cfg config.Config) error {
	w, err := watcher.New(watcher.Config{
		Dir:         dir,
		DebounceDur: time.Duration(cfg.WatchDebounceMS) * time.Millisecond,
		Ignore:      []string{gen.HeaderFileName, gen.ManifestFileName},
	})
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	if err := w.Start(); err != nil {
		return err
	}
	log.Info(log.CatWatch, "watching for changes", "dir", dir)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case <-w.Events():
			if err := generateOnce(dir, cfg); err != nil {
				log.Error(log.CatWatch, "regeneration failed", "error", err)
			}
		case <-quit:
			log.Info(log.CatWatch, "stopping watch")
			return nil
		}
	}
}
