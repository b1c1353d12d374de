package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/embedtone/internal/gen"
)

// execute runs the root command with args and returns its combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		verbose = false
		configPath = ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	writeAudioFixtures(t, dir, map[string]int{"ding.wav": 12})

	_, err := execute(t, "generate", "-p", dir)
	require.NoError(t, err)

	_, statErr := os.Stat(filepath.Join(dir, gen.HeaderFileName))
	require.NoError(t, statErr)
	_, statErr = os.Stat(filepath.Join(dir, gen.ManifestFileName))
	require.NoError(t, statErr)
}

func TestGenerateCommandFailsWithoutAudioFiles(t *testing.T) {
	_, err := execute(t, "generate", "-p", t.TempDir())
	require.Error(t, err)
}

func TestGenerateCommandRequiresPath(t *testing.T) {
	// Reset the required-flag state left by earlier runs.
	require.NoError(t, generateCmd.Flags().Set("path", ""))
	generateCmd.Flags().Lookup("path").Changed = false

	_, err := execute(t, "generate")
	require.Error(t, err)
}

func TestListCommand(t *testing.T) {
	dir := t.TempDir()
	writeAudioFixtures(t, dir, map[string]int{"ding.wav": 12, "dong.mp3": 34})

	out, err := execute(t, "list", "-p", dir)
	require.NoError(t, err)
	require.Contains(t, out, "ding_wav")
	require.Contains(t, out, "dong_mp3")
	require.Contains(t, out, "ESP_EMBED_TONE_URL_MAX = 2")
}

func TestInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".embedtone", "config.yaml")

	out, err := execute(t, "init", "--config", path)
	require.NoError(t, err)
	require.Contains(t, out, "Created")

	_, statErr := os.Stat(path)
	require.NoError(t, statErr)
}

func TestInitCommandRefusesExistingConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_level: info\n"), 0o644))

	_, err := execute(t, "init", "--config", path)
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	require.Contains(t, out, "embedtone")
}
