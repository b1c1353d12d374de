package tone

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// recorder captures diagnostics for assertions.
type recorder struct {
	infos  []string
	warns  []string
	errors []string
}

func (r *recorder) Info(msg string, keyvals ...any)  { r.infos = append(r.infos, line(msg, keyvals)) }
func (r *recorder) Warn(msg string, keyvals ...any)  { r.warns = append(r.warns, line(msg, keyvals)) }
func (r *recorder) Error(msg string, keyvals ...any) { r.errors = append(r.errors, line(msg, keyvals)) }

func line(msg string, keyvals []any) string {
	for i := 0; i+1 < len(keyvals); i += 2 {
		msg += fmt.Sprintf(" %v=%v", keyvals[i], keyvals[i+1])
	}
	return msg
}

func writeFiles(t *testing.T, dir string, files map[string]int) {
	t.Helper()
	for name, size := range files {
		err := os.WriteFile(filepath.Join(dir, name), make([]byte, size), 0o644)
		require.NoError(t, err)
	}
}

func TestScanSortsByFilename(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]int{
		"b.wav": 10,
		"a.mp3": 20,
	})

	files, err := Scan(dir, nil, &recorder{})
	require.NoError(t, err)
	require.Len(t, files, 2)
	require.Equal(t, AudioFile{Name: "a.mp3", Size: 20}, files[0])
	require.Equal(t, AudioFile{Name: "b.wav", Size: 10}, files[1])
}

func TestScanFiltersUnsupportedExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]int{
		"keep.wav":   4,
		"keep.aac":   4,
		"keep.m4a":   4,
		"skip.txt":   4,
		"skip.flac":  4,
		"Makefile":   4,
		"UPPER.WAV":  4, // case-insensitive match
		"nested.ogg": 4,
	})

	files, err := Scan(dir, nil, &recorder{})
	require.NoError(t, err)

	names := make([]string, len(files))
	for i, f := range files {
		names[i] = f.Name
	}
	require.Equal(t, []string{"UPPER.WAV", "keep.aac", "keep.m4a", "keep.wav"}, names)
}

func TestScanSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.wav"), 0o755))
	writeFiles(t, dir, map[string]int{"real.wav": 8})

	files, err := Scan(dir, nil, &recorder{})
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "real.wav", files[0].Name)
}

func TestScanEmptyDirectory(t *testing.T) {
	files, err := Scan(t.TempDir(), nil, &recorder{})
	require.NoError(t, err)
	require.Empty(t, files)
}

func TestScanUnreadableDirectory(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "does-not-exist"), nil, &recorder{})
	require.Error(t, err)
}

func TestScanCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]int{
		"voice.opus": 5,
		"voice.wav":  5,
	})

	files, err := Scan(dir, []string{".opus"}, &recorder{})
	require.NoError(t, err)
	require.Len(t, files, 1)
	require.Equal(t, "voice.opus", files[0].Name)
}

func TestScanSkipsDanglingSymlink(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]int{"real.wav": 8})
	require.NoError(t, os.Symlink(filepath.Join(dir, "missing.wav"), filepath.Join(dir, "ghost.wav")))

	rec := &recorder{}
	files, err := Scan(dir, nil, rec)
	require.NoError(t, err)

	// The unreadable entry must not reach the manifest; only its size
	// failure is reported.
	require.Len(t, files, 1)
	require.Equal(t, "real.wav", files[0].Name)
	require.Len(t, rec.warns, 1)
	require.Contains(t, rec.warns[0], "ghost.wav")
}

func TestScanFollowsValidSymlink(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]int{"target.wav": 24})
	require.NoError(t, os.Symlink(filepath.Join(dir, "target.wav"), filepath.Join(dir, "alias.wav")))

	files, err := Scan(dir, nil, &recorder{})
	require.NoError(t, err)
	require.Len(t, files, 2)

	// Sizes come from the link target, not the link itself.
	require.Equal(t, AudioFile{Name: "alias.wav", Size: 24}, files[0])
	require.Equal(t, AudioFile{Name: "target.wav", Size: 24}, files[1])
}

func TestScanReportsFoundFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]int{"chime.wav": 16})

	rec := &recorder{}
	_, err := Scan(dir, nil, rec)
	require.NoError(t, err)
	require.Len(t, rec.infos, 1)
	require.Contains(t, rec.infos[0], "chime.wav")
	require.Contains(t, rec.infos[0], "bytes=16")
	require.Empty(t, rec.warns)
}
