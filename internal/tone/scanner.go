package tone

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Scan lists dir and returns every file whose extension (case-insensitive)
// is in exts, sorted by filename in ascending byte order. A file whose size
// cannot be read is skipped with a warning; the scan continues. An empty
// exts falls back to DefaultExtensions.
//
// Scan never mutates the filesystem. An unreadable directory is an error;
// an empty result is returned as-is and callers decide whether that is fatal.
func Scan(dir string, exts []string, diag Diagnostics) ([]AudioFile, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("scanning directory %s: %w", dir, err)
	}

	var files []AudioFile
	for _, entry := range entries {
		if entry.IsDir() || !matchesExtension(entry.Name(), exts) {
			continue
		}
		// Stat the joined path rather than entry.Info: the latter is an
		// lstat and would report a dangling symlink as present, sending an
		// unreadable file into the manifest.
		info, err := os.Stat(filepath.Join(dir, entry.Name()))
		if err != nil {
			diag.Warn("skipping file, cannot read size", "file", entry.Name(), "error", err)
			continue
		}
		files = append(files, AudioFile{Name: entry.Name(), Size: info.Size()})
		diag.Info("found audio file", "file", entry.Name(), "bytes", info.Size())
	}

	// os.ReadDir sorts by filename already; keep the guarantee explicit so
	// the ordering invariant does not hinge on that implementation detail.
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })

	return files, nil
}

func matchesExtension(name string, exts []string) bool {
	lower := strings.ToLower(name)
	for _, ext := range exts {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
