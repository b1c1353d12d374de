package gen

import (
	"fmt"
	"os"

	"github.com/zjrosen/embedtone/internal/tone"
)

// WriteFile commits content to path. An existing file is removed first so
// readers never observe a partial overwrite, then the content is written in
// one call. When banner is true the license banner is prepended (header
// artifact only). Failures are reported through diag and returned; they do
// not panic.
func WriteFile(path, content string, banner bool, diag tone.Diagnostics) error {
	if _, err := os.Stat(path); err == nil {
		if err := os.Remove(path); err != nil {
			diag.Error("removing existing file", "path", path, "error", err)
			return fmt.Errorf("removing %s: %w", path, err)
		}
	}

	out := content
	if banner {
		out = Banner() + content
	}

	if err := os.WriteFile(path, []byte(out), 0o644); err != nil {
		diag.Error("writing file", "path", path, "error", err)
		return fmt.Errorf("writing %s: %w", path, err)
	}

	diag.Info("wrote file", "path", path, "bytes", len(out))
	return nil
}
