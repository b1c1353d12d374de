package gen

import (
	"strings"

	"github.com/zjrosen/embedtone/internal/tone"
)

// Manifest renders the cmake file-list statement that tells the packaging
// step which raw files to embed. Original (unsanitized) filenames, one per
// line, in the same order as the header sections. Returns "" for an empty
// input.
func Manifest(entries []tone.Entry) string {
	if len(entries) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("set(COMPONENT_EMBED_TXTFILES\n")
	for _, e := range entries {
		b.WriteString(" ")
		b.WriteString(e.Name)
		b.WriteString("\n")
	}
	b.WriteString(")\n")
	return b.String()
}
