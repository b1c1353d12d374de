package tone

import (
	"fmt"
	"strings"
)

// BuildEntries derives the ordered entry list from a scan result. Indices
// are contiguous from 0 in the order given (ascending filename order, per
// Scan). Symbols come from Sanitize; when two filenames sanitize to the
// same symbol, every occurrence after the first gets its index appended so
// the generated declarations stay unique.
func BuildEntries(files []AudioFile) []Entry {
	entries := make([]Entry, 0, len(files))
	seen := make(map[string]bool, len(files))

	for i, f := range files {
		symbol := Sanitize(f.Name)
		if seen[symbol] {
			symbol = fmt.Sprintf("%s_%d", symbol, i)
		}
		seen[symbol] = true

		entries = append(entries, Entry{
			Index:  i,
			Symbol: symbol,
			Name:   f.Name,
			Size:   f.Size,
			URL:    fmt.Sprintf("embed://tone/%d_%s", i, strings.ReplaceAll(f.Name, "-", "_")),
		})
	}
	return entries
}
