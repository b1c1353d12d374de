package tone

import "strings"

// digitPrefix is prepended when a sanitized name would start with a digit,
// which is not a legal identifier in C.
const digitPrefix = "tone_"

var separatorReplacer = strings.NewReplacer("-", "_", ".", "_", " ", "_")

// Sanitize converts a raw filename (including extension) into a valid C
// identifier fragment: '-', '.' and ' ' become '_', and a leading digit gets
// the "tone_" prefix. Distinct inputs can collide; BuildEntries resolves
// collisions by index suffixing.
func Sanitize(name string) string {
	s := separatorReplacer.Replace(name)
	if s != "" && s[0] >= '0' && s[0] <= '9' {
		s = digitPrefix + s
	}
	return s
}
