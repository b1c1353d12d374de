// Package tone discovers audio assets and derives the ordered entries that
// the generated header, enum, and URL table are all built from.
package tone

import "errors"

// DefaultExtensions are the audio formats the scanner accepts when no
// override is configured. Matching is case-insensitive.
var DefaultExtensions = []string{".wav", ".mp3", ".aac", ".m4a"}

// ErrNoAudioFiles is returned when a scan finds no supported audio files.
var ErrNoAudioFiles = errors.New("no supported audio files found")

// AudioFile is a single discovered asset. Immutable after the scan.
type AudioFile struct {
	Name string // filename including extension, as found on disk
	Size int64  // size in bytes
}

// Entry is one tone as it appears in every generated artifact. Index equals
// the file's rank in ascending filename order, and the same index is used in
// the address table, the enum, and the URL table.
type Entry struct {
	Index  int
	Symbol string // sanitized identifier used in declarations and the enum
	Name   string // original filename, used in the manifest
	Size   int64
	URL    string // embed://tone/<index>_<name with '-' replaced by '_'>
}

// Diagnostics receives human-readable progress and failure messages from
// scanning and generation. Passing it explicitly keeps components free of
// process-wide logging state so tests can capture output.
type Diagnostics interface {
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

// NopDiagnostics discards all messages. Safe default when no sink is wired.
type NopDiagnostics struct{}

func (NopDiagnostics) Info(string, ...any)  {}
func (NopDiagnostics) Warn(string, ...any)  {}
func (NopDiagnostics) Error(string, ...any) {}
