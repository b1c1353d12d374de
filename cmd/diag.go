package cmd

import (
	"github.com/zjrosen/embedtone/internal/log"
	"github.com/zjrosen/embedtone/internal/tone"
)

// logDiag adapts the process logger to the tone.Diagnostics collaborator,
// tagging every line with the category and the run id.
type logDiag struct {
	cat   log.Category
	runID string
}

var _ tone.Diagnostics = logDiag{}

func (d logDiag) Info(msg string, keyvals ...any) {
	log.Info(d.cat, msg, append(keyvals, "run", d.runID)...)
}

func (d logDiag) Warn(msg string, keyvals ...any) {
	log.Warn(d.cat, msg, append(keyvals, "run", d.runID)...)
}

func (d logDiag) Error(msg string, keyvals ...any) {
	log.Error(d.cat, msg, append(keyvals, "run", d.runID)...)
}
