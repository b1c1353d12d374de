// Package watcher observes an audio asset directory and emits a debounced
// notification when its contents change, so --watch can regenerate once per
// burst of filesystem activity instead of once per write.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/embedtone/internal/log"
)

// EventType identifies what a watcher notification means.
type EventType int

// DirChanged signals that the watched directory's contents changed.
const DirChanged EventType = iota

// Event is a single debounced change notification.
type Event struct {
	Type EventType
}

// Config describes what to watch.
type Config struct {
	// Dir is the directory to observe.
	Dir string
	// DebounceDur is how long to wait after the last change before
	// emitting an event. Rapid writes coalesce into one notification.
	DebounceDur time.Duration
	// Ignore lists base filenames whose events are dropped. The generator
	// writes its outputs into the watched directory; without this the
	// regeneration would retrigger itself forever.
	Ignore []string
}

// Watcher debounces filesystem events for one directory.
type Watcher struct {
	cfg    Config
	ignore map[string]bool
	fsw    *fsnotify.Watcher
	events chan Event
	done   chan struct{}

	stopOnce sync.Once
}

// New creates a watcher for cfg.Dir. Start must be called before events
// are delivered.
func New(cfg Config) (*Watcher, error) {
	if cfg.Dir == "" {
		return nil, fmt.Errorf("watcher: dir must not be empty")
	}
	if cfg.DebounceDur <= 0 {
		cfg.DebounceDur = 300 * time.Millisecond
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	ignore := make(map[string]bool, len(cfg.Ignore))
	for _, name := range cfg.Ignore {
		ignore[name] = true
	}

	return &Watcher{
		cfg:    cfg,
		ignore: ignore,
		fsw:    fsw,
		events: make(chan Event, 1),
		done:   make(chan struct{}),
	}, nil
}

// Events returns the channel on which debounced notifications arrive.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Start begins watching. Notifications are delivered on Events until Stop.
func (w *Watcher) Start() error {
	if err := w.fsw.Add(w.cfg.Dir); err != nil {
		return fmt.Errorf("watching %s: %w", w.cfg.Dir, err)
	}
	log.Debug(log.CatWatch, "watcher started", "dir", w.cfg.Dir, "debounce", w.cfg.DebounceDur)

	go w.loop()
	return nil
}

// Stop shuts the watcher down. Safe to call more than once.
func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if w.ignore[filepath.Base(ev.Name)] {
				continue
			}
			log.Debug(log.CatWatch, "fs event", "op", ev.Op.String(), "name", ev.Name)
			if timer == nil {
				timer = time.NewTimer(w.cfg.DebounceDur)
				timerC = timer.C
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.cfg.DebounceDur)
			}

		case <-timerC:
			timer = nil
			timerC = nil
			select {
			case w.events <- Event{Type: DirChanged}:
			default:
				// A pending event already covers this change.
			}

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			log.Warn(log.CatWatch, "watch error", "error", err)
		}
	}
}
