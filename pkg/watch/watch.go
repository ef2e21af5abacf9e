// Package watch observes a deck file on disk and announces changes on the
// event bus so a running presenter can reload.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"testdeck/pkg/bus"
)

const defaultDebounce = 300 * time.Millisecond

// Watcher monitors one deck file. It watches the containing directory
// because editors commonly replace files with atomic renames.
type Watcher struct {
	deckPath string
	dir      string
	events   *bus.Bus
	log      *slog.Logger
	debounce time.Duration

	fs *fsnotify.Watcher

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New builds a watcher for the given deck path.
func New(deckPath string, events *bus.Bus, log *slog.Logger) (*Watcher, error) {
	absPath, err := filepath.Abs(strings.TrimSpace(deckPath))
	if err != nil {
		return nil, fmt.Errorf("resolve deck path: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}

	if log == nil {
		log = slog.Default()
	}

	return &Watcher{
		deckPath: absPath,
		dir:      filepath.Dir(absPath),
		events:   events,
		log:      log.With("component", "watch"),
		debounce: defaultDebounce,
		fs:       fsWatcher,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start begins watching in a goroutine. Calling it twice is a no-op.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	if err := w.fs.Add(w.dir); err != nil {
		w.mu.Unlock()
		return fmt.Errorf("watch %s: %w", w.dir, err)
	}
	w.running = true
	w.mu.Unlock()

	w.log.Debug("Watching deck", "deck", w.deckPath)
	go w.run(ctx)

	return nil
}

// Stop ends watching and waits for the run loop to drain.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh
	_ = w.fs.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(event) {
				continue
			}
			// Collapse editor save bursts into one reload.
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			pending = timer.C
		case <-pending:
			pending = nil
			w.log.Debug("Deck changed on disk", "deck", w.deckPath)
			w.events.Publish(ctx, bus.Event{
				Type:     bus.EventDeckChanged,
				DeckPath: w.deckPath,
				Detail:   "file changed",
			})
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("Watcher error", "error", err)
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.deckPath {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename)
}
