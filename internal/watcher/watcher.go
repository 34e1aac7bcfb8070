// Package watcher re-runs sanitization when the input document changes.
// It watches the file's parent directory rather than the file itself so
// editors that save by rename (write temp, rename over target) still
// trigger events, and debounces rapid event bursts into one run.
package watcher

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/shadmazumder/jsonscrub/internal/logging"
)

// Handler is invoked after the watched file changes and the debounce
// window has elapsed.
type Handler func(ctx context.Context) error

// FileWatcher watches a single file for changes with debouncing.
type FileWatcher struct {
	path     string
	debounce time.Duration
	logger   logging.Logger
}

// New creates a watcher for path. debounce controls how long to wait after
// the last event before firing the handler.
func New(path string, debounce time.Duration, logger logging.Logger) *FileWatcher {
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}
	return &FileWatcher{
		path:     filepath.Clean(path),
		debounce: debounce,
		logger:   logger.WithComponent("watcher"),
	}
}

// Watch blocks, invoking handler each time the file changes, until ctx is
// cancelled. Handler errors are logged but do not stop the watch: a broken
// intermediate save should not kill the session.
func (w *FileWatcher) Watch(ctx context.Context, handler Handler) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsw.Close()

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return err
	}

	w.logger.Info(ctx, "watching for changes", "path", w.path)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.logger.Debug(ctx, "file event", "op", event.Op.String(), "path", event.Name)
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn(ctx, err, "watch error")

		case <-fire:
			fire = nil
			if err := handler(ctx); err != nil {
				w.logger.Error(ctx, err, "change handler failed")
			}
		}
	}
}

// relevant reports whether an fsnotify event concerns the watched file and
// a change we care about.
func (w *FileWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op.Has(fsnotify.Write) || event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Rename)
}
