// Package watch reloads a contract document whenever it changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/jorge-barreto/contractgen/internal/config"
	"github.com/jorge-barreto/contractgen/internal/logging"
)

// DefaultDebounce coalesces the bursts of events editors produce on save.
const DefaultDebounce = 200 * time.Millisecond

// Watcher calls OnChange with the freshly loaded document after each
// change to Path. Load errors are passed through rather than stopping the
// watch, so a half-saved file does not end the session.
type Watcher struct {
	Path     string
	Debounce time.Duration
	Logger   *zap.Logger
	OnChange func(data config.Data, err error)
}

// Run blocks until ctx is cancelled. The containing directory is watched
// instead of the file itself so that editors which save by rename keep
// being tracked.
func (w *Watcher) Run(ctx context.Context) error {
	log := logging.OrNop(w.Logger).With(zap.String("path", w.Path))
	abs, err := filepath.Abs(w.Path)
	if err != nil {
		return err
	}
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer fw.Close()
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	log.Debug("watching contract document")

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			log.Debug("watch stopped")
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(ev.Name) != filepath.Base(abs) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			log.Debug("change detected", zap.Stringer("op", ev.Op))
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn("watcher error", zap.Error(err))

		case <-fire:
			fire = nil
			data, err := config.Load(abs)
			if err != nil {
				log.Warn("reloading contract document", zap.Error(err))
			}
			if w.OnChange != nil {
				w.OnChange(data, err)
			}
		}
	}
}
