package roster

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/Mastra10/App-Distinta/internal/model"
)

const defaultDebounce = 500 * time.Millisecond

// Refresher is implemented by Cache.
type Refresher interface {
	Refresh(ctx context.Context) (*model.RosterTable, error)
}

// FileWatcher refreshes the roster when a local source file changes, so an
// edited workbook is picked up without waiting for the cache to expire.
type FileWatcher struct {
	path     string
	target   Refresher
	timeout  time.Duration
	debounce time.Duration
}

// NewFileWatcher watches path and calls target.Refresh after changes settle.
func NewFileWatcher(path string, target Refresher, timeout time.Duration) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &FileWatcher{
		path:     filepath.Clean(abs),
		target:   target,
		timeout:  timeout,
		debounce: defaultDebounce,
	}, nil
}

// Run watches the file's directory until ctx is cancelled. Editors often
// replace files by rename, so the directory is watched rather than the file.
func (w *FileWatcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create roster watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	logger := log.With().Str("path", w.path).Logger()
	logger.Info().Msg("Watching roster file")

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug().Str("op", event.Op.String()).Msg("Roster file changed")
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn().Err(err).Msg("Roster watcher error")

		case <-fire:
			fire = nil
			refreshCtx, cancel := context.WithTimeout(ctx, w.timeout)
			// errors are logged by the cache, which keeps the previous table
			_, _ = w.target.Refresh(refreshCtx)
			cancel()
		}
	}
}
