package settings

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDelay is how long the file must stay quiet before it is reloaded.
// Writers truncate before writing, so a burst of events is coalesced into
// one reload of the finished file.
const WatchDelay = 100 * time.Millisecond

// Watch reloads path into st whenever the file is written or created,
// until ctx is done. Reload failures are logged and
// leave the store untouched, as do reloads that find an empty file.
//
// The parent directory is watched so that editors which replace the file
// atomically are picked up.
func Watch(ctx context.Context, path string, st *Store, log *slog.Logger) error {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	path = filepath.Clean(path)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(path), err)
	}

	timer := time.NewTimer(WatchDelay)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			timer.Reset(WatchDelay)
		case <-timer.C:
			reload(path, st, log)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("settings watcher error", "err", err)
		}
	}
}

func reload(path string, st *Store, log *slog.Logger) {
	if fi, err := os.Stat(path); err != nil || fi.Size() == 0 {
		log.Debug("settings reload skipped", "path", path, "err", err)
		return
	}
	s, err := Load(path)
	if err != nil {
		log.Warn("settings reload failed", "path", path, "err", err)
		return
	}
	if st.apply(func(Settings) Settings { return s }, SourceFile) {
		log.Info("settings reloaded", "path", path, "settings", s.String())
	}
}
