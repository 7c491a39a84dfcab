package notes

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// watchDebounce coalesces the burst of events a single save produces.
const watchDebounce = 100 * time.Millisecond

// Watch calls onChange whenever the store file is written, created or replaced by
// another process or editor. It watches the parent directory so atomic renames are
// seen, and blocks until ctx is canceled.
func (s *FileStore) Watch(ctx context.Context, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create notes watcher: %w", err)
	}
	defer w.Close()

	if err := ensureParentDir(s.path); err != nil {
		return fmt.Errorf("failed to prepare notes directory: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := w.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	target := filepath.Clean(s.path)
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != target {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				pending = time.After(watchDebounce)
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Printf("notes watcher: %v", err)

		case <-pending:
			pending = nil
			onChange()
		}
	}
}
