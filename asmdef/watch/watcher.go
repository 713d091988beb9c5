package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hupe1980/framemesh/asmdef"
	"github.com/hupe1980/framemesh/logging"
)

// DefaultDebounce is how long a path must stay quiet before it is patched.
// Editors tend to write asset files in bursts.
const DefaultDebounce = 250 * time.Millisecond

// Watcher re-patches .asmdef files as they change on disk.
type Watcher struct {
	watcher *fsnotify.Watcher
	patcher *asmdef.Patcher
	logger  logging.Logger

	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration

	ignoreDirs map[string]struct{}
	pending    map[string]time.Time
}

// New creates a Watcher over the given patcher. A nil logger defaults to
// NoOp. The patcher's ignore directories are excluded from watching.
func New(patcher *asmdef.Patcher, logger logging.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	ignore := map[string]struct{}{}
	for _, dir := range patcher.IgnoreDirs {
		ignore[dir] = struct{}{}
	}

	return &Watcher{
		watcher:    fsw,
		patcher:    patcher,
		logger:     logger,
		Debounce:   DefaultDebounce,
		ignoreDirs: ignore,
		pending:    map[string]time.Time{},
	}, nil
}

// Add starts watching root and all its subdirectories.
func (w *Watcher) Add(root string) error {
	if err := w.watcher.Add(root); err != nil {
		return fmt.Errorf("watch %s: %w", root, err)
	}
	return w.watchRecursive(root)
}

func (w *Watcher) watchRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // tolerate races with deletions
		}
		if !info.IsDir() || path == root {
			return nil
		}
		if w.Ignored(path) {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("cannot watch directory", "path", path, "error", err)
		}
		return nil
	})
}

// Ignored reports whether any element of path is an ignored directory name.
func (w *Watcher) Ignored(path string) bool {
	for _, part := range strings.Split(filepath.ToSlash(path), "/") {
		if _, ok := w.ignoreDirs[part]; ok {
			return true
		}
	}
	return false
}

// Relevant reports whether a file event at path should trigger a patch run.
func (w *Watcher) Relevant(path string) bool {
	return strings.EqualFold(filepath.Ext(path), asmdef.Extension) && !w.Ignored(path)
}

// Run processes events until ctx is cancelled or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	debounce := w.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	flush := time.NewTicker(debounce / 2)
	defer flush.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handle(ev)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("watch error", "error", err)

		case now := <-flush.C:
			w.flush(now, debounce)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return
	}

	if ev.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if !w.Ignored(ev.Name) {
				if err := w.watcher.Add(ev.Name); err != nil {
					w.logger.Warn("cannot watch directory", "path", ev.Name, "error", err)
				}
				_ = w.watchRecursive(ev.Name)
			}
			return
		}
	}

	if w.Relevant(ev.Name) {
		w.pending[ev.Name] = time.Now()
	}
}

func (w *Watcher) flush(now time.Time, debounce time.Duration) {
	for path, last := range w.pending {
		if now.Sub(last) < debounce {
			continue
		}
		delete(w.pending, path)

		changed, err := w.patcher.PatchFile(path)
		switch {
		case err != nil:
			w.logger.Error("patch failed", "path", path, "error", err)
		case changed:
			w.logger.Info("asmdef patched", "path", path)
		}
	}
}

// Close stops the underlying file-system watcher.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
