// Package watcher re-converts source files as they change on disk.
package watcher

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jihiggins/SemanticMergeRust/internal/discovery"
)

// Watcher watches a root directory for changes to matching source files
// and hands changed paths to the convert callback, debounced so editor
// save bursts convert once.
type Watcher struct {
	rootDir      string
	matcher      *discovery.FileDiscovery
	onChange     func(ctx context.Context, paths []string)
	watcher      *fsnotify.Watcher
	logger       *slog.Logger
	debounceTime time.Duration
	stopCh       chan struct{}
	doneCh       chan struct{}
	stopOnce     sync.Once
}

// New creates a watcher over rootDir. onChange receives batches of
// changed file paths after the debounce window closes.
func New(rootDir string, matcher *discovery.FileDiscovery, onChange func(ctx context.Context, paths []string), logger *slog.Logger) (*Watcher, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &Watcher{
		rootDir:      rootDir,
		matcher:      matcher,
		onChange:     onChange,
		watcher:      fw,
		logger:       logger,
		debounceTime: 500 * time.Millisecond,
		stopCh:       make(chan struct{}),
		doneCh:       make(chan struct{}),
	}

	if err := w.addDirectoriesRecursively(rootDir); err != nil {
		fw.Close()
		return nil, err
	}

	return w, nil
}

// Start begins watching for file changes.
func (w *Watcher) Start(ctx context.Context) {
	go w.watch(ctx)
}

// Stop stops the watcher and waits for the event loop to drain.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		<-w.doneCh
		w.watcher.Close()
	})
}

// watch is the event loop with debouncing.
func (w *Watcher) watch(ctx context.Context) {
	defer close(w.doneCh)

	var debounceTimer *time.Timer
	convertCh := make(chan struct{}, 1)
	changed := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case <-w.stopCh:
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !w.shouldProcessEvent(event) {
				continue
			}

			changed[event.Name] = true

			// New directories join the watch set.
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if err := w.addDirectoriesRecursively(event.Name); err != nil {
						w.logger.Warn("failed to watch new directory", "dir", event.Name, "error", err)
					}
				}
			}

			if debounceTimer != nil {
				if !debounceTimer.Stop() {
					select {
					case <-debounceTimer.C:
					default:
					}
				}
			}
			debounceTimer = time.AfterFunc(w.debounceTime, func() {
				select {
				case convertCh <- struct{}{}:
				default:
				}
			})

		case <-convertCh:
			if len(changed) == 0 {
				continue
			}
			paths := make([]string, 0, len(changed))
			for path := range changed {
				if _, err := os.Stat(path); err == nil {
					paths = append(paths, path)
				}
			}
			changed = make(map[string]bool)
			if len(paths) > 0 {
				w.onChange(ctx, paths)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("file watcher error", "error", err)
		}
	}
}

// shouldProcessEvent filters to write/create/remove events on files the
// discovery patterns cover. Directory creation passes through so the new
// tree gets watched.
func (w *Watcher) shouldProcessEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove) == 0 {
		return false
	}

	if event.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			return true
		}
	}

	relPath, err := filepath.Rel(w.rootDir, event.Name)
	if err != nil {
		return false
	}
	return w.matcher.Matches(relPath)
}

// addDirectoriesRecursively adds rootDir and every subdirectory to the
// watch set, skipping hidden directories.
func (w *Watcher) addDirectoriesRecursively(dir string) error {
	return filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := d.Name()
		if path != dir && strings.HasPrefix(name, ".") {
			return filepath.SkipDir
		}
		return w.watcher.Add(path)
	})
}
