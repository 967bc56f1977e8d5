// Package watch notices when the loaded media file disappears from disk.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/hashicorp/go-hclog"
)

// FileWatcher follows a single file and reports when it is removed or renamed
type FileWatcher struct {
	logger  hclog.Logger
	watcher *fsnotify.Watcher
	onGone  func(path string)

	mu   sync.Mutex
	path string
	dir  string

	wg sync.WaitGroup
}

// New starts a watcher. onGone runs on the watcher goroutine.
func New(logger hclog.Logger, onGone func(path string)) (*FileWatcher, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	w := &FileWatcher{
		logger:  logger,
		watcher: watcher,
		onGone:  onGone,
	}

	w.wg.Add(1)
	go w.eventLoop()

	return w, nil
}

// Watch replaces the followed file with path. An empty path stops following.
func (w *FileWatcher) Watch(path string) error {
	var absPath, dir string
	if path != "" {
		var err error
		absPath, err = filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", path, err)
		}
		dir = filepath.Dir(absPath)
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.dir != "" && w.dir != dir {
		if err := w.watcher.Remove(w.dir); err != nil {
			w.logger.Debug("failed to remove watch", "dir", w.dir, "error", err)
		}
	}
	if dir != "" && dir != w.dir {
		// The parent directory is watched so renames are seen on every platform
		if err := w.watcher.Add(dir); err != nil {
			w.path, w.dir = "", ""
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}

	w.path, w.dir = absPath, dir
	w.logger.Debug("watching file", "path", absPath)
	return nil
}

// Close stops the watcher and waits for the event loop to exit
func (w *FileWatcher) Close() error {
	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *FileWatcher) eventLoop() {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("file watcher error", "error", err)
		}
	}
}

func (w *FileWatcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
		return
	}

	w.mu.Lock()
	path := w.path
	if path == "" || filepath.Clean(event.Name) != path {
		w.mu.Unlock()
		return
	}
	w.path = ""
	w.mu.Unlock()

	w.logger.Info("loaded file is gone", "path", path, "operation", event.Op.String())
	if w.onGone != nil {
		w.onGone(path)
	}
}
