// Package watcher watches the portfolio content file for changes with
// debouncing, driving content reload and the live-reload broadcast in
// development.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ChangeHandler handles a content file change.
type ChangeHandler func(path string)

// FileWatcher watches a single file for changes with debouncing. Editors
// produce bursts of write/rename events; only the last one within the
// debounce window is delivered.
type FileWatcher struct {
	watcher *fsnotify.Watcher
	delay   time.Duration
	path    string

	mutex    sync.Mutex
	handlers []ChangeHandler
	timer    *time.Timer
}

// New creates a watcher for the given file.
func New(path string, debounceDelay time.Duration) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating file watcher: %w", err)
	}

	// Watch the parent directory: editors replace files on save, which
	// drops a watch placed on the file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	return &FileWatcher{
		watcher: watcher,
		delay:   debounceDelay,
		path:    filepath.Clean(path),
	}, nil
}

// AddHandler registers a change handler.
func (fw *FileWatcher) AddHandler(handler ChangeHandler) {
	fw.mutex.Lock()
	defer fw.mutex.Unlock()
	fw.handlers = append(fw.handlers, handler)
}

// Start begins watching until the context is cancelled.
func (fw *FileWatcher) Start(ctx context.Context) {
	go fw.run(ctx)
}

func (fw *FileWatcher) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			fw.schedule()
		case _, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// schedule resets the debounce timer; handlers fire once the burst settles.
func (fw *FileWatcher) schedule() {
	fw.mutex.Lock()
	defer fw.mutex.Unlock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.timer = time.AfterFunc(fw.delay, fw.fire)
}

func (fw *FileWatcher) fire() {
	fw.mutex.Lock()
	handlers := make([]ChangeHandler, len(fw.handlers))
	copy(handlers, fw.handlers)
	fw.mutex.Unlock()

	for _, handler := range handlers {
		handler(fw.path)
	}
}

// Close stops the watcher.
func (fw *FileWatcher) Close() error {
	fw.mutex.Lock()
	if fw.timer != nil {
		fw.timer.Stop()
	}
	fw.mutex.Unlock()
	return fw.watcher.Close()
}
