// Package watcher reloads a scene file when it changes on disk.
package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// SceneWatcher watches a single scene file and triggers a callback on
// change. Rapid successive writes (editors, atomic saves) are
// debounced into one callback.
type SceneWatcher struct {
	watcher  *fsnotify.Watcher
	mu       sync.Mutex
	path     string
	callback func(string)
	debounce time.Duration
	timer    *time.Timer
	done     chan struct{}
}

// New creates a watcher for the given scene file. The callback runs on
// the watcher's goroutine after writes have settled for the debounce
// interval.
func New(path string, debounce time.Duration, callback func(string)) (*SceneWatcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory rather than the file itself: editors that
	// save via rename would otherwise drop the watch.
	if err := fsw.Add(filepath.Dir(absPath)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", absPath, err)
	}

	return &SceneWatcher{
		watcher:  fsw,
		path:     absPath,
		callback: callback,
		debounce: debounce,
		done:     make(chan struct{}),
	}, nil
}

// Start begins watching for file changes
func (sw *SceneWatcher) Start() {
	go func() {
		for {
			select {
			case event, ok := <-sw.watcher.Events:
				if !ok {
					return
				}
				if event.Name != sw.path {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					sw.scheduleCallback()
				}

			case err, ok := <-sw.watcher.Errors:
				if !ok {
					return
				}
				fmt.Printf("Watcher error: %v\n", err)

			case <-sw.done:
				return
			}
		}
	}()
}

// scheduleCallback arms the debounce timer, replacing any pending one
func (sw *SceneWatcher) scheduleCallback() {
	sw.mu.Lock()
	defer sw.mu.Unlock()

	if sw.timer != nil {
		sw.timer.Stop()
	}
	sw.timer = time.AfterFunc(sw.debounce, func() {
		sw.callback(sw.path)
	})
}

// Close stops the watcher
func (sw *SceneWatcher) Close() error {
	sw.mu.Lock()
	if sw.timer != nil {
		sw.timer.Stop()
	}
	sw.mu.Unlock()

	close(sw.done)
	return sw.watcher.Close()
}
