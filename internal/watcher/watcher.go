// Package watcher implements the config live-reload loop: it watches the
// configuration file with fsnotify, debounces rapid change bursts, and hands
// each settled burst to a reload handler that recompiles the plan.
package watcher

import (
	"context"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ReloadHandler is invoked once per settled change burst.
type ReloadHandler func(paths []string)

// ConfigWatcher watches configuration files with debouncing so that editors
// writing in multiple syscalls trigger a single recompilation.
type ConfigWatcher struct {
	watcher  *fsnotify.Watcher
	delay    time.Duration
	handlers []ReloadHandler
	mutex    sync.RWMutex

	pending map[string]bool
	timer   *time.Timer
}

// NewConfigWatcher creates a watcher with the given debounce delay.
func NewConfigWatcher(debounceDelay time.Duration) (*ConfigWatcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &ConfigWatcher{
		watcher: fsWatcher,
		delay:   debounceDelay,
		pending: make(map[string]bool),
	}, nil
}

// AddHandler registers a reload handler.
func (cw *ConfigWatcher) AddHandler(handler ReloadHandler) {
	cw.mutex.Lock()
	defer cw.mutex.Unlock()
	cw.handlers = append(cw.handlers, handler)
}

// AddPath adds a file or directory to watch.
func (cw *ConfigWatcher) AddPath(path string) error {
	return cw.watcher.Add(path)
}

// Start processes filesystem events until the context is cancelled.
func (cw *ConfigWatcher) Start(ctx context.Context) {
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				cw.record(event.Name)
			}
		case _, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
		case <-ctx.Done():
			return
		}
	}
}

// record notes a changed path and (re)arms the debounce timer.
func (cw *ConfigWatcher) record(path string) {
	cw.mutex.Lock()
	defer cw.mutex.Unlock()

	cw.pending[path] = true

	if cw.timer != nil {
		cw.timer.Stop()
	}
	cw.timer = time.AfterFunc(cw.delay, cw.flush)
}

// flush delivers the settled burst to every handler.
func (cw *ConfigWatcher) flush() {
	cw.mutex.Lock()
	paths := make([]string, 0, len(cw.pending))
	for path := range cw.pending {
		paths = append(paths, path)
	}
	cw.pending = make(map[string]bool)
	handlers := make([]ReloadHandler, len(cw.handlers))
	copy(handlers, cw.handlers)
	cw.mutex.Unlock()

	if len(paths) == 0 {
		return
	}
	for _, handler := range handlers {
		handler(paths)
	}
}

// Close stops the underlying fsnotify watcher.
func (cw *ConfigWatcher) Close() error {
	return cw.watcher.Close()
}
