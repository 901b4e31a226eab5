package capture

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reports capture files written into a directory. Each file is
// reported once its writes have been quiet for the debounce period.
type Watcher struct {
	watcher   *fsnotify.Watcher
	mu        sync.Mutex
	debounce  time.Duration
	timers    map[string]*time.Timer
	onCapture func(path string)
	started   bool
	done      chan struct{}
}

// NewWatcher creates a watcher calling onCapture for every new capture file
func NewWatcher(debounce time.Duration, onCapture func(path string)) (*Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	return &Watcher{
		watcher:   watcher,
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
		onCapture: onCapture,
		done:      make(chan struct{}),
	}, nil
}

// Watch adds a capture directory
func (w *Watcher) Watch(dir string) error {
	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", dir, err)
	}
	if err := w.watcher.Add(absPath); err != nil {
		return fmt.Errorf("failed to watch %s: %w", absPath, err)
	}
	return nil
}

// Start begins delivering events in the background
func (w *Watcher) Start() {
	w.mu.Lock()
	w.started = true
	w.mu.Unlock()

	go func() {
		defer close(w.done)
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
					w.handle(event.Name)
				}

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				log.Printf("capture: watcher error: %v", err)
			}
		}
	}()
}

func (w *Watcher) handle(path string) {
	if !Supported(path) {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, exists := w.timers[path]; exists {
		timer.Stop()
	}
	w.timers[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		delete(w.timers, path)
		w.mu.Unlock()
		w.onCapture(path)
	})
}

// Close stops the watcher and any pending notifications
func (w *Watcher) Close() error {
	w.mu.Lock()
	for path, timer := range w.timers {
		timer.Stop()
		delete(w.timers, path)
	}
	started := w.started
	w.mu.Unlock()

	err := w.watcher.Close()
	if started {
		<-w.done
	}
	return err
}
