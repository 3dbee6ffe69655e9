package view

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher hot-reloads a YAML view offset file into a Registry whenever the
// file changes on disk. Reload failures leave the registry untouched and are
// logged, so a half-saved file never corrupts the live configuration.
type Watcher struct {
	watcher  *fsnotify.Watcher
	registry Registry
	path     string

	closeCh chan struct{}
	once    sync.Once
}

// NewWatcher starts watching the given view offset file.
//
// Parameters:
//   - path: path to the YAML file to watch
//   - registry: the registry changed entries are applied to
//
// Returns:
//   - *Watcher: the running watcher
//   - error: non-nil if the file's directory could not be watched
func NewWatcher(path string, registry Registry) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: editors replace files on save which
	// drops a direct file watch.
	if err := fw.Add(filepath.Dir(path)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	w := &Watcher{
		watcher:  fw,
		registry: registry,
		path:     filepath.Clean(path),
		closeCh:  make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher. Safe to call multiple times.
//
// Returns:
//   - error: error from closing the underlying filesystem watcher
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
	})
	return err
}

func (w *Watcher) run() {
	// Editors fire bursts of events per save; the reload runs once the burst
	// settles so a half-written file is never read.
	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}
	var pending bool

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if pending && !debounce.Stop() {
				<-debounce.C
			}
			debounce.Reset(100 * time.Millisecond)
			pending = true
		case <-debounce.C:
			pending = false
			entries, err := LoadFile(w.path)
			if err != nil {
				log.Printf("view: reload skipped: %v", err)
				continue
			}
			if err := w.registry.Replace(entries); err != nil {
				log.Printf("view: reload rejected: %v", err)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("view: watch error: %v", err)
		case <-w.closeCh:
			return
		}
	}
}
