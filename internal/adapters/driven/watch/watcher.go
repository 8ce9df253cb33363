package watch

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/gradsuite/cvdash/internal/logger"
)

// Watcher signals changes to files in a directory whose names start
// with a given prefix. Bursts of events collapse into one pending signal.
type Watcher struct {
	fsw     *fsnotify.Watcher
	prefix  string
	changes chan struct{}
	done    chan struct{}
	wg      sync.WaitGroup
	once    sync.Once
}

// New watches dir for changes to files named prefix*. For the SQLite
// store the prefix is the database file name, which also covers its
// -wal and -shm companions.
func New(dir, prefix string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		fsw:     fsw,
		prefix:  prefix,
		changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
	w.wg.Add(1)
	go w.run()
	return w, nil
}

// Changes returns the signal channel. It never carries more than one
// pending value.
func (w *Watcher) Changes() <-chan struct{} {
	return w.changes
}

func (w *Watcher) run() {
	defer w.wg.Done()
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				w.notify()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			logger.Warn("collection watcher: %v", err)
		}
	}
}

// relevant filters events down to content changes of watched files.
func (w *Watcher) relevant(event fsnotify.Event) bool {
	if !strings.HasPrefix(filepath.Base(event.Name), w.prefix) {
		return false
	}
	return event.Has(fsnotify.Create) || event.Has(fsnotify.Write) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}

func (w *Watcher) notify() {
	select {
	case w.changes <- struct{}{}:
		logger.Debug("collection changed on disk")
	default:
	}
}

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.done)
		err = w.fsw.Close()
		w.wg.Wait()
	})
	return err
}
