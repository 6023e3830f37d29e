package jobs

import (
	"context"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// IndexRunner triggers a full reindex.
type IndexRunner interface {
	Run(ctx context.Context) (int, error)
}

// Watcher reindexes the profile whenever its file changes on disk. Events
// are debounced because editors typically emit several writes per save.
type Watcher struct {
	indexer  IndexRunner
	path     string
	debounce time.Duration
	stopChan chan struct{}
	doneChan chan struct{}
}

// NewWatcher creates a new Watcher for the given profile file path.
func NewWatcher(indexer IndexRunner, path string) *Watcher {
	return &Watcher{
		indexer:  indexer,
		path:     path,
		debounce: 500 * time.Millisecond,
		stopChan: make(chan struct{}),
		doneChan: make(chan struct{}),
	}
}

// Start begins watching. It blocks until the context is cancelled or Stop is
// called. The parent directory is watched rather than the file itself so
// rename-and-replace saves are still observed.
func (w *Watcher) Start(ctx context.Context) error {
	// Closed on every exit path, including setup failures, so a Stop after a
	// failed Start never blocks.
	defer close(w.doneChan)

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fsWatcher.Close()

	dir := filepath.Dir(w.path)
	if err := fsWatcher.Add(dir); err != nil {
		return err
	}

	log.Printf("watcher: watching %s for profile changes", w.path)

	var timer *time.Timer
	var timerChan <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			log.Println("watcher stopped: context cancelled")
			return nil
		case <-w.stopChan:
			log.Println("watcher stopped: stop signal received")
			return nil
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerChan = timer.C
			} else {
				timer.Reset(w.debounce)
			}
		case <-timerChan:
			if count, err := w.indexer.Run(ctx); err != nil {
				log.Printf("watcher: reindex after profile change failed: %v", err)
			} else {
				log.Printf("watcher: profile changed, reindexed %d chunks", count)
			}
		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}
			log.Printf("watcher error: %v", err)
		}
	}
}

// Stop gracefully stops the watcher.
func (w *Watcher) Stop() {
	close(w.stopChan)
	<-w.doneChan
	log.Println("watcher shutdown complete")
}
