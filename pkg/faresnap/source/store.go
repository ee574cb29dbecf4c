// Package source holds the current workbook snapshot and replaces it atomically
// when the workbook changes on disk.
//
// Readers call Current and keep the returned *faresnap.Book for the whole of a
// request; a concurrent reload installs a new Book and never touches the old one.
package source

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/ukaji3/faresnap-go/internal/logger"
	"github.com/ukaji3/faresnap-go/pkg/faresnap"
)

// DefaultDebounce is how long Watch waits after the last change event before reloading.
const DefaultDebounce = 500 * time.Millisecond

// LoadFunc builds a fresh Book.
type LoadFunc func() (*faresnap.Book, error)

// Store holds the current Book behind an atomic pointer.
type Store struct {
	path     string
	load     LoadFunc
	current  atomic.Pointer[faresnap.Book]
	reloads  atomic.Int64
	debounce time.Duration
}

// New creates a Store that loads path with opts.
func New(path string, opts faresnap.LoadOptions) *Store {
	return NewWithLoader(path, func() (*faresnap.Book, error) {
		return faresnap.Load(path, opts)
	})
}

// NewWithLoader creates a Store around a custom loader. path is only used by Watch.
func NewWithLoader(path string, load LoadFunc) *Store {
	return &Store{
		path:     filepath.Clean(path),
		load:     load,
		debounce: DefaultDebounce,
	}
}

// SetDebounce changes the Watch debounce delay. Call before Watch.
func (s *Store) SetDebounce(d time.Duration) {
	s.debounce = d
}

// Path returns the watched workbook path.
func (s *Store) Path() string {
	return s.path
}

// Current returns the installed Book, or nil before the first successful load.
func (s *Store) Current() *faresnap.Book {
	return s.current.Load()
}

// Reloads returns the number of successful loads.
func (s *Store) Reloads() int64 {
	return s.reloads.Load()
}

// Reload builds a new Book and installs it. On failure the previous Book stays
// installed and the error is returned.
func (s *Store) Reload() (*faresnap.Book, error) {
	book, err := s.load()
	if err != nil {
		return nil, err
	}
	s.current.Store(book)
	s.reloads.Add(1)
	logger.Debug("Installed dataset %s (%d records)", book.Dataset.Source, book.Dataset.Len())
	return book, nil
}

// Watch reloads the Book whenever the workbook is written or recreated, until
// ctx is cancelled. onReload, if not nil, is called after every reload attempt.
// The parent directory is watched so editors that replace the file are seen.
func (s *Store) Watch(ctx context.Context, onReload func(*faresnap.Book, error)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", s.path, err)
	}
	logger.Info("Watching %s for changes", s.path)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != s.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			logger.Debug("Change detected: %s", ev)
			if timer == nil {
				timer = time.NewTimer(s.debounce)
			} else {
				timer.Reset(s.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			book, err := s.Reload()
			if err != nil {
				logger.Warn("Reload of %s failed, keeping previous dataset: %v", s.path, err)
			} else {
				logger.Info("Reloaded %s (%d records)", s.path, book.Dataset.Len())
			}
			if onReload != nil {
				onReload(book, err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("Watcher error: %v", err)
		}
	}
}
