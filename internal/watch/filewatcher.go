package watch

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileOp represents the type of file operation
type FileOp int

const (
	// FileCreated indicates a new file was created
	FileCreated FileOp = iota
	// FileWritten indicates a file was written to or had its mode changed
	FileWritten
	// FileRemoved indicates a file was removed or renamed away
	FileRemoved
)

// String returns a human-readable representation of the file operation
func (op FileOp) String() string {
	switch op {
	case FileCreated:
		return "created"
	case FileWritten:
		return "written"
	case FileRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// FileEvent represents a file system event for a watched source file
type FileEvent struct {
	Path      string    // Absolute path to the file
	Op        FileOp    // Type of operation
	Timestamp time.Time // When the event was delivered
}

// EventSource delivers source file events to the orchestrator
type EventSource interface {
	Events() <-chan FileEvent
	Errors() <-chan error
	Close() error
}

var _ EventSource = (*FileWatcher)(nil)

// FileWatcher recursively watches a curriculum directory for changes to
// source files with the configured extensions. Hidden directories are not
// descended into. Rapid changes to the same path are coalesced into one event.
type FileWatcher struct {
	watcher    *fsnotify.Watcher
	events     chan FileEvent
	errors     chan error
	done       chan struct{}
	wg         sync.WaitGroup
	rootDir    string
	extensions []string

	mu            sync.Mutex
	debounceDelay time.Duration
	pending       map[string]*time.Timer
	closed        bool
}

// DefaultDebounceDelay is the default delay for coalescing rapid writes
const DefaultDebounceDelay = 2 * time.Second

// NewFileWatcher starts watching rootDir for files with the given extensions.
// A debounce of zero or less uses DefaultDebounceDelay.
func NewFileWatcher(rootDir string, extensions []string, debounce time.Duration) (*FileWatcher, error) {
	rootDir, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = DefaultDebounceDelay
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	fw := &FileWatcher{
		watcher:       watcher,
		events:        make(chan FileEvent, 100),
		errors:        make(chan error, 10),
		done:          make(chan struct{}),
		rootDir:       rootDir,
		extensions:    extensions,
		debounceDelay: debounce,
		pending:       make(map[string]*time.Timer),
	}

	if err := fw.addRecursive(rootDir, false); err != nil {
		watcher.Close()
		return nil, err
	}

	fw.wg.Add(1)
	go fw.processEvents()

	return fw, nil
}

// addRecursive adds the directory and all its visible subdirectories to the watcher.
// With announce set, matching files found during the walk are reported as
// created, since they may predate the watch on their directory.
func (fw *FileWatcher) addRecursive(dir string, announce bool) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if os.IsNotExist(err) && path != fw.rootDir {
				return nil
			}
			return err
		}
		if !d.IsDir() {
			if announce && HasExtension(path, fw.extensions) {
				fw.debounce(path, FileCreated)
			}
			return nil
		}
		if path != fw.rootDir && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if err := fw.watcher.Add(path); err != nil {
			if os.IsPermission(err) {
				return filepath.SkipDir
			}
			return err
		}
		return nil
	})
}

// processEvents converts fsnotify events into FileEvents until Close
func (fw *FileWatcher) processEvents() {
	defer fw.wg.Done()
	for {
		select {
		case <-fw.done:
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			fw.handleEvent(event)
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.sendError(err)
		}
	}
}

// handleEvent processes a single fsnotify event
func (fw *FileWatcher) handleEvent(event fsnotify.Event) {
	path := event.Name

	// New directories are watched as soon as they appear
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if err := fw.addRecursive(path, true); err != nil {
				fw.sendError(err)
			}
			return
		}
	}

	if !HasExtension(path, fw.extensions) {
		return
	}

	var op FileOp
	switch {
	case event.Has(fsnotify.Create):
		op = FileCreated
	case event.Has(fsnotify.Write), event.Has(fsnotify.Chmod):
		op = FileWritten
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		op = FileRemoved
	default:
		return
	}

	fw.debounce(path, op)
}

// debounce coalesces rapid events for the same file; the last op wins
func (fw *FileWatcher) debounce(path string, op FileOp) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.closed {
		return
	}

	if timer, exists := fw.pending[path]; exists {
		timer.Stop()
	}

	fw.pending[path] = time.AfterFunc(fw.debounceDelay, func() {
		fw.mu.Lock()
		delete(fw.pending, path)
		fw.mu.Unlock()

		fw.sendEvent(path, op)
	})
}

// sendEvent sends a FileEvent, dropping it when the channel is full
func (fw *FileWatcher) sendEvent(path string, op FileOp) {
	event := FileEvent{
		Path:      path,
		Op:        op,
		Timestamp: time.Now(),
	}

	select {
	case <-fw.done:
	case fw.events <- event:
	default:
	}
}

func (fw *FileWatcher) sendError(err error) {
	select {
	case fw.errors <- err:
	default:
	}
}

// Events returns the channel for receiving file events
func (fw *FileWatcher) Events() <-chan FileEvent {
	return fw.events
}

// Errors returns the channel for receiving runtime watcher errors
func (fw *FileWatcher) Errors() <-chan error {
	return fw.errors
}

// RootDir returns the absolute directory being watched
func (fw *FileWatcher) RootDir() string {
	return fw.rootDir
}

// Close stops the file watcher and waits for its event goroutine to exit
func (fw *FileWatcher) Close() error {
	fw.mu.Lock()
	if fw.closed {
		fw.mu.Unlock()
		return nil
	}
	fw.closed = true

	for _, timer := range fw.pending {
		timer.Stop()
	}
	fw.pending = nil
	fw.mu.Unlock()

	close(fw.done)
	err := fw.watcher.Close()
	fw.wg.Wait()
	return err
}

// HasExtension reports whether path ends in one of the extensions.
// Extensions include the leading dot; an empty list matches nothing.
func HasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	if ext == "" {
		return false
	}
	for _, want := range extensions {
		if strings.EqualFold(ext, want) {
			return true
		}
	}
	return false
}
