// Package watch implements the debounce layer spec.md §5 describes: it
// watches a document's backing file, coalesces rapid edits, and on each
// settled change runs the full source → IR → hash → delta → events
// pipeline, publishing only the newest complete transformation.
//
// Grounded on the teacher's internal/track/watcher.go: an fsnotify
// watcher on the file's directory, a single debounce timer reset on
// each qualifying event, and buffered size-1 channels so a slow
// consumer only ever sees the latest state. The file-watching mechanics
// are kept; the payload each settled event carries is this engine's
// snapshot+delta pipeline instead of the teacher's bare notification.
package watch

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zadoox/xmd/internal/delta"
	"github.com/zadoox/xmd/internal/engine"
	"github.com/zadoox/xmd/internal/ir"
)

const defaultDebounce = 150 * time.Millisecond

// Update is published after a settled file change has been parsed into
// a new snapshot and diffed against the previous one, per §5's fixed
// ordering: parse, hash, delta, events.
type Update struct {
	Snapshot *ir.Snapshot
	Delta    delta.Delta
	Events   []delta.Event
}

// Watcher watches a single XMD source file and publishes an Update for
// every settled (debounced) change, computed against the document's
// previously published snapshot.
type Watcher struct {
	watcher  *fsnotify.Watcher
	filePath string
	docID    string

	updates chan Update
	errors  chan error
	done    chan struct{}

	debounce time.Duration
	mu       sync.Mutex
	closed   bool
	prev     *ir.Snapshot
}

// New starts watching filePath, parsing its initial content as docID's
// first snapshot before returning. The file must exist at creation
// time.
func New(filePath, docID string) (*Watcher, error) {
	return NewWithDebounce(filePath, docID, defaultDebounce)
}

// NewWithDebounce is New with a caller-supplied debounce window.
func NewWithDebounce(filePath, docID string, debounce time.Duration) (*Watcher, error) {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, err
	}

	initial, err := os.ReadFile(absPath)
	if err != nil {
		return nil, err
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(absPath)
	if err := fsWatcher.Add(dir); err != nil {
		_ = fsWatcher.Close()

		return nil, err
	}

	w := &Watcher{
		watcher:  fsWatcher,
		filePath: absPath,
		docID:    docID,
		updates:  make(chan Update, 1),
		errors:   make(chan error, 1),
		done:     make(chan struct{}),
		debounce: debounce,
		prev:     engine.Snapshot(engine.ParseXMD(docID, string(initial))),
	}

	go w.loop()

	return w, nil
}

// Updates returns a channel that receives the newest settled Update.
// Buffered with capacity 1: a slow consumer only ever sees the latest
// transformation, per §5's "only the newest complete transformation
// reaches listeners."
func (w *Watcher) Updates() <-chan Update {
	return w.updates
}

// Errors returns a channel that receives file-read or fsnotify errors.
func (w *Watcher) Errors() <-chan error {
	return w.errors
}

// Close stops the watcher and releases resources. Safe to call more
// than once.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()

		return nil
	}
	w.closed = true
	w.mu.Unlock()

	close(w.done)

	return w.watcher.Close()
}

func (w *Watcher) loop() {
	var (
		timer     *time.Timer
		timerChan <-chan time.Time
	)

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}

			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			timer, timerChan = w.handleEvent(event, timer, timerChan)

		case <-timerChan:
			w.settle()
			timer = nil
			timerChan = nil

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event, timer *time.Timer, timerChan <-chan time.Time) (*time.Timer, <-chan time.Time) {
	if !w.isWatchedFile(event.Name) {
		return timer, timerChan
	}

	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return timer, timerChan
	}

	if timer == nil {
		timer = time.NewTimer(w.debounce)

		return timer, timer.C
	}

	resetTimer(timer, w.debounce)

	return timer, timerChan
}

func resetTimer(timer *time.Timer, d time.Duration) {
	if !timer.Stop() {
		select {
		case <-timer.C:
		default:
		}
	}
	timer.Reset(d)
}

func (w *Watcher) isWatchedFile(eventPath string) bool {
	absEventPath, err := filepath.Abs(eventPath)
	if err != nil {
		return false
	}

	return absEventPath == w.filePath
}

// settle runs the full parse → hash → delta → events pipeline against
// the file's current content and publishes the result, dropping any
// superseded Update still sitting unread in the channel.
func (w *Watcher) settle() {
	content, err := os.ReadFile(w.filePath)
	if err != nil {
		w.sendError(err)

		return
	}

	doc := engine.ParseXMD(w.docID, string(content))
	next := engine.Snapshot(doc)
	d := engine.Delta(w.prev, next)
	events := engine.EventsFromDelta(d)
	w.prev = next

	select {
	case <-w.updates:
	default:
	}
	w.updates <- Update{Snapshot: next, Delta: d, Events: events}
}

func (w *Watcher) sendError(err error) {
	select {
	case w.errors <- err:
	default:
	}
}
