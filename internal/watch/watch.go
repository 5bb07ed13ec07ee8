// Package watch reports changes to memo files made outside the application.
package watch

import (
	"log/slog"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/llehouerou/memoleak/internal/memo"
)

// Op is the kind of change seen on a memo file.
type Op uint8

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
)

// Has reports whether o shares any bit with other.
func (o Op) Has(other Op) bool { return o&other != 0 }

// Event is a change to one memo file.
type Event struct {
	Path string
	Op   Op
}

const bufferSize = 64

// Watcher watches a single memo directory. Events for anything that is not a
// memo file are dropped.
type Watcher struct {
	fsw    *fsnotify.Watcher
	events chan Event
	log    *slog.Logger

	closeOnce sync.Once
	closeCh   chan struct{}
	wg        sync.WaitGroup
}

// New starts watching dir.
func New(dir string, log *slog.Logger) (*Watcher, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:     fsw,
		events:  make(chan Event, bufferSize),
		log:     log,
		closeCh: make(chan struct{}),
	}
	w.wg.Add(1)
	go w.loop()
	return w, nil
}

// Events is closed once the watcher is closed.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.closeCh)
		w.wg.Wait()
		close(w.events)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) loop() {
	defer w.wg.Done()

	for {
		select {
		case <-w.closeCh:
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			w.handle(ev)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("memo directory watch error", "error", err)
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	op := convertOp(ev.Op)
	if op == 0 || !memo.IsMemoFile(ev.Name) {
		return
	}

	select {
	case w.events <- Event{Path: ev.Name, Op: op}:
	default:
		// The refresh order rescans the directory and recovers it.
		w.log.Warn("watch event dropped", "path", ev.Name, "op", ev.Op.String())
	}
}

func convertOp(fsOp fsnotify.Op) Op {
	var op Op
	if fsOp.Has(fsnotify.Create) {
		op |= OpCreate
	}
	if fsOp.Has(fsnotify.Write) {
		op |= OpWrite
	}
	if fsOp.Has(fsnotify.Remove) {
		op |= OpRemove
	}
	if fsOp.Has(fsnotify.Rename) {
		op |= OpRename
	}
	return op
}
