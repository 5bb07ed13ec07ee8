// Package app contains the memoleak TUI: the root bubbletea model and the
// messages flowing through it.
package app

import (
	"github.com/llehouerou/memoleak/internal/keymap"
	"github.com/llehouerou/memoleak/internal/watch"
)

// OrderMsg carries one Order emitted by the input worker.
type OrderMsg struct {
	Order keymap.Order
}

// WatchMsg carries a change to a memo file seen by the directory watcher.
type WatchMsg watch.Event

// EditorFinishedMsg is sent when the external editor exits.
type EditorFinishedMsg struct {
	Path string
	Err  error
}

// workerStoppedMsg is sent when the input worker returns.
type workerStoppedMsg struct{}
