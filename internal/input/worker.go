// Package input runs the key sequence matcher on its own goroutine.
package input

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/memoleak/internal/fifo"
	"github.com/llehouerou/memoleak/internal/keymap"
)

// Worker owns a Matcher. Raw key messages go in through Send; resolved
// orders come out of Orders in the order they were matched.
type Worker struct {
	matcher *keymap.Matcher
	keys    *fifo.Queue[tea.KeyMsg]
	orders  *fifo.Queue[keymap.Order]
	log     *slog.Logger
}

// NewWorker creates a worker matching against table. It does nothing until
// Run is called.
func NewWorker(table *keymap.Table, log *slog.Logger) *Worker {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Worker{
		matcher: keymap.NewMatcher(table, log),
		keys:    fifo.New[tea.KeyMsg](),
		orders:  fifo.New[keymap.Order](),
		log:     log,
	}
}

// Send queues a raw key message for the worker. It never blocks.
func (w *Worker) Send(msg tea.KeyMsg) {
	w.keys.Push(msg)
}

// Orders returns the channel of resolved orders. It is closed when Run returns.
func (w *Worker) Orders() <-chan keymap.Order {
	return w.orders.Out()
}

// Stats returns the matcher's counters.
func (w *Worker) Stats() *keymap.Stats {
	return w.matcher.Stats()
}

// Run processes keys until ctx is canceled. Waiting for the next key is the
// only point where it blocks; each key is matched to completion before the
// next one is read.
func (w *Worker) Run(ctx context.Context) {
	defer w.orders.Close()
	defer func() {
		w.keys.Close()
		for range w.keys.Out() {
			// discard keys typed after shutdown
		}
	}()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("input worker stopped", "keys", w.Stats().Keys(), "orders", w.Stats().Matched())
			return
		case msg, ok := <-w.keys.Out():
			if !ok {
				return
			}
			w.handle(msg)
		}
	}
}

func (w *Worker) handle(msg tea.KeyMsg) {
	events := keymap.FromTea(msg)
	if len(events) == 0 {
		// Counted and dropped by the matcher as a key without a token.
		events = []keymap.Event{{Code: keymap.CodeOther}}
	}
	for _, ev := range events {
		if order, res := w.matcher.FeedEvent(ev); res == keymap.Matched {
			w.orders.Push(order)
		}
	}
}
