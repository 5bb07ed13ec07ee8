// Package fifo provides an unbounded, ordered hand-off between one producer
// and one consumer goroutine.
package fifo

import "sync"

// Queue delivers pushed values to Out in push order. Push never waits for
// the consumer: the backlog grows instead.
type Queue[T any] struct {
	mu     sync.Mutex
	items  []T
	closed bool

	signal chan struct{} // 1-slot wakeup for the pump
	out    chan T
}

// New creates a queue and starts its delivery goroutine. Call Close to stop it.
func New[T any]() *Queue[T] {
	q := &Queue[T]{
		signal: make(chan struct{}, 1),
		out:    make(chan T),
	}
	go q.pump()
	return q
}

// Push appends v. It returns false if the queue is closed.
func (q *Queue[T]) Push(v T) bool {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return false
	}
	q.items = append(q.items, v)
	q.mu.Unlock()

	q.wake()
	return true
}

// Out returns the delivery channel. It is closed once the queue is closed
// and the backlog has been delivered.
func (q *Queue[T]) Out() <-chan T {
	return q.out
}

// Len returns the number of values not yet handed to the consumer.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

// Close stops accepting values. Values already pushed are still delivered.
func (q *Queue[T]) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	q.wake()
}

func (q *Queue[T]) wake() {
	select {
	case q.signal <- struct{}{}:
	default:
		// A wakeup is already pending
	}
}

func (q *Queue[T]) pump() {
	defer close(q.out)
	for {
		q.mu.Lock()
		if len(q.items) == 0 {
			closed := q.closed
			q.mu.Unlock()
			if closed {
				return
			}
			<-q.signal
			continue
		}
		v := q.items[0]
		var zero T
		q.items[0] = zero
		q.items = q.items[1:]
		q.mu.Unlock()

		q.out <- v
	}
}
