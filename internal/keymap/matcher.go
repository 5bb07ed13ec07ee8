package keymap

import (
	"log/slog"
	"sync/atomic"
)

// Result describes what a single key did to the pending sequence.
type Result int

const (
	// Pending means the sequence is a viable prefix of a bound keymap.
	Pending Result = iota
	// Matched means the sequence resolved to an order and was cleared.
	Matched
	// Abandoned means no bound keymap starts with the sequence; it was
	// cleared and the key that broke it was discarded.
	Abandoned
	// Dropped means the event had no key. The pending sequence is unchanged.
	Dropped
)

func (r Result) String() string {
	switch r {
	case Pending:
		return "pending"
	case Matched:
		return "matched"
	case Abandoned:
		return "abandoned"
	case Dropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// Stats counts what the matcher did with its input. Safe for concurrent reads.
type Stats struct {
	keys         atomic.Uint64
	matched      atomic.Uint64
	abandoned    atomic.Uint64
	untranslated atomic.Uint64
}

// Keys returns the number of keys fed to the matcher.
func (s *Stats) Keys() uint64 { return s.keys.Load() }

// Matched returns the number of resolved orders.
func (s *Stats) Matched() uint64 { return s.matched.Load() }

// Abandoned returns the number of sequences dropped without an order.
func (s *Stats) Abandoned() uint64 { return s.abandoned.Load() }

// Untranslated returns the number of raw events that had no key.
func (s *Stats) Untranslated() uint64 { return s.untranslated.Load() }

// Matcher accumulates keys into a pending sequence and resolves it against
// a binding table. It is not safe for concurrent use; one goroutine owns it.
type Matcher struct {
	table   *Table
	pending Keymap
	stats   *Stats
	log     *slog.Logger
}

// NewMatcher creates a matcher over table. A nil logger discards output.
func NewMatcher(table *Table, log *slog.Logger) *Matcher {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Matcher{
		table: table,
		stats: &Stats{},
		log:   log,
	}
}

// Stats returns the matcher's counters.
func (m *Matcher) Stats() *Stats {
	return m.stats
}

// Pending returns a copy of the keys typed so far.
func (m *Matcher) Pending() Keymap {
	return m.pending.Clone()
}

// Feed adds one key to the pending sequence.
//
// An exact match is checked before viable prefixes, so when a bound keymap
// is a strict prefix of another, the shorter one always fires. When the
// sequence can no longer reach any binding it is cleared and the breaking
// key is dropped; it does not start a new sequence.
func (m *Matcher) Feed(k Key) (Order, Result) {
	m.stats.keys.Add(1)
	m.pending = append(m.pending, k)

	if o, ok := m.table.Lookup(m.pending); ok {
		m.pending = m.pending[:0]
		m.stats.matched.Add(1)
		return o, Matched
	}

	for _, km := range m.table.Keymaps() {
		if len(km) > len(m.pending) && km.HasPrefix(m.pending) {
			return "", Pending
		}
	}

	m.log.Debug("key sequence abandoned", "sequence", m.pending.String(), "key", string(k))
	m.pending = m.pending[:0]
	m.stats.abandoned.Add(1)
	return "", Abandoned
}

// FeedEvent translates a raw event and feeds it. Events without a key are
// counted and reported as Dropped without touching the pending sequence.
func (m *Matcher) FeedEvent(ev Event) (Order, Result) {
	k, ok := Translate(ev)
	if !ok {
		m.stats.untranslated.Add(1)
		m.log.Debug("unmapped key event dropped", "code", int(ev.Code), "rune", string(ev.Rune))
		return "", Dropped
	}
	return m.Feed(k)
}
