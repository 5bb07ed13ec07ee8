package keymap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatcher(t *testing.T, bindings ...Binding) *Matcher {
	t.Helper()
	table, err := NewTable(bindings)
	require.NoError(t, err)
	return NewMatcher(table, nil)
}

func TestMatcher_ZZExits(t *testing.T) {
	m := newTestMatcher(t, Binding{OrderExit, []string{"ZZ"}, "Quit"})

	o, res := m.Feed("Z")
	assert.Equal(t, Pending, res)
	assert.Empty(t, o)
	assert.Equal(t, Keymap{"Z"}, m.Pending())

	o, res = m.Feed("Z")
	assert.Equal(t, Matched, res)
	assert.Equal(t, OrderExit, o)
	assert.Empty(t, m.Pending())

	assert.Equal(t, uint64(2), m.Stats().Keys())
	assert.Equal(t, uint64(1), m.Stats().Matched())
	assert.Equal(t, uint64(0), m.Stats().Abandoned())
}

func TestMatcher_FullKeymapEmitsOnce(t *testing.T) {
	m := newTestMatcher(t,
		Binding{OrderExit, []string{"<c-x><c-c>"}, "Quit"},
		Binding{OrderNew, []string{"abc"}, "New"},
	)

	var orders []Order
	for _, k := range MustParseKeymap("abc") {
		if o, res := m.Feed(k); res == Matched {
			orders = append(orders, o)
		}
	}
	assert.Equal(t, []Order{OrderNew}, orders)
	assert.Empty(t, m.Pending())
}

func TestMatcher_NonViableKeyClears(t *testing.T) {
	m := newTestMatcher(t, Binding{OrderExit, []string{"ZZ"}, "Quit"})

	_, res := m.Feed("Z")
	require.Equal(t, Pending, res)

	o, res := m.Feed("q")
	assert.Equal(t, Abandoned, res)
	assert.Empty(t, o)
	assert.Empty(t, m.Pending())
	assert.Equal(t, uint64(1), m.Stats().Abandoned())
}

func TestMatcher_UnboundKeyFromIdle(t *testing.T) {
	m := newTestMatcher(t, Binding{OrderExit, []string{"ZZ"}, "Quit"})

	_, res := m.Feed("x")
	assert.Equal(t, Abandoned, res)
	assert.Empty(t, m.Pending())
}

// The key that breaks a sequence is discarded rather than starting a new
// one, so "ZgZZ" needs the full "ZZ" typed again after the break.
func TestMatcher_BreakingKeyIsNotReplayed(t *testing.T) {
	m := newTestMatcher(t,
		Binding{OrderExit, []string{"ZZ"}, "Quit"},
		Binding{OrderRefresh, []string{"gr"}, "Refresh"},
	)

	_, res := m.Feed("Z")
	require.Equal(t, Pending, res)

	// 'g' could start "gr", but it broke "Z_" and is dropped.
	_, res = m.Feed("g")
	require.Equal(t, Abandoned, res)

	_, res = m.Feed("r")
	assert.Equal(t, Abandoned, res, "r alone is not a viable prefix")

	_, res = m.Feed("Z")
	assert.Equal(t, Pending, res)
	o, res := m.Feed("Z")
	assert.Equal(t, Matched, res)
	assert.Equal(t, OrderExit, o)
}

func TestMatcher_ShortestKeymapWins(t *testing.T) {
	m := newTestMatcher(t,
		Binding{OrderDelete, []string{"d"}, "Delete"},
		Binding{OrderExit, []string{"dd"}, "Quit"},
	)

	for range 3 {
		o, res := m.Feed("d")
		assert.Equal(t, Matched, res)
		assert.Equal(t, OrderDelete, o, "dd is unreachable behind d")
	}
}

func TestMatcher_SharedPrefixes(t *testing.T) {
	table, err := NewTable(Bindings)
	require.NoError(t, err)
	m := NewMatcher(table, nil)

	feed := func(s string) (Order, Result) {
		var o Order
		var res Result
		for _, k := range MustParseKeymap(s) {
			o, res = m.Feed(k)
		}
		return o, res
	}

	o, res := feed("gg")
	assert.Equal(t, Matched, res)
	assert.Equal(t, OrderCursorTop, o)

	o, res = feed("gr")
	assert.Equal(t, Matched, res)
	assert.Equal(t, OrderRefresh, o)

	_, res = feed("gx")
	assert.Equal(t, Abandoned, res)

	o, res = feed("j")
	assert.Equal(t, Matched, res)
	assert.Equal(t, OrderCursorDown, o)
}

func TestMatcher_FeedEvent(t *testing.T) {
	m := newTestMatcher(t, Binding{OrderExit, []string{"ZZ"}, "Quit"})

	_, res := m.FeedEvent(Event{Code: CodeRune, Rune: 'Z'})
	require.Equal(t, Pending, res)

	// Untranslatable events are counted but leave the sequence alone.
	_, res = m.FeedEvent(Event{Code: CodeOther})
	assert.Equal(t, Dropped, res)
	assert.Equal(t, uint64(0), m.Stats().Abandoned())
	assert.Equal(t, Keymap{"Z"}, m.Pending())
	assert.Equal(t, uint64(1), m.Stats().Untranslated())
	assert.Equal(t, uint64(1), m.Stats().Keys())

	o, res := m.FeedEvent(Event{Code: CodeRune, Rune: 'Z', Mods: ModShift})
	assert.Equal(t, Matched, res)
	assert.Equal(t, OrderExit, o)
}

func TestResult_String(t *testing.T) {
	assert.Equal(t, "pending", Pending.String())
	assert.Equal(t, "matched", Matched.String())
	assert.Equal(t, "abandoned", Abandoned.String())
	assert.Equal(t, "dropped", Dropped.String())
	assert.Equal(t, "unknown", Result(42).String())
}
