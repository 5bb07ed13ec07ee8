package memolist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/memoleak/internal/memo"
	"github.com/llehouerou/memoleak/internal/ui/testutil"
)

func stashWith(t *testing.T, files map[string]string) *memo.Stash {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+memo.Ext), []byte(content), 0o644))
	}
	s, err := memo.LoadDir(dir)
	require.NoError(t, err)
	return s
}

func TestView_Empty(t *testing.T) {
	m := New(memo.NewStash())
	m.SetSize(60, 5)
	m.SetEmptyText("No memos yet")

	assert.Equal(t, "No memos yet", testutil.StripANSI(m.View()))
}

func TestView_ZeroSize(t *testing.T) {
	m := New(stashWith(t, map[string]string{"a": "x"}))
	assert.Empty(t, m.View())
}

func TestView_Rows(t *testing.T) {
	m := New(stashWith(t, map[string]string{
		"groceries": "\n  milk\neggs\n",
		"todo":      "",
	}))
	m.SetSize(100, 5)

	lines := testutil.SplitLines(m.View())
	require.Len(t, lines, 2)

	assert.True(t, strings.HasPrefix(lines[0], "> groceries"), "line = %q", lines[0])
	assert.Contains(t, lines[0], "13 B")
	assert.Contains(t, lines[0], "milk")
	assert.NotContains(t, lines[0], "eggs")

	assert.True(t, strings.HasPrefix(lines[1], "  todo"), "line = %q", lines[1])
	assert.Contains(t, lines[1], "0 B")
}

func TestView_FitsWidth(t *testing.T) {
	m := New(stashWith(t, map[string]string{
		"a-really-long-memo-name-that-does-not-fit": strings.Repeat("word ", 50),
		"short": strings.Repeat("x", 200),
	}))
	m.SetSize(50, 5)

	for _, line := range strings.Split(m.View(), "\n") {
		assert.LessOrEqual(t, testutil.MeasureWidth(line), 50, "line = %q", testutil.StripANSI(line))
	}
}

func TestView_EditedColumn(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := New(stashWith(t, map[string]string{"todo": "x"}))
	m.now = func() time.Time { return now }
	m.SetEdits(map[string]time.Time{"todo": now.Add(-2 * time.Hour)})
	m.SetSize(100, 5)

	assert.True(t, testutil.ContainsLine(m.View(), "2 hours ago"))
}

func TestNavigation(t *testing.T) {
	m := New(stashWith(t, map[string]string{"a": "", "b": "", "c": "", "d": ""}))
	m.SetSize(80, 10)

	m.Down()
	m.Down()
	assert.Equal(t, 2, m.Selected())

	m.Up()
	assert.Equal(t, 1, m.Selected())

	m.Bottom()
	assert.Equal(t, 3, m.Selected())
	m.Down()
	assert.Equal(t, 3, m.Selected())

	m.Top()
	assert.Equal(t, 0, m.Selected())
	m.Up()
	assert.Equal(t, 0, m.Selected())
}

func TestScrollsToCursor(t *testing.T) {
	m := New(stashWith(t, map[string]string{"a": "", "b": "", "c": "", "d": "", "e": ""}))
	m.SetSize(80, 2)

	m.Bottom()
	lines := testutil.SplitLines(m.View())
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "  d"), "line = %q", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "> e"), "line = %q", lines[1])
}

func TestSyncAfterRemove(t *testing.T) {
	s := stashWith(t, map[string]string{"a": "", "b": "", "c": ""})
	m := New(s)
	m.SetSize(80, 10)
	m.Bottom()

	_, err := s.Remove(2)
	require.NoError(t, err)
	m.Sync()

	assert.Equal(t, 1, m.Selected())
}
