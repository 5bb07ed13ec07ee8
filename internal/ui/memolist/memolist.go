// Package memolist renders the stash as a scrollable list of memos.
package memolist

import (
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/memoleak/internal/icons"
	"github.com/llehouerou/memoleak/internal/memo"
	"github.com/llehouerou/memoleak/internal/ui/styles"
)

const (
	scrollMargin = 3
	maxNameWidth = 28
	sizeWidth    = 8
	editedWidth  = 14
	columnGap    = 2
	cursorMarker = "> "
	ellipsis     = "…"
)

// Model is the memo list. It reads the stash it is given on every render and
// never modifies it.
type Model struct {
	stash     *memo.Stash
	edits     map[string]time.Time
	cursor    cursor
	width     int
	height    int
	emptyText string
	now       func() time.Time
}

// New creates a list over stash.
func New(stash *memo.Stash) Model {
	return Model{
		stash:  stash,
		cursor: cursor{margin: scrollMargin},
		now:    time.Now,
	}
}

// SetSize sets the list dimensions. Height is the number of rows.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.cursor.clampToBounds(m.len(), m.height)
}

// SetEdits sets the last edit time per memo name, shown next to each memo.
func (m *Model) SetEdits(edits map[string]time.Time) {
	m.edits = edits
}

// SetEmptyText sets what is shown when the stash is empty.
func (m *Model) SetEmptyText(text string) {
	m.emptyText = text
}

// Selected returns the cursor position. It is meaningless for an empty stash.
func (m Model) Selected() int {
	return m.cursor.pos
}

func (m *Model) Down()   { m.cursor.move(1, m.len(), m.height) }
func (m *Model) Up()     { m.cursor.move(-1, m.len(), m.height) }
func (m *Model) Top()    { m.cursor.jump(0, m.len(), m.height) }
func (m *Model) Bottom() { m.cursor.jump(m.len()-1, m.len(), m.height) }

// Select moves the cursor to idx.
func (m *Model) Select(idx int) {
	m.cursor.jump(idx, m.len(), m.height)
}

// Sync brings the cursor back in range after the stash changed size.
func (m *Model) Sync() {
	m.cursor.clampToBounds(m.len(), m.height)
}

func (m Model) len() int {
	if m.stash == nil {
		return 0
	}
	return m.stash.Len()
}

// View renders exactly the visible rows.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}
	s := styles.T().S()

	if m.len() == 0 {
		return s.Muted.Render(runewidth.Truncate(m.emptyText, m.width, ellipsis))
	}

	start, end := m.cursor.visibleRange(m.len(), m.height)
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		mm, err := m.stash.At(i)
		if err != nil {
			break
		}
		rows = append(rows, m.renderRow(mm, i == m.cursor.pos))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderRow(mm *memo.Memo, selected bool) string {
	s := styles.T().S()

	marker := strings.Repeat(" ", runewidth.StringWidth(cursorMarker))
	if selected {
		marker = cursorMarker
	}

	nameWidth := min(maxNameWidth, max(m.width/3, 1))
	label := icons.FormatMemo(mm.Name(), mm.Size() == 0)
	name := runewidth.FillRight(runewidth.Truncate(label, nameWidth, ellipsis), nameWidth)
	size := runewidth.FillLeft(humanize.Bytes(uint64(mm.Size())), sizeWidth)

	edited := ""
	if at, ok := m.edits[mm.Name()]; ok {
		edited = humanize.RelTime(at, m.now(), "ago", "from now")
	}
	edited = runewidth.FillRight(runewidth.Truncate(edited, editedWidth, ellipsis), editedWidth)

	gap := strings.Repeat(" ", columnGap)
	used := runewidth.StringWidth(marker) + nameWidth + sizeWidth + editedWidth + 3*columnGap
	preview := ""
	if room := m.width - used; room > 0 {
		preview = ansi.Truncate(ansi.Strip(mm.Preview()), room, ellipsis)
	}

	if selected {
		row := marker + name + gap + size + gap + edited + gap + preview
		return s.Cursor.Width(m.width).Render(ansi.Truncate(row, m.width, ""))
	}
	row := marker + s.Base.Render(name) + gap +
		s.Muted.Render(size) + gap +
		s.Muted.Render(edited) + gap +
		s.Subtle.Render(preview)
	return ansi.Truncate(row, m.width, "")
}
