// Package helpbindings renders the key binding table as an overlay.
package helpbindings

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/memoleak/internal/keymap"
	"github.com/llehouerou/memoleak/internal/ui/styles"
)

type category struct {
	label  string
	orders []keymap.Order
}

// categories defines what is listed, in display order.
var categories = []category{
	{"Memos", []keymap.Order{keymap.OrderNew, keymap.OrderEdit, keymap.OrderDelete, keymap.OrderRefresh}},
	{"Cursor", []keymap.Order{keymap.OrderCursorDown, keymap.OrderCursorUp, keymap.OrderCursorTop, keymap.OrderCursorBottom}},
	{"Global", []keymap.Order{keymap.OrderHelp, keymap.OrderExit}},
}

// Model holds the state for the help overlay.
type Model struct {
	table  *keymap.Table
	active bool
	width  int
}

// New creates a hidden help overlay for table.
func New(table *keymap.Table) Model {
	return Model{table: table}
}

func (m *Model) Show()          { m.active = true }
func (m *Model) Hide()          { m.active = false }
func (m Model) Active() bool    { return m.active }
func (m *Model) SetWidth(w int) { m.width = w }

// View renders the overlay, or nothing when hidden.
func (m Model) View() string {
	if !m.active || m.width <= 0 {
		return ""
	}
	s := styles.T().S()

	maxKeyWidth := 0
	for _, c := range categories {
		for _, o := range c.orders {
			maxKeyWidth = max(maxKeyWidth, runewidth.StringWidth(m.keys(o)))
		}
	}

	var sb strings.Builder
	sb.WriteString(s.Title.Render("Key bindings"))
	for _, c := range categories {
		sb.WriteString("\n\n")
		sb.WriteString(s.Muted.Render(c.label))
		for _, o := range c.orders {
			keys := m.keys(o)
			if keys == "" {
				continue
			}
			sb.WriteString("\n")
			sb.WriteString(s.Base.Bold(true).Render(runewidth.FillRight(keys, maxKeyWidth)))
			sb.WriteString("  ")
			sb.WriteString(s.Base.Render(m.table.Description(o)))
		}
	}
	sb.WriteString("\n\n")
	sb.WriteString(s.Subtle.Render("Any key closes this help"))

	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(styles.T().Border).
		Padding(0, 1).
		MaxWidth(m.width).
		Render(sb.String())
}

func (m Model) keys(o keymap.Order) string {
	return strings.Join(m.table.KeysFor(o), ", ")
}
