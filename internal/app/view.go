// internal/app/view.go
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/memoleak/internal/keymap"
	"github.com/llehouerou/memoleak/internal/ui/styles"
)

// helpOrders are the orders listed in the help line, with their labels.
var helpOrders = []struct {
	order keymap.Order
	label string
}{
	{keymap.OrderNew, "new"},
	{keymap.OrderEdit, "edit"},
	{keymap.OrderDelete, "delete"},
	{keymap.OrderRefresh, "reload"},
	{keymap.OrderHelp, "help"},
	{keymap.OrderExit, "quit"},
}

// View renders the application UI.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	if m.prompt.Active() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.prompt.View())
	}
	if m.help.Active() {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.help.View())
	}

	listHeight := max(m.height-chrome, 0)
	list := lipgloss.NewStyle().Height(listHeight).MaxHeight(listHeight).Render(m.list.View())

	return strings.Join([]string{
		m.renderHeader(),
		list,
		m.renderStatus(),
		m.renderHelp(),
	}, "\n")
}

func (m Model) renderHeader() string {
	s := styles.T().S()

	count := "no memos"
	switch n := m.stash.Len(); n {
	case 0:
	case 1:
		count = "1 memo"
	default:
		count = fmt.Sprintf("%d memos", n)
	}

	header := s.Title.Render("memoleak") + "  " + s.Muted.Render(count)
	return ansi.Truncate(header, m.width, "")
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	s := styles.T().S()
	style := s.Success
	if m.statusErr {
		style = s.Error
	}
	return style.Render(ansi.Truncate(m.status, m.width, "…"))
}

func (m Model) renderHelp() string {
	parts := make([]string, 0, len(helpOrders))
	for _, h := range helpOrders {
		if key := m.firstKey(h.order); key != "" {
			parts = append(parts, key+" "+h.label)
		}
	}
	help := strings.Join(parts, " · ")
	return styles.T().S().Subtle.Render(ansi.Truncate(help, m.width, "…"))
}

func (m Model) firstKey(o keymap.Order) string {
	if keys := m.table.KeysFor(o); len(keys) > 0 {
		return keys[0]
	}
	return ""
}

func (m Model) emptyText() string {
	if key := m.firstKey(keymap.OrderNew); key != "" {
		return fmt.Sprintf("No memos yet. Press %s to create one.", key)
	}
	return "No memos yet."
}
