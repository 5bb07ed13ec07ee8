// Package prompt asks for the name of a new memo.
package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/memoleak/internal/memo"
	"github.com/llehouerou/memoleak/internal/ui/styles"
)

const charLimit = 128

// Result is sent once the prompt closes.
type Result struct {
	Name     string
	Canceled bool // True if user pressed Escape
}

// Model is a single-line name prompt. While active it takes every key.
type Model struct {
	input  textinput.Model
	title  string
	err    error
	active bool
	width  int
}

// New creates an inactive prompt.
func New() Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "memo name"
	ti.CharLimit = charLimit
	return Model{input: ti}
}

// Start opens the prompt with an empty input.
func (m *Model) Start(title string, width int) tea.Cmd {
	m.title = title
	m.err = nil
	m.active = true
	m.SetWidth(width)
	m.input.Reset()
	return m.input.Focus()
}

// SetWidth sets the outer width of the prompt box.
func (m *Model) SetWidth(width int) {
	m.width = width
	// border and padding
	m.input.Width = max(width-6-len(m.input.Prompt), 1)
}

// Active reports whether the prompt is open.
func (m Model) Active() bool {
	return m.active
}

// Update handles a message while the prompt is open.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if !m.active {
		return nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type { //nolint:exhaustive // everything else is typed into the input
		case tea.KeyEsc:
			m.close()
			return func() tea.Msg { return Result{Canceled: true} }

		case tea.KeyEnter:
			name := strings.TrimSpace(m.input.Value())
			if err := memo.ValidateName(name); err != nil {
				m.err = err
				return nil
			}
			m.close()
			return func() tea.Msg { return Result{Name: name} }
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.err = nil
	return cmd
}

func (m *Model) close() {
	m.active = false
	m.input.Blur()
}

// View renders the prompt box, or nothing when closed.
func (m Model) View() string {
	if !m.active || m.width <= 0 {
		return ""
	}
	s := styles.T().S()

	hint := s.Subtle.Render("Enter: create, Esc: cancel")
	if m.err != nil {
		hint = s.Error.Render(m.err.Error())
	}

	content := s.Title.Render(m.title) + "\n\n" + m.input.View() + "\n\n" + hint
	return styles.PromptPanel(m.width - 2).Render(content)
}
