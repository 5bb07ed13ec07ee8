// internal/app/update.go
package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/memoleak/internal/editor"
	"github.com/llehouerou/memoleak/internal/errmsg"
	"github.com/llehouerou/memoleak/internal/keymap"
	"github.com/llehouerou/memoleak/internal/memo"
	"github.com/llehouerou/memoleak/internal/ui/prompt"
	"github.com/llehouerou/memoleak/internal/watch"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width, max(m.height-chrome, 0))
		m.prompt.SetWidth(m.promptWidth())
		m.help.SetWidth(m.width)
		return m, nil

	case tea.KeyMsg:
		if m.prompt.Active() {
			return m, m.prompt.Update(msg)
		}
		if m.help.Active() {
			m.help.Hide()
			return m, nil
		}
		m.worker.Send(msg)
		return m, nil

	case OrderMsg:
		cmd := m.handleOrder(msg.Order)
		return m, tea.Batch(cmd, WaitForOrder(m.worker))

	case prompt.Result:
		return m, m.handlePromptResult(msg)

	case EditorFinishedMsg:
		m.handleEditorFinished(msg)
		return m, nil

	case WatchMsg:
		m.handleWatch(watch.Event(msg))
		return m, WaitForWatch(m.watcher)

	case workerStoppedMsg:
		return m, nil
	}

	// Cursor blink and similar messages belong to the prompt.
	if m.prompt.Active() {
		return m, m.prompt.Update(msg)
	}
	return m, nil
}

func (m *Model) handleOrder(o keymap.Order) tea.Cmd {
	m.log.Debug("order", "order", o)
	m.clearStatus()

	switch o {
	case keymap.OrderExit:
		return tea.Quit

	case keymap.OrderCursorDown:
		m.list.Down()
		m.saveSelection()
	case keymap.OrderCursorUp:
		m.list.Up()
		m.saveSelection()
	case keymap.OrderCursorTop:
		m.list.Top()
		m.saveSelection()
	case keymap.OrderCursorBottom:
		m.list.Bottom()
		m.saveSelection()

	case keymap.OrderEdit:
		return m.editSelected()

	case keymap.OrderNew:
		return m.prompt.Start("New memo", m.promptWidth())

	case keymap.OrderDelete:
		m.deleteSelected()

	case keymap.OrderRefresh:
		m.refreshAll()

	case keymap.OrderHelp:
		m.help.Show()

	default:
		m.log.Warn("unhandled order", "order", o)
	}
	return nil
}

func (m *Model) editSelected() tea.Cmd {
	mm := m.selected()
	if mm == nil {
		m.setStatus("No memo to edit")
		return nil
	}
	m.log.Info("launching editor", "editor", m.editor, "memo", mm.Path())
	return EditCmd(m.editor, mm.Path())
}

func (m *Model) handleEditorFinished(msg EditorFinishedMsg) {
	idx := m.stash.IndexOf(msg.Path)
	if idx < 0 {
		return
	}
	mm, err := m.stash.At(idx)
	if err != nil {
		return
	}

	// The file may have been saved even if the editor then failed.
	if err := mm.Refresh(); err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpMemoRefresh, mm.Name(), err), err)
		return
	}

	if msg.Err != nil {
		err := editor.Wrap(m.editor, msg.Err)
		m.setError(errmsg.FormatWith(errmsg.OpMemoEdit, mm.Name(), err), err)
		return
	}

	now := time.Now()
	m.edits[mm.Name()] = now
	if err := m.state.RecordEdit(mm.Name(), now); err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpStateSave, mm.Name(), err), err)
	}
}

func (m *Model) handlePromptResult(res prompt.Result) tea.Cmd {
	if res.Canceled {
		return nil
	}

	mm, err := memo.Create(m.memoDir, res.Name)
	if err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpMemoCreate, res.Name, err), err)
		return nil
	}
	m.log.Info("memo created", "path", mm.Path())

	m.stash.Append(mm)
	m.list.Bottom()
	m.saveSelection()
	return m.editSelected()
}

func (m *Model) deleteSelected() {
	mm := m.selected()
	if mm == nil {
		m.setStatus("No memo to delete")
		return
	}

	// The file goes first so a failure leaves the memo listed.
	if err := memo.Delete(mm); err != nil && !errors.Is(err, os.ErrNotExist) {
		m.setError(errmsg.FormatWith(errmsg.OpMemoDelete, mm.Name(), err), err)
		return
	}
	if _, err := m.stash.Remove(m.list.Selected()); err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpMemoDelete, mm.Name(), err), err)
		return
	}
	m.log.Info("memo deleted", "path", mm.Path())

	delete(m.edits, mm.Name())
	m.list.Sync()
	m.saveSelection()

	if err := m.state.Forget(mm.Name()); err != nil {
		m.setError(errmsg.FormatWith(errmsg.OpStateSave, mm.Name(), err), err)
		return
	}
	m.setStatus(fmt.Sprintf("Deleted %s", mm.Name()))
}

func (m *Model) refreshAll() {
	changed, err := m.stash.Refresh()
	if err != nil {
		m.setError(errmsg.Format(errmsg.OpMemoRefresh, err), err)
		return
	}

	// Picks up files whose watch event was missed.
	added, err := m.stash.LoadNew(m.memoDir)
	if added > 0 {
		m.list.Sync()
	}
	if err != nil {
		m.setError(errmsg.Format(errmsg.OpMemoLoad, err), err)
		return
	}

	switch {
	case len(changed) == 0 && added == 0:
		m.setStatus("All memos up to date")
	case added == 0:
		m.setStatus("Reloaded " + plural(len(changed), "memo"))
	case len(changed) == 0:
		m.setStatus("Found " + plural(added, "new memo"))
	default:
		m.setStatus(fmt.Sprintf("Reloaded %s, found %s", plural(len(changed), "memo"), plural(added, "new memo")))
	}
}

func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// handleWatch folds a change made outside the app into the stash. Removed
// files stay listed with their last content; editors often replace a file
// by removing and recreating it.
func (m *Model) handleWatch(ev watch.Event) {
	idx := m.stash.IndexOf(ev.Path)

	switch {
	case idx >= 0 && ev.Op.Has(watch.OpCreate|watch.OpWrite):
		mm, err := m.stash.At(idx)
		if err != nil {
			return
		}
		if err := mm.Refresh(); err != nil {
			m.log.Debug("refresh after change", "path", ev.Path, "error", err)
		}

	case idx < 0 && ev.Op.Has(watch.OpCreate):
		mm, err := memo.Load(ev.Path)
		if err != nil {
			m.log.Debug("load new memo", "path", ev.Path, "error", err)
			return
		}
		m.stash.Append(mm)
		m.list.Sync()
		m.log.Info("memo appeared", "path", ev.Path)

	default:
		m.log.Debug("memo file event ignored", "path", ev.Path, "op", ev.Op)
	}
}

func (m Model) promptWidth() int {
	return min(m.width, 60)
}
