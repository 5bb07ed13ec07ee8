package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/memoleak/internal/editor"
	"github.com/llehouerou/memoleak/internal/input"
	"github.com/llehouerou/memoleak/internal/watch"
)

// RunWorker runs the input worker for the lifetime of ctx.
func RunWorker(ctx context.Context, w *input.Worker) tea.Cmd {
	return func() tea.Msg {
		w.Run(ctx)
		return workerStoppedMsg{}
	}
}

// WaitForOrder returns a command that waits for the next Order.
func WaitForOrder(w *input.Worker) tea.Cmd {
	return func() tea.Msg {
		o, ok := <-w.Orders()
		if !ok {
			return nil
		}
		return OrderMsg{Order: o}
	}
}

// WaitForWatch returns a command that waits for the next memo file change.
func WaitForWatch(w *watch.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-w.Events()
		if !ok {
			return nil
		}
		return WatchMsg(ev)
	}
}

// EditCmd suspends the TUI and runs the editor on path.
func EditCmd(program, path string) tea.Cmd {
	return tea.ExecProcess(editor.Command(program, path), func(err error) tea.Msg {
		return EditorFinishedMsg{Path: path, Err: err}
	})
}
