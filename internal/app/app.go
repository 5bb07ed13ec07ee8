// internal/app/app.go
package app

import (
	"context"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/memoleak/internal/errmsg"
	"github.com/llehouerou/memoleak/internal/input"
	"github.com/llehouerou/memoleak/internal/keymap"
	"github.com/llehouerou/memoleak/internal/memo"
	"github.com/llehouerou/memoleak/internal/state"
	"github.com/llehouerou/memoleak/internal/ui/helpbindings"
	"github.com/llehouerou/memoleak/internal/ui/memolist"
	"github.com/llehouerou/memoleak/internal/ui/prompt"
	"github.com/llehouerou/memoleak/internal/watch"
)

// chrome is the number of screen rows not used by the memo list: header,
// status line and help line.
const chrome = 3

// Options holds everything the model needs. Watcher may be nil.
type Options struct {
	// Context bounds the input worker. The caller cancels it once the
	// program exits.
	Context context.Context
	Stash   *memo.Stash
	MemoDir string
	Editor  string
	Table   *keymap.Table
	Worker  *input.Worker
	State   state.Interface
	Watcher *watch.Watcher
	Log     *slog.Logger
}

// Model is the root application model.
type Model struct {
	ctx     context.Context
	stash   *memo.Stash
	memoDir string
	editor  string
	table   *keymap.Table
	worker  *input.Worker
	state   state.Interface
	watcher *watch.Watcher
	log     *slog.Logger

	list   memolist.Model
	prompt prompt.Model
	help   helpbindings.Model
	edits  map[string]time.Time

	status    string
	statusErr bool

	width  int
	height int
}

// New creates the model and restores the saved selection.
func New(opts Options) Model {
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	m := Model{
		ctx:     ctx,
		stash:   opts.Stash,
		memoDir: opts.MemoDir,
		editor:  opts.Editor,
		table:   opts.Table,
		worker:  opts.Worker,
		state:   opts.State,
		watcher: opts.Watcher,
		log:     log,
		list:    memolist.New(opts.Stash),
		prompt:  prompt.New(),
		help:    helpbindings.New(opts.Table),
		edits:   make(map[string]time.Time),
	}

	if edits, err := m.state.LastEdits(); err != nil {
		m.setError(errmsg.Format(errmsg.OpStateLoad, err), err)
	} else if edits != nil {
		m.edits = edits
	}
	m.list.SetEdits(m.edits)
	m.list.SetEmptyText(m.emptyText())

	if sel, err := m.state.GetSelection(); err != nil {
		m.setError(errmsg.Format(errmsg.OpStateLoad, err), err)
	} else if sel != nil && sel.MemoName != "" {
		if idx := m.stash.IndexOf(memo.FilePath(m.memoDir, sel.MemoName)); idx >= 0 {
			m.list.Select(idx)
		}
	}

	return m
}

// Init implements tea.Model. It starts the input worker, which only begins
// reading keys once the terminal is set up.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		RunWorker(m.ctx, m.worker),
		WaitForOrder(m.worker),
		WaitForWatch(m.watcher),
	)
}

// selected returns the memo under the cursor, or nil for an empty stash.
func (m Model) selected() *memo.Memo {
	if m.stash.Len() == 0 {
		return nil
	}
	mm, err := m.stash.At(m.list.Selected())
	if err != nil {
		return nil
	}
	return mm
}

func (m *Model) saveSelection() {
	if mm := m.selected(); mm != nil {
		m.state.SaveSelection(state.Selection{MemoName: mm.Name()})
	}
}

func (m *Model) setStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) setError(msg string, err error) {
	m.log.Error(msg, "error", err)
	m.status = msg
	m.statusErr = true
}

func (m *Model) clearStatus() {
	m.status = ""
	m.statusErr = false
}
