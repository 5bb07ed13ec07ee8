package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/memoleak/internal/app"
	"github.com/llehouerou/memoleak/internal/config"
	"github.com/llehouerou/memoleak/internal/editor"
	"github.com/llehouerou/memoleak/internal/errmsg"
	"github.com/llehouerou/memoleak/internal/icons"
	"github.com/llehouerou/memoleak/internal/input"
	"github.com/llehouerou/memoleak/internal/keymap"
	"github.com/llehouerou/memoleak/internal/logging"
	"github.com/llehouerou/memoleak/internal/memo"
	"github.com/llehouerou/memoleak/internal/state"
	"github.com/llehouerou/memoleak/internal/watch"
)

// session holds everything opened at startup that must be closed on exit.
type session struct {
	opts    app.Options
	logFile io.Closer
	state   *state.Manager
	watcher *watch.Watcher
}

func (s *session) Close() {
	if s.watcher != nil {
		_ = s.watcher.Close()
	}
	if s.state != nil {
		if err := s.state.Close(); err != nil {
			s.opts.Log.Warn("close state", "error", err)
		}
	}
	if s.logFile != nil {
		_ = s.logFile.Close()
	}
}

func setup(ctx context.Context) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	paths, err := config.ResolvePaths(cfg)
	if err != nil {
		return nil, err
	}
	if err := paths.Ensure(); err != nil {
		return nil, err
	}

	icons.Init(cfg.Icons)

	log, logFile, err := logging.Open(paths.LogFile, cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	s := &session{logFile: logFile}
	s.opts.Log = log

	bindings, err := keymap.WithOverrides(keymap.Bindings, cfg.Bindings)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("bindings: %w", err)
	}
	table, err := keymap.NewTable(bindings)
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("bindings: %w", err)
	}
	for _, pair := range table.Shadowed() {
		log.Warn("keymap can never fire", "keymap", pair[1].String(), "shadowed_by", pair[0].String())
	}

	stash, err := memo.LoadDir(paths.Memos)
	if err != nil {
		s.Close()
		return nil, errmsg.Wrap(errmsg.OpMemoLoad, err)
	}

	s.state, err = state.Open(paths.StateDB)
	if err != nil {
		s.Close()
		return nil, errmsg.Wrap(errmsg.OpStateLoad, fmt.Errorf("open state: %w", err))
	}

	// The app works without live reload.
	if s.watcher, err = watch.New(paths.Memos, log); err != nil {
		log.Warn("memo directory not watched", "dir", paths.Memos, "error", err)
		s.watcher = nil
	}

	s.opts = app.Options{
		Context: ctx,
		Stash:   stash,
		MemoDir: paths.Memos,
		Editor:  editor.Resolve(cfg.Editor),
		Table:   table,
		Worker:  input.NewWorker(table, log),
		State:   s.state,
		Watcher: s.watcher,
		Log:     log,
	}

	log.Info("memoleak started",
		"memos", stash.Len(),
		"dir", paths.Memos,
		"editor", s.opts.Editor,
	)
	return s, nil
}

func run(s *session) error {
	p := tea.NewProgram(app.New(s.opts), tea.WithAltScreen())
	_, err := p.Run()

	stats := s.opts.Worker.Stats()
	s.opts.Log.Info("memoleak stopped",
		slog.Uint64("keys", stats.Keys()),
		slog.Uint64("orders", stats.Matched()),
		slog.Uint64("abandoned", stats.Abandoned()),
		slog.Uint64("untranslated", stats.Untranslated()),
	)
	return err
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())

	s, err := setup(ctx)
	if err != nil {
		cancel()
		fmt.Fprintln(os.Stderr, errmsg.FormatAs(errmsg.OpInitialize, err))
		os.Exit(1)
	}

	err = run(s)
	// Stops the input worker.
	cancel()
	s.Close()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}
