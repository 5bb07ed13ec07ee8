// Package state persists small bits of UI state between runs: the selected
// memo and when each memo was last edited.
package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

const saveDebounce = 500 * time.Millisecond

type Manager struct {
	db        *sql.DB
	saveMu    sync.Mutex
	saveTimer *time.Timer
	pending   *Selection
}

// Open opens (or creates) the state database at dbPath.
func Open(dbPath string) (*Manager, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	m.saveMu.Lock()
	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}
	pending := m.pending
	m.pending = nil
	m.saveMu.Unlock()

	// Flush pending state
	if pending != nil {
		_ = saveSelection(m.db, *pending)
	}

	return m.db.Close()
}

func (m *Manager) GetSelection() (*Selection, error) {
	return getSelection(m.db)
}

// SaveSelection stores sel after a short quiet period; rapid cursor moves
// only write the last one.
func (m *Manager) SaveSelection(sel Selection) {
	m.saveMu.Lock()
	defer m.saveMu.Unlock()

	m.pending = &sel

	if m.saveTimer != nil {
		m.saveTimer.Stop()
	}

	m.saveTimer = time.AfterFunc(saveDebounce, func() {
		m.saveMu.Lock()
		pending := m.pending
		m.pending = nil
		m.saveMu.Unlock()

		if pending != nil {
			_ = saveSelection(m.db, *pending)
		}
	})
}

func (m *Manager) RecordEdit(name string, at time.Time) error {
	return recordEdit(m.db, name, at)
}

func (m *Manager) LastEdits() (map[string]time.Time, error) {
	return lastEdits(m.db)
}

func (m *Manager) Forget(name string) error {
	return forget(m.db, name)
}
