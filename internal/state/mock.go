// internal/state/mock.go
package state

import "time"

// Mock is an in-memory test double for Manager.
type Mock struct {
	Selection *Selection
	Edits     map[string]time.Time
	Closed    bool

	// Err, when set, is returned by every method that can fail.
	Err error
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{Edits: make(map[string]time.Time)}
}

func (m *Mock) SaveSelection(sel Selection) {
	m.Selection = &sel
}

func (m *Mock) GetSelection() (*Selection, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Selection, nil
}

func (m *Mock) RecordEdit(name string, at time.Time) error {
	if m.Err != nil {
		return m.Err
	}
	m.Edits[name] = at
	return nil
}

func (m *Mock) LastEdits() (map[string]time.Time, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Edits, nil
}

func (m *Mock) Forget(name string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Edits, name)
	if m.Selection != nil && m.Selection.MemoName == name {
		m.Selection.MemoName = ""
	}
	return nil
}

func (m *Mock) Close() error {
	m.Closed = true
	return nil
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
