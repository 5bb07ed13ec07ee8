// internal/state/interface.go
package state

import "time"

// Interface defines the state manager contract for dependency injection and testing.
type Interface interface {
	SaveSelection(sel Selection)
	GetSelection() (*Selection, error)
	RecordEdit(name string, at time.Time) error
	LastEdits() (map[string]time.Time, error)
	Forget(name string) error
	Close() error
}

// Verify Manager implements Interface at compile time.
var _ Interface = (*Manager)(nil)
