package memo

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrOutOfRange is returned for a stash position that does not exist.
var ErrOutOfRange = errors.New("index out of range")

// Stash is the ordered working set of memos. Removing an entry shifts the
// positions of every later entry.
type Stash struct {
	memos []*Memo
}

// NewStash creates an empty stash.
func NewStash() *Stash {
	return &Stash{}
}

// Append adds m at the end.
func (s *Stash) Append(m *Memo) {
	s.memos = append(s.memos, m)
}

// Remove takes the memo at idx out of the stash and returns it. The backing
// file is left alone; deleting it is up to the caller.
func (s *Stash) Remove(idx int) (*Memo, error) {
	if err := s.check(idx); err != nil {
		return nil, err
	}
	m := s.memos[idx]
	s.memos = slices.Delete(s.memos, idx, idx+1)
	return m, nil
}

// At returns the memo at idx.
func (s *Stash) At(idx int) (*Memo, error) {
	if err := s.check(idx); err != nil {
		return nil, err
	}
	return s.memos[idx], nil
}

// Path returns the backing file path of the memo at idx.
func (s *Stash) Path(idx int) (string, error) {
	m, err := s.At(idx)
	if err != nil {
		return "", err
	}
	return m.Path(), nil
}

// IndexOf returns the position of the memo backed by path, or -1.
func (s *Stash) IndexOf(path string) int {
	for i, m := range s.memos {
		if m.Path() == path {
			return i
		}
	}
	return -1
}

// Len returns the number of memos.
func (s *Stash) Len() int {
	return len(s.memos)
}

// All iterates memos in insertion order.
func (s *Stash) All() iter.Seq2[int, *Memo] {
	return func(yield func(int, *Memo) bool) {
		for i, m := range s.memos {
			if !yield(i, m) {
				return
			}
		}
	}
}

// Refresh refreshes every memo and returns the positions whose content
// changed. All memos are tried; the errors are joined.
func (s *Stash) Refresh() ([]int, error) {
	var changed []int
	var errs []error
	for i, m := range s.memos {
		before := m.Digest()
		if err := m.Refresh(); err != nil {
			errs = append(errs, err)
			continue
		}
		if m.Digest() != before {
			changed = append(changed, i)
		}
	}
	return changed, errors.Join(errs...)
}

func (s *Stash) check(idx int) error {
	if idx < 0 || idx >= len(s.memos) {
		return fmt.Errorf("%w: %d (stash holds %d)", ErrOutOfRange, idx, len(s.memos))
	}
	return nil
}
