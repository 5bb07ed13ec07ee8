package memo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrInvalidName is returned for a memo name that cannot be a file name.
	ErrInvalidName = errors.New("invalid memo name")
	// ErrExists is returned when creating a memo whose file already exists.
	ErrExists = errors.New("memo already exists")
)

// ValidateName checks that name can be used as the base of a memo file.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: empty", ErrInvalidName)
	case strings.HasPrefix(name, "."):
		return fmt.Errorf("%w: %q starts with a dot", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidName, name)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %q contains a NUL byte", ErrInvalidName, name)
	}
	return nil
}

// FilePath returns the path of the memo called name inside dir.
func FilePath(dir, name string) string {
	return filepath.Join(dir, name+Ext)
}

// Create writes a zero-length file for a new memo and returns its memo. An
// existing file is never overwritten.
func Create(dir, name string) (*Memo, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	path := FilePath(dir, name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("%w: %s", ErrExists, path)
	}
	if err != nil {
		return nil, fmt.Errorf("create memo %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return nil, fmt.Errorf("create memo %s: %w", path, err)
	}

	return New(path), nil
}

// Delete removes the memo's backing file. The memo itself must be taken out
// of its stash separately.
func Delete(m *Memo) error {
	if err := os.Remove(m.Path()); err != nil {
		return fmt.Errorf("delete memo %s: %w", m.Path(), err)
	}
	return nil
}

// IsMemoFile reports whether path names a memo file.
func IsMemoFile(path string) bool {
	base := filepath.Base(path)
	return strings.HasSuffix(base, Ext) && len(base) > len(Ext) && !strings.HasPrefix(base, ".")
}

// LoadDir loads every memo file in dir into a new stash, sorted by file
// name. Any unreadable memo fails the whole load.
func LoadDir(dir string) (*Stash, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list memos in %s: %w", dir, err)
	}

	stash := NewStash()
	for _, e := range entries {
		if !e.Type().IsRegular() || !IsMemoFile(e.Name()) {
			continue
		}
		m, err := Load(filepath.Join(dir, e.Name()))
		if err != nil {
			return nil, err
		}
		stash.Append(m)
	}
	return stash, nil
}

// LoadNew appends every memo file in dir that s does not hold yet, in file
// name order, and returns how many were added. Files that cannot be read
// are skipped and their errors joined.
func (s *Stash) LoadNew(dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("list memos in %s: %w", dir, err)
	}

	added := 0
	var errs []error
	for _, e := range entries {
		if !e.Type().IsRegular() || !IsMemoFile(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		if s.IndexOf(path) >= 0 {
			continue
		}
		m, err := Load(path)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		s.Append(m)
		added++
	}
	return added, errors.Join(errs...)
}
