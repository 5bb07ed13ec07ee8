// Package memo keeps an in-memory mirror of memo files and detects when a
// mirror has gone stale by comparing content digests.
package memo

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Ext is the file extension of memo files.
const Ext = ".md"

// EmptyDigest is the digest of empty content. A memo created for a new,
// empty file starts with it, so its first Refresh reads nothing more.
const EmptyDigest uint64 = 0xef46db3751d8e999

// Memo mirrors one backing file. The cached digest equals the digest of the
// cached content right after a successful Refresh; in between, the file on
// disk may have moved on.
type Memo struct {
	path string

	mu      sync.Mutex // serializes Refresh and guards content/digest
	content []byte
	digest  uint64
}

// New creates a memo for a file whose content is known to be empty.
// Nothing is read.
func New(path string) *Memo {
	return &Memo{
		path:   path,
		digest: EmptyDigest,
	}
}

// Load creates a memo and reads the file's current content.
func Load(path string) (*Memo, error) {
	m := New(path)
	if err := m.Refresh(); err != nil {
		return nil, err
	}
	return m, nil
}

// Path returns the backing file path.
func (m *Memo) Path() string {
	return m.path
}

// Name returns the memo name: the file name without its extension.
func (m *Memo) Name() string {
	return strings.TrimSuffix(filepath.Base(m.path), Ext)
}

// Content returns a copy of the cached content.
func (m *Memo) Content() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return bytes.Clone(m.content)
}

// Digest returns the cached digest.
func (m *Memo) Digest() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.digest
}

// Size returns the length of the cached content in bytes.
func (m *Memo) Size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.content)
}

// Preview returns the first non-blank line of the cached content.
func (m *Memo) Preview() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	for line := range bytes.Lines(m.content) {
		if s := strings.TrimSpace(string(line)); s != "" {
			return s
		}
	}
	return ""
}

// ReadLatestContent reads the whole backing file.
func (m *Memo) ReadLatestContent() ([]byte, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return nil, fmt.Errorf("read memo %s: %w", m.path, err)
	}
	return data, nil
}

// ComputeLatestHash reads the backing file and returns its digest. There is
// no modification-time shortcut: every call reads the whole file.
func (m *Memo) ComputeLatestHash() (uint64, error) {
	data, err := m.ReadLatestContent()
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(data), nil
}

// IsFresh reports whether the cached digest matches the file's current
// content. A file that cannot be read is never fresh. It does not modify
// the memo.
func (m *Memo) IsFresh() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.isFresh()
}

func (m *Memo) isFresh() bool {
	latest, err := m.ComputeLatestHash()
	return err == nil && latest == m.digest
}

// Refresh re-reads the file when it is not fresh. The freshness check, the
// content read and the digest each read the file separately, so a write
// that lands between them can leave content and digest describing
// different versions of the file. Content stays stale until the file
// changes again.
func (m *Memo) Refresh() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.isFresh() {
		return nil
	}

	content, err := m.ReadLatestContent()
	if err != nil {
		return err
	}
	digest, err := m.ComputeLatestHash()
	if err != nil {
		return err
	}

	m.content = content
	m.digest = digest
	return nil
}
