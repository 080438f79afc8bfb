// Package history implements a file-backed append log of resolved commands,
// bounded to a configurable maximum size. Store persists entries as YAML via
// gopkg.in/yaml.v3 and is generic over the entry type.
package history

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// Store is a sequential, file-backed log of entries of type V. Every
// operation re-reads the file, and every mutating operation rewrites it
// whole: correctness matters more
// than throughput for a shell-invocation history. A Store is safe for
// concurrent use from a single process via its internal mutex; it does not
// coordinate across processes.
type Store[V any] struct {
	mu      sync.Mutex
	path    string
	maxSize int // 0 means unbounded
}

// New opens (or, if absent, creates) the file-backed store at path. A
// maxSize of 0 means the log is never evicted.
func New[V any](path string, maxSize int) (*Store[V], error) {
	s := &Store[V]{path: path, maxSize: maxSize}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.save(nil); err != nil {
			return nil, fmt.Errorf("sam/history: creating %s: %w", path, err)
		}
		return s, nil
	} else if err != nil {
		return nil, fmt.Errorf("sam/history: opening %s: %w", path, err)
	}
	if _, err := s.load(); err != nil {
		return nil, fmt.Errorf("sam/history: loading %s: %w", path, err)
	}
	return s, nil
}

func (s *Store[V]) load() ([]V, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	var entries []V
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *Store[V]) save(entries []V) error {
	data, err := yaml.Marshal(entries)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Push appends entry, evicting the oldest entry first if the store is at
// maxSize (mirrors SequentialState::push's max_size eviction).
func (s *Store[V]) Push(entry V) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.load()
	if err != nil {
		return fmt.Errorf("sam/history: push: %w", err)
	}
	entries = append(entries, entry)
	if s.maxSize > 0 && len(entries) > s.maxSize {
		entries = entries[len(entries)-s.maxSize:]
	}
	if err := s.save(entries); err != nil {
		return fmt.Errorf("sam/history: push: %w", err)
	}
	return nil
}

// Last returns the most recently pushed entry, or ok=false if the store is
// empty.
func (s *Store[V]) Last() (entry V, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.load()
	if err != nil {
		return entry, false, fmt.Errorf("sam/history: last: %w", err)
	}
	if len(entries) == 0 {
		return entry, false, nil
	}
	return entries[len(entries)-1], true, nil
}

// First returns the oldest entry still retained, or ok=false if the store
// is empty.
func (s *Store[V]) First() (entry V, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.load()
	if err != nil {
		return entry, false, fmt.Errorf("sam/history: first: %w", err)
	}
	if len(entries) == 0 {
		return entry, false, nil
	}
	return entries[0], true, nil
}

// Entries returns every retained entry, oldest first.
func (s *Store[V]) Entries() ([]V, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("sam/history: entries: %w", err)
	}
	return entries, nil
}

// Delete removes the entry at position (0-indexed, oldest first).
func (s *Store[V]) Delete(position int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	entries, err := s.load()
	if err != nil {
		return fmt.Errorf("sam/history: delete: %w", err)
	}
	if position < 0 || position >= len(entries) {
		return fmt.Errorf("sam/history: delete: position %d out of range [0,%d)", position, len(entries))
	}
	entries = append(entries[:position], entries[position+1:]...)
	if err := s.save(entries); err != nil {
		return fmt.Errorf("sam/history: delete: %w", err)
	}
	return nil
}

// EntrySelector picks an entry to delete from a history listing, the way
// the original's SequentialStateInteractor delegates selection to a
// caller-supplied strategy (e.g. the interactive resolver).
type EntrySelector[V any] interface {
	SelectEntry(entries []V) (position int, ok bool, err error)
}

// DeleteSelected removes whichever entry selector picks from the store's
// current entries, doing nothing if selector declines (ok=false).
func DeleteSelected[V any](s *Store[V], selector EntrySelector[V]) error {
	entries, err := s.Entries()
	if err != nil {
		return err
	}
	position, ok, err := selector.SelectEntry(entries)
	if err != nil {
		return fmt.Errorf("sam/history: selecting entry to delete: %w", err)
	}
	if !ok {
		return nil
	}
	return s.Delete(position)
}
