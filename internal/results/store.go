// Package results keeps the most recent simulation result per
// generator kind so a later export request can retrieve it. The store
// is an explicit handle owned by the caller, not a package global;
// concurrent writers to the same kind race and the last write wins,
// which is acceptable for a single-user dashboard.
package results

import (
	"encoding/csv"
	"errors"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dparker/statlab/internal/stats"
)

// ErrNotFound is returned when no result is stored under a kind.
var ErrNotFound = errors.New("result not found")

// Entry is one stored simulation result.
type Entry struct {
	ID        string       `json:"id"`
	Kind      string       `json:"kind"`
	CreatedAt time.Time    `json:"created_at"`
	Sequence  []float64    `json:"sequence"`
	Stats     stats.Report `json:"stats"`
}

// Store maps simulation kinds to their latest result.
type Store struct {
	mu      sync.RWMutex
	entries map[string]*Entry
}

// New creates an empty store.
func New() *Store {
	return &Store{entries: make(map[string]*Entry)}
}

// Put stores seq and its report under kind, replacing any previous
// entry, and returns the new entry.
func (s *Store) Put(kind string, seq []float64, report stats.Report) *Entry {
	e := &Entry{
		ID:        uuid.New().String(),
		Kind:      kind,
		CreatedAt: time.Now().UTC(),
		Sequence:  seq,
		Stats:     report,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[kind] = e
	return e
}

// Get returns the latest entry for kind.
func (s *Store) Get(kind string) (*Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[kind]
	if !ok {
		return nil, ErrNotFound
	}
	return e, nil
}

// Kinds lists the kinds that currently hold a result.
func (s *Store) Kinds() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	kinds := make([]string, 0, len(s.entries))
	for k := range s.entries {
		kinds = append(kinds, k)
	}
	return kinds
}

// ExportCSV writes the stored sequence for kind as index,value rows
// with a header.
func (s *Store) ExportCSV(kind string, w io.Writer) error {
	e, err := s.Get(kind)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"index", "value"}); err != nil {
		return err
	}
	for i, v := range e.Sequence {
		rec := []string{strconv.Itoa(i), strconv.FormatFloat(v, 'f', -1, 64)}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
