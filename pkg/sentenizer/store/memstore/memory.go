package memstore

import (
	"context"
	"fmt"
	"sync"

	"github.com/cognicore/sentenizer/pkg/sentenizer/abbrev"
	"github.com/cognicore/sentenizer/pkg/sentenizer/internalerr"
)

// Store is an in-memory implementation of store.Store for tests.
type Store struct {
	mu     sync.RWMutex
	tables map[abbrev.Class][]string
}

// New creates a new in-memory store.
func New() *Store {
	return &Store{tables: make(map[abbrev.Class][]string)}
}

// Close implements store.Store.
func (s *Store) Close() error { return nil }

// UpsertTable implements store.Store.
func (s *Store) UpsertTable(ctx context.Context, class abbrev.Class, keys []string) error {
	t, err := abbrev.NewTables(map[abbrev.Class][]string{class: keys})
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tables[class] = t.Keys(class)
	return nil
}

// Keys implements store.Store.
func (s *Store) Keys(ctx context.Context, class abbrev.Class) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.tables[class]...), nil
}

// LoadTables implements store.Store.
func (s *Store) LoadTables(ctx context.Context) (*abbrev.Tables, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make(map[abbrev.Class][]string, len(s.tables))
	total := 0
	for c, keys := range s.tables {
		entries[c] = append([]string(nil), keys...)
		total += len(keys)
	}
	if total == 0 {
		return nil, fmt.Errorf("abbreviation tables: %w", internalerr.ErrNotFound)
	}
	return abbrev.NewTables(entries)
}
