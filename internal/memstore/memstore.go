package memstore

import (
	"context"
	"sync"

	cl "music-catalog/pkg/catalog"

	"github.com/pkg/errors"
)

// Store represents an in-memory catalog store. It owns a single catalog and
// serializes access to it, so it is safe for concurrent use.
type Store struct {
	mu      sync.RWMutex
	catalog *cl.Catalog
}

// New creates a new, empty in-memory store.
func New() *Store {
	return &Store{catalog: cl.New()}
}

// read runs fn holding the read lock.
func (s *Store) read(ctx context.Context, fn func(c *cl.Catalog) error) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "read catalog")
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(s.catalog)
}

// write runs fn holding the write lock.
func (s *Store) write(ctx context.Context, fn func(c *cl.Catalog) error) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "write catalog")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.catalog)
}
