package store

import (
	"context"
	"sync"

	"github.com/matzehuels/protodiagram/pkg/diagram"
	"github.com/matzehuels/protodiagram/pkg/errors"
)

// MemoryStore keeps diagrams in a map. Contents are lost on exit.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]Record)}
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*Record, error) {
	if err := errors.ValidateID(id); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	rec.Document.Fields = append([]diagram.FieldSpec(nil), rec.Document.Fields...)
	return &rec, nil
}

func (s *MemoryStore) Put(ctx context.Context, id string, doc diagram.Document) (*Record, error) {
	if err := errors.ValidateID(id); err != nil {
		return nil, err
	}
	doc.Fields = append([]diagram.FieldSpec(nil), doc.Fields...)
	rec := newRecord(id, doc)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[id] = *rec
	return rec, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	if err := errors.ValidateID(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	return nil
}

func (s *MemoryStore) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.records))
	for id := range s.records {
		ids = append(ids, id)
	}
	return sortedIDs(ids), nil
}

func (s *MemoryStore) Close() error { return nil }

var _ Store = (*MemoryStore)(nil)
