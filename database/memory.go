package database

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore is an in-memory KeyedStore used by tests in place of the
// Realtime Database. It only understands the two path shapes the
// repositories use: "collection" and "collection/id".
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]map[string]json.RawMessage
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string]json.RawMessage)}
}

func splitPath(path string) (collection, id string) {
	parts := strings.SplitN(strings.Trim(path, "/"), "/", 2)
	if len(parts) == 2 {
		return parts[0], parts[1]
	}
	return parts[0], ""
}

func (s *MemoryStore) raw(path string) (json.RawMessage, bool) {
	collection, id := splitPath(path)
	coll, ok := s.data[collection]
	if !ok {
		return nil, false
	}
	if id == "" {
		out, err := json.Marshal(coll)
		if err != nil {
			return nil, false
		}
		return out, true
	}
	rec, ok := coll[id]
	return rec, ok
}

func (s *MemoryStore) Get(ctx context.Context, path string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.raw(path)
	if !ok {
		return json.Unmarshal([]byte("null"), v)
	}
	return json.Unmarshal(raw, v)
}

func (s *MemoryStore) Set(ctx context.Context, path string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.set(path, v)
}

func (s *MemoryStore) set(path string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	collection, id := splitPath(path)
	if s.data[collection] == nil {
		s.data[collection] = make(map[string]json.RawMessage)
	}
	if id == "" {
		var coll map[string]json.RawMessage
		if err := json.Unmarshal(raw, &coll); err != nil {
			return err
		}
		s.data[collection] = coll
		return nil
	}
	s.data[collection][id] = raw
	return nil
}

func (s *MemoryStore) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := make(map[string]interface{})
	if raw, ok := s.raw(path); ok {
		if err := json.Unmarshal(raw, &merged); err != nil {
			return err
		}
	}
	for k, v := range fields {
		merged[k] = v
	}
	return s.set(path, merged)
}

func (s *MemoryStore) Delete(ctx context.Context, path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection, id := splitPath(path)
	if id == "" {
		delete(s.data, collection)
		return nil
	}
	delete(s.data[collection], id)
	return nil
}

func (s *MemoryStore) Push(ctx context.Context, path string, v interface{}) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := "-" + uuid.New().String()
	if err := s.set(path+"/"+id, v); err != nil {
		return "", err
	}
	return id, nil
}

type memoryNode struct {
	raw json.RawMessage
}

func (n memoryNode) Unmarshal(v interface{}) error {
	if n.raw == nil {
		return json.Unmarshal([]byte("null"), v)
	}
	return json.Unmarshal(n.raw, v)
}

func (s *MemoryStore) Transact(ctx context.Context, path string, fn UpdateFn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, _ := s.raw(path)
	next, err := fn(memoryNode{raw: raw})
	if err != nil {
		return err
	}
	return s.set(path, next)
}
