package database

import (
	"context"

	"firebase.google.com/go/v4/db"
)

// TransactionNode exposes the current value at a path inside a transaction.
type TransactionNode interface {
	Unmarshal(v interface{}) error
}

// UpdateFn computes the new value for a path inside a transaction. Returning
// an error aborts the transaction and leaves the path untouched.
type UpdateFn func(TransactionNode) (interface{}, error)

// KeyedStore is the realtime hierarchical key-value store the whole system
// persists into. Paths are slash-separated, "collection" or "collection/id".
// Get unmarshals JSON null into v when the path is absent.
type KeyedStore interface {
	Get(ctx context.Context, path string, v interface{}) error
	Set(ctx context.Context, path string, v interface{}) error
	Update(ctx context.Context, path string, fields map[string]interface{}) error
	Delete(ctx context.Context, path string) error
	// Push appends v under path with a fresh store-generated key and returns it.
	Push(ctx context.Context, path string, v interface{}) (string, error)
	// Transact runs fn as a compare-and-swap write on path.
	Transact(ctx context.Context, path string, fn UpdateFn) error
}

type rtdbStore struct {
	client *db.Client
}

// NewRTDBStore wraps a Firebase Realtime Database client as a KeyedStore.
func NewRTDBStore(client *db.Client) KeyedStore {
	return &rtdbStore{client: client}
}

func (s *rtdbStore) Get(ctx context.Context, path string, v interface{}) error {
	return s.client.NewRef(path).Get(ctx, v)
}

func (s *rtdbStore) Set(ctx context.Context, path string, v interface{}) error {
	return s.client.NewRef(path).Set(ctx, v)
}

func (s *rtdbStore) Update(ctx context.Context, path string, fields map[string]interface{}) error {
	return s.client.NewRef(path).Update(ctx, fields)
}

func (s *rtdbStore) Delete(ctx context.Context, path string) error {
	return s.client.NewRef(path).Delete(ctx)
}

func (s *rtdbStore) Push(ctx context.Context, path string, v interface{}) (string, error) {
	ref, err := s.client.NewRef(path).Push(ctx, v)
	if err != nil {
		return "", err
	}
	return ref.Key, nil
}

func (s *rtdbStore) Transact(ctx context.Context, path string, fn UpdateFn) error {
	return s.client.NewRef(path).Transaction(ctx, func(node db.TransactionNode) (interface{}, error) {
		return fn(node)
	})
}
