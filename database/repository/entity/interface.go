// File: database/repository/entity/interface.go
package entityRepo

import (
	"context"
	"errors"

	"medinatours/database"
)

// ErrNotFound is returned when the requested key is absent from the collection.
var ErrNotFound = errors.New("entity not found")

// Repository is a generic CRUD surface over one flat keyed collection.
// No operation spans collections. Create is the only path that assigns ids.
type Repository[T any] interface {
	List(ctx context.Context) (map[string]T, error)
	GetByID(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, record T) (string, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
}

type keyedRepo[T any] struct {
	store      database.KeyedStore
	collection string
}

// New constructs a Repository over the named collection.
func New[T any](store database.KeyedStore, collection string) Repository[T] {
	return &keyedRepo[T]{store: store, collection: collection}
}
