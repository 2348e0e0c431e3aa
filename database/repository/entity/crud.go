// File: database/repository/entity/crud.go
package entityRepo

import (
	"context"
)

func (r *keyedRepo[T]) path(id string) string {
	return r.collection + "/" + id
}

func (r *keyedRepo[T]) List(ctx context.Context) (map[string]T, error) {
	var all map[string]T
	if err := r.store.Get(ctx, r.collection, &all); err != nil {
		return nil, err
	}
	if all == nil {
		all = map[string]T{}
	}
	return all, nil
}

func (r *keyedRepo[T]) GetByID(ctx context.Context, id string) (*T, error) {
	var rec *T
	if err := r.store.Get(ctx, r.path(id), &rec); err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, ErrNotFound
	}
	return rec, nil
}

func (r *keyedRepo[T]) Create(ctx context.Context, record T) (string, error) {
	return r.store.Push(ctx, r.collection, record)
}

func (r *keyedRepo[T]) exists(ctx context.Context, id string) (bool, error) {
	var probe interface{}
	if err := r.store.Get(ctx, r.path(id), &probe); err != nil {
		return false, err
	}
	return probe != nil, nil
}

func (r *keyedRepo[T]) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	ok, err := r.exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return r.store.Update(ctx, r.path(id), fields)
}

func (r *keyedRepo[T]) Delete(ctx context.Context, id string) error {
	ok, err := r.exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return r.store.Delete(ctx, r.path(id))
}
