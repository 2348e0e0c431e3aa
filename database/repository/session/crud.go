// File: database/repository/session/crud.go
package sessionRepo

import (
	"context"

	"medinatours/database"
	entityRepo "medinatours/database/repository/entity"
	"medinatours/models"
)

func (r *keyedSessionRepo) List(ctx context.Context) (map[string]models.CoachingSession, error) {
	return r.crud.List(ctx)
}

func (r *keyedSessionRepo) Create(ctx context.Context, session models.CoachingSession) (string, error) {
	return r.crud.Create(ctx, session)
}

func (r *keyedSessionRepo) Book(ctx context.Context, id, userEmail string) error {
	return r.store.Transact(ctx, Collection+"/"+id, func(node database.TransactionNode) (interface{}, error) {
		var session *models.CoachingSession
		if err := node.Unmarshal(&session); err != nil {
			return nil, err
		}
		if session == nil {
			return nil, entityRepo.ErrNotFound
		}
		if session.UserEmail != "" {
			return nil, ErrAlreadyBooked
		}
		session.UserEmail = userEmail
		session.Status = models.SessionStatusBooked
		return *session, nil
	})
}
