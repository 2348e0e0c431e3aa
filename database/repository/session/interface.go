// File: database/repository/session/interface.go
package sessionRepo

import (
	"context"
	"errors"

	"medinatours/database"
	entityRepo "medinatours/database/repository/entity"
	"medinatours/models"
)

// Collection is the coaching sessions collection path.
const Collection = "coaching_sessions"

// ErrAlreadyBooked is returned when a session already carries a booker.
var ErrAlreadyBooked = errors.New("session already booked")

type Repository interface {
	List(ctx context.Context) (map[string]models.CoachingSession, error)
	Create(ctx context.Context, session models.CoachingSession) (string, error)
	// Book claims the session for userEmail. The check and the write run as a
	// single conditional store transaction, so two concurrent bookers cannot
	// both win.
	Book(ctx context.Context, id, userEmail string) error
}

type keyedSessionRepo struct {
	store database.KeyedStore
	crud  entityRepo.Repository[models.CoachingSession]
}

// NewKeyedSessionRepo constructs a Repository over the coaching sessions collection.
func NewKeyedSessionRepo(store database.KeyedStore) Repository {
	return &keyedSessionRepo{
		store: store,
		crud:  entityRepo.New[models.CoachingSession](store, Collection),
	}
}
