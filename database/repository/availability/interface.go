// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"errors"

	"medinatours/database"
	entityRepo "medinatours/database/repository/entity"
	"medinatours/models"
)

// Collection is the availability collection path.
const Collection = "availability"

// ErrSlotUnavailable is returned when a booking attempt hits a slot that is
// already booked or has no spots left.
var ErrSlotUnavailable = errors.New("slot already booked or out of spots")

type Repository interface {
	Add(ctx context.Context, slot models.Slot) (string, error)
	List(ctx context.Context) (map[string]models.Slot, error)
	GetByID(ctx context.Context, id string) (*models.Slot, error)
	Update(ctx context.Context, id string, fields map[string]interface{}) error
	Delete(ctx context.Context, id string) error
	// Book applies the configured booking policy to the slot as a single
	// conditional write on the store.
	Book(ctx context.Context, id string, policy models.SlotBookingPolicy) error
}

type keyedAvailabilityRepo struct {
	store database.KeyedStore
	crud  entityRepo.Repository[models.Slot]
}

// NewKeyedAvailabilityRepo constructs a Repository over the availability collection.
func NewKeyedAvailabilityRepo(store database.KeyedStore) Repository {
	return &keyedAvailabilityRepo{
		store: store,
		crud:  entityRepo.New[models.Slot](store, Collection),
	}
}
