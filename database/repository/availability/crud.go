// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"

	"medinatours/database"
	entityRepo "medinatours/database/repository/entity"
	"medinatours/models"
)

func (r *keyedAvailabilityRepo) Add(ctx context.Context, slot models.Slot) (string, error) {
	return r.crud.Create(ctx, slot)
}

func (r *keyedAvailabilityRepo) List(ctx context.Context) (map[string]models.Slot, error) {
	return r.crud.List(ctx)
}

func (r *keyedAvailabilityRepo) GetByID(ctx context.Context, id string) (*models.Slot, error) {
	return r.crud.GetByID(ctx, id)
}

func (r *keyedAvailabilityRepo) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return r.crud.Update(ctx, id, fields)
}

func (r *keyedAvailabilityRepo) Delete(ctx context.Context, id string) error {
	return r.crud.Delete(ctx, id)
}

func (r *keyedAvailabilityRepo) Book(ctx context.Context, id string, policy models.SlotBookingPolicy) error {
	return r.store.Transact(ctx, Collection+"/"+id, func(node database.TransactionNode) (interface{}, error) {
		var slot *models.Slot
		if err := node.Unmarshal(&slot); err != nil {
			return nil, err
		}
		if slot == nil {
			return nil, entityRepo.ErrNotFound
		}

		switch policy {
		case models.PolicyFlag:
			if slot.IsBooked {
				return nil, ErrSlotUnavailable
			}
			slot.IsBooked = true
		case models.PolicyDecrement:
			if slot.AvailableSpots <= 0 {
				return nil, ErrSlotUnavailable
			}
			slot.AvailableSpots--
		default: // models.PolicyBoth
			if slot.IsBooked || slot.AvailableSpots <= 0 {
				return nil, ErrSlotUnavailable
			}
			slot.AvailableSpots--
			if slot.AvailableSpots == 0 {
				slot.IsBooked = true
			}
		}
		return *slot, nil
	})
}
