package availability

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medinatours/database"
	availabilityRepo "medinatours/database/repository/availability"
	entityRepo "medinatours/database/repository/entity"
	"medinatours/models"
)

func newTestService(policy models.SlotBookingPolicy) *Service {
	repo := availabilityRepo.NewKeyedAvailabilityRepo(database.NewMemoryStore())
	return NewService(repo, policy)
}

func validSlot() models.Slot {
	return models.Slot{
		Date:           "2026-09-15",
		StartTime:      "10:00",
		EndTime:        "12:00",
		Type:           models.SlotTypePrivateTour,
		AvailableSpots: 2,
	}
}

func TestAddRejectsMissingFields(t *testing.T) {
	svc := newTestService(models.PolicyBoth)

	slot := validSlot()
	slot.Date = ""
	_, err := svc.Add(context.Background(), slot)
	assert.ErrorIs(t, err, ErrMissingFields)

	slot = validSlot()
	slot.Type = ""
	_, err = svc.Add(context.Background(), slot)
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestAddStoresUnbookedSlot(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(models.PolicyBoth)

	slot := validSlot()
	slot.IsBooked = true // clients cannot pre-book a slot
	id, err := svc.Add(ctx, slot)
	require.NoError(t, err)

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Contains(t, all, id)
	assert.False(t, all[id].IsBooked)
	assert.NotZero(t, all[id].CreatedAt)
}

func TestListByType(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(models.PolicyBoth)

	tour := validSlot()
	tourID, err := svc.Add(ctx, tour)
	require.NoError(t, err)

	coaching := validSlot()
	coaching.Type = models.SlotTypeCoachingSession
	_, err = svc.Add(ctx, coaching)
	require.NoError(t, err)

	tours, err := svc.ListByType(ctx, models.SlotTypePrivateTour)
	require.NoError(t, err)
	assert.Len(t, tours, 1)
	assert.Contains(t, tours, tourID)
}

func TestListUpcomingFiltersPastDates(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(models.PolicyBoth)

	past := validSlot()
	past.Date = "2026-01-01"
	_, err := svc.Add(ctx, past)
	require.NoError(t, err)

	today := validSlot()
	today.Date = "2026-06-15"
	todayID, err := svc.Add(ctx, today)
	require.NoError(t, err)

	future := validSlot()
	future.Date = "2026-12-31"
	futureID, err := svc.Add(ctx, future)
	require.NoError(t, err)

	upcoming, err := svc.ListUpcoming(ctx, "2026-06-15")
	require.NoError(t, err)
	assert.Len(t, upcoming, 2)
	assert.Contains(t, upcoming, todayID, "today counts as upcoming")
	assert.Contains(t, upcoming, futureID)
}

func TestUpdateNotFound(t *testing.T) {
	svc := newTestService(models.PolicyBoth)

	err := svc.Update(context.Background(), "missing", map[string]interface{}{"date": "2026-10-01"})
	assert.ErrorIs(t, err, entityRepo.ErrNotFound)
}

func TestDeleteNotFound(t *testing.T) {
	svc := newTestService(models.PolicyBoth)

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, entityRepo.ErrNotFound)
}

func TestBookSlotFlagPolicy(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(models.PolicyFlag)

	id, err := svc.Add(ctx, validSlot())
	require.NoError(t, err)

	require.NoError(t, svc.BookSlot(ctx, id))

	err = svc.BookSlot(ctx, id)
	assert.ErrorIs(t, err, availabilityRepo.ErrSlotUnavailable)
}

func TestBookSlotDecrementPolicy(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(models.PolicyDecrement)

	id, err := svc.Add(ctx, validSlot())
	require.NoError(t, err)

	require.NoError(t, svc.BookSlot(ctx, id))
	require.NoError(t, svc.BookSlot(ctx, id))

	err = svc.BookSlot(ctx, id)
	assert.ErrorIs(t, err, availabilityRepo.ErrSlotUnavailable)
}

func TestBookSlotBothPolicyFlipsFlagAtZero(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(models.PolicyBoth)

	id, err := svc.Add(ctx, validSlot())
	require.NoError(t, err)

	require.NoError(t, svc.BookSlot(ctx, id))

	all, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, all[id].AvailableSpots)
	assert.False(t, all[id].IsBooked)

	require.NoError(t, svc.BookSlot(ctx, id))

	all, err = svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, all[id].AvailableSpots)
	assert.True(t, all[id].IsBooked, "last spot marks the slot booked")

	err = svc.BookSlot(ctx, id)
	assert.ErrorIs(t, err, availabilityRepo.ErrSlotUnavailable)
}

func TestBookSlotNotFound(t *testing.T) {
	svc := newTestService(models.PolicyBoth)

	err := svc.BookSlot(context.Background(), "missing")
	assert.ErrorIs(t, err, entityRepo.ErrNotFound)
}
