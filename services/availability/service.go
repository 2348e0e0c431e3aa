package availability

import (
	"context"
	"errors"
	"time"

	availabilityRepo "medinatours/database/repository/availability"
	"medinatours/models"
)

// ErrMissingFields is returned when a slot submission lacks a required field.
var ErrMissingFields = errors.New("Missing required fields")

// Service owns availability slots: creation with validation, full-scan
// filtered listings, partial updates, deletion and policy-driven booking.
// Filtering is always a full-collection scan then a predicate; acceptable at
// this collection's size, there is no secondary index.
type Service struct {
	Repo   availabilityRepo.Repository
	Policy models.SlotBookingPolicy
}

// NewService constructs an availability Service with the configured booking
// policy.
func NewService(repo availabilityRepo.Repository, policy models.SlotBookingPolicy) *Service {
	return &Service{Repo: repo, Policy: policy}
}

// Add validates and stores a new slot. New slots are never booked and the
// create path is the only writer of createdAt.
func (s *Service) Add(ctx context.Context, slot models.Slot) (string, error) {
	if slot.Date == "" || slot.StartTime == "" || slot.EndTime == "" || slot.Type == "" {
		return "", ErrMissingFields
	}
	slot.IsBooked = false
	slot.CreatedAt = time.Now().UnixMilli()
	return s.Repo.Add(ctx, slot)
}

func (s *Service) ListAll(ctx context.Context) (map[string]models.Slot, error) {
	return s.Repo.List(ctx)
}

// ListByType returns the slots whose type matches exactly.
func (s *Service) ListByType(ctx context.Context, slotType string) (map[string]models.Slot, error) {
	all, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	filtered := map[string]models.Slot{}
	for id, slot := range all {
		if slot.Type == slotType {
			filtered[id] = slot
		}
	}
	return filtered, nil
}

// ListUpcoming returns the slots on or after today. Dates are zero-padded
// ISO strings, so lexicographic comparison orders them correctly.
func (s *Service) ListUpcoming(ctx context.Context, today string) (map[string]models.Slot, error) {
	all, err := s.Repo.List(ctx)
	if err != nil {
		return nil, err
	}
	upcoming := map[string]models.Slot{}
	for id, slot := range all {
		if slot.Date >= today {
			upcoming[id] = slot
		}
	}
	return upcoming, nil
}

func (s *Service) Update(ctx context.Context, id string, fields map[string]interface{}) error {
	return s.Repo.Update(ctx, id, fields)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

// BookSlot books a slot under the configured policy as one conditional write.
func (s *Service) BookSlot(ctx context.Context, id string) error {
	return s.Repo.Book(ctx, id, s.Policy)
}
