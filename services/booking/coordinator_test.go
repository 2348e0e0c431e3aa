package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medinatours/database"
	entityRepo "medinatours/database/repository/entity"
	sessionRepo "medinatours/database/repository/session"
	"medinatours/models"
)

func newTestCoordinator() *Coordinator {
	return NewCoordinator(sessionRepo.NewKeyedSessionRepo(database.NewMemoryStore()))
}

func TestCreateSessionStartsOpen(t *testing.T) {
	ctx := context.Background()
	coord := newTestCoordinator()

	id, err := coord.CreateSession(ctx, models.CoachingSession{
		Date:      "2026-09-20",
		StartTime: "09:00",
		EndTime:   "10:00",
		UserEmail: "sneaky@example.com", // stripped on create
		Status:    models.SessionStatusBooked,
	})
	require.NoError(t, err)

	sessions, err := coord.ListSessions(ctx)
	require.NoError(t, err)
	require.Contains(t, sessions, id)
	assert.Empty(t, sessions[id].UserEmail)
	assert.Equal(t, models.SessionStatusOpen, sessions[id].Status)
}

func TestBookSessionClaimsOpenSession(t *testing.T) {
	ctx := context.Background()
	coord := newTestCoordinator()

	id, err := coord.CreateSession(ctx, models.CoachingSession{Date: "2026-09-20"})
	require.NoError(t, err)

	require.NoError(t, coord.BookSession(ctx, id, "user@example.com"))

	sessions, err := coord.ListSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "user@example.com", sessions[id].UserEmail)
	assert.Equal(t, models.SessionStatusBooked, sessions[id].Status)
}

func TestBookSessionSecondBookerLoses(t *testing.T) {
	ctx := context.Background()
	coord := newTestCoordinator()

	id, err := coord.CreateSession(ctx, models.CoachingSession{Date: "2026-09-20"})
	require.NoError(t, err)

	require.NoError(t, coord.BookSession(ctx, id, "first@example.com"))

	err = coord.BookSession(ctx, id, "second@example.com")
	assert.ErrorIs(t, err, sessionRepo.ErrAlreadyBooked)

	sessions, err := coord.ListSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, "first@example.com", sessions[id].UserEmail, "loser must not overwrite the winner")
}

func TestBookSessionMissingSession(t *testing.T) {
	coord := newTestCoordinator()

	err := coord.BookSession(context.Background(), "missing", "user@example.com")
	assert.ErrorIs(t, err, entityRepo.ErrNotFound)
}

func TestBookSessionValidatesInput(t *testing.T) {
	coord := newTestCoordinator()

	err := coord.BookSession(context.Background(), "", "user@example.com")
	assert.ErrorIs(t, err, ErrMissingFields)

	err = coord.BookSession(context.Background(), "some-id", "")
	assert.ErrorIs(t, err, ErrMissingFields)
}
