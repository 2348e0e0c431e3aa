package booking

import (
	"context"
	"errors"
	"time"

	sessionRepo "medinatours/database/repository/session"
	"medinatours/models"
)

// ErrMissingFields is returned when a booking request lacks the session id or
// the booker's email.
var ErrMissingFields = errors.New("session_id and user_email are required")

// Coordinator enforces at-most-one booker per coaching session. The open to
// booked transition is one-way; there is no unbook.
type Coordinator struct {
	Repo sessionRepo.Repository
}

// NewCoordinator constructs a Coordinator over the session repository.
func NewCoordinator(repo sessionRepo.Repository) *Coordinator {
	return &Coordinator{Repo: repo}
}

func (c *Coordinator) ListSessions(ctx context.Context) (map[string]models.CoachingSession, error) {
	return c.Repo.List(ctx)
}

// CreateSession seeds a new open session.
func (c *Coordinator) CreateSession(ctx context.Context, session models.CoachingSession) (string, error) {
	session.UserEmail = ""
	session.Status = models.SessionStatusOpen
	session.CreatedAt = time.Now().UnixMilli()
	return c.Repo.Create(ctx, session)
}

// BookSession claims the session for userEmail. The repository runs the
// check and the write as one conditional store transaction, so concurrent
// bookers cannot both win; the loser gets ErrAlreadyBooked and the session is
// left unchanged.
func (c *Coordinator) BookSession(ctx context.Context, sessionID, userEmail string) error {
	if sessionID == "" || userEmail == "" {
		return ErrMissingFields
	}
	return c.Repo.Book(ctx, sessionID, userEmail)
}
