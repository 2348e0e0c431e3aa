package newsletter

import (
	"context"
	"errors"
	"strings"

	subscriberRepo "medinatours/database/repository/subscriber"
	"medinatours/services/mailer"
)

var (
	// ErrEmailRequired is returned when no email is submitted.
	ErrEmailRequired = errors.New("Email is required")
	// ErrInvalidEmail is returned for obviously malformed addresses.
	ErrInvalidEmail = errors.New("Invalid email format")
	// ErrMissingContent is returned when a newsletter lacks subject or body.
	ErrMissingContent = errors.New("Subject and content are required")
	// ErrNoSubscribers is returned when a newsletter has nobody to go to.
	ErrNoSubscribers = errors.New("No subscribers found.")
)

// Service owns newsletter subscriptions and bulk sends.
type Service struct {
	Subs subscriberRepo.Repository
	Mail mailer.Sender
}

// NewService constructs a newsletter Service.
func NewService(subs subscriberRepo.Repository, mail mailer.Sender) *Service {
	return &Service{Subs: subs, Mail: mail}
}

// Subscribe registers an email. The repository keys subscribers by a
// sanitized form of the address, so re-subscribing the same raw email fails.
func (s *Service) Subscribe(ctx context.Context, email string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	return s.Subs.Subscribe(ctx, email)
}

// SendNewsletter mails the HTML content to every subscriber.
func (s *Service) SendNewsletter(ctx context.Context, subject, content string) error {
	if subject == "" || content == "" {
		return ErrMissingContent
	}
	emails, err := s.Subs.ListEmails(ctx)
	if err != nil {
		return err
	}
	if len(emails) == 0 {
		return ErrNoSubscribers
	}
	return s.Mail.Send(ctx, emails, subject, content)
}
