package newsletter

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medinatours/database"
	subscriberRepo "medinatours/database/repository/subscriber"
)

type fakeSender struct {
	to      []string
	subject string
	body    string
	calls   int
}

func (f *fakeSender) Send(ctx context.Context, to []string, subject, htmlBody string) error {
	f.to = to
	f.subject = subject
	f.body = htmlBody
	f.calls++
	return nil
}

func newTestService() (*Service, *fakeSender) {
	sender := &fakeSender{}
	repo := subscriberRepo.NewKeyedSubscriberRepo(database.NewMemoryStore())
	return NewService(repo, sender), sender
}

func TestSubscribeValidation(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Subscribe(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmailRequired)

	err = svc.Subscribe(context.Background(), "not-an-email")
	assert.ErrorIs(t, err, ErrInvalidEmail)
}

func TestSubscribeDuplicate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	require.NoError(t, svc.Subscribe(ctx, "user@example.com"))

	err := svc.Subscribe(ctx, "user@example.com")
	assert.ErrorIs(t, err, subscriberRepo.ErrAlreadySubscribed)
}

func TestSubscribeDottedEmailsCollideOnSanitizedKey(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	require.NoError(t, svc.Subscribe(ctx, "a.b@example.com"))

	// "a.b" and "a_b" sanitize to the same key, so the second one conflicts.
	err := svc.Subscribe(ctx, "a_b@example_com")
	assert.ErrorIs(t, err, subscriberRepo.ErrAlreadySubscribed)
}

func TestSendNewsletterValidation(t *testing.T) {
	svc, _ := newTestService()

	err := svc.SendNewsletter(context.Background(), "", "body")
	assert.ErrorIs(t, err, ErrMissingContent)

	err = svc.SendNewsletter(context.Background(), "subject", "")
	assert.ErrorIs(t, err, ErrMissingContent)
}

func TestSendNewsletterNoSubscribers(t *testing.T) {
	svc, sender := newTestService()

	err := svc.SendNewsletter(context.Background(), "News", "<p>hi</p>")
	assert.ErrorIs(t, err, ErrNoSubscribers)
	assert.Zero(t, sender.calls)
}

func TestSendNewsletterReachesAllSubscribers(t *testing.T) {
	ctx := context.Background()
	svc, sender := newTestService()

	require.NoError(t, svc.Subscribe(ctx, "a@example.com"))
	require.NoError(t, svc.Subscribe(ctx, "b@example.com"))

	require.NoError(t, svc.SendNewsletter(ctx, "News", "<p>hi</p>"))

	assert.Equal(t, 1, sender.calls)
	assert.ElementsMatch(t, []string{"a@example.com", "b@example.com"}, sender.to)
	assert.Equal(t, "News", sender.subject)
}
