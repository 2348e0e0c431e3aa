// File: database/repository/subscriber/interface.go
package subscriberRepo

import (
	"context"
	"errors"
	"strings"

	"medinatours/database"
	"medinatours/models"
)

// Collection is the newsletter subscribers collection path.
const Collection = "newsletterSubscribers"

// ErrAlreadySubscribed is returned when the sanitized email key already exists.
var ErrAlreadySubscribed = errors.New("Email already subscribed.")

// safeKeyReplacer strips the characters the store forbids in keys. One raw
// email maps to exactly one subscriber record.
var safeKeyReplacer = strings.NewReplacer(".", "_", "#", "_", "$", "_", "[", "_", "]", "_")

// SafeKey sanitizes an email address into a store key.
func SafeKey(email string) string {
	return safeKeyReplacer.Replace(email)
}

type Repository interface {
	Subscribe(ctx context.Context, email string) error
	ListEmails(ctx context.Context) ([]string, error)
}

type keyedSubscriberRepo struct {
	store database.KeyedStore
}

// NewKeyedSubscriberRepo constructs a Repository over the subscribers collection.
func NewKeyedSubscriberRepo(store database.KeyedStore) Repository {
	return &keyedSubscriberRepo{store: store}
}

func (r *keyedSubscriberRepo) Subscribe(ctx context.Context, email string) error {
	path := Collection + "/" + SafeKey(email)

	var existing *models.Subscriber
	if err := r.store.Get(ctx, path, &existing); err != nil {
		return err
	}
	if existing != nil {
		return ErrAlreadySubscribed
	}
	return r.store.Set(ctx, path, models.Subscriber{Email: email})
}

func (r *keyedSubscriberRepo) ListEmails(ctx context.Context) ([]string, error) {
	var all map[string]models.Subscriber
	if err := r.store.Get(ctx, Collection, &all); err != nil {
		return nil, err
	}
	emails := make([]string, 0, len(all))
	for _, sub := range all {
		emails = append(emails, sub.Email)
	}
	return emails, nil
}
