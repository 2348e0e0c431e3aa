package models

// Subscriber is a newsletter subscriber, keyed in the store by a sanitized
// form of the email address.
type Subscriber struct {
	Email string `json:"email"`
}
