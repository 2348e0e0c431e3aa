package models

// PaymentRequest is the payload for initiating a payment.
type PaymentRequest struct {
	Amount      int64  `json:"amount"`
	Email       string `json:"email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
	OrderID     string `json:"orderId"`
}

// PaymentInit is what the gateway returns when a payment is created.
type PaymentInit struct {
	PayURL     string `json:"payUrl"`
	PaymentRef string `json:"paymentRef"`
}

// PaymentRecord is the durable trace of an initiated payment, keyed by
// the gateway's payment reference.
type PaymentRecord struct {
	OrderID   string `json:"orderId"`
	Email     string `json:"email"`
	Amount    int64  `json:"amount"`
	Status    string `json:"status"` // "pending" until the webhook reports otherwise
	CreatedAt int64  `json:"createdAt"`
}
