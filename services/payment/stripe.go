package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"

	"medinatours/models"
)

// StripeGateway implements Gateway on Stripe Checkout Sessions: the session
// URL is the pay URL and the session id is the payment reference. The global
// stripe.Key must be set before use.
type StripeGateway struct {
	SuccessURL string
	CancelURL  string
}

// NewStripeGateway constructs a Stripe Gateway.
func NewStripeGateway(successURL, cancelURL string) *StripeGateway {
	return &StripeGateway{SuccessURL: successURL, CancelURL: cancelURL}
}

func (g *StripeGateway) InitPayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentInit, error) {
	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("usd"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String("Event Payment"),
				},
				UnitAmount: stripe.Int64(req.Amount),
			},
			Quantity: stripe.Int64(1),
		}},
		SuccessURL:        stripe.String(g.SuccessURL),
		CancelURL:         stripe.String(g.CancelURL),
		CustomerEmail:     stripe.String(req.Email),
		ClientReferenceID: stripe.String(req.OrderID),
	}
	params.Context = ctx

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("stripe checkout session failed: %w", err)
	}
	return &models.PaymentInit{PayURL: sess.URL, PaymentRef: sess.ID}, nil
}

func (g *StripeGateway) PaymentStatus(ctx context.Context, ref string) (string, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := session.Get(ref, params)
	if err != nil {
		return "", fmt.Errorf("stripe session lookup failed: %w", err)
	}
	return string(sess.PaymentStatus), nil
}
