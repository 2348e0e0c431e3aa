package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"medinatours/models"
)

// KonnectGateway implements Gateway against the Konnect REST API. Konnect
// publishes no Go SDK, so requests go over a plain HTTP client.
type KonnectGateway struct {
	BaseURL    string
	APIKey     string
	WalletID   string
	WebhookURL string
	SuccessURL string
	FailURL    string

	client *http.Client
}

// NewKonnectGateway constructs a Konnect Gateway.
func NewKonnectGateway(baseURL, apiKey, walletID, webhookURL, successURL, failURL string) *KonnectGateway {
	return &KonnectGateway{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		WalletID:   walletID,
		WebhookURL: webhookURL,
		SuccessURL: successURL,
		FailURL:    failURL,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

type konnectInitRequest struct {
	ReceiverWalletID        string   `json:"receiverWalletId"`
	Amount                  int64    `json:"amount"`
	Token                   string   `json:"token"`
	Type                    string   `json:"type"`
	Description             string   `json:"description"`
	AcceptedPaymentMethods  []string `json:"acceptedPaymentMethods"`
	Lifespan                int      `json:"lifespan"`
	CheckoutForm            bool     `json:"checkoutForm"`
	AddPaymentFeesToAmount  bool     `json:"addPaymentFeesToAmount"`
	FirstName               string   `json:"firstName"`
	LastName                string   `json:"lastName"`
	PhoneNumber             string   `json:"phoneNumber"`
	Email                   string   `json:"email"`
	OrderID                 string   `json:"orderId"`
	Webhook                 string   `json:"webhook"`
	SuccessURL              string   `json:"successUrl"`
	FailURL                 string   `json:"failUrl"`
}

func (g *KonnectGateway) InitPayment(ctx context.Context, req models.PaymentRequest) (*models.PaymentInit, error) {
	payload := konnectInitRequest{
		ReceiverWalletID:       g.WalletID,
		Amount:                 req.Amount,
		Token:                  "TND",
		Type:                   "immediate",
		Description:            "Event Payment",
		AcceptedPaymentMethods: []string{"wallet", "bank_card", "e-DINAR"},
		Lifespan:               10,
		CheckoutForm:           true,
		AddPaymentFeesToAmount: true,
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		PhoneNumber:            req.PhoneNumber,
		Email:                  req.Email,
		OrderID:                req.OrderID,
		Webhook:                g.WebhookURL,
		SuccessURL:             g.SuccessURL,
		FailURL:                g.FailURL,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal init-payment request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.BaseURL+"/payments/init-payment", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", g.APIKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("konnect init-payment failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("konnect init-payment returned status %d", resp.StatusCode)
	}

	var init models.PaymentInit
	if err := json.NewDecoder(resp.Body).Decode(&init); err != nil {
		return nil, fmt.Errorf("failed to decode init-payment response: %w", err)
	}
	if init.PayURL == "" || init.PaymentRef == "" {
		return nil, fmt.Errorf("konnect init-payment response missing payUrl or paymentRef")
	}
	return &init, nil
}

func (g *KonnectGateway) PaymentStatus(ctx context.Context, ref string) (string, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, g.BaseURL+"/payments/"+ref, nil)
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("x-api-key", g.APIKey)

	resp, err := g.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("konnect payment lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("konnect payment lookup returned status %d", resp.StatusCode)
	}

	var out struct {
		Payment struct {
			Status string `json:"status"`
		} `json:"payment"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode payment status response: %w", err)
	}
	return out.Payment.Status, nil
}
