package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medinatours/models"
)

func TestKonnectInitPayment(t *testing.T) {
	var gotBody map[string]interface{}
	var gotAPIKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/payments/init-payment", r.URL.Path)
		gotAPIKey = r.Header.Get("x-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(map[string]string{
			"payUrl":     "https://pay.test/abc",
			"paymentRef": "ref-123",
		})
	}))
	defer srv.Close()

	g := NewKonnectGateway(srv.URL, "key-1", "wallet-1", "https://api.test/webhook", "https://site.test/ok", "https://site.test/ko")

	init, err := g.InitPayment(context.Background(), models.PaymentRequest{
		Amount:      15000,
		Email:       "buyer@example.com",
		FirstName:   "Amel",
		LastName:    "Ben Salah",
		PhoneNumber: "21612345",
		OrderID:     "order-9",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://pay.test/abc", init.PayURL)
	assert.Equal(t, "ref-123", init.PaymentRef)
	assert.Equal(t, "key-1", gotAPIKey)

	assert.Equal(t, "wallet-1", gotBody["receiverWalletId"])
	assert.Equal(t, float64(15000), gotBody["amount"])
	assert.Equal(t, "TND", gotBody["token"])
	assert.Equal(t, "immediate", gotBody["type"])
	assert.Equal(t, "order-9", gotBody["orderId"])
	assert.Equal(t, "https://api.test/webhook", gotBody["webhook"])
}

func TestKonnectInitPaymentRejectsEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	g := NewKonnectGateway(srv.URL, "key-1", "wallet-1", "", "", "")

	_, err := g.InitPayment(context.Background(), models.PaymentRequest{Amount: 100, Email: "x@y.z"})
	assert.Error(t, err)
}

func TestKonnectInitPaymentUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	g := NewKonnectGateway(srv.URL, "bad-key", "wallet-1", "", "", "")

	_, err := g.InitPayment(context.Background(), models.PaymentRequest{Amount: 100, Email: "x@y.z"})
	assert.Error(t, err)
}

func TestKonnectPaymentStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/payments/ref-123", r.URL.Path)
		require.Equal(t, "key-1", r.Header.Get("x-api-key"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"payment": map[string]string{"status": "completed"},
		})
	}))
	defer srv.Close()

	g := NewKonnectGateway(srv.URL, "key-1", "wallet-1", "", "", "")

	status, err := g.PaymentStatus(context.Background(), "ref-123")
	require.NoError(t, err)
	assert.Equal(t, "completed", status)
}
