// File: handlers/payment.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"medinatours/models"
	"medinatours/services/payment"
)

// PaymentHandler exposes payment initiation and the gateway webhook.
type PaymentHandler struct {
	svc *payment.Service
}

// NewPaymentHandler constructs a PaymentHandler.
func NewPaymentHandler(svc *payment.Service) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// Create initiates a payment and returns the gateway's pay URL.
func (h *PaymentHandler) Create(c *gin.Context) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.Amount <= 0 || req.Email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount and email are required"})
		return
	}

	init, err := h.svc.CreatePayment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Payment not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"paymentUrl": init.PayURL, "paymentRef": init.PaymentRef})
}

// Webhook is called by the gateway after a payment attempt. The reference
// arrives as a query parameter and the stored record is reconciled against
// the gateway's status.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	ref := c.Query("payment_ref")
	if ref == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "payment_ref is required"})
		return
	}

	status, err := h.svc.HandleWebhook(c.Request.Context(), ref)
	if err != nil {
		respondError(c, err, "Payment not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Webhook received", "status": status})
}
