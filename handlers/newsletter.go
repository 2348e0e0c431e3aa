// File: handlers/newsletter.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	subscriberRepo "medinatours/database/repository/subscriber"
	"medinatours/services/newsletter"
)

// NewsletterHandler exposes subscription and bulk sending.
type NewsletterHandler struct {
	svc *newsletter.Service
}

// NewNewsletterHandler constructs a NewsletterHandler.
func NewNewsletterHandler(svc *newsletter.Service) *NewsletterHandler {
	return &NewsletterHandler{svc: svc}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe registers a new subscriber email.
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	err := h.svc.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, newsletter.ErrEmailRequired),
			errors.Is(err, newsletter.ErrInvalidEmail):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, subscriberRepo.ErrAlreadySubscribed):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			respondError(c, err, "Subscriber not found")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully subscribed"})
}

type sendNewsletterRequest struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
}

// Send mails the newsletter content to every subscriber.
func (h *NewsletterHandler) Send(c *gin.Context) {
	var req sendNewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	err := h.svc.SendNewsletter(c.Request.Context(), req.Subject, req.Content)
	if err != nil {
		switch {
		case errors.Is(err, newsletter.ErrMissingContent),
			errors.Is(err, newsletter.ErrNoSubscribers):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			respondError(c, err, "Subscriber not found")
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Newsletter sent successfully"})
}
