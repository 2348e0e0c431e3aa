// File: handlers/availability.go
package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"medinatours/models"
	"medinatours/services/availability"
)

// AvailabilityHandler exposes tour and coaching availability slots.
type AvailabilityHandler struct {
	svc *availability.Service
}

// NewAvailabilityHandler constructs an AvailabilityHandler.
func NewAvailabilityHandler(svc *availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc}
}

// Add creates a slot.
func (h *AvailabilityHandler) Add(c *gin.Context) {
	var slot models.Slot
	if err := c.ShouldBindJSON(&slot); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id, err := h.svc.Add(c.Request.Context(), slot)
	if err != nil {
		if errors.Is(err, availability.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err, "Availability not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Availability added", "id": id})
}

// GetAll lists every slot.
func (h *AvailabilityHandler) GetAll(c *gin.Context) {
	slots, err := h.svc.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err, "Availability not found")
		return
	}
	c.JSON(http.StatusOK, slots)
}

// GetByType lists slots of a single type.
func (h *AvailabilityHandler) GetByType(c *gin.Context) {
	slots, err := h.svc.ListByType(c.Request.Context(), c.Param("type"))
	if err != nil {
		respondError(c, err, "Availability not found")
		return
	}
	c.JSON(http.StatusOK, slots)
}

// GetUpcoming lists slots dated today or later.
func (h *AvailabilityHandler) GetUpcoming(c *gin.Context) {
	today := time.Now().Format("2006-01-02")
	slots, err := h.svc.ListUpcoming(c.Request.Context(), today)
	if err != nil {
		respondError(c, err, "Availability not found")
		return
	}
	c.JSON(http.StatusOK, slots)
}

// Update applies a partial update to a slot.
func (h *AvailabilityHandler) Update(c *gin.Context) {
	var fields map[string]interface{}
	if err := c.ShouldBindJSON(&fields); err != nil || len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if err := h.svc.Update(c.Request.Context(), c.Param("id"), fields); err != nil {
		respondError(c, err, "Availability not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability updated successfully"})
}

// Delete removes a slot.
func (h *AvailabilityHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Availability not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Availability deleted successfully"})
}

// Book claims a slot under the configured booking policy.
func (h *AvailabilityHandler) Book(c *gin.Context) {
	if err := h.svc.BookSlot(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "Availability not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slot booked successfully"})
}
