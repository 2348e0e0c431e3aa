// File: handlers/coaching.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	entityRepo "medinatours/database/repository/entity"
	sessionRepo "medinatours/database/repository/session"
	"medinatours/models"
	"medinatours/services/booking"
)

// CoachingHandler exposes coaching session listing and booking.
type CoachingHandler struct {
	coord *booking.Coordinator
}

// NewCoachingHandler constructs a CoachingHandler.
func NewCoachingHandler(coord *booking.Coordinator) *CoachingHandler {
	return &CoachingHandler{coord: coord}
}

// List returns every coaching session keyed by id.
func (h *CoachingHandler) List(c *gin.Context) {
	sessions, err := h.coord.ListSessions(c.Request.Context())
	if err != nil {
		respondError(c, err, "Session not found")
		return
	}
	c.JSON(http.StatusOK, sessions)
}

// Create seeds a new open session.
func (h *CoachingHandler) Create(c *gin.Context) {
	var session models.CoachingSession
	if err := c.ShouldBindJSON(&session); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	id, err := h.coord.CreateSession(c.Request.Context(), session)
	if err != nil {
		respondError(c, err, "Session not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Session created successfully", "id": id})
}

type bookSessionRequest struct {
	UserEmail string `json:"user_email"`
	SessionID string `json:"session_id"`
}

// Book claims a session for one user. A missing session and an already booked
// session get the same answer so callers cannot probe which ids exist.
func (h *CoachingHandler) Book(c *gin.Context) {
	var req bookSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	err := h.coord.BookSession(c.Request.Context(), req.SessionID, req.UserEmail)
	if err != nil {
		if errors.Is(err, booking.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, sessionRepo.ErrAlreadyBooked) || errors.Is(err, entityRepo.ErrNotFound) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Session already booked or does not exist"})
			return
		}
		respondError(c, err, "Session not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Session booked successfully"})
}
