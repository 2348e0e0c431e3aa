package models

import "fmt"

// Slot types accepted by the availability collection.
const (
	SlotTypePrivateTour     = "private_tour"
	SlotTypeCoachingSession = "coaching_session"
)

// Slot represents a bookable time window for a private tour or coaching session.
type Slot struct {
	Date           string `json:"date"`      // zero-padded ISO date, e.g. "2025-06-01"
	StartTime      string `json:"startTime"` // e.g. "10:00"
	EndTime        string `json:"endTime"`   // e.g. "11:00"
	Type           string `json:"type"`      // "private_tour" or "coaching_session"
	IsBooked       bool   `json:"isBooked"`
	AvailableSpots int    `json:"available_spots"`
	CreatedAt      int64  `json:"createdAt"` // unix milliseconds
}

// SlotBookingPolicy decides what booking a slot does to its record.
type SlotBookingPolicy string

const (
	// PolicyFlag only flips isBooked.
	PolicyFlag SlotBookingPolicy = "flag"
	// PolicyDecrement only decrements available_spots.
	PolicyDecrement SlotBookingPolicy = "decrement"
	// PolicyBoth decrements available_spots and flips isBooked once spots reach zero.
	PolicyBoth SlotBookingPolicy = "both"
)

// ParseSlotBookingPolicy validates a configured policy string.
func ParseSlotBookingPolicy(s string) (SlotBookingPolicy, error) {
	switch SlotBookingPolicy(s) {
	case PolicyFlag, PolicyDecrement, PolicyBoth:
		return SlotBookingPolicy(s), nil
	}
	return "", fmt.Errorf("unknown slot booking policy %q", s)
}
