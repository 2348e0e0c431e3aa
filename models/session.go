package models

// Coaching session states. Booking is a one-way transition.
const (
	SessionStatusOpen   = "open"
	SessionStatusBooked = "booked"
)

// CoachingSession is a coaching slot a single user can claim.
type CoachingSession struct {
	UserEmail string `json:"user_email,omitempty"`
	Status    string `json:"status"`
	Date      string `json:"date,omitempty"`
	StartTime string `json:"startTime,omitempty"`
	EndTime   string `json:"endTime,omitempty"`
	CreatedAt int64  `json:"createdAt,omitempty"` // unix milliseconds
}
