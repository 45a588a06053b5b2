package model

import "time"

type SessionStatus string

const (
	StatusRequested SessionStatus = "requested"
	StatusPaid      SessionStatus = "paid"
	StatusCompleted SessionStatus = "completed"
	StatusCancelled SessionStatus = "cancelled"
)

// CanTransitionTo reports whether the payment/admin path may move a session
// from s to next. Completed and cancelled sessions never move again.
func (s SessionStatus) CanTransitionTo(next SessionStatus) bool {
	switch s {
	case StatusRequested:
		return next == StatusPaid || next == StatusCancelled
	case StatusPaid:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

type Session struct {
	ID         string        `json:"id"`
	MentorID   string        `json:"mentor_id"`
	MentorName string        `json:"mentor_name"`
	UserID     string        `json:"user_id"`
	UserName   string        `json:"user_name"`
	Status     SessionStatus `json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	Rating     *Rating       `json:"rating,omitempty"`
}
