package entity

import "time"

const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCanceled  = "canceled"
)

// ValidStatus reports whether s is one of the booking statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCanceled:
		return true
	}
	return false
}

// Session is a one-on-one booking with a therapist.
type Session struct {
	ID          int       `json:"id"`
	UserID      int       `json:"userId"`
	TherapistID int       `json:"therapistId"`
	SessionDate time.Time `json:"sessionDate"`
	Duration    int       `json:"duration"` // minutes
	SessionType string    `json:"sessionType"`
	Status      string    `json:"status"`
}

// SessionView is a session with the name of its therapist resolved.
type SessionView struct {
	Session
	TherapistName string `json:"therapistName"`
}
