package entity

import "time"

type GroupSession struct {
	ID                  int       `json:"id"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	TherapistID         int       `json:"therapistId"`
	SessionDate         time.Time `json:"sessionDate"`
	Duration            int       `json:"duration"`
	MaxParticipants     int       `json:"maxParticipants"`
	CurrentParticipants int       `json:"currentParticipants"`
	Status              string    `json:"status"`
}

// Full reports whether no more participants can join.
func (g GroupSession) Full() bool {
	return g.CurrentParticipants >= g.MaxParticipants
}

type GroupSessionParticipant struct {
	ID        int `json:"id"`
	SessionID int `json:"sessionId"`
	UserID    int `json:"userId"`
}

// GroupSessionView is a group session with the name of its therapist resolved.
type GroupSessionView struct {
	GroupSession
	TherapistName string `json:"therapistName"`
}
