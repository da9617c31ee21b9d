package entity

import "time"

type MoodEntry struct {
	ID     int       `json:"id"`
	UserID int       `json:"userId"`
	Mood   string    `json:"mood"`
	Note   *string   `json:"note"`
	Date   time.Time `json:"date"`
}

// MoodSample is the shape handed to the mood analysis collaborator.
type MoodSample struct {
	Mood string `json:"mood"`
	Date string `json:"date"` // YYYY-MM-DD
	Note string `json:"note"`
}

// Sample converts the entry for the analysis collaborator.
func (m MoodEntry) Sample() MoodSample {
	s := MoodSample{Mood: m.Mood, Date: m.Date.UTC().Format("2006-01-02")}
	if m.Note != nil {
		s.Note = *m.Note
	}
	return s
}
