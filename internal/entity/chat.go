package entity

import "time"

type ChatHistoryEntry struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Message   string    `json:"message"`
	Response  string    `json:"response"`
	Timestamp time.Time `json:"timestamp"`
}
