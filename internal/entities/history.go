package entities

import "time"

// HistoryEntry is one line of the session history log
type HistoryEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Label     string    `json:"label"`
	Record    *Record   `json:"record"`
}
