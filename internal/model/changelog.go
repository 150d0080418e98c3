package model

import "time"

// Changelog is a published release note shown on the dashboard.
type Changelog struct {
	ID        int64     `json:"id"`
	Version   string    `json:"version"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	Author    string    `json:"author"`
	CreatedAt time.Time `json:"created_at"`
}
