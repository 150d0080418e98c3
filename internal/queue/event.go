// Package queue defines message payloads exchanged over the message broker.
package queue

// ActivityRecordedEvent mirrors an activity log row onto the broker after
// the row has been appended.  It lets downstream consumers (Discord relay,
// file archive) react to dashboard changes without querying the metadata
// database.
type ActivityRecordedEvent struct {
	Type       string `json:"type"`
	TargetID   string `json:"target_id"`
	User       string `json:"user,omitempty"`
	Action     string `json:"action"`
	RecordedAt string `json:"recorded_at"`
}
