package model

import "time"

// Activity log actions.  Every mutating handler reports exactly one of
// these per successful operation.
const (
	ActionCreated     = "Created"
	ActionEdited      = "Edited"
	ActionDeleted     = "Deleted"
	ActionLocked      = "Locked"
	ActionUnlocked    = "Unlocked"
	ActionReactivated = "Reactivated"
	ActionDeactivated = "Deactivated"
	ActionApproved    = "Approved"
	ActionDenied      = "Denied"
)

// ActivityLogEntry mirrors one row of the append-only `activity` table.
// Rows are only ever inserted and listed; nothing updates or deletes them.
type ActivityLogEntry struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`      // resource category, e.g. "Currency"
	TargetID  string    `json:"target_id"` // natural key of the affected resource
	User      *string   `json:"user"`      // actor uuid, nil for system actions
	Action    string    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
}
