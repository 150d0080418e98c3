package model

import "time"

// Request statuses.  A request only transitions out of "open" once, via
// approve or deny.
const (
	RequestOpen     = "open"
	RequestApproved = "approved"
	RequestDenied   = "denied"
)

// Request is a pending change that needs sign-off from another user
// (e.g. deleting a currency that is still in use).
type Request struct {
	ID        int64     `json:"id"`
	Type      string    `json:"type"`
	TargetID  string    `json:"target_id"`
	Requester string    `json:"requester"`
	Approver  *string   `json:"approver"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
