package model

import "time"

// PageData carries per-page edit metadata: who holds the edit lock and who
// touched the page last.  Locking prevents two editors from clobbering each
// other on the same dashboard page.
type PageData struct {
	Page      string    `json:"page"`
	Locked    bool      `json:"locked"`
	LockedBy  *string   `json:"locked_by"`
	UpdatedBy *string   `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}
