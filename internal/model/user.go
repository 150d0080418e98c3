package model

import "time"

// User represents a dashboard account as stored in the metadata `users`
// table.  The uuid is the primary key and doubles as the actor identifier
// written to the activity log.  Permissions is a comma-separated set of
// capability strings; the API treats it as opaque text.
//
// IsActive is the single authorization invariant: a deactivated or deleted
// user must never pass the session gate, regardless of a still-valid
// session token.
type User struct {
	UUID         string     `json:"uuid"`
	Username     string     `json:"username"`
	PasswordHash string     `json:"-"`
	Permissions  string     `json:"permissions"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	LastLogin    *time.Time `json:"last_login"`
}

// Principal is the authenticated actor attached to a request after it
// passes the session gate.
type Principal struct {
	UUID     string `json:"uuid"`
	Username string `json:"username"`
}
