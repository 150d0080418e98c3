// Package repository contains data access logic separated from HTTP
// handlers.  This file defines error values reused across repositories.
// Not-found is uniformly signaled with sql.ErrNoRows: repositories return
// it both for zero-row lookups and for updates/deletes that affected no
// rows, and handlers translate it into HTTP 404.
package repository

import (
	"database/sql"
	"errors"
	"strings"
)

// ErrDuplicate is returned when an insert collides with an existing natural
// key.  Handlers should translate this into an HTTP 409 response.
var ErrDuplicate = errors.New("duplicate key")

// ErrConflict is returned when an operation cannot proceed because of the
// row's current state, such as approving a request that is no longer open
// or locking a page someone else holds.  Handlers should translate this
// into an HTTP 409 response.
var ErrConflict = errors.New("conflict")

// isDuplicate reports whether err is a unique-key violation from either
// store (MySQL error 1062, SQLite UNIQUE constraint message).
func isDuplicate(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "1062") || strings.Contains(msg, "unique constraint")
}

// affected converts a zero-row result into sql.ErrNoRows.
func affected(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
