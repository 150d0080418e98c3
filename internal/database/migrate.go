package database

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/google/uuid"

	"golang.org/x/crypto/bcrypt"
)

// metaSchema bootstraps the web-metadata tables.  The activity table is
// append-only: the application only ever INSERTs and SELECTs from it.
var metaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		uuid CHAR(36) NOT NULL PRIMARY KEY,
		username VARCHAR(64) NOT NULL UNIQUE,
		password_hash VARCHAR(100) NOT NULL,
		permissions TEXT NOT NULL,
		is_active TINYINT(1) NOT NULL DEFAULT 1,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		last_login TIMESTAMP NULL DEFAULT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS activity (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		type VARCHAR(64) NOT NULL,
		target_id VARCHAR(128) NOT NULL,
		user CHAR(36) NULL,
		action VARCHAR(32) NOT NULL,
		timestamp TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_activity_target (type, target_id)
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id VARCHAR(64) NOT NULL PRIMARY KEY,
		name VARCHAR(128) NOT NULL,
		description TEXT NOT NULL,
		status VARCHAR(32) NOT NULL DEFAULT 'open',
		created_by CHAR(36) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS project_members (
		project_id VARCHAR(64) NOT NULL,
		uuid CHAR(36) NOT NULL,
		role VARCHAR(32) NOT NULL DEFAULT 'member',
		PRIMARY KEY (project_id, uuid)
	)`,
	`CREATE TABLE IF NOT EXISTS project_items (
		project_id VARCHAR(64) NOT NULL,
		item_id INT NOT NULL,
		type VARCHAR(32) NOT NULL,
		target VARCHAR(128) NOT NULL,
		description TEXT NOT NULL,
		done TINYINT(1) NOT NULL DEFAULT 0,
		PRIMARY KEY (project_id, item_id)
	)`,
	`CREATE TABLE IF NOT EXISTS requests (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		type VARCHAR(64) NOT NULL,
		target_id VARCHAR(128) NOT NULL,
		requester CHAR(36) NOT NULL,
		approver CHAR(36) NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'open',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS changelogs (
		id BIGINT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		version VARCHAR(32) NOT NULL,
		title VARCHAR(128) NOT NULL,
		body TEXT NOT NULL,
		author CHAR(36) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS pagedata (
		page VARCHAR(64) NOT NULL PRIMARY KEY,
		locked TINYINT(1) NOT NULL DEFAULT 0,
		locked_by CHAR(36) NULL,
		updated_by CHAR(36) NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
}

// MigrateMeta creates the metadata tables when they do not exist.
func MigrateMeta(db *sql.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, stmt := range metaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// SeedAdmin inserts a default admin account when the users table is empty,
// so a fresh deployment is reachable.  The generated uuid and the default
// credentials are printed once; operators are expected to change them.
func SeedAdmin(db *sql.DB, bcryptCost int) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcryptCost)
	if err != nil {
		return err
	}
	id := uuid.NewString()
	_, err = db.ExecContext(ctx,
		"INSERT INTO users (uuid, username, password_hash, permissions, is_active) VALUES (?,?,?,?,1)",
		id, "admin", string(hash), "*")
	if err != nil {
		return err
	}
	log.Printf("seeded default admin user %s (username=admin, password=admin) - change the password", id)
	return nil
}
