package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/HektorTM/wos-dashboard-sub001/internal/database"
	"github.com/HektorTM/wos-dashboard-sub001/internal/middleware"
	"github.com/HektorTM/wos-dashboard-sub001/internal/repository"
	"github.com/HektorTM/wos-dashboard-sub001/internal/session"
)

// usersDB opens a throwaway SQLite stand-in for the metadata user table.
func usersDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenGame(filepath.Join(t.TempDir(), "meta.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE users (
		uuid TEXT PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		permissions TEXT NOT NULL DEFAULT '',
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		last_login TIMESTAMP
	)`)
	if err != nil {
		t.Fatalf("create users table: %v", err)
	}
	return db
}

func newAuthHandler(t *testing.T) (*AuthHandler, *repository.UserRepo) {
	t.Helper()
	users := repository.NewUserRepo(usersDB(t))
	return NewAuthHandler(users, session.NewMemoryStore(), &recorderSpy{}, time.Hour, 4), users
}

func TestLoginSuccessSetsSessionCookie(t *testing.T) {
	h, users := newAuthHandler(t)
	if _, err := users.Create(context.Background(), "alice", "secret", "*", 4); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	rec := do(t, h.Login, http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"secret"}`, "")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var cookie string
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie {
			cookie = c.Value
		}
	}
	if cookie == "" {
		t.Fatal("no session cookie set")
	}

	// The cookie value must resolve in the store.
	d, err := h.Sessions.Get(context.Background(), cookie)
	if err != nil {
		t.Fatalf("session lookup: %v", err)
	}
	if d.Username != "alice" {
		t.Fatalf("session = %+v", d)
	}

	u, err := users.GetByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if u.LastLogin == nil {
		t.Error("last_login not updated")
	}
}

func TestLoginWrongPassword(t *testing.T) {
	h, users := newAuthHandler(t)
	if _, err := users.Create(context.Background(), "alice", "secret", "", 4); err != nil {
		t.Fatalf("seed user: %v", err)
	}

	rec := do(t, h.Login, http.MethodPost, "/api/auth/login",
		`{"username":"alice","password":"wrong"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestLoginUnknownUser(t *testing.T) {
	h, _ := newAuthHandler(t)

	rec := do(t, h.Login, http.MethodPost, "/api/auth/login",
		`{"username":"ghost","password":"pw"}`, "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestLoginDeactivatedAccount(t *testing.T) {
	h, users := newAuthHandler(t)
	ctx := context.Background()
	id, err := users.Create(ctx, "bob", "secret", "", 4)
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	if err := users.SetActive(ctx, id, false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	rec := do(t, h.Login, http.MethodPost, "/api/auth/login",
		`{"username":"bob","password":"secret"}`, "")

	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body: %v", err)
	}
	if body["error"] != "Account is deactivated. Please contact admin." {
		t.Fatalf("error = %q", body["error"])
	}
	// No session may exist for the deactivated account.
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.SessionCookie && c.Value != "" {
			t.Fatal("session cookie set for deactivated account")
		}
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	h, _ := newAuthHandler(t)

	rec := do(t, h.Register, http.MethodPost, "/api/auth/register",
		`{"username":"alice","password":"pw"}`, "")
	if rec.Code != http.StatusCreated {
		t.Fatalf("first register: %d", rec.Code)
	}
	rec = do(t, h.Register, http.MethodPost, "/api/auth/register",
		`{"username":"alice","password":"pw2"}`, "")
	if rec.Code != http.StatusConflict {
		t.Fatalf("second register: %d, want 409", rec.Code)
	}
}
