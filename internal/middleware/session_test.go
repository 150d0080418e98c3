package middleware

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
	"github.com/HektorTM/wos-dashboard-sub001/internal/session"
)

// fakeUsers serves canned user rows keyed by uuid.
type fakeUsers struct {
	rows map[string]model.User
	err  error
}

func (f *fakeUsers) GetByUUID(_ context.Context, uuid string) (model.User, error) {
	if f.err != nil {
		return model.User{}, f.err
	}
	u, ok := f.rows[uuid]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return u, nil
}

// failingStore always errors, simulating an unreachable session backend.
type failingStore struct{}

func (failingStore) Create(context.Context, string, session.Data, time.Duration) error {
	return errors.New("store down")
}
func (failingStore) Get(context.Context, string) (session.Data, error) {
	return session.Data{}, errors.New("store down")
}
func (failingStore) Destroy(context.Context, string) error { return errors.New("store down") }

func gateRequest(t *testing.T, store session.Store, users UserSource, cookie string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/currencies", nil)
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: SessionCookie, Value: cookie})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	reached := false
	h := SessionAuth(store, users)(func(c echo.Context) error {
		reached = true
		return c.NoContent(http.StatusOK)
	})
	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	return rec, reached
}

func TestGateRejectsMissingCookie(t *testing.T) {
	rec, reached := gateRequest(t, session.NewMemoryStore(), &fakeUsers{}, "")
	if reached {
		t.Fatal("handler ran without a session")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Unauthorized") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestGateRejectsUnknownToken(t *testing.T) {
	rec, reached := gateRequest(t, session.NewMemoryStore(), &fakeUsers{}, "stale-token")
	if reached {
		t.Fatal("handler ran with an unknown token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestGatePassesActiveUser(t *testing.T) {
	store := session.NewMemoryStore()
	_ = store.Create(context.Background(), "tok", session.Data{UUID: "u1", Username: "alice"}, time.Minute)
	users := &fakeUsers{rows: map[string]model.User{
		"u1": {UUID: "u1", Username: "alice-renamed", IsActive: true},
	}}

	rec, reached := gateRequest(t, store, users, "tok")
	if !reached {
		t.Fatalf("handler did not run, status=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestGateDestroysSessionOfDeletedUser(t *testing.T) {
	store := session.NewMemoryStore()
	_ = store.Create(context.Background(), "tok", session.Data{UUID: "gone"}, time.Minute)

	rec, reached := gateRequest(t, store, &fakeUsers{rows: map[string]model.User{}}, "tok")
	if reached {
		t.Fatal("handler ran for a deleted user")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid Session") {
		t.Fatalf("body = %s", rec.Body.String())
	}
	// The session must be gone so the token cannot be replayed.
	if _, err := store.Get(context.Background(), "tok"); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("session still live after deleted-user check: %v", err)
	}
}

func TestGateDestroysSessionOfDisabledUser(t *testing.T) {
	store := session.NewMemoryStore()
	_ = store.Create(context.Background(), "tok", session.Data{UUID: "u1"}, time.Minute)
	users := &fakeUsers{rows: map[string]model.User{
		"u1": {UUID: "u1", Username: "bob", IsActive: false},
	}}

	rec, reached := gateRequest(t, store, users, "tok")
	if reached {
		t.Fatal("handler ran for a disabled user")
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Account Disabled") {
		t.Fatalf("body = %s", rec.Body.String())
	}
	if _, err := store.Get(context.Background(), "tok"); !errors.Is(err, session.ErrNotFound) {
		t.Fatalf("session still live after disabled-user check: %v", err)
	}
}

func TestGateFailsClosedOnStoreError(t *testing.T) {
	rec, reached := gateRequest(t, failingStore{}, &fakeUsers{}, "tok")
	if reached {
		t.Fatal("handler ran despite store failure")
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Authentication Error") {
		t.Fatalf("body = %s", rec.Body.String())
	}
}

func TestGateFailsClosedOnUserLookupError(t *testing.T) {
	store := session.NewMemoryStore()
	_ = store.Create(context.Background(), "tok", session.Data{UUID: "u1"}, time.Minute)

	rec, reached := gateRequest(t, store, &fakeUsers{err: errors.New("db down")}, "tok")
	if reached {
		t.Fatal("handler ran despite user lookup failure")
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
