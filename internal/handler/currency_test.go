package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/HektorTM/wos-dashboard-sub001/internal/activity"
	"github.com/HektorTM/wos-dashboard-sub001/internal/database"
	"github.com/HektorTM/wos-dashboard-sub001/internal/middleware"
	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
	"github.com/HektorTM/wos-dashboard-sub001/internal/repository"
)

// recorderSpy captures activity entries instead of writing them anywhere.
type recorderSpy struct {
	entries []activity.Entry
}

func (r *recorderSpy) Record(_ context.Context, e activity.Entry) {
	r.entries = append(r.entries, e)
}

func gameDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenGame(filepath.Join(t.TempDir(), "game.db"))
	if err != nil {
		t.Fatalf("open game db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// do runs one request through the handler as the given principal.
func do(t *testing.T, h echo.HandlerFunc, method, path, body, principal string, params ...string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	var names, values []string
	for i := 0; i+1 < len(params); i += 2 {
		names = append(names, params[i])
		values = append(values, params[i+1])
	}
	if len(names) > 0 {
		c.SetParamNames(names...)
		c.SetParamValues(values...)
	}
	if principal != "" {
		middleware.SetPrincipal(c, model.Principal{UUID: principal, Username: principal})
	}
	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	return rec
}

func TestCurrencyCreateRecordsActivity(t *testing.T) {
	spy := &recorderSpy{}
	h := NewCurrencyHandler(repository.NewCurrencyRepo(gameDB(t)), spy)

	rec := do(t, h.Create, http.MethodPost, "/api/currencies",
		`{"id":"gold","name":"Gold","short_name":"g","color":"#ffd700"}`, "U1")

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body %s", rec.Code, rec.Body.String())
	}
	if len(spy.entries) != 1 {
		t.Fatalf("recorded %d entries, want 1", len(spy.entries))
	}
	e := spy.entries[0]
	if e.Type != "Currency" || e.TargetID != "gold" || e.User != "U1" || e.Action != model.ActionCreated {
		t.Fatalf("entry = %+v", e)
	}
}

func TestCurrencyGetMissing(t *testing.T) {
	h := NewCurrencyHandler(repository.NewCurrencyRepo(gameDB(t)), &recorderSpy{})

	rec := do(t, h.Get, http.MethodGet, "/api/currencies/nope", "", "U1", "id", "nope")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("body: %v", err)
	}
	if body["error"] != "Currency not found" {
		t.Fatalf("error = %q", body["error"])
	}
}

func TestCurrencyCreateValidation(t *testing.T) {
	spy := &recorderSpy{}
	h := NewCurrencyHandler(repository.NewCurrencyRepo(gameDB(t)), spy)

	rec := do(t, h.Create, http.MethodPost, "/api/currencies", `{"id":"gold"}`, "U1")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(spy.entries) != 0 {
		t.Fatalf("failed create recorded activity: %+v", spy.entries)
	}
}

func TestCurrencyDuplicateCreate(t *testing.T) {
	spy := &recorderSpy{}
	h := NewCurrencyHandler(repository.NewCurrencyRepo(gameDB(t)), spy)
	body := `{"id":"gold","name":"Gold","short_name":"g","color":"#ffd700"}`

	if rec := do(t, h.Create, http.MethodPost, "/api/currencies", body, "U1"); rec.Code != http.StatusCreated {
		t.Fatalf("first create: %d", rec.Code)
	}
	rec := do(t, h.Create, http.MethodPost, "/api/currencies", body, "U1")
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
	if len(spy.entries) != 1 {
		t.Fatalf("recorded %d entries, want 1 (only the successful create)", len(spy.entries))
	}
}

func TestCurrencyRepeatedDelete(t *testing.T) {
	spy := &recorderSpy{}
	h := NewCurrencyHandler(repository.NewCurrencyRepo(gameDB(t)), spy)

	if rec := do(t, h.Create, http.MethodPost, "/api/currencies",
		`{"id":"gold","name":"Gold","short_name":"g","color":"#ffd700"}`, "U1"); rec.Code != http.StatusCreated {
		t.Fatalf("create: %d", rec.Code)
	}

	rec := do(t, h.Delete, http.MethodDelete, "/api/currencies/gold", "", "U1", "id", "gold")
	if rec.Code != http.StatusNoContent {
		t.Fatalf("first delete: %d, want 204", rec.Code)
	}

	rec = do(t, h.Delete, http.MethodDelete, "/api/currencies/gold", "", "U1", "id", "gold")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("second delete: %d, want 404", rec.Code)
	}

	// One Created plus one Deleted; the failed delete leaves no trace.
	if len(spy.entries) != 2 {
		t.Fatalf("recorded %d entries, want 2", len(spy.entries))
	}
	if spy.entries[1].Action != model.ActionDeleted {
		t.Fatalf("entry[1] = %+v", spy.entries[1])
	}
}
