package mojang

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLookupName(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/users/profiles/minecraft/Notch" {
			t.Errorf("path = %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"069a79f444e94726a5befca90e38aaf5","name":"Notch"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	p, err := c.LookupName(context.Background(), "Notch")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if p.ID != "069a79f444e94726a5befca90e38aaf5" || p.Name != "Notch" {
		t.Fatalf("profile = %+v", p)
	}
}

func TestLookupNameNotFound(t *testing.T) {
	// The Mojang API answers 204 for unknown names; older endpoints use 404.
	for _, status := range []int{http.StatusNoContent, http.StatusNotFound} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		c := NewClient(srv.URL)
		_, err := c.LookupName(context.Background(), "nobody")
		srv.Close()
		if !errors.Is(err, ErrProfileNotFound) {
			t.Fatalf("status %d: got %v, want ErrProfileNotFound", status, err)
		}
	}
}

func TestLookupNameUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	if _, err := c.LookupName(context.Background(), "x"); err == nil {
		t.Fatal("want error on upstream failure")
	}
}
