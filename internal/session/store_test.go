package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryStoreLifecycle(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Create(ctx, "tok", Data{UUID: "u1", Username: "alice"}, time.Minute); err != nil {
		t.Fatalf("create: %v", err)
	}

	d, err := s.Get(ctx, "tok")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if d.UUID != "u1" || d.Username != "alice" {
		t.Fatalf("got %+v", d)
	}

	if err := s.Destroy(ctx, "tok"); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if _, err := s.Get(ctx, "tok"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound after destroy, got %v", err)
	}
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	if err := s.Create(ctx, "tok", Data{UUID: "u1"}, 10*time.Millisecond); err != nil {
		t.Fatalf("create: %v", err)
	}
	time.Sleep(25 * time.Millisecond)
	if _, err := s.Get(ctx, "tok"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound after expiry, got %v", err)
	}

	// Destroying an expired or unknown token is not an error.
	if err := s.Destroy(ctx, "tok"); err != nil {
		t.Fatalf("destroy: %v", err)
	}
}
