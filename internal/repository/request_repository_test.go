package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

func TestRequestResolveTransitionsOnce(t *testing.T) {
	db := testMetaDB(t)
	repo := NewRequestRepo(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, &model.Request{Type: "Currency", TargetID: "gold", Requester: "u1", Status: model.RequestOpen})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Resolve(ctx, id, "u2", model.RequestApproved); err != nil {
		t.Fatalf("approve: %v", err)
	}

	got, err := repo.Get(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Status != model.RequestApproved {
		t.Fatalf("status = %q, want approved", got.Status)
	}
	if got.Approver == nil || *got.Approver != "u2" {
		t.Fatalf("approver = %v, want u2", got.Approver)
	}

	// A resolved request cannot be resolved again.
	if err := repo.Resolve(ctx, id, "u3", model.RequestDenied); !errors.Is(err, ErrConflict) {
		t.Fatalf("second resolve: got %v, want ErrConflict", err)
	}
	got, _ = repo.Get(ctx, id)
	if got.Status != model.RequestApproved {
		t.Fatalf("status changed by losing resolver: %q", got.Status)
	}
}

func TestRequestResolveMissing(t *testing.T) {
	db := testMetaDB(t)
	repo := NewRequestRepo(db)

	if err := repo.Resolve(context.Background(), 99, "u1", model.RequestDenied); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("got %v, want sql.ErrNoRows", err)
	}
}

func TestRequestListFiltersByStatus(t *testing.T) {
	db := testMetaDB(t)
	repo := NewRequestRepo(db)
	ctx := context.Background()

	open, err := repo.Create(ctx, &model.Request{Type: "Warp", TargetID: "spawn", Requester: "u1", Status: model.RequestOpen})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	resolved, err := repo.Create(ctx, &model.Request{Type: "Warp", TargetID: "hub", Requester: "u1", Status: model.RequestOpen})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Resolve(ctx, resolved, "u2", model.RequestDenied); err != nil {
		t.Fatalf("deny: %v", err)
	}

	openOnly, err := repo.List(ctx, model.RequestOpen)
	if err != nil {
		t.Fatalf("list open: %v", err)
	}
	if len(openOnly) != 1 || openOnly[0].ID != open {
		t.Fatalf("open filter returned %+v", openOnly)
	}

	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("unfiltered list returned %d rows, want 2", len(all))
	}
}
