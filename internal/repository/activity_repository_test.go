package repository

import (
	"context"
	"testing"
)

func TestActivityAppendAndList(t *testing.T) {
	db := testMetaDB(t)
	repo := NewActivityRepo(db)
	ctx := context.Background()

	if err := repo.Append(ctx, "Currency", "gold", "u1", "Created"); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Append(ctx, "Currency", "gold", "u1", "Edited"); err != nil {
		t.Fatalf("append: %v", err)
	}
	// System actions carry no actor.
	if err := repo.Append(ctx, "Currency", "silver", "", "Created"); err != nil {
		t.Fatalf("append: %v", err)
	}

	history, err := repo.ListByTarget(ctx, "Currency", "gold")
	if err != nil {
		t.Fatalf("list by target: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history has %d entries, want 2", len(history))
	}
	// Oldest first.
	if history[0].Action != "Created" || history[1].Action != "Edited" {
		t.Fatalf("history order: %s, %s", history[0].Action, history[1].Action)
	}
	if history[0].User == nil || *history[0].User != "u1" {
		t.Fatalf("actor = %v, want u1", history[0].User)
	}

	recent, err := repo.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("recent has %d entries, want 2", len(recent))
	}
	// Newest first; the silver entry is the system action.
	if recent[0].TargetID != "silver" {
		t.Fatalf("recent[0] target = %s, want silver", recent[0].TargetID)
	}
	if recent[0].User != nil {
		t.Fatalf("system action actor = %v, want nil", recent[0].User)
	}
}
