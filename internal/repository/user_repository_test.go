package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/HektorTM/wos-dashboard-sub001/internal/utils"
)

func TestUserCreateAndLookup(t *testing.T) {
	db := testMetaDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, "alice", "secret", "*", 4)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == "" {
		t.Fatal("empty uuid")
	}

	if _, err := repo.Create(ctx, "alice", "other", "", 4); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate username: got %v, want ErrDuplicate", err)
	}

	u, err := repo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("get by username: %v", err)
	}
	if u.UUID != id || !u.IsActive {
		t.Fatalf("got %+v", u)
	}
	if !utils.VerifyPassword(u.PasswordHash, "secret") {
		t.Error("stored hash does not verify")
	}

	if _, err := repo.GetByUUID(ctx, "nope"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("unknown uuid: got %v, want sql.ErrNoRows", err)
	}
}

func TestUserSetActive(t *testing.T) {
	db := testMetaDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, "bob", "pw", "", 4)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.SetActive(ctx, id, false); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	u, err := repo.GetByUUID(ctx, id)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if u.IsActive {
		t.Fatal("user still active after deactivation")
	}

	if err := repo.SetActive(ctx, id, true); err != nil {
		t.Fatalf("reactivate: %v", err)
	}
	u, _ = repo.GetByUUID(ctx, id)
	if !u.IsActive {
		t.Fatal("user still inactive after reactivation")
	}

	if err := repo.SetActive(ctx, "missing", false); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("missing user: got %v, want sql.ErrNoRows", err)
	}
}

func TestUserDelete(t *testing.T) {
	db := testMetaDB(t)
	repo := NewUserRepo(db)
	ctx := context.Background()

	id, err := repo.Create(ctx, "carol", "pw", "", 4)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, id); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("repeat delete: got %v, want sql.ErrNoRows", err)
	}
}
