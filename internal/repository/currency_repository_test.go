package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

func TestCurrencyCRUD(t *testing.T) {
	db := testGameDB(t)
	repo := NewCurrencyRepo(db)
	ctx := context.Background()

	gold := &model.Currency{ID: "gold", Name: "Gold", ShortName: "g", Color: "#ffd700", Icon: "coin"}
	if err := repo.Create(ctx, gold); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.Create(ctx, gold); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("duplicate create: got %v, want ErrDuplicate", err)
	}

	got, err := repo.Get(ctx, "gold")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Gold" || got.ShortName != "g" || got.Hidden {
		t.Fatalf("got %+v", got)
	}

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("get missing: got %v, want sql.ErrNoRows", err)
	}

	gold.Name = "Gold Coins"
	gold.Hidden = true
	if err := repo.Update(ctx, gold); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err = repo.Get(ctx, "gold")
	if err != nil {
		t.Fatalf("get after update: %v", err)
	}
	if got.Name != "Gold Coins" || !got.Hidden {
		t.Fatalf("update not applied: %+v", got)
	}

	if err := repo.Update(ctx, &model.Currency{ID: "missing", Name: "x", ShortName: "x", Color: "x"}); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("update missing: got %v, want sql.ErrNoRows", err)
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("list returned %d rows, want 1", len(all))
	}
}

func TestCurrencyDeleteCascadesBalances(t *testing.T) {
	db := testGameDB(t)
	repo := NewCurrencyRepo(db)
	players := NewPlayerDataRepo(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &model.Currency{ID: "gems", Name: "Gems", ShortName: "gm", Color: "#0f0"}); err != nil {
		t.Fatalf("create currency: %v", err)
	}
	if err := players.Create(ctx, &model.PlayerData{UUID: "p1", Nickname: "Steve"}); err != nil {
		t.Fatalf("create player: %v", err)
	}
	if err := players.SetCurrency(ctx, &model.PlayerCurrency{UUID: "p1", CurrencyID: "gems", Amount: 42}); err != nil {
		t.Fatalf("set balance: %v", err)
	}

	if err := repo.Delete(ctx, "gems"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	balances, err := players.ListCurrencies(ctx, "p1")
	if err != nil {
		t.Fatalf("list balances: %v", err)
	}
	if len(balances) != 0 {
		t.Fatalf("balances survived currency delete: %+v", balances)
	}

	// Second delete finds nothing.
	if err := repo.Delete(ctx, "gems"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("repeat delete: got %v, want sql.ErrNoRows", err)
	}
}
