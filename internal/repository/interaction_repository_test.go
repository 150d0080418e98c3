package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/HektorTM/wos-dashboard-sub001/internal/model"
)

func TestInteractionChildSequencesAreScopedPerParent(t *testing.T) {
	db := testGameDB(t)
	repo := NewInteractionRepo(db)
	ctx := context.Background()

	for _, id := range []string{"door", "chest"} {
		if err := repo.Create(ctx, id); err != nil {
			t.Fatalf("create %s: %v", id, err)
		}
	}

	// Two actions on one parent, one on the other.
	a1 := &model.InteractionAction{InteractionID: "door", MatchType: "RIGHT_CLICK", Actions: "open"}
	a2 := &model.InteractionAction{InteractionID: "door", MatchType: "LEFT_CLICK", Actions: "knock"}
	b1 := &model.InteractionAction{InteractionID: "chest", MatchType: "RIGHT_CLICK", Actions: "loot"}
	for _, a := range []*model.InteractionAction{a1, a2, b1} {
		if err := repo.AddAction(ctx, a); err != nil {
			t.Fatalf("add action: %v", err)
		}
	}

	if a1.ActionID != 1 || a2.ActionID != 2 {
		t.Fatalf("door sequence = %d,%d, want 1,2", a1.ActionID, a2.ActionID)
	}
	// The second parent starts its own sequence at 1.
	if b1.ActionID != 1 {
		t.Fatalf("chest sequence = %d, want 1", b1.ActionID)
	}
}

func TestInteractionAddActionRequiresParent(t *testing.T) {
	db := testGameDB(t)
	repo := NewInteractionRepo(db)

	err := repo.AddAction(context.Background(), &model.InteractionAction{InteractionID: "ghost", MatchType: "RIGHT_CLICK"})
	if !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("got %v, want sql.ErrNoRows", err)
	}
}

func TestInteractionDeleteCascades(t *testing.T) {
	db := testGameDB(t)
	repo := NewInteractionRepo(db)
	conditions := NewConditionRepo(db)
	ctx := context.Background()

	if err := repo.Create(ctx, "portal"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.AddAction(ctx, &model.InteractionAction{InteractionID: "portal", MatchType: "RIGHT_CLICK", Actions: "teleport"}); err != nil {
		t.Fatalf("add action: %v", err)
	}
	if err := repo.AddParticle(ctx, &model.InteractionParticle{InteractionID: "portal", Particle: "PORTAL", Count: 10}); err != nil {
		t.Fatalf("add particle: %v", err)
	}
	if err := repo.AddHologram(ctx, &model.InteractionHologram{InteractionID: "portal", Lines: "Enter here"}); err != nil {
		t.Fatalf("add hologram: %v", err)
	}
	if err := conditions.Add(ctx, &model.Condition{ParentType: "Interaction", ParentID: "portal", Type: "permission", Key: "warp.use", Value: "true"}); err != nil {
		t.Fatalf("add condition: %v", err)
	}

	if err := repo.Delete(ctx, "portal"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := repo.Get(ctx, "portal"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("parent survived: %v", err)
	}
	for table, q := range map[string]string{
		"actions":    "SELECT COUNT(*) FROM interaction_actions WHERE interaction_id = 'portal'",
		"particles":  "SELECT COUNT(*) FROM interaction_particles WHERE interaction_id = 'portal'",
		"holograms":  "SELECT COUNT(*) FROM interaction_holograms WHERE interaction_id = 'portal'",
		"conditions": "SELECT COUNT(*) FROM conditions WHERE parent_type = 'Interaction' AND parent_id = 'portal'",
	} {
		var n int
		if err := db.QueryRow(q).Scan(&n); err != nil {
			t.Fatalf("count %s: %v", table, err)
		}
		if n != 0 {
			t.Errorf("%s survived parent delete: %d rows", table, n)
		}
	}
}
