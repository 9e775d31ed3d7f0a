package repository_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"hvac_reward/internal/models"
	"hvac_reward/internal/repository"
	"hvac_reward/internal/repository/db"
)

func openRepo(t *testing.T) *repository.Repository {
	t.Helper()
	conn, err := db.InitDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return repository.NewRepository(conn)
}

func TestInventorySQLite_PutGet(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	got, err := repo.Inventory.Get(ctx, "office")
	if err != nil || got != nil {
		t.Fatalf("expected no inventory, got (%+v, %v)", got, err)
	}

	inv := models.Inventory{
		ScenarioID:    "office",
		ZoneIDs:       []string{"z1", "z2"},
		AirHandlerIDs: []string{"ah1"},
		OwnerID:       1,
	}
	if err := repo.Inventory.Put(ctx, inv); err != nil {
		t.Fatalf("Put: %v", err)
	}
	inv.BoilerIDs = []string{"b1"}
	if err := repo.Inventory.Put(ctx, inv); err != nil {
		t.Fatalf("Put (update): %v", err)
	}

	got, err = repo.Inventory.Get(ctx, "office")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !reflect.DeepEqual(got.ZoneIDs, inv.ZoneIDs) || !reflect.DeepEqual(got.BoilerIDs, []string{"b1"}) {
		t.Fatalf("unexpected inventory: %+v", got)
	}
	if len(got.AirHandlerIDs) != 1 || got.OwnerID != 1 || got.UpdatedAt.IsZero() {
		t.Fatalf("unexpected inventory: %+v", got)
	}
}

func TestInventorySQLite_PutOwnedByAnotherUser(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	if err := repo.Inventory.Put(ctx, models.Inventory{ScenarioID: "office", ZoneIDs: []string{"z1"}, OwnerID: 1}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	err := repo.Inventory.Put(ctx, models.Inventory{ScenarioID: "office", ZoneIDs: []string{"other"}, OwnerID: 2})
	if !errors.Is(err, repository.ErrInventoryOwned) {
		t.Fatalf("expected ErrInventoryOwned, got %v", err)
	}

	got, err := repo.Inventory.Get(ctx, "office")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.OwnerID != 1 || !reflect.DeepEqual(got.ZoneIDs, []string{"z1"}) {
		t.Fatalf("inventory was overwritten: %+v", got)
	}
}

func TestInventorySQLite_UnownedRowIsClaimed(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	if err := repo.Inventory.Put(ctx, models.Inventory{ScenarioID: "office", ZoneIDs: []string{"z1"}}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := repo.Inventory.Put(ctx, models.Inventory{ScenarioID: "office", ZoneIDs: []string{"z2"}, OwnerID: 3}); err != nil {
		t.Fatalf("Put (claim): %v", err)
	}
	if err := repo.Inventory.Put(ctx, models.Inventory{ScenarioID: "office", ZoneIDs: []string{"z3"}, OwnerID: 4}); !errors.Is(err, repository.ErrInventoryOwned) {
		t.Fatalf("expected ErrInventoryOwned after claim, got %v", err)
	}

	got, err := repo.Inventory.Get(ctx, "office")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.OwnerID != 3 || !reflect.DeepEqual(got.ZoneIDs, []string{"z2"}) {
		t.Fatalf("unexpected inventory: %+v", got)
	}
}

func TestRewardSQLite_RoundTrip(t *testing.T) {
	repo := openRepo(t)
	ctx := context.Background()

	rec := models.RewardRecord{AgentID: "a1", ScenarioID: "office", CreatedBy: 9}
	rec.StartTimestamp = mustTime(t, "2025-01-01T10:00:00Z")
	rec.EndTimestamp = mustTime(t, "2025-01-01T10:05:00Z")
	rec.Response.AgentRewardValue = 0.5
	rec.Response.CarbonEmitted = 1.25
	if err := repo.Rewards.Save(ctx, rec); err != nil {
		t.Fatalf("Save: %v", err)
	}

	later := rec
	later.StartTimestamp = rec.EndTimestamp
	later.EndTimestamp = mustTime(t, "2025-01-01T10:10:00Z")
	later.Response.AgentRewardValue = 0.7
	if err := repo.Rewards.SaveBatch(ctx, []models.RewardRecord{later}); err != nil {
		t.Fatalf("SaveBatch: %v", err)
	}

	all, err := repo.Rewards.List(ctx, models.RewardFilter{AgentID: "a1"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 || all[0].Response.CarbonEmitted != 1.25 || all[1].CreatedBy != 9 {
		t.Fatalf("unexpected list: %+v", all)
	}
	if all[0].ID == "" || all[0].ID == all[1].ID {
		t.Fatalf("ids not assigned: %q %q", all[0].ID, all[1].ID)
	}

	latest, err := repo.Rewards.Latest(ctx, "a1")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if latest == nil || latest.Response.AgentRewardValue != 0.7 {
		t.Fatalf("unexpected latest: %+v", latest)
	}
}
