package service

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"hvac_reward/internal/models"
)

func Test_normalizeIDs(t *testing.T) {
	t.Parallel()

	got := normalizeIDs([]string{" z2", "z1", "", "z2 ", "  "})
	if want := []string{"z1", "z2"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("normalizeIDs = %v; want %v", got, want)
	}
	if got := normalizeIDs(nil); len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
}

func TestInventoryService_Register(t *testing.T) {
	t.Parallel()

	repo := &fakeInventoryRepo{}
	svc := NewInventoryService(repo)

	if _, err := svc.Register(context.Background(), 1, models.Inventory{ScenarioID: " "}); !errors.Is(err, ErrScenarioIDRequired) {
		t.Fatalf("expected ErrScenarioIDRequired, got %v", err)
	}
	if repo.puts != 0 {
		t.Fatalf("Put should not be called")
	}

	inv, err := svc.Register(context.Background(), 1, models.Inventory{
		ScenarioID: " office ",
		ZoneIDs:    []string{"z2", "z1", "z1"},
		BoilerIDs:  []string{"b1"},
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if inv.ScenarioID != "office" || !reflect.DeepEqual(inv.ZoneIDs, []string{"z1", "z2"}) {
		t.Fatalf("unexpected inventory: %+v", inv)
	}

	got, err := svc.Lookup(context.Background(), "office")
	if err != nil || got == nil || !reflect.DeepEqual(got.BoilerIDs, []string{"b1"}) {
		t.Fatalf("Lookup: %+v, %v", got, err)
	}
}

func TestInventoryService_RepoError(t *testing.T) {
	t.Parallel()

	repo := &fakeInventoryRepo{err: errors.New("db down")}
	svc := NewInventoryService(repo)

	if _, err := svc.Register(context.Background(), 1, models.Inventory{ScenarioID: "s"}); !errors.Is(err, repo.err) {
		t.Fatalf("expected repo error, got %v", err)
	}
	if _, err := svc.Lookup(context.Background(), ""); !errors.Is(err, ErrScenarioIDRequired) {
		t.Fatalf("expected ErrScenarioIDRequired, got %v", err)
	}
}

func TestInventoryService_RegisterOwnership(t *testing.T) {
	t.Parallel()

	repo := &fakeInventoryRepo{}
	svc := NewInventoryService(repo)
	ctx := context.Background()

	inv, err := svc.Register(ctx, 7, models.Inventory{ScenarioID: "office", ZoneIDs: []string{"z1"}})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if inv.OwnerID != 7 {
		t.Fatalf("OwnerID = %d; want 7", inv.OwnerID)
	}

	if _, err := svc.Register(ctx, 8, models.Inventory{ScenarioID: "office", ZoneIDs: []string{"z9"}}); !errors.Is(err, ErrInventoryForbidden) {
		t.Fatalf("expected ErrInventoryForbidden, got %v", err)
	}
	got, _ := svc.Lookup(ctx, "office")
	if got == nil || !reflect.DeepEqual(got.ZoneIDs, []string{"z1"}) {
		t.Fatalf("inventory replaced by another user: %+v", got)
	}

	if _, err := svc.Register(ctx, 7, models.Inventory{ScenarioID: "office", ZoneIDs: []string{"z1", "z2"}}); err != nil {
		t.Fatalf("owner update: %v", err)
	}
}
