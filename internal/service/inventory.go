package service

import (
	"context"
	"errors"
	"slices"
	"strings"

	"hvac_reward/internal/models"
	"hvac_reward/internal/repository"
)

var (
	ErrScenarioIDRequired = errors.New("scenario_id is required")
	ErrInventoryForbidden = repository.ErrInventoryOwned
)

type InventoryService struct {
	repo repository.InventoryRepo
}

func NewInventoryService(repo repository.InventoryRepo) *InventoryService {
	return &InventoryService{repo: repo}
}

// normalizeIDs trims, drops empty entries, dedupes and sorts.
func normalizeIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Register stores inv owned by userID. Replacing a scenario another user
// registered fails with ErrInventoryForbidden; records with no owner (0) are
// claimed by the caller.
func (s *InventoryService) Register(ctx context.Context, userID int, inv models.Inventory) (models.Inventory, error) {
	inv.ScenarioID = strings.TrimSpace(inv.ScenarioID)
	if inv.ScenarioID == "" {
		return models.Inventory{}, ErrScenarioIDRequired
	}
	inv.OwnerID = userID
	inv.ZoneIDs = normalizeIDs(inv.ZoneIDs)
	inv.AirHandlerIDs = normalizeIDs(inv.AirHandlerIDs)
	inv.BoilerIDs = normalizeIDs(inv.BoilerIDs)

	if err := s.repo.Put(ctx, inv); err != nil {
		return models.Inventory{}, err
	}
	return inv, nil
}

func (s *InventoryService) Lookup(ctx context.Context, scenarioID string) (*models.Inventory, error) {
	scenarioID = strings.TrimSpace(scenarioID)
	if scenarioID == "" {
		return nil, ErrScenarioIDRequired
	}
	return s.repo.Get(ctx, scenarioID)
}
