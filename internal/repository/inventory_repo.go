package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"hvac_reward/internal/models"
)

type InventorySQLite struct {
	db *sql.DB
}

func NewInventorySQLite(db *sql.DB) *InventorySQLite {
	return &InventorySQLite{db: db}
}

var _ InventoryRepo = (*InventorySQLite)(nil)

// ErrInventoryOwned is returned by Put when the scenario is owned by another user.
var ErrInventoryOwned = errors.New("scenario inventory belongs to another user")

const (
	// The WHERE clause makes the ownership check part of the write: a row
	// owned by someone else is left untouched and no row is reported changed.
	upsertInventorySQL = `
		INSERT INTO scenario_inventory (scenario_id, zone_ids, air_handler_ids, boiler_ids, owner_id, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(scenario_id) DO UPDATE SET
			zone_ids=excluded.zone_ids,
			air_handler_ids=excluded.air_handler_ids,
			boiler_ids=excluded.boiler_ids,
			owner_id=excluded.owner_id,
			updated_at=excluded.updated_at
		WHERE scenario_inventory.owner_id IN (0, excluded.owner_id)
	`

	selectInventorySQL = `
		SELECT scenario_id, zone_ids, air_handler_ids, boiler_ids, owner_id, updated_at
		FROM scenario_inventory WHERE scenario_id=?
	`
)

func marshalIDs(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func unmarshalIDs(s string) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal([]byte(s), &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Put creates or replaces the inventory of a scenario. A row owned by a
// different user is not replaced and ErrInventoryOwned is returned; rows with
// owner 0 are claimed by inv.OwnerID.
func (r *InventorySQLite) Put(ctx context.Context, inv models.Inventory) error {
	cols := make([]string, 0, 3)
	for _, ids := range [][]string{inv.ZoneIDs, inv.AirHandlerIDs, inv.BoilerIDs} {
		s, err := marshalIDs(ids)
		if err != nil {
			return err
		}
		cols = append(cols, s)
	}

	ts := inv.UpdatedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	res, err := r.db.ExecContext(ctx, upsertInventorySQL, inv.ScenarioID, cols[0], cols[1], cols[2], inv.OwnerID, ts)
	if err != nil {
		return fmt.Errorf("upsert inventory %q: %w", inv.ScenarioID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("upsert inventory %q: %w", inv.ScenarioID, err)
	}
	if n == 0 {
		return fmt.Errorf("upsert inventory %q: %w", inv.ScenarioID, ErrInventoryOwned)
	}
	return nil
}

// Get returns the inventory of a scenario, or (nil, nil) if none is registered.
func (r *InventorySQLite) Get(ctx context.Context, scenarioID string) (*models.Inventory, error) {
	var (
		inv                   models.Inventory
		zones, handlers, boil string
	)
	err := r.db.QueryRowContext(ctx, selectInventorySQL, scenarioID).
		Scan(&inv.ScenarioID, &zones, &handlers, &boil, &inv.OwnerID, &inv.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("select inventory %q: %w", scenarioID, err)
	}

	for _, c := range []struct {
		raw string
		dst *[]string
	}{{zones, &inv.ZoneIDs}, {handlers, &inv.AirHandlerIDs}, {boil, &inv.BoilerIDs}} {
		ids, err := unmarshalIDs(c.raw)
		if err != nil {
			return nil, fmt.Errorf("decode inventory %q: %w", scenarioID, err)
		}
		*c.dst = ids
	}
	inv.UpdatedAt = inv.UpdatedAt.UTC()
	return &inv, nil
}
