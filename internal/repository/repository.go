package repository

import (
	"context"
	"database/sql"

	"hvac_reward/internal/models"
)

type Authorization interface {
	Create(ctx context.Context, username, hash string) (int, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

type RewardRepo interface {
	Save(ctx context.Context, r models.RewardRecord) error
	SaveBatch(ctx context.Context, rs []models.RewardRecord) error
	List(ctx context.Context, f models.RewardFilter) ([]models.RewardRecord, error)
	Latest(ctx context.Context, agentID string) (*models.RewardRecord, error)
}

type InventoryRepo interface {
	Put(ctx context.Context, inv models.Inventory) error
	Get(ctx context.Context, scenarioID string) (*models.Inventory, error)
}

type Repository struct {
	Rewards   RewardRepo
	Inventory InventoryRepo
	Auth      Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		Rewards:   NewRewardSQLite(db),
		Inventory: NewInventorySQLite(db),
		Auth:      NewUserSQLite(db),
	}
}
