package service

import (
	"context"
	"time"

	"hvac_reward"
	"hvac_reward/internal/logger"
	"hvac_reward/internal/models"
	"hvac_reward/internal/repository"
	"hvac_reward/internal/reward"
	"hvac_reward/internal/stream"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Reward computes, stores and publishes rewards.
type Reward interface {
	Compute(ctx context.Context, userID int, info hvac_reward.RewardInfo) (models.RewardRecord, error)
	ComputeBatch(ctx context.Context, userID int, infos []hvac_reward.RewardInfo) ([]models.RewardRecord, error)
}

// History exposes stored reward records with filtering access.
type History interface {
	List(ctx context.Context, f models.RewardFilter) ([]models.RewardRecord, error)
	Latest(ctx context.Context, agentID string) (*models.RewardRecord, error)
	Export(ctx context.Context, f models.RewardFilter) ([]byte, error)
}

// Inventory manages the device ids each scenario must report. Only the user
// that first registered a scenario may replace it.
type Inventory interface {
	Register(ctx context.Context, userID int, inv models.Inventory) (models.Inventory, error)
	Lookup(ctx context.Context, scenarioID string) (*models.Inventory, error)
}

type Service struct {
	Reward
	History
	Inventory
	Authorization
}

// Options carries the runtime settings services need beyond the repositories.
type Options struct {
	Params     reward.Params
	Publisher  stream.Publisher
	Log        *logger.Logger
	SigningKey string
	TokenTTL   time.Duration
	BatchLimit int
}

func NewService(repos *repository.Repository, opts Options) *Service {
	if opts.Publisher == nil {
		opts.Publisher = stream.Nop{}
	}
	if opts.Log == nil {
		opts.Log = logger.Nop()
	}
	return &Service{
		Reward:        NewRewardService(repos.Rewards, repos.Inventory, opts.Publisher, opts.Params, opts.Log, opts.BatchLimit),
		History:       NewHistoryService(repos.Rewards),
		Inventory:     NewInventoryService(repos.Inventory),
		Authorization: NewAuthService(repos.Auth, opts.SigningKey, opts.TokenTTL),
	}
}
