package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"hvac_reward"
	"hvac_reward/internal/logger"
	"hvac_reward/internal/metrics"
	"hvac_reward/internal/models"
	"hvac_reward/internal/repository"
	"hvac_reward/internal/reward"
	"hvac_reward/internal/stream"
)

const (
	defaultBatchLimit = 256
	computeWorkers    = 8
)

var (
	ErrEmptyBatch    = errors.New("batch contains no reward infos")
	ErrBatchTooLarge = errors.New("batch exceeds the configured limit")
)

type RewardService struct {
	rewards    repository.RewardRepo
	inventory  repository.InventoryRepo
	publisher  stream.Publisher
	params     reward.Params
	log        *logger.Logger
	batchLimit int
	now        func() time.Time
}

func NewRewardService(
	rewards repository.RewardRepo,
	inventory repository.InventoryRepo,
	publisher stream.Publisher,
	params reward.Params,
	log *logger.Logger,
	batchLimit int,
) *RewardService {
	if batchLimit <= 0 {
		batchLimit = defaultBatchLimit
	}
	return &RewardService{
		rewards:    rewards,
		inventory:  inventory,
		publisher:  publisher,
		params:     params,
		log:        log,
		batchLimit: batchLimit,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

func computeResult(err error) string {
	switch {
	case err == nil:
		return metrics.ResultSuccess
	case errors.Is(err, reward.ErrValidation):
		return metrics.ResultInvalid
	default:
		return metrics.ResultError
	}
}

// evaluate checks the scenario inventory and runs the reward function. It
// touches no storage beyond the inventory lookup.
func (s *RewardService) evaluate(ctx context.Context, userID int, info hvac_reward.RewardInfo) (rec models.RewardRecord, err error) {
	start := time.Now()
	defer func() { metrics.ObserveCompute(computeResult(err), time.Since(start)) }()

	info.AgentID = strings.TrimSpace(info.AgentID)
	info.ScenarioID = strings.TrimSpace(info.ScenarioID)
	if s.inventory != nil && info.ScenarioID != "" {
		inv, err := s.inventory.Get(ctx, info.ScenarioID)
		if err != nil {
			return models.RewardRecord{}, fmt.Errorf("load inventory: %w", err)
		}
		if inv != nil {
			if err := reward.RequireEntries(info, inv.ZoneIDs, inv.AirHandlerIDs, inv.BoilerIDs); err != nil {
				return models.RewardRecord{}, err
			}
		}
	}

	resp, err := reward.Compute(info, s.params)
	if err != nil {
		return models.RewardRecord{}, err
	}
	return models.RewardRecord{
		ID:             uuid.NewString(),
		AgentID:        info.AgentID,
		ScenarioID:     info.ScenarioID,
		StartTimestamp: resp.StartTimestamp,
		EndTimestamp:   resp.EndTimestamp,
		CreatedAt:      s.now(),
		CreatedBy:      userID,
		Response:       resp,
	}, nil
}

// Compute evaluates one RewardInfo on behalf of userID, stores the result and
// publishes it.
func (s *RewardService) Compute(ctx context.Context, userID int, info hvac_reward.RewardInfo) (models.RewardRecord, error) {
	rec, err := s.evaluate(ctx, userID, info)
	if err != nil {
		return models.RewardRecord{}, err
	}
	if err := s.rewards.Save(ctx, rec); err != nil {
		return models.RewardRecord{}, fmt.Errorf("save reward: %w", err)
	}
	s.after(ctx, rec)
	return rec, nil
}

// ComputeBatch evaluates infos concurrently. Nothing is stored unless every
// info is valid; results keep the input order.
func (s *RewardService) ComputeBatch(ctx context.Context, userID int, infos []hvac_reward.RewardInfo) ([]models.RewardRecord, error) {
	if len(infos) == 0 {
		return nil, ErrEmptyBatch
	}
	if len(infos) > s.batchLimit {
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(infos), s.batchLimit)
	}

	out := make([]models.RewardRecord, len(infos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(computeWorkers)
	for i := range infos {
		g.Go(func() error {
			rec, err := s.evaluate(gctx, userID, infos[i])
			if err != nil {
				return fmt.Errorf("reward info %d: %w", i, err)
			}
			out[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := s.rewards.SaveBatch(ctx, out); err != nil {
		return nil, fmt.Errorf("save reward batch: %w", err)
	}
	s.after(ctx, out...)
	return out, nil
}

// after updates gauges and publishes. Publishing is best effort: a stored
// record is never rolled back because a broker is unavailable.
func (s *RewardService) after(ctx context.Context, recs ...models.RewardRecord) {
	for _, r := range recs {
		metrics.SetAgentReward(r.AgentID, r.Response.AgentRewardValue)
	}
	if err := s.publisher.Publish(ctx, recs...); err != nil {
		metrics.IncPublish(metrics.ResultError)
		s.log.Errorw("publish_reward", "count", len(recs), "err", err)
		return
	}
	metrics.IncPublish(metrics.ResultSuccess)
}
