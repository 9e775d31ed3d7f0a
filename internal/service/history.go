package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"hvac_reward/internal/export"
	"hvac_reward/internal/metrics"
	"hvac_reward/internal/models"
	"hvac_reward/internal/repository"
)

const maxHistoryLimit = 10000

type HistoryService struct {
	rewards repository.RewardRepo
}

func NewHistoryService(rewards repository.RewardRepo) *HistoryService {
	return &HistoryService{rewards: rewards}
}

var (
	ErrInvalidTimeRange = errors.New("invalid time range: from must be <= to")
	ErrAgentIDRequired  = errors.New("agent_id is required")
)

// normalizeToUTC returns t in UTC, preserving zero time values.
func normalizeToUTC(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return t.UTC()
}

// normalizeAndValidateFilter trims ids, converts bounds to UTC, clamps the
// limit and validates the time range.
func normalizeAndValidateFilter(f models.RewardFilter) (models.RewardFilter, error) {
	f.AgentID = strings.TrimSpace(f.AgentID)
	f.ScenarioID = strings.TrimSpace(f.ScenarioID)
	f.From = normalizeToUTC(f.From)
	f.To = normalizeToUTC(f.To)

	if !f.From.IsZero() && !f.To.IsZero() && f.From.After(f.To) {
		return models.RewardFilter{}, ErrInvalidTimeRange
	}
	if f.Limit < 0 {
		f.Limit = 0
	}
	if f.Limit == 0 || f.Limit > maxHistoryLimit {
		f.Limit = maxHistoryLimit
	}
	return f, nil
}

func (s *HistoryService) List(ctx context.Context, f models.RewardFilter) ([]models.RewardRecord, error) {
	f, err := normalizeAndValidateFilter(f)
	if err != nil {
		return nil, err
	}
	return s.rewards.List(ctx, f)
}

func (s *HistoryService) Latest(ctx context.Context, agentID string) (*models.RewardRecord, error) {
	agentID = strings.TrimSpace(agentID)
	if agentID == "" {
		return nil, ErrAgentIDRequired
	}
	return s.rewards.Latest(ctx, agentID)
}

// Export renders the filtered history as an xlsx workbook.
func (s *HistoryService) Export(ctx context.Context, f models.RewardFilter) (b []byte, err error) {
	start := time.Now()
	defer func() {
		result := metrics.ResultSuccess
		if err != nil {
			result = metrics.ResultError
		}
		metrics.ObserveExport(result, time.Since(start))
	}()

	recs, err := s.List(ctx, f)
	if err != nil {
		return nil, err
	}
	return export.BuildRewardsXLSX(exportTitle(f), recs)
}

func exportTitle(f models.RewardFilter) string {
	parts := []string{}
	if f.AgentID != "" {
		parts = append(parts, "agent "+strings.TrimSpace(f.AgentID))
	}
	if f.ScenarioID != "" {
		parts = append(parts, "scenario "+strings.TrimSpace(f.ScenarioID))
	}
	if !f.From.IsZero() || !f.To.IsZero() {
		parts = append(parts, fmt.Sprintf("%s .. %s", fmtBound(f.From), fmtBound(f.To)))
	}
	if len(parts) == 0 {
		return "all records"
	}
	return strings.Join(parts, ", ")
}

func fmtBound(t time.Time) string {
	if t.IsZero() {
		return "*"
	}
	return t.UTC().Format(time.RFC3339)
}
