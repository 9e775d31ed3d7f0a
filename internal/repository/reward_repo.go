package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hvac_reward"
	"hvac_reward/internal/models"
)

type RewardSQLite struct {
	db *sql.DB
}

func NewRewardSQLite(db *sql.DB) *RewardSQLite { return &RewardSQLite{db: db} }

var _ RewardRepo = (*RewardSQLite)(nil)

const (
	insertRewardSQL = `
		INSERT INTO reward_records (id, agent_id, scenario_id, start_ts, end_ts, created_at, created_by, agent_reward, response)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	selectRewardColumns = `SELECT id, agent_id, scenario_id, start_ts, end_ts, created_at, created_by, response FROM reward_records`

	selectLatestRewardSQL = selectRewardColumns + ` WHERE agent_id = ? ORDER BY end_ts DESC, created_at DESC LIMIT 1`
)

// normalizeRecord fills the id and creation time and converts times to UTC.
func normalizeRecord(r models.RewardRecord) models.RewardRecord {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now().UTC()
	} else {
		r.CreatedAt = r.CreatedAt.UTC()
	}
	r.StartTimestamp = r.StartTimestamp.UTC()
	r.EndTimestamp = r.EndTimestamp.UTC()
	return r
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func insertRecord(ctx context.Context, ex execer, r models.RewardRecord) error {
	r = normalizeRecord(r)
	payload, err := json.Marshal(r.Response)
	if err != nil {
		return fmt.Errorf("marshal response %s: %w", r.ID, err)
	}
	_, err = ex.ExecContext(ctx, insertRewardSQL,
		r.ID,
		r.AgentID,
		r.ScenarioID,
		r.StartTimestamp,
		r.EndTimestamp,
		r.CreatedAt,
		r.CreatedBy,
		r.Response.AgentRewardValue,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert reward %s: %w", r.ID, err)
	}
	return nil
}

// Save inserts a single record.
func (r *RewardSQLite) Save(ctx context.Context, rec models.RewardRecord) error {
	return insertRecord(ctx, r.db, rec)
}

// SaveBatch inserts all records in one transaction; either all are stored or none.
func (r *RewardSQLite) SaveBatch(ctx context.Context, recs []models.RewardRecord) error {
	if len(recs) == 0 {
		return nil
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin reward batch: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, rec := range recs {
		if err := insertRecord(ctx, tx, rec); err != nil {
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reward batch: %w", err)
	}
	return nil
}

// List returns records matching f ordered by start time ASC.
func (r *RewardSQLite) List(ctx context.Context, f models.RewardFilter) ([]models.RewardRecord, error) {
	var (
		conds []string
		args  []any
	)

	if id := strings.TrimSpace(f.AgentID); id != "" {
		conds = append(conds, "agent_id = ?")
		args = append(args, id)
	}
	if id := strings.TrimSpace(f.ScenarioID); id != "" {
		conds = append(conds, "scenario_id = ?")
		args = append(args, id)
	}
	if !f.From.IsZero() {
		conds = append(conds, "start_ts >= ?")
		args = append(args, f.From.UTC())
	}
	if !f.To.IsZero() {
		conds = append(conds, "end_ts <= ?")
		args = append(args, f.To.UTC())
	}

	q := selectRewardColumns
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY start_ts ASC"
	if f.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query rewards: %w", err)
	}
	defer rows.Close()

	out := make([]models.RewardRecord, 0, 64)
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Latest returns the most recent record for agentID, or (nil, nil) if none.
func (r *RewardSQLite) Latest(ctx context.Context, agentID string) (*models.RewardRecord, error) {
	rec, err := scanRecord(r.db.QueryRowContext(ctx, selectLatestRewardSQL, agentID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (models.RewardRecord, error) {
	var (
		rec     models.RewardRecord
		payload string
	)
	if err := s.Scan(&rec.ID, &rec.AgentID, &rec.ScenarioID, &rec.StartTimestamp, &rec.EndTimestamp, &rec.CreatedAt, &rec.CreatedBy, &payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.RewardRecord{}, err
		}
		return models.RewardRecord{}, fmt.Errorf("scan reward: %w", err)
	}
	var resp hvac_reward.RewardResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return models.RewardRecord{}, fmt.Errorf("decode reward %s: %w", rec.ID, err)
	}
	rec.Response = resp
	rec.StartTimestamp = rec.StartTimestamp.UTC()
	rec.EndTimestamp = rec.EndTimestamp.UTC()
	rec.CreatedAt = rec.CreatedAt.UTC()
	return rec, nil
}
