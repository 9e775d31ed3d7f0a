package repository

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"hvac_reward"
	"hvac_reward/internal/models"
)

type sqlmockArgumentFunc func(v driver.Value) bool

func (f sqlmockArgumentFunc) Match(v driver.Value) bool {
	return f(v)
}

var rewardColumns = []string{"id", "agent_id", "scenario_id", "start_ts", "end_ts", "created_at", "created_by", "response"}

func sampleRecord() models.RewardRecord {
	start := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	return models.RewardRecord{
		ID:             "r1",
		AgentID:        "agent",
		ScenarioID:     "office",
		StartTimestamp: start,
		EndTimestamp:   start.Add(5 * time.Minute),
		CreatedAt:      start.Add(6 * time.Minute),
		CreatedBy:      7,
		Response:       hvac_reward.RewardResponse{AgentRewardValue: 0.42, TotalOccupancy: 3},
	}
}

func TestRewardSQLite_Save_FillsIDAndCreatedAt(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	rec := sampleRecord()
	rec.ID = ""
	rec.CreatedAt = time.Time{}

	nonEmpty := sqlmockArgumentFunc(func(v driver.Value) bool {
		s, ok := v.(string)
		return ok && s != ""
	})
	recentUTC := sqlmockArgumentFunc(func(v driver.Value) bool {
		tm, ok := v.(time.Time)
		return ok && tm.Location() == time.UTC && time.Since(tm) < 5*time.Second
	})
	payload := sqlmockArgumentFunc(func(v driver.Value) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		var r hvac_reward.RewardResponse
		return json.Unmarshal([]byte(s), &r) == nil && r.AgentRewardValue == 0.42
	})

	mock.ExpectExec(regexp.QuoteMeta(insertRewardSQL)).
		WithArgs(nonEmpty, "agent", "office", rec.StartTimestamp, rec.EndTimestamp, recentUTC, 7, 0.42, payload).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := NewRewardSQLite(db).Save(context.Background(), rec); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestRewardSQLite_SaveBatch_RollsBackOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO reward_records").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO reward_records").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	a, b := sampleRecord(), sampleRecord()
	b.ID = "r2"
	err = NewRewardSQLite(db).SaveBatch(context.Background(), []models.RewardRecord{a, b})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected insert error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestRewardSQLite_SaveBatch_Commits(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO reward_records").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := NewRewardSQLite(db).SaveBatch(context.Background(), []models.RewardRecord{sampleRecord()}); err != nil {
		t.Fatalf("SaveBatch: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestRewardSQLite_List_BuildsFilters(t *testing.T) {
	tests := []struct {
		name  string
		f     models.RewardFilter
		query string
		args  []driver.Value
	}{
		{
			name:  "no filters",
			query: selectRewardColumns + " ORDER BY start_ts ASC",
		},
		{
			name: "all filters",
			f: models.RewardFilter{
				AgentID:    " agent ",
				ScenarioID: "office",
				From:       time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				To:         time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
				Limit:      10,
			},
			query: selectRewardColumns + " WHERE agent_id = ? AND scenario_id = ? AND start_ts >= ? AND end_ts <= ? ORDER BY start_ts ASC LIMIT ?",
			args: []driver.Value{
				"agent", "office",
				time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
				time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
				10,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("sqlmock.New(): %v", err)
			}
			defer func() { _ = db.Close() }()

			rec := sampleRecord()
			payload, _ := json.Marshal(rec.Response)
			rows := sqlmock.NewRows(rewardColumns).
				AddRow(rec.ID, rec.AgentID, rec.ScenarioID, rec.StartTimestamp, rec.EndTimestamp, rec.CreatedAt, rec.CreatedBy, string(payload))

			exp := mock.ExpectQuery(regexp.QuoteMeta(tt.query))
			if len(tt.args) > 0 {
				exp = exp.WithArgs(tt.args...)
			}
			exp.WillReturnRows(rows)

			got, err := NewRewardSQLite(db).List(context.Background(), tt.f)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if len(got) != 1 || got[0].ID != "r1" || got[0].Response.TotalOccupancy != 3 {
				t.Fatalf("unexpected records: %+v", got)
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("mock expectations: %v", err)
			}
		})
	}
}

func TestRewardSQLite_List_BadPayload(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	rec := sampleRecord()
	rows := sqlmock.NewRows(rewardColumns).
		AddRow(rec.ID, rec.AgentID, rec.ScenarioID, rec.StartTimestamp, rec.EndTimestamp, rec.CreatedAt, rec.CreatedBy, "{not json")
	mock.ExpectQuery("SELECT id, agent_id").WillReturnRows(rows)

	if _, err := NewRewardSQLite(db).List(context.Background(), models.RewardFilter{}); err == nil {
		t.Fatalf("expected decode error")
	}
}

func TestRewardSQLite_Latest(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	defer func() { _ = db.Close() }()

	repo := NewRewardSQLite(db)

	mock.ExpectQuery(regexp.QuoteMeta(selectLatestRewardSQL)).
		WithArgs("nobody").
		WillReturnRows(sqlmock.NewRows(rewardColumns))

	got, err := repo.Latest(context.Background(), "nobody")
	if err != nil || got != nil {
		t.Fatalf("expected (nil, nil), got (%+v, %v)", got, err)
	}

	rec := sampleRecord()
	payload, _ := json.Marshal(rec.Response)
	mock.ExpectQuery(regexp.QuoteMeta(selectLatestRewardSQL)).
		WithArgs("agent").
		WillReturnRows(sqlmock.NewRows(rewardColumns).
			AddRow(rec.ID, rec.AgentID, rec.ScenarioID, rec.StartTimestamp, rec.EndTimestamp, rec.CreatedAt, rec.CreatedBy, string(payload)))

	got, err = repo.Latest(context.Background(), "agent")
	if err != nil {
		t.Fatalf("Latest: %v", err)
	}
	if got == nil || got.Response.AgentRewardValue != 0.42 || got.CreatedBy != 7 {
		t.Fatalf("unexpected record: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}
