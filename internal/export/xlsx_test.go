package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"hvac_reward"
	"hvac_reward/internal/models"
)

func records() []models.RewardRecord {
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return []models.RewardRecord{
		{
			ID: "r1", AgentID: "a", ScenarioID: "s",
			StartTimestamp: start, EndTimestamp: start.Add(time.Hour),
			Response: hvac_reward.RewardResponse{AgentRewardValue: 0.2, ElectricityEnergyCost: 1, NaturalGasEnergyCost: 0.5, CarbonEmitted: 3},
		},
		{
			ID: "r2", AgentID: "a", ScenarioID: "s",
			StartTimestamp: start.Add(time.Hour), EndTimestamp: start.Add(2 * time.Hour),
			Response: hvac_reward.RewardResponse{AgentRewardValue: 0.6, ElectricityEnergyCost: 2, CarbonEmitted: 1, ProductivityRegret: 4},
		},
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(records())
	assert.Equal(t, 2, s.Count)
	assert.InDelta(t, 0.4, s.MeanReward, 1e-12)
	assert.Equal(t, 0.2, s.MinReward)
	assert.Equal(t, 0.6, s.MaxReward)
	assert.InDelta(t, 3.5, s.EnergyCostUSD, 1e-12)
	assert.InDelta(t, 4.0, s.CarbonEmittedKg, 1e-12)
	assert.Equal(t, 4.0, s.RegretUSD)

	assert.Equal(t, Summary{}, Summarize(nil))
}

func TestBuildRewardsXLSX(t *testing.T) {
	b, err := BuildRewardsXLSX("agent a", records())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(b))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{summarySheet, rewardsSheet}, f.GetSheetList())

	title, err := f.GetCellValue(summarySheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "agent a", title)

	count, err := f.GetCellValue(summarySheet, "B4")
	require.NoError(t, err)
	assert.Equal(t, "2", count)

	rows, err := f.GetRows(rewardsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Record ID", rows[0][0])
	assert.Equal(t, "r2", rows[2][0])
	assert.Equal(t, "2025-03-01T01:00:00Z", rows[2][3])
	assert.Equal(t, "0.6", rows[2][5])
}
