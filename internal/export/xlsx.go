// Package export renders reward history as spreadsheet workbooks.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"hvac_reward/internal/models"
)

const (
	summarySheet = "summary"
	rewardsSheet = "rewards"

	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type column struct {
	title string
	value func(r models.RewardRecord) any
}

var rewardColumns = []column{
	{"Record ID", func(r models.RewardRecord) any { return r.ID }},
	{"Agent", func(r models.RewardRecord) any { return r.AgentID }},
	{"Scenario", func(r models.RewardRecord) any { return r.ScenarioID }},
	{"Start (UTC)", func(r models.RewardRecord) any { return r.StartTimestamp.UTC().Format(time.RFC3339) }},
	{"End (UTC)", func(r models.RewardRecord) any { return r.EndTimestamp.UTC().Format(time.RFC3339) }},
	{"Agent Reward", func(r models.RewardRecord) any { return r.Response.AgentRewardValue }},
	{"Productivity Reward (USD)", func(r models.RewardRecord) any { return r.Response.ProductivityReward }},
	{"Productivity Regret (USD)", func(r models.RewardRecord) any { return r.Response.ProductivityRegret }},
	{"Electricity Cost (USD)", func(r models.RewardRecord) any { return r.Response.ElectricityEnergyCost }},
	{"Natural Gas Cost (USD)", func(r models.RewardRecord) any { return r.Response.NaturalGasEnergyCost }},
	{"Carbon Emitted (kg)", func(r models.RewardRecord) any { return r.Response.CarbonEmitted }},
	{"Carbon Cost (USD)", func(r models.RewardRecord) any { return r.Response.CarbonCost }},
	{"Total Occupancy", func(r models.RewardRecord) any { return r.Response.TotalOccupancy }},
	{"Normalized Regret", func(r models.RewardRecord) any { return r.Response.NormalizedProductivityRegret }},
	{"Normalized Energy Cost", func(r models.RewardRecord) any { return r.Response.NormalizedEnergyCost }},
	{"Normalized Carbon", func(r models.RewardRecord) any { return r.Response.NormalizedCarbonEmission }},
}

// Summary aggregates a set of reward records.
type Summary struct {
	Count           int
	MeanReward      float64
	MinReward       float64
	MaxReward       float64
	EnergyCostUSD   float64
	CarbonEmittedKg float64
	CarbonCostUSD   float64
	RegretUSD       float64
}

func Summarize(recs []models.RewardRecord) Summary {
	var s Summary
	for i, r := range recs {
		v := r.Response.AgentRewardValue
		if i == 0 || v < s.MinReward {
			s.MinReward = v
		}
		if i == 0 || v > s.MaxReward {
			s.MaxReward = v
		}
		s.MeanReward += v
		s.EnergyCostUSD += r.Response.ElectricityEnergyCost + r.Response.NaturalGasEnergyCost
		s.CarbonEmittedKg += r.Response.CarbonEmitted
		s.CarbonCostUSD += r.Response.CarbonCost
		s.RegretUSD += r.Response.ProductivityRegret
	}
	s.Count = len(recs)
	if s.Count > 0 {
		s.MeanReward /= float64(s.Count)
	}
	return s
}

// BuildRewardsXLSX writes a workbook with a summary sheet and one row per record.
func BuildRewardsXLSX(title string, recs []models.RewardRecord) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(rewardsSheet); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}

	s := Summarize(recs)
	_ = f.SetCellValue(summarySheet, "A1", "HVAC Reward History")
	_ = f.SetCellValue(summarySheet, "A2", title)
	rows := []struct {
		label string
		value any
	}{
		{"Records", s.Count},
		{"Mean Reward", s.MeanReward},
		{"Min Reward", s.MinReward},
		{"Max Reward", s.MaxReward},
		{"Energy Cost (USD)", s.EnergyCostUSD},
		{"Carbon Emitted (kg)", s.CarbonEmittedKg},
		{"Carbon Cost (USD)", s.CarbonCostUSD},
		{"Productivity Regret (USD)", s.RegretUSD},
	}
	for i, row := range rows {
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("A%d", i+4), row.label)
		_ = f.SetCellValue(summarySheet, fmt.Sprintf("B%d", i+4), row.value)
	}

	for col, c := range rewardColumns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		_ = f.SetCellValue(rewardsSheet, cell, c.title)
	}
	for i, r := range recs {
		for col, c := range rewardColumns {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			_ = f.SetCellValue(rewardsSheet, cell, c.value(r))
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}
