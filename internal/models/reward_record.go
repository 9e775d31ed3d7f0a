package models

import (
	"time"

	"hvac_reward"
)

// RewardRecord is one persisted reward computation.
type RewardRecord struct {
	ID             string                     `json:"id"`
	AgentID        string                     `json:"agent_id"`
	ScenarioID     string                     `json:"scenario_id"`
	StartTimestamp time.Time                  `json:"start_timestamp"`
	EndTimestamp   time.Time                  `json:"end_timestamp"`
	CreatedAt      time.Time                  `json:"created_at"`
	CreatedBy      int                        `json:"created_by"`
	Response       hvac_reward.RewardResponse `json:"response"`
}

// RewardFilter narrows a history query. Zero values match everything.
type RewardFilter struct {
	AgentID    string
	ScenarioID string
	From       time.Time // start_timestamp >= From
	To         time.Time // end_timestamp <= To
	Limit      int
}
