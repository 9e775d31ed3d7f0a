package hvac_reward

import "time"

// ZoneRewardInfo is the per-zone comfort snapshot for one timestep.
type ZoneRewardInfo struct {
	HeatingSetpointTemperature float64 `json:"heating_setpoint_temperature" yaml:"heating_setpoint_temperature"` // K
	CoolingSetpointTemperature float64 `json:"cooling_setpoint_temperature" yaml:"cooling_setpoint_temperature"` // K
	ZoneAirTemperature         float64 `json:"zone_air_temperature" yaml:"zone_air_temperature"`                 // K
	AirFlowRateSetpoint        float64 `json:"air_flow_rate_setpoint" yaml:"air_flow_rate_setpoint"`             // m³/s
	AirFlowRate                float64 `json:"air_flow_rate" yaml:"air_flow_rate"`                               // m³/s
	AverageOccupancy           float64 `json:"average_occupancy" yaml:"average_occupancy"`                       // people
}

// AirHandlerRewardInfo holds the electrical draw of one air handler.
type AirHandlerRewardInfo struct {
	BlowerElectricalEnergyRate          float64 `json:"blower_electrical_energy_rate" yaml:"blower_electrical_energy_rate"`                     // W
	AirConditioningElectricalEnergyRate float64 `json:"air_conditioning_electrical_energy_rate" yaml:"air_conditioning_electrical_energy_rate"` // W
}

// BoilerRewardInfo holds the gas and pump draw of one boiler.
type BoilerRewardInfo struct {
	NaturalGasHeatingEnergyRate float64 `json:"natural_gas_heating_energy_rate" yaml:"natural_gas_heating_energy_rate"` // W
	PumpElectricalEnergyRate    float64 `json:"pump_electrical_energy_rate" yaml:"pump_electrical_energy_rate"`         // W
}

// RewardInfo is everything the environment reports for one timestep of one agent.
type RewardInfo struct {
	StartTimestamp time.Time `json:"start_timestamp" yaml:"start_timestamp"`
	EndTimestamp   time.Time `json:"end_timestamp" yaml:"end_timestamp"`
	AgentID        string    `json:"agent_id" yaml:"agent_id"`
	ScenarioID     string    `json:"scenario_id" yaml:"scenario_id"`

	ZoneRewardInfos       map[string]ZoneRewardInfo       `json:"zone_reward_infos,omitempty" yaml:"zone_reward_infos"`
	AirHandlerRewardInfos map[string]AirHandlerRewardInfo `json:"air_handler_reward_infos,omitempty" yaml:"air_handler_reward_infos"`
	BoilerRewardInfos     map[string]BoilerRewardInfo     `json:"boiler_reward_infos,omitempty" yaml:"boiler_reward_infos"`
}

// RewardResponse is the computed reward for one RewardInfo. Costs are USD, carbon is kg.
type RewardResponse struct {
	AgentRewardValue             float64   `json:"agent_reward_value"`
	ProductivityReward           float64   `json:"productivity_reward"`
	ElectricityEnergyCost        float64   `json:"electricity_energy_cost"`
	NaturalGasEnergyCost         float64   `json:"natural_gas_energy_cost"`
	CarbonEmitted                float64   `json:"carbon_emitted"`
	CarbonCost                   float64   `json:"carbon_cost"`
	ProductivityWeight           float64   `json:"productivity_weight"`
	EnergyCostWeight             float64   `json:"energy_cost_weight"`
	CarbonEmissionWeight         float64   `json:"carbon_emission_weight"`
	PersonProductivity           float64   `json:"person_productivity"` // USD per person-hour
	TotalOccupancy               float64   `json:"total_occupancy"`
	RewardScale                  float64   `json:"reward_scale"`
	RewardShift                  float64   `json:"reward_shift"`
	ProductivityRegret           float64   `json:"productivity_regret"`
	NormalizedProductivityRegret float64   `json:"normalized_productivity_regret"`
	NormalizedEnergyCost         float64   `json:"normalized_energy_cost"`
	NormalizedCarbonEmission     float64   `json:"normalized_carbon_emission"`
	StartTimestamp               time.Time `json:"start_timestamp"`
	EndTimestamp                 time.Time `json:"end_timestamp"`
}
