// Package reward computes the RL reward for one HVAC timestep.
//
// Everything here is a pure function of a RewardInfo and static Params, so
// independent timesteps can be evaluated concurrently without coordination.
package reward

import (
	"fmt"

	"hvac_reward"
)

// Params is the static configuration of the reward function.
type Params struct {
	Prices               Prices
	Emissions            EmissionFactors
	Weights              Weights
	Normalization        Normalization
	AirflowPenaltyWeight float64
}

// DefaultParams returns a usable configuration for a mid-size office building.
func DefaultParams() Params {
	return Params{
		Prices: Prices{
			ElectricityUSDPerKWh: 0.12,
			NaturalGasUSDPerKWh:  0.04,
		},
		Emissions: EmissionFactors{
			ElectricityKgPerKWh: 0.39,
			NaturalGasKgPerKWh:  0.18,
			CarbonUSDPerKg:      0.05,
		},
		Weights: Weights{
			Productivity:   0.6,
			EnergyCost:     0.3,
			CarbonEmission: 0.1,
		},
		Normalization: Normalization{
			PersonProductivityUSDPerHour:  50,
			ComfortToleranceK:             5,
			EnergyCostReferenceUSDPerHour: 100,
			CarbonReferenceKgPerHour:      300,
			RewardScale:                   1,
			RewardShift:                   0,
		},
	}
}

// Validate rejects non-finite or negative coefficients and a non-positive comfort tolerance.
func (p Params) Validate() error {
	const subject = "reward params"
	for _, c := range []struct {
		field string
		v     float64
	}{
		{"electricity_price_usd_per_kwh", p.Prices.ElectricityUSDPerKWh},
		{"natural_gas_price_usd_per_kwh", p.Prices.NaturalGasUSDPerKWh},
		{"electricity_emission_kg_per_kwh", p.Emissions.ElectricityKgPerKWh},
		{"natural_gas_emission_kg_per_kwh", p.Emissions.NaturalGasKgPerKWh},
		{"carbon_price_usd_per_kg", p.Emissions.CarbonUSDPerKg},
		{"productivity_weight", p.Weights.Productivity},
		{"energy_cost_weight", p.Weights.EnergyCost},
		{"carbon_emission_weight", p.Weights.CarbonEmission},
		{"person_productivity_usd_per_hour", p.Normalization.PersonProductivityUSDPerHour},
		{"energy_cost_reference_usd_per_hour", p.Normalization.EnergyCostReferenceUSDPerHour},
		{"carbon_reference_kg_per_hour", p.Normalization.CarbonReferenceKgPerHour},
		{"reward_scale", p.Normalization.RewardScale},
		{"airflow_penalty_weight", p.AirflowPenaltyWeight},
	} {
		if err := checkNonNegative(subject, c.field, c.v); err != nil {
			return err
		}
	}
	if err := checkFinite(subject, "reward_shift", p.Normalization.RewardShift); err != nil {
		return err
	}
	if err := checkFinite(subject, "comfort_tolerance_k", p.Normalization.ComfortToleranceK); err != nil {
		return err
	}
	if p.Normalization.ComfortToleranceK <= 0 {
		return &InvalidRangeError{Subject: subject, Field: "comfort_tolerance_k", Detail: "must be > 0"}
	}
	return nil
}

// Compute validates info and evaluates the full reward. It returns either a
// complete response or an error, never a partial result.
func Compute(info hvac_reward.RewardInfo, p Params) (hvac_reward.RewardResponse, error) {
	iv, err := NewInterval(info.StartTimestamp, info.EndTimestamp)
	if err != nil {
		return hvac_reward.RewardResponse{}, err
	}

	sp, err := SetpointPenalty(info.ZoneRewardInfos, p.AirflowPenaltyWeight)
	if err != nil {
		return hvac_reward.RewardResponse{}, fmt.Errorf("setpoint reward: %w", err)
	}

	energy, err := AggregateEnergy(info.AirHandlerRewardInfos, info.BoilerRewardInfos, iv, p.Prices)
	if err != nil {
		return hvac_reward.RewardResponse{}, fmt.Errorf("energy cost: %w", err)
	}

	carbon, err := EstimateCarbon(energy, p.Emissions)
	if err != nil {
		return hvac_reward.RewardResponse{}, fmt.Errorf("carbon cost: %w", err)
	}

	resp := Combine(iv, sp, energy, carbon, p.Weights, p.Normalization)
	if err := checkResponse(resp); err != nil {
		return hvac_reward.RewardResponse{}, err
	}
	return resp, nil
}

// checkResponse rejects a response whose arithmetic overflowed. Inputs that
// are individually finite can still sum or multiply past MaxFloat64.
func checkResponse(r hvac_reward.RewardResponse) error {
	const subject = "reward response"
	for _, c := range []struct {
		field string
		v     float64
	}{
		{"agent_reward_value", r.AgentRewardValue},
		{"productivity_reward", r.ProductivityReward},
		{"electricity_energy_cost", r.ElectricityEnergyCost},
		{"natural_gas_energy_cost", r.NaturalGasEnergyCost},
		{"carbon_emitted", r.CarbonEmitted},
		{"carbon_cost", r.CarbonCost},
		{"productivity_weight", r.ProductivityWeight},
		{"energy_cost_weight", r.EnergyCostWeight},
		{"carbon_emission_weight", r.CarbonEmissionWeight},
		{"person_productivity", r.PersonProductivity},
		{"total_occupancy", r.TotalOccupancy},
		{"reward_scale", r.RewardScale},
		{"reward_shift", r.RewardShift},
		{"productivity_regret", r.ProductivityRegret},
		{"normalized_productivity_regret", r.NormalizedProductivityRegret},
		{"normalized_energy_cost", r.NormalizedEnergyCost},
		{"normalized_carbon_emission", r.NormalizedCarbonEmission},
	} {
		if err := checkFinite(subject, c.field, c.v); err != nil {
			return err
		}
	}
	return nil
}
