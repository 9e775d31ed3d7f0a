package reward

import (
	"math"

	"hvac_reward"
)

// Weights are the caller-supplied coefficients of
// r = s(setpoint) - u*f(energy_cost) - w*g(carbon_emission).
type Weights struct {
	Productivity   float64
	EnergyCost     float64 // u
	CarbonEmission float64 // w
}

// Normalization holds the references that map raw costs onto [0, 1] and the
// affine output range [RewardShift, RewardShift+RewardScale].
type Normalization struct {
	PersonProductivityUSDPerHour  float64
	ComfortToleranceK             float64
	EnergyCostReferenceUSDPerHour float64
	CarbonReferenceKgPerHour      float64
	RewardScale                   float64
	RewardShift                   float64
}

func clamp01(v float64) float64 { return math.Min(1, math.Max(0, v)) }

// ratio returns num/den clamped to [0, 1], or 0 when den is not positive.
func ratio(num, den float64) float64 {
	if den <= 0 {
		return 0
	}
	return clamp01(num / den)
}

// Combine assembles the RewardResponse from the component results.
//
// Productivity is the occupied person-hours times PersonProductivityUSDPerHour,
// scaled down linearly as the setpoint penalty approaches ComfortToleranceK.
// Regret is what that scaling lost. Energy and carbon are normalized against
// their hourly references. The raw reward
//
//	raw = pw*(1-regret_n) - u*energy_n - w*carbon_n
//
// lies in [-(u+w), pw] and is mapped affinely onto the output range.
func Combine(iv Interval, sp SetpointResult, e EnergyUsage, c Carbon, w Weights, n Normalization) hvac_reward.RewardResponse {
	hours := iv.Hours()

	maxProductivity := n.PersonProductivityUSDPerHour * sp.TotalOccupancy * hours
	comfort := 1.0
	if n.ComfortToleranceK > 0 {
		comfort = clamp01(1 - sp.Penalty/n.ComfortToleranceK)
	} else if sp.Penalty > 0 {
		comfort = 0
	}
	productivity := maxProductivity * comfort
	regret := maxProductivity - productivity
	regretN := ratio(regret, maxProductivity)

	energyN := ratio(e.TotalCost(), n.EnergyCostReferenceUSDPerHour*hours)
	carbonN := ratio(c.EmittedKg, n.CarbonReferenceKgPerHour*hours)

	raw := w.Productivity*(1-regretN) - w.EnergyCost*energyN - w.CarbonEmission*carbonN
	span := w.Productivity + w.EnergyCost + w.CarbonEmission
	frac := 0.0
	if span > 0 {
		frac = clamp01((raw + w.EnergyCost + w.CarbonEmission) / span)
	}

	return hvac_reward.RewardResponse{
		AgentRewardValue:             n.RewardShift + n.RewardScale*frac,
		ProductivityReward:           productivity,
		ElectricityEnergyCost:        e.ElectricityCost,
		NaturalGasEnergyCost:         e.NaturalGasCost,
		CarbonEmitted:                c.EmittedKg,
		CarbonCost:                   c.CostUSD,
		ProductivityWeight:           w.Productivity,
		EnergyCostWeight:             w.EnergyCost,
		CarbonEmissionWeight:         w.CarbonEmission,
		PersonProductivity:           n.PersonProductivityUSDPerHour,
		TotalOccupancy:               sp.TotalOccupancy,
		RewardScale:                  n.RewardScale,
		RewardShift:                  n.RewardShift,
		ProductivityRegret:           regret,
		NormalizedProductivityRegret: regretN,
		NormalizedEnergyCost:         energyN,
		NormalizedCarbonEmission:     carbonN,
		StartTimestamp:               iv.Start,
		EndTimestamp:                 iv.End,
	}
}
