package reward

import (
	"math"

	"hvac_reward"
)

const zoneMapping = "zone_reward_infos"

// SetpointResult is the aggregated comfort penalty over all zones.
type SetpointResult struct {
	// Penalty is the occupancy-weighted mean zone deviation (K, plus the
	// weighted airflow term). Zero means every zone sits inside its band.
	Penalty        float64
	TotalOccupancy float64
	Zones          int
}

// ZoneDeviation is the distance of the zone temperature from the
// [heating, cooling] band plus airflowWeight times the absolute airflow error.
// Inside the band the temperature term is zero; outside it grows linearly.
func ZoneDeviation(z hvac_reward.ZoneRewardInfo, airflowWeight float64) float64 {
	temp := math.Max(0, z.HeatingSetpointTemperature-z.ZoneAirTemperature) +
		math.Max(0, z.ZoneAirTemperature-z.CoolingSetpointTemperature)
	if airflowWeight == 0 {
		return temp
	}
	return temp + airflowWeight*math.Abs(z.AirFlowRateSetpoint-z.AirFlowRate)
}

func validateZone(id string, z hvac_reward.ZoneRewardInfo) error {
	subject := "zone " + id
	for _, c := range []struct {
		field string
		v     float64
		check func(string, string, float64) error
	}{
		{"heating_setpoint_temperature", z.HeatingSetpointTemperature, checkKelvin},
		{"cooling_setpoint_temperature", z.CoolingSetpointTemperature, checkKelvin},
		{"zone_air_temperature", z.ZoneAirTemperature, checkKelvin},
		{"air_flow_rate_setpoint", z.AirFlowRateSetpoint, checkNonNegative},
		{"air_flow_rate", z.AirFlowRate, checkNonNegative},
		{"average_occupancy", z.AverageOccupancy, checkNonNegative},
	} {
		if err := c.check(subject, c.field, c.v); err != nil {
			return err
		}
	}
	if z.HeatingSetpointTemperature > z.CoolingSetpointTemperature {
		return &InvalidRangeError{
			Subject: subject,
			Field:   "heating_setpoint_temperature",
			Detail:  "heating setpoint is above cooling setpoint",
		}
	}
	return nil
}

// minZoneWeight is the floor on a zone's aggregation weight (people), so an
// empty zone out of band still shows up in the penalty.
const minZoneWeight = 0.01

// SetpointPenalty validates every zone and aggregates ZoneDeviation with
// average occupancy as the weight, floored at minZoneWeight. The penalty is
// zero exactly when every zone sits inside its band.
func SetpointPenalty(zones map[string]hvac_reward.ZoneRewardInfo, airflowWeight float64) (SetpointResult, error) {
	ids, err := orderedIDs(zoneMapping, zones)
	if err != nil {
		return SetpointResult{}, err
	}

	var weighted, weights, occupancy float64
	for _, id := range ids {
		z := zones[id]
		if err := validateZone(id, z); err != nil {
			return SetpointResult{}, err
		}
		w := math.Max(z.AverageOccupancy, minZoneWeight)
		weighted += ZoneDeviation(z, airflowWeight) * w
		weights += w
		occupancy += z.AverageOccupancy
	}

	res := SetpointResult{TotalOccupancy: occupancy, Zones: len(ids)}
	if len(ids) > 0 {
		res.Penalty = weighted / weights
	}
	for _, c := range []struct {
		field string
		v     float64
	}{
		{"total_occupancy", occupancy},
		{"weighted_deviation", weighted},
		{"total_weight", weights},
		{"penalty", res.Penalty},
	} {
		if err := checkFinite("setpoint aggregate", c.field, c.v); err != nil {
			return SetpointResult{}, err
		}
	}
	return res, nil
}
