package wire

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"time"

	"google.golang.org/protobuf/encoding/protowire"

	"hvac_reward"
)

// RangeError reports a finite value that would overflow a float32 field.
type RangeError struct {
	Field string
	Value float64
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("wire: %s = %g exceeds the float32 range", e.Field, e.Value)
}

// MarshalInfo encodes a RewardInfo. Map entries are written in ascending key
// order, so equal records always produce identical bytes.
func MarshalInfo(info hvac_reward.RewardInfo) ([]byte, error) {
	var b []byte
	b = appendTimestamp(b, infoStartTimestamp, info.StartTimestamp)
	b = appendTimestamp(b, infoEndTimestamp, info.EndTimestamp)
	b = appendString(b, infoAgentID, info.AgentID)
	b = appendString(b, infoScenarioID, info.ScenarioID)

	var err error
	for _, id := range slices.Sorted(maps.Keys(info.ZoneRewardInfos)) {
		z := info.ZoneRewardInfos[id]
		if b, err = appendFloatEntry(b, infoZones, "zone_reward_infos", id, zoneFloats(&z)); err != nil {
			return nil, err
		}
	}
	for _, id := range slices.Sorted(maps.Keys(info.AirHandlerRewardInfos)) {
		ah := info.AirHandlerRewardInfos[id]
		if b, err = appendFloatEntry(b, infoAirHandlers, "air_handler_reward_infos", id, airHandlerFloats(&ah)); err != nil {
			return nil, err
		}
	}
	for _, id := range slices.Sorted(maps.Keys(info.BoilerRewardInfos)) {
		bo := info.BoilerRewardInfos[id]
		if b, err = appendFloatEntry(b, infoBoilers, "boiler_reward_infos", id, boilerFloats(&bo)); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// MarshalResponse encodes a RewardResponse.
func MarshalResponse(r hvac_reward.RewardResponse) ([]byte, error) {
	b, err := appendFloats(nil, "", responseFloats(&r))
	if err != nil {
		return nil, err
	}
	b = appendTimestamp(b, respStartTimestamp, r.StartTimestamp)
	b = appendTimestamp(b, respEndTimestamp, r.EndTimestamp)
	return b, nil
}

type floatField struct {
	num  protowire.Number
	name string
	v    *float64
}

func responseFloats(r *hvac_reward.RewardResponse) []floatField {
	return []floatField{
		{respAgentRewardValue, "agent_reward_value", &r.AgentRewardValue},
		{respProductivityReward, "productivity_reward", &r.ProductivityReward},
		{respElectricityEnergyCost, "electricity_energy_cost", &r.ElectricityEnergyCost},
		{respNaturalGasEnergyCost, "natural_gas_energy_cost", &r.NaturalGasEnergyCost},
		{respCarbonEmitted, "carbon_emitted", &r.CarbonEmitted},
		{respCarbonCost, "carbon_cost", &r.CarbonCost},
		{respProductivityWeight, "productivity_weight", &r.ProductivityWeight},
		{respEnergyCostWeight, "energy_cost_weight", &r.EnergyCostWeight},
		{respCarbonEmissionWeight, "carbon_emission_weight", &r.CarbonEmissionWeight},
		{respPersonProductivity, "person_productivity", &r.PersonProductivity},
		{respTotalOccupancy, "total_occupancy", &r.TotalOccupancy},
		{respRewardScale, "reward_scale", &r.RewardScale},
		{respRewardShift, "reward_shift", &r.RewardShift},
		{respProductivityRegret, "productivity_regret", &r.ProductivityRegret},
		{respNormalizedProductivityRegret, "normalized_productivity_regret", &r.NormalizedProductivityRegret},
		{respNormalizedEnergyCost, "normalized_energy_cost", &r.NormalizedEnergyCost},
		{respNormalizedCarbonEmission, "normalized_carbon_emission", &r.NormalizedCarbonEmission},
	}
}

func zoneFloats(z *hvac_reward.ZoneRewardInfo) []floatField {
	return []floatField{
		{zoneHeatingSetpoint, "heating_setpoint_temperature", &z.HeatingSetpointTemperature},
		{zoneCoolingSetpoint, "cooling_setpoint_temperature", &z.CoolingSetpointTemperature},
		{zoneAirTemperature, "zone_air_temperature", &z.ZoneAirTemperature},
		{zoneAirFlowRateSetpoint, "air_flow_rate_setpoint", &z.AirFlowRateSetpoint},
		{zoneAirFlowRate, "air_flow_rate", &z.AirFlowRate},
		{zoneAverageOccupancy, "average_occupancy", &z.AverageOccupancy},
	}
}

func airHandlerFloats(ah *hvac_reward.AirHandlerRewardInfo) []floatField {
	return []floatField{
		{ahBlower, "blower_electrical_energy_rate", &ah.BlowerElectricalEnergyRate},
		{ahAirConditioning, "air_conditioning_electrical_energy_rate", &ah.AirConditioningElectricalEnergyRate},
	}
}

func boilerFloats(bo *hvac_reward.BoilerRewardInfo) []floatField {
	return []floatField{
		{boilerNaturalGas, "natural_gas_heating_energy_rate", &bo.NaturalGasHeatingEnergyRate},
		{boilerPump, "pump_electrical_energy_rate", &bo.PumpElectricalEnergyRate},
	}
}

func appendFloatEntry(b []byte, num protowire.Number, mapping, id string, fields []floatField) ([]byte, error) {
	value, err := appendFloats(nil, mapping+"["+id+"].", fields)
	if err != nil {
		return nil, err
	}
	return appendEntry(b, num, id, value), nil
}

func appendFloats(b []byte, prefix string, fields []floatField) ([]byte, error) {
	for _, f := range fields {
		f32, ok := toFloat32(*f.v)
		if !ok {
			return nil, &RangeError{Field: prefix + f.name, Value: *f.v}
		}
		b = appendFloat(b, f.num, f32)
	}
	return b, nil
}

// toFloat32 narrows v, reporting false when a finite v rounds to ±Inf.
// NaN and ±Inf pass through unchanged.
func toFloat32(v float64) (float32, bool) {
	f := float32(v)
	if math.IsInf(float64(f), 0) && !math.IsInf(v, 0) {
		return 0, false
	}
	return f, true
}

// appendFloat writes a proto3 float. Positive zero is the default and is omitted.
func appendFloat(b []byte, num protowire.Number, v float32) []byte {
	if v == 0 && !math.Signbit(float64(v)) {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, math.Float32bits(v))
}

func appendString(b []byte, num protowire.Number, s string) []byte {
	if s == "" {
		return b
	}
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func appendMessage(b []byte, num protowire.Number, msg []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, msg)
}

// appendEntry writes one map entry. Key and value are always present.
func appendEntry(b []byte, num protowire.Number, key string, value []byte) []byte {
	var e []byte
	e = protowire.AppendTag(e, mapKey, protowire.BytesType)
	e = protowire.AppendString(e, key)
	e = protowire.AppendTag(e, mapValue, protowire.BytesType)
	e = protowire.AppendBytes(e, value)
	return appendMessage(b, num, e)
}

// appendTimestamp writes t as a Timestamp message; the zero time is omitted.
func appendTimestamp(b []byte, num protowire.Number, t time.Time) []byte {
	if t.IsZero() {
		return b
	}
	var m []byte
	if s := t.Unix(); s != 0 {
		m = protowire.AppendTag(m, tsSeconds, protowire.VarintType)
		m = protowire.AppendVarint(m, uint64(s))
	}
	if n := t.Nanosecond(); n != 0 {
		m = protowire.AppendTag(m, tsNanos, protowire.VarintType)
		m = protowire.AppendVarint(m, uint64(int64(n)))
	}
	return appendMessage(b, num, m)
}
