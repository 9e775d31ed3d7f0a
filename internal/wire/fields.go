// Package wire encodes RewardInfo and RewardResponse in protobuf wire format.
//
// Field numbers are part of the external contract and must never be reused:
//
//	message RewardInfo {
//	  Timestamp start_timestamp = 1;
//	  Timestamp end_timestamp = 2;
//	  string agent_id = 3;
//	  string scenario_id = 4;
//	  map<string, ZoneRewardInfo> zone_reward_infos = 5;
//	  map<string, AirHandlerRewardInfo> air_handler_reward_infos = 6;
//	  map<string, BoilerRewardInfo> boiler_reward_infos = 7;
//	}
//
// Nested messages number their float fields from 1 in declaration order of
// hvac_reward.ZoneRewardInfo (1-6), AirHandlerRewardInfo (1-2) and
// BoilerRewardInfo (1-2). RewardResponse numbers its 17 floats 1-17 in
// declaration order, followed by start_timestamp = 18 and end_timestamp = 19.
// Timestamps use the well-known layout {int64 seconds = 1; int32 nanos = 2}.
//
// Floats travel as proto float (fixed32), so values keep about seven
// significant digits. A finite value beyond ±math.MaxFloat32 cannot be
// represented and makes MarshalInfo and MarshalResponse fail with *RangeError
// rather than silently becoming ±Inf. NaN and ±Inf pass through unchanged.
package wire

import "google.golang.org/protobuf/encoding/protowire"

// ContentType is the media type served for wire-encoded bodies.
const ContentType = "application/x-protobuf"

// RewardInfo.
const (
	infoStartTimestamp protowire.Number = iota + 1
	infoEndTimestamp
	infoAgentID
	infoScenarioID
	infoZones
	infoAirHandlers
	infoBoilers
)

// ZoneRewardInfo.
const (
	zoneHeatingSetpoint protowire.Number = iota + 1
	zoneCoolingSetpoint
	zoneAirTemperature
	zoneAirFlowRateSetpoint
	zoneAirFlowRate
	zoneAverageOccupancy
)

// AirHandlerRewardInfo.
const (
	ahBlower protowire.Number = iota + 1
	ahAirConditioning
)

// BoilerRewardInfo.
const (
	boilerNaturalGas protowire.Number = iota + 1
	boilerPump
)

// RewardResponse.
const (
	respAgentRewardValue protowire.Number = iota + 1
	respProductivityReward
	respElectricityEnergyCost
	respNaturalGasEnergyCost
	respCarbonEmitted
	respCarbonCost
	respProductivityWeight
	respEnergyCostWeight
	respCarbonEmissionWeight
	respPersonProductivity
	respTotalOccupancy
	respRewardScale
	respRewardShift
	respProductivityRegret
	respNormalizedProductivityRegret
	respNormalizedEnergyCost
	respNormalizedCarbonEmission
	respStartTimestamp
	respEndTimestamp
)

// Map entry and Timestamp.
const (
	mapKey   protowire.Number = 1
	mapValue protowire.Number = 2

	tsSeconds protowire.Number = 1
	tsNanos   protowire.Number = 2
)
