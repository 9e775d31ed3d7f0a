package wire

import (
	"errors"
	"fmt"
	"math"
	"time"

	"google.golang.org/protobuf/encoding/protowire"

	"hvac_reward"
)

var errWireType = errors.New("unexpected wire type")

// fieldFunc consumes the value of one field and returns the bytes it used.
// Returning 0 leaves the field to be skipped as unknown.
type fieldFunc func(num protowire.Number, typ protowire.Type, b []byte) (int, error)

func walk(b []byte, fn fieldFunc) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]

		m, err := fn(num, typ, b)
		if err != nil {
			return fmt.Errorf("field %d: %w", num, err)
		}
		if m == 0 {
			m = protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return fmt.Errorf("field %d: %w", num, protowire.ParseError(m))
			}
		}
		b = b[m:]
	}
	return nil
}

// UnmarshalInfo decodes a RewardInfo. Unknown fields are skipped; a repeated
// map key keeps the last value.
func UnmarshalInfo(b []byte) (hvac_reward.RewardInfo, error) {
	var info hvac_reward.RewardInfo
	err := walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case infoStartTimestamp:
			return consumeTimestamp(typ, b, &info.StartTimestamp)
		case infoEndTimestamp:
			return consumeTimestamp(typ, b, &info.EndTimestamp)
		case infoAgentID:
			return consumeString(typ, b, &info.AgentID)
		case infoScenarioID:
			return consumeString(typ, b, &info.ScenarioID)
		case infoZones:
			return consumeEntry(typ, b, func(key string, v []byte) error {
				var z hvac_reward.ZoneRewardInfo
				if err := unmarshalFloats(v, zoneFloats(&z)); err != nil {
					return err
				}
				if info.ZoneRewardInfos == nil {
					info.ZoneRewardInfos = make(map[string]hvac_reward.ZoneRewardInfo)
				}
				info.ZoneRewardInfos[key] = z
				return nil
			})
		case infoAirHandlers:
			return consumeEntry(typ, b, func(key string, v []byte) error {
				var ah hvac_reward.AirHandlerRewardInfo
				if err := unmarshalFloats(v, airHandlerFloats(&ah)); err != nil {
					return err
				}
				if info.AirHandlerRewardInfos == nil {
					info.AirHandlerRewardInfos = make(map[string]hvac_reward.AirHandlerRewardInfo)
				}
				info.AirHandlerRewardInfos[key] = ah
				return nil
			})
		case infoBoilers:
			return consumeEntry(typ, b, func(key string, v []byte) error {
				var bo hvac_reward.BoilerRewardInfo
				if err := unmarshalFloats(v, boilerFloats(&bo)); err != nil {
					return err
				}
				if info.BoilerRewardInfos == nil {
					info.BoilerRewardInfos = make(map[string]hvac_reward.BoilerRewardInfo)
				}
				info.BoilerRewardInfos[key] = bo
				return nil
			})
		}
		return 0, nil
	})
	if err != nil {
		return hvac_reward.RewardInfo{}, fmt.Errorf("decode reward info: %w", err)
	}
	return info, nil
}

// UnmarshalResponse decodes a RewardResponse.
func UnmarshalResponse(b []byte) (hvac_reward.RewardResponse, error) {
	var r hvac_reward.RewardResponse
	floats := responseFloats(&r)
	err := walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case respStartTimestamp:
			return consumeTimestamp(typ, b, &r.StartTimestamp)
		case respEndTimestamp:
			return consumeTimestamp(typ, b, &r.EndTimestamp)
		}
		return consumeKnownFloat(floats, num, typ, b)
	})
	if err != nil {
		return hvac_reward.RewardResponse{}, fmt.Errorf("decode reward response: %w", err)
	}
	return r, nil
}

func unmarshalFloats(b []byte, fields []floatField) error {
	return walk(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		return consumeKnownFloat(fields, num, typ, b)
	})
}

func consumeKnownFloat(fields []floatField, num protowire.Number, typ protowire.Type, b []byte) (int, error) {
	for _, f := range fields {
		if f.num == num {
			return consumeFloat(typ, b, f.v)
		}
	}
	return 0, nil
}

func consumeFloat(typ protowire.Type, b []byte, dst *float64) (int, error) {
	if typ != protowire.Fixed32Type {
		return 0, errWireType
	}
	v, n := protowire.ConsumeFixed32(b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	*dst = float64(math.Float32frombits(v))
	return n, nil
}

func consumeBytes(typ protowire.Type, b []byte) ([]byte, int, error) {
	if typ != protowire.BytesType {
		return nil, 0, errWireType
	}
	v, n := protowire.ConsumeBytes(b)
	if n < 0 {
		return nil, 0, protowire.ParseError(n)
	}
	return v, n, nil
}

func consumeString(typ protowire.Type, b []byte, dst *string) (int, error) {
	v, n, err := consumeBytes(typ, b)
	if err != nil {
		return 0, err
	}
	*dst = string(v)
	return n, nil
}

func consumeEntry(typ protowire.Type, b []byte, put func(key string, value []byte) error) (int, error) {
	entry, n, err := consumeBytes(typ, b)
	if err != nil {
		return 0, err
	}
	var (
		key   string
		value []byte
	)
	err = walk(entry, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		switch num {
		case mapKey:
			return consumeString(typ, b, &key)
		case mapValue:
			v, m, err := consumeBytes(typ, b)
			value = v
			return m, err
		}
		return 0, nil
	})
	if err != nil {
		return 0, err
	}
	if err := put(key, value); err != nil {
		return 0, fmt.Errorf("map entry %q: %w", key, err)
	}
	return n, nil
}

func consumeTimestamp(typ protowire.Type, b []byte, dst *time.Time) (int, error) {
	msg, n, err := consumeBytes(typ, b)
	if err != nil {
		return 0, err
	}
	var secs, nanos int64
	err = walk(msg, func(num protowire.Number, typ protowire.Type, b []byte) (int, error) {
		if num != tsSeconds && num != tsNanos {
			return 0, nil
		}
		if typ != protowire.VarintType {
			return 0, errWireType
		}
		v, m := protowire.ConsumeVarint(b)
		if m < 0 {
			return 0, protowire.ParseError(m)
		}
		if num == tsSeconds {
			secs = int64(v)
		} else {
			nanos = int64(int32(v))
		}
		return m, nil
	})
	if err != nil {
		return 0, err
	}
	if nanos < 0 || nanos > 999_999_999 {
		return 0, fmt.Errorf("timestamp nanos %d out of range", nanos)
	}
	*dst = time.Unix(secs, nanos).UTC()
	return n, nil
}
