package reward

import (
	"math"
	"sort"
	"time"
)

const (
	secondsPerHour   = 3600.0
	wattsPerKilowatt = 1000.0
)

// Interval is the [Start, End) span a RewardInfo covers. End is always after Start.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval enforces End > Start.
func NewInterval(start, end time.Time) (Interval, error) {
	if start.IsZero() || end.IsZero() {
		return Interval{}, &InvalidRangeError{Subject: "reward info", Field: "timestamps", Detail: "start and end are required"}
	}
	if !end.After(start) {
		return Interval{}, &InvalidRangeError{
			Subject: "reward info",
			Field:   "end_timestamp",
			Detail:  "must be after start_timestamp (" + start.UTC().Format(time.RFC3339Nano) + ")",
		}
	}
	return Interval{Start: start.UTC(), End: end.UTC()}, nil
}

// Seconds returns the interval length in seconds.
func (iv Interval) Seconds() float64 { return iv.End.Sub(iv.Start).Seconds() }

// Hours returns the interval length in hours.
func (iv Interval) Hours() float64 { return iv.Seconds() / secondsPerHour }

// WattsToKWh integrates a constant power draw over the given number of seconds.
func WattsToKWh(watts, seconds float64) float64 {
	return watts * seconds / secondsPerHour / wattsPerKilowatt
}

func checkFinite(subject, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &NonFiniteValueError{Subject: subject, Field: field, Value: v}
	}
	return nil
}

// checkPower validates a W rate: finite and >= 0.
func checkPower(subject, field string, w float64) error {
	if err := checkFinite(subject, field, w); err != nil {
		return err
	}
	if w < 0 {
		return &NegativeEnergyError{Subject: subject, Field: field, Value: w}
	}
	return nil
}

// checkKelvin validates an absolute temperature: finite and > 0.
func checkKelvin(subject, field string, k float64) error {
	if err := checkFinite(subject, field, k); err != nil {
		return err
	}
	if k <= 0 {
		return &InvalidRangeError{Subject: subject, Field: field, Detail: "temperature must be > 0 K"}
	}
	return nil
}

// checkNonNegative validates flows and occupancy: finite and >= 0.
func checkNonNegative(subject, field string, v float64) error {
	if err := checkFinite(subject, field, v); err != nil {
		return err
	}
	if v < 0 {
		return &InvalidRangeError{Subject: subject, Field: field, Detail: "must be >= 0"}
	}
	return nil
}

// orderedIDs returns the map keys in ascending order and rejects empty ids.
// Summation follows this order so results do not depend on map iteration.
func orderedIDs[V any](mapping string, m map[string]V) ([]string, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		if k == "" {
			return nil, &MissingMappingEntryError{Mapping: mapping}
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}
