package reward

import (
	"errors"
	"fmt"
)

// ErrValidation matches every input validation failure raised by this package.
var ErrValidation = errors.New("reward input validation failed")

// InvalidRangeError reports a value outside its allowed range, e.g. a heating
// setpoint above the cooling setpoint or an end timestamp not after the start.
type InvalidRangeError struct {
	Subject string
	Field   string
	Detail  string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range: %s %s: %s", e.Subject, e.Field, e.Detail)
}

func (e *InvalidRangeError) Is(target error) bool { return target == ErrValidation }

// NegativeEnergyError reports a negative power or energy rate.
type NegativeEnergyError struct {
	Subject string
	Field   string
	Value   float64
}

func (e *NegativeEnergyError) Error() string {
	return fmt.Sprintf("negative energy: %s %s = %g W", e.Subject, e.Field, e.Value)
}

func (e *NegativeEnergyError) Is(target error) bool { return target == ErrValidation }

// MissingMappingEntryError reports a zone, air handler or boiler id that is
// empty or absent from the mapping it is expected in.
type MissingMappingEntryError struct {
	Mapping string
	ID      string
}

func (e *MissingMappingEntryError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("missing mapping entry: empty id in %s", e.Mapping)
	}
	return fmt.Sprintf("missing mapping entry: %q not in %s", e.ID, e.Mapping)
}

func (e *MissingMappingEntryError) Is(target error) bool { return target == ErrValidation }

// NonFiniteValueError reports NaN or ±Inf in a numeric field.
type NonFiniteValueError struct {
	Subject string
	Field   string
	Value   float64
}

func (e *NonFiniteValueError) Error() string {
	return fmt.Sprintf("non-finite value: %s %s = %v", e.Subject, e.Field, e.Value)
}

func (e *NonFiniteValueError) Is(target error) bool { return target == ErrValidation }
