package reward

import "hvac_reward"

const (
	airHandlerMapping = "air_handler_reward_infos"
	boilerMapping     = "boiler_reward_infos"
)

// Prices are the external unit prices applied to consumed energy.
type Prices struct {
	ElectricityUSDPerKWh float64
	NaturalGasUSDPerKWh  float64
}

// EnergyUsage is the energy consumed over one interval and what it cost.
type EnergyUsage struct {
	ElectricityKWh  float64
	NaturalGasKWh   float64
	ElectricityCost float64 // USD
	NaturalGasCost  float64 // USD
}

// TotalCost is electricity plus natural gas in USD.
func (u EnergyUsage) TotalCost() float64 { return u.ElectricityCost + u.NaturalGasCost }

// AggregateEnergy sums blower, air-conditioning and pump power as electricity
// and boiler gas power as natural gas, integrates both over iv and prices them.
func AggregateEnergy(
	handlers map[string]hvac_reward.AirHandlerRewardInfo,
	boilers map[string]hvac_reward.BoilerRewardInfo,
	iv Interval,
	p Prices,
) (EnergyUsage, error) {
	var elecW, gasW float64

	ahIDs, err := orderedIDs(airHandlerMapping, handlers)
	if err != nil {
		return EnergyUsage{}, err
	}
	for _, id := range ahIDs {
		ah := handlers[id]
		subject := "air handler " + id
		if err := checkPower(subject, "blower_electrical_energy_rate", ah.BlowerElectricalEnergyRate); err != nil {
			return EnergyUsage{}, err
		}
		if err := checkPower(subject, "air_conditioning_electrical_energy_rate", ah.AirConditioningElectricalEnergyRate); err != nil {
			return EnergyUsage{}, err
		}
		elecW += ah.BlowerElectricalEnergyRate + ah.AirConditioningElectricalEnergyRate
	}

	bIDs, err := orderedIDs(boilerMapping, boilers)
	if err != nil {
		return EnergyUsage{}, err
	}
	for _, id := range bIDs {
		b := boilers[id]
		subject := "boiler " + id
		if err := checkPower(subject, "natural_gas_heating_energy_rate", b.NaturalGasHeatingEnergyRate); err != nil {
			return EnergyUsage{}, err
		}
		if err := checkPower(subject, "pump_electrical_energy_rate", b.PumpElectricalEnergyRate); err != nil {
			return EnergyUsage{}, err
		}
		elecW += b.PumpElectricalEnergyRate
		gasW += b.NaturalGasHeatingEnergyRate
	}

	secs := iv.Seconds()
	u := EnergyUsage{
		ElectricityKWh: WattsToKWh(elecW, secs),
		NaturalGasKWh:  WattsToKWh(gasW, secs),
	}
	u.ElectricityCost = u.ElectricityKWh * p.ElectricityUSDPerKWh
	u.NaturalGasCost = u.NaturalGasKWh * p.NaturalGasUSDPerKWh
	for _, c := range []struct {
		field string
		v     float64
	}{
		{"electricity_kwh", u.ElectricityKWh},
		{"natural_gas_kwh", u.NaturalGasKWh},
		{"electricity_cost", u.ElectricityCost},
		{"natural_gas_cost", u.NaturalGasCost},
	} {
		if err := checkFinite("energy aggregate", c.field, c.v); err != nil {
			return EnergyUsage{}, err
		}
	}
	return u, nil
}
