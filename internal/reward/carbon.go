package reward

// EmissionFactors convert consumed energy to kg CO2 and price the result.
type EmissionFactors struct {
	ElectricityKgPerKWh float64
	NaturalGasKgPerKWh  float64
	CarbonUSDPerKg      float64
}

// Carbon is the emission estimate for one interval.
type Carbon struct {
	EmittedKg float64
	CostUSD   float64
}

// EstimateCarbon applies the emission factors to electricity and gas separately.
func EstimateCarbon(u EnergyUsage, f EmissionFactors) (Carbon, error) {
	for _, c := range []struct {
		field string
		v     float64
	}{
		{"electricity_kwh", u.ElectricityKWh},
		{"natural_gas_kwh", u.NaturalGasKWh},
		{"electricity_emission_kg_per_kwh", f.ElectricityKgPerKWh},
		{"natural_gas_emission_kg_per_kwh", f.NaturalGasKgPerKWh},
		{"carbon_price_usd_per_kg", f.CarbonUSDPerKg},
	} {
		if err := checkFinite("carbon estimate", c.field, c.v); err != nil {
			return Carbon{}, err
		}
	}

	kg := u.ElectricityKWh*f.ElectricityKgPerKWh + u.NaturalGasKWh*f.NaturalGasKgPerKWh
	return Carbon{EmittedKg: kg, CostUSD: kg * f.CarbonUSDPerKg}, nil
}
