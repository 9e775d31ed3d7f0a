package models

import "time"

// Inventory lists the device ids a scenario must report on every request.
type Inventory struct {
	ScenarioID    string    `json:"scenario_id"`
	ZoneIDs       []string  `json:"zone_ids"`
	AirHandlerIDs []string  `json:"air_handler_ids"`
	BoilerIDs     []string  `json:"boiler_ids"`
	OwnerID       int       `json:"owner_id"` // user that first registered the scenario
	UpdatedAt     time.Time `json:"updated_at"`
}
