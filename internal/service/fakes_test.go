package service

import (
	"context"
	"sync"
	"time"

	"hvac_reward"
	"hvac_reward/internal/models"
	"hvac_reward/internal/repository"
)

// fakeRewardRepo is a minimal stub that satisfies repository.RewardRepo.
type fakeRewardRepo struct {
	mu sync.Mutex

	saved   []models.RewardRecord
	batches int
	gotF    models.RewardFilter
	listOut []models.RewardRecord
	latest  *models.RewardRecord
	err     error
	calls   int
}

func (f *fakeRewardRepo) Save(_ context.Context, r models.RewardRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, r)
	return nil
}

func (f *fakeRewardRepo) SaveBatch(_ context.Context, rs []models.RewardRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.batches++
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, rs...)
	return nil
}

func (f *fakeRewardRepo) List(_ context.Context, filter models.RewardFilter) ([]models.RewardRecord, error) {
	f.calls++
	f.gotF = filter
	return f.listOut, f.err
}

func (f *fakeRewardRepo) Latest(_ context.Context, _ string) (*models.RewardRecord, error) {
	f.calls++
	return f.latest, f.err
}

type fakeInventoryRepo struct {
	mu    sync.Mutex
	byID  map[string]models.Inventory
	err   error
	puts  int
	calls int
}

func (f *fakeInventoryRepo) Put(_ context.Context, inv models.Inventory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.puts++
	if f.err != nil {
		return f.err
	}
	if f.byID == nil {
		f.byID = map[string]models.Inventory{}
	}
	if cur, ok := f.byID[inv.ScenarioID]; ok && cur.OwnerID != 0 && cur.OwnerID != inv.OwnerID {
		return repository.ErrInventoryOwned
	}
	f.byID[inv.ScenarioID] = inv
	return nil
}

func (f *fakeInventoryRepo) Get(_ context.Context, scenarioID string) (*models.Inventory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	inv, ok := f.byID[scenarioID]
	if !ok {
		return nil, nil
	}
	return &inv, nil
}

type fakePublisher struct {
	published []models.RewardRecord
	err       error
}

func (p *fakePublisher) Publish(_ context.Context, recs ...models.RewardRecord) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, recs...)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

func fixedZone(name string, offsetSec int) *time.Location {
	return time.FixedZone(name, offsetSec)
}

func mustTimeIn(loc *time.Location, y int, m time.Month, d, hh, mm, ss int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, 0, loc)
}

func validInfo(agent string) hvac_reward.RewardInfo {
	start := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	return hvac_reward.RewardInfo{
		StartTimestamp: start,
		EndTimestamp:   start.Add(15 * time.Minute),
		AgentID:        agent,
		ScenarioID:     "office",
		ZoneRewardInfos: map[string]hvac_reward.ZoneRewardInfo{
			"z1": {HeatingSetpointTemperature: 293, CoolingSetpointTemperature: 297, ZoneAirTemperature: 295, AverageOccupancy: 5},
		},
		AirHandlerRewardInfos: map[string]hvac_reward.AirHandlerRewardInfo{
			"ah1": {BlowerElectricalEnergyRate: 800, AirConditioningElectricalEnergyRate: 1200},
		},
		BoilerRewardInfos: map[string]hvac_reward.BoilerRewardInfo{
			"b1": {NaturalGasHeatingEnergyRate: 3000, PumpElectricalEnergyRate: 100},
		},
	}
}
