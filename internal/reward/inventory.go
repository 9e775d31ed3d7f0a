package reward

import "hvac_reward"

// RequireEntries checks that every registered device id is present in info.
// Zones are checked first, then air handlers, then boilers.
func RequireEntries(info hvac_reward.RewardInfo, zoneIDs, airHandlerIDs, boilerIDs []string) error {
	for _, id := range zoneIDs {
		if _, ok := info.ZoneRewardInfos[id]; !ok {
			return &MissingMappingEntryError{Mapping: zoneMapping, ID: id}
		}
	}
	for _, id := range airHandlerIDs {
		if _, ok := info.AirHandlerRewardInfos[id]; !ok {
			return &MissingMappingEntryError{Mapping: airHandlerMapping, ID: id}
		}
	}
	for _, id := range boilerIDs {
		if _, ok := info.BoilerRewardInfos[id]; !ok {
			return &MissingMappingEntryError{Mapping: boilerMapping, ID: id}
		}
	}
	return nil
}
