package board

import (
	"sort"

	"github.com/commutedash/commutedash/tfl"
)

// NormalizeArrivals sorts raw arrivals soonest first, truncates to limit
// (limit <= 0 means no limit) and derives whole minutes until arrival.
func NormalizeArrivals(raw []tfl.Arrival, limit int) []BusDeparture {
	sorted := make([]tfl.Arrival, len(raw))
	copy(sorted, raw)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TimeToStation < sorted[j].TimeToStation
	})
	if limit > 0 && len(sorted) > limit {
		sorted = sorted[:limit]
	}

	out := make([]BusDeparture, 0, len(sorted))
	for _, a := range sorted {
		out = append(out, BusDeparture{
			Line:          a.LineName,
			Destination:   a.DestinationName,
			ExpectedInMin: a.TimeToStation / 60,
			VehicleID:     a.VehicleID,
			Towards:       a.Towards,
			StationName:   a.StationName,
		})
	}
	return out
}
